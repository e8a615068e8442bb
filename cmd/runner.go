package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/crates/internal/collection"
	"github.com/desertthunder/crates/internal/formatter"
	"github.com/desertthunder/crates/internal/models"
	"github.com/desertthunder/crates/internal/shared"
	"github.com/desertthunder/crates/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		showCommand, cloneCommand, takeCommand, titlesCommand, exportCommand, browseCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// resolveConfig reloads configuration from the --config flag when the file
// exists, falling back to the runner's current config otherwise.
func (r *Runner) resolveConfig(cmd *cli.Command) *shared.Config {
	path := cmd.String("config")
	if path == "" {
		return r.config
	}
	if _, err := os.Stat(path); err != nil {
		return r.config
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warnf("ignoring unreadable config %s: %v", path, err)
		return r.config
	}
	return config
}

// user builds the configured owner: a [collection.User] holding the albums
// listed in config order. Each call constructs a fresh owner, so consuming
// accessors in one command never affect another.
func (r *Runner) user(cmd *cli.Command) *collection.User {
	config := r.resolveConfig(cmd)

	albums := make([]models.Album, len(config.Albums))
	for i, a := range config.Albums {
		albums[i] = models.Album{Title: a.Title, Artist: a.Artist}
	}

	return collection.NewUser(config.Owner.Name, albums)
}

// Show renders the owner's collection through a borrowed view: the owner
// keeps the albums and the view is handed out read-only.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	user := r.user(cmd)
	logger := shared.WithLogger(r.logger, "run", shared.GenerateID())

	borrowed, err := user.BorrowCollection()
	if err != nil {
		return err
	}

	logger.Debugf("borrowed %d albums from %s", borrowed.Len(), user.Name)
	fmt.Fprintln(r.output, user.Header())
	fmt.Fprint(r.output, borrowed.Render())
	return nil
}

// Clone renders an independent snapshot of the owner's collection, then
// consumes the owner to demonstrate that the snapshot survives it.
func (r *Runner) Clone(ctx context.Context, cmd *cli.Command) error {
	user := r.user(cmd)

	snapshot, err := user.CloneCollection()
	if err != nil {
		return err
	}

	// Spend the owner; the snapshot must be unaffected.
	if _, err := user.IntoCollection(); err != nil {
		return err
	}
	r.logger.Debugf("source consumed, snapshot still holds %d albums", snapshot.Len())

	fmt.Fprintln(r.output, user.Header())
	fmt.Fprint(r.output, snapshot.Render())
	return nil
}

// Take transfers the collection out of the owner and renders the owned
// result. A second take on the same owner fails with the moved error.
func (r *Runner) Take(ctx context.Context, cmd *cli.Command) error {
	user := r.user(cmd)

	fmt.Fprintln(r.output, user.Header())
	owned, err := user.IntoCollection()
	if err != nil {
		return err
	}
	fmt.Fprint(r.output, owned.Render())

	if _, err := user.BorrowCollection(); errors.Is(err, shared.ErrCollectionMoved) {
		r.logger.Warnf("owner is spent: %v", err)
	}
	return nil
}

// Titles renders each album title in upper case through a transparent
// wrapper over the owner's sequence.
func (r *Runner) Titles(ctx context.Context, cmd *cli.Command) error {
	user := r.user(cmd)

	owned, err := user.IntoCollection()
	if err != nil {
		return err
	}
	wrapped := owned.IntoTransparent()

	fmt.Fprint(r.output, formatter.UpperTitles(wrapped))
	return nil
}

// Export writes the collection to the requested format on standard output.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	user := r.user(cmd)

	borrowed, err := user.BorrowCollection()
	if err != nil {
		return err
	}

	var data []byte
	switch format := cmd.String("format"); format {
	case "text":
		data = formatter.ExportToText(user.Name, borrowed)
	case "csv":
		data, err = formatter.ExportToCSV(borrowed)
		if err != nil {
			return err
		}
	case "markdown", "md":
		data = formatter.ExportToMarkdown(user.Name, borrowed)
	default:
		return fmt.Errorf("unknown format %q: %w", format, shared.ErrInvalidFlag)
	}

	_, err = r.output.Write(data)
	return err
}

// Browse launches the interactive album browser over a borrowed view.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	user := r.user(cmd)

	borrowed, err := user.BorrowCollection()
	if err != nil {
		return err
	}
	if collection.IsEmpty(borrowed) {
		return fmt.Errorf("%s has nothing to browse: %w", user.Name, shared.ErrEmptyCollection)
	}

	model := ui.NewModel(user.Name, borrowed)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// Setup writes a starter config.toml for the configured collection.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Infof("wrote starter config to %s", path)
	return nil
}
