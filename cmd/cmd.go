// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// showCommand renders the collection through a borrowed view
func showCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "show",
		Aliases: []string{"ls"},
		Usage:   "Print the owner's albums without giving them up",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.Show,
	}
}

// cloneCommand renders an independent snapshot of the collection
func cloneCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "clone",
		Usage:  "Snapshot the albums, then prove the copy outlives the source",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Clone,
	}
}

// takeCommand transfers the collection out of its owner
func takeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "take",
		Usage:  "Move the albums out of the owner (the owner is spent afterwards)",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Take,
	}
}

// titlesCommand runs the upper-casing pass over album titles
func titlesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "titles",
		Usage:  "Print album titles in upper case, one per line",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Titles,
	}
}

// exportCommand writes the collection in a machine-friendly format
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the collection to stdout as text, CSV, or Markdown",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, csv, or markdown",
				Value:   "text",
			},
		},
		Action: r.Export,
	}
}

// browseCommand opens the interactive album browser
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui"},
		Usage:   "Browse the collection interactively",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.Browse,
	}
}

// setupCommand writes a starter configuration file
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create a starter config.toml",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}
