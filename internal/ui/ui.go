package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/crates/internal/collection"
	"github.com/desertthunder/crates/internal/models"
)

// Model represents the TUI application state: a single scrollable list over
// a read-only album collection.
type Model struct {
	albums    []models.Album
	albumList list.Model
	upper     bool
	help      help.Model
	keys      keyMap
}

// NewModel creates a browser over the given collection. The albums are read
// through the [collection.Collection] capability once, up front; the model
// never writes through it.
func NewModel(owner string, c collection.Collection) *Model {
	albums := make([]models.Album, c.Len())
	for i := range albums {
		albums[i] = c.At(i)
	}

	l := list.New(newItems(albums, false), list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("%s's albums", owner)
	l.Styles.Title = styles.title
	l.SetShowHelp(false)

	return &Model{
		albums:    albums,
		albumList: l,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init implements [tea.Model]; the browser has no startup work.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.albumList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.upper):
			m.upper = !m.upper
			m.albumList.SetItems(newItems(m.albums, m.upper))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.albumList, cmd = m.albumList.Update(msg)
	return m, cmd
}

// View renders the list with contextual help below it.
func (m *Model) View() string {
	return m.albumList.View() + "\n" + styles.help.Render(m.help.View(m.keys))
}
