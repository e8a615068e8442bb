package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/crates/internal/models"
)

var (
	_ list.Item = albumItem{}
)

// albumItem wraps [models.Album] to implement [list.Item].
type albumItem struct {
	album models.Album
	upper bool
}

func (i albumItem) FilterValue() string { return i.album.Title }

func (i albumItem) Title() string {
	if i.upper {
		return strings.ToUpper(i.album.Title)
	}
	return i.album.Title
}

func (i albumItem) Description() string { return i.album.Artist }

// newItems builds the list items for a sequence of albums, preserving order.
func newItems(albums []models.Album, upper bool) []list.Item {
	items := make([]list.Item, len(albums))
	for idx, a := range albums {
		items[idx] = albumItem{album: a, upper: upper}
	}
	return items
}
