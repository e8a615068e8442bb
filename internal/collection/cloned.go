package collection

import "github.com/desertthunder/crates/internal/models"

// Cloned holds a deep, independent copy of a source sequence. It is the
// snapshot realization: the caller may keep it indefinitely, and later
// changes to or destruction of the source cannot reach it.
type Cloned struct {
	albums []models.Album
}

// NewCloned deep-copies the source sequence into a fresh collection. The
// result shares no storage with the source.
func NewCloned(src []models.Album) *Cloned {
	return &Cloned{albums: models.CloneAll(src)}
}

// Len returns the number of albums in the snapshot.
func (c *Cloned) Len() int { return len(c.albums) }

// At returns the album at position i.
func (c *Cloned) At(i int) models.Album { return c.albums[i] }

// Render returns the multi-line rendering of the snapshot.
func (c *Cloned) Render() string { return Render(c) }
