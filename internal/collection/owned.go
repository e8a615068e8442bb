package collection

import "github.com/desertthunder/crates/internal/models"

// Owned holds the only copy of an album sequence. It is the realization a
// consuming accessor hands out: once constructed, the providing side has
// given the data up for good.
type Owned struct {
	albums []models.Album
}

// NewOwned wraps the given sequence, taking ownership of it. The caller must
// not retain, reuse, or mutate the slice afterwards; the wrapper is the sole
// holder from here on.
func NewOwned(albums []models.Album) *Owned {
	return &Owned{albums: albums}
}

// Len returns the number of albums held.
func (o *Owned) Len() int { return len(o.albums) }

// At returns the album at position i.
func (o *Owned) At(i int) models.Album { return o.albums[i] }

// Render returns the multi-line rendering of the held sequence.
func (o *Owned) Render() string { return Render(o) }

// IntoTransparent transfers the sequence into a [Transparent] wrapper,
// leaving this collection empty. The same exclusivity holds afterwards: the
// wrapper is the sole holder.
func (o *Owned) IntoTransparent() Transparent {
	t := Transparent(o.albums)
	o.albums = nil
	return t
}
