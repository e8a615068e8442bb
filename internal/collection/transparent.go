package collection

import "github.com/desertthunder/crates/internal/models"

// Transparent is a named slice of albums. Reads on it are reads on the
// underlying slice: len, indexing, and range all behave exactly as they
// would on a bare []models.Album, with no forwarding layer in between. The
// point of the name is behavior attachment: [Transparent.Render] belongs to
// this type without belonging to every album slice in the program.
//
// Wrapping takes ownership the same way [NewOwned] does; the wrapper is the
// sole holder of the sequence afterwards.
type Transparent []models.Album

// Wrap takes ownership of the given sequence. The caller must not retain,
// reuse, or mutate the slice afterwards.
func Wrap(albums []models.Album) Transparent {
	return Transparent(albums)
}

// Len returns the number of albums; identical to len() on the wrapper.
func (t Transparent) Len() int { return len(t) }

// At returns the album at position i; identical to indexing the wrapper.
func (t Transparent) At(i int) models.Album { return t[i] }

// Render returns the multi-line rendering of the wrapped sequence.
func (t Transparent) Render() string { return Render(t) }
