package collection

import "github.com/desertthunder/crates/internal/models"

// Borrowed is a read-only view over an album sequence that some other value
// owns. It shares the owner's backing storage rather than copying it, which
// makes it the cheap realization to hand out for rendering.
//
// The garbage collector keeps the backing storage alive for as long as any
// Borrowed view exists, so a view never dangles. What a Borrowed must not
// assume is freshness: it observes whatever the owner's sequence currently
// holds. Owners in this package never mutate after construction, which makes
// repeated reads through a view deterministic.
type Borrowed struct {
	albums []models.Album
}

// Borrow creates a read-only view sharing the given sequence's storage.
func Borrow(albums []models.Album) *Borrowed {
	return &Borrowed{albums: albums}
}

// Len returns the number of albums visible through the view.
func (b *Borrowed) Len() int { return len(b.albums) }

// At returns a copy of the album at position i. Returning the value, never a
// pointer into the backing array, is what keeps the view read-only.
func (b *Borrowed) At(i int) models.Album { return b.albums[i] }

// Render returns the multi-line rendering of the viewed sequence.
func (b *Borrowed) Render() string { return Render(b) }
