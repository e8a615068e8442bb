package collection

import (
	"strings"

	"github.com/desertthunder/crates/internal/models"
)

var (
	_ Collection = (*Owned)(nil)
	_ Collection = (*Borrowed)(nil)
	_ Collection = (*Cloned)(nil)
	_ Collection = Transparent(nil)
)

// Collection is read-only access to an ordered sequence of albums. It is the
// only capability the renderer and exporters need, so anything satisfying it
// composes with them regardless of how the albums are owned.
type Collection interface {
	Len() int                // Len returns the number of albums in the sequence
	At(i int) models.Album   // At returns the album at position i; i must be in [0, Len())
}

// Render produces the multi-line rendering of a collection: each album's
// one-line form followed by a newline, in sequence order. An empty
// collection renders to the empty string.
func Render(c Collection) string {
	var b strings.Builder
	for i := 0; i < c.Len(); i++ {
		b.WriteString(c.At(i).Render())
		b.WriteByte('\n')
	}
	return b.String()
}

// Titles returns the album titles of a collection in sequence order.
func Titles(c Collection) []string {
	titles := make([]string, c.Len())
	for i := range titles {
		titles[i] = c.At(i).Title
	}
	return titles
}

// IsEmpty reports whether a collection holds no albums.
func IsEmpty(c Collection) bool {
	return c.Len() == 0
}
