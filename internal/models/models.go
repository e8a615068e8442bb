// package models defines the album value type used by all collection wrappers
package models

import "fmt"

// Album is an immutable title/artist pair. Both fields are trusted input;
// rendering performs no escaping or validation.
type Album struct {
	Title  string
	Artist string
}

// Render formats the album as "{title} ({artist})".
func (a Album) Render() string {
	return fmt.Sprintf("%s (%s)", a.Title, a.Artist)
}

// Clone returns an independent copy of the album.
//
// Album is a plain value type today, so assignment already copies it; Clone
// keeps the duplication explicit at call sites so collections built from
// copies read as copies.
func (a Album) Clone() Album {
	return Album{Title: a.Title, Artist: a.Artist}
}

// CloneAll deep-copies a sequence of albums into a freshly allocated slice.
// The result shares no backing storage with the input.
func CloneAll(albums []Album) []Album {
	if albums == nil {
		return nil
	}
	cloned := make([]Album, len(albums))
	for i, a := range albums {
		cloned[i] = a.Clone()
	}
	return cloned
}
