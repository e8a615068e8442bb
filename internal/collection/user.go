package collection

import (
	"fmt"

	"github.com/desertthunder/crates/internal/models"
	"github.com/desertthunder/crates/internal/shared"
)

// User owns a named album sequence and decides, per accessor, which
// realization a caller gets:
//
//   - [User.IntoCollection] consumes the user and yields [Owned]
//   - [User.BorrowCollection] leaves the user intact and yields [Borrowed]
//   - [User.CloneCollection] leaves the user intact and yields [Cloned]
//
// A consuming accessor can succeed once. Every album accessor on a spent
// user fails with [shared.ErrCollectionMoved]; the name is still readable.
type User struct {
	Name string

	albums []models.Album
	moved  bool
}

// NewUser creates a user owning the given sequence. Ownership of the slice
// transfers to the user; the caller must not retain or mutate it.
func NewUser(name string, albums []models.Album) *User {
	return &User{Name: name, albums: albums}
}

// IntoCollection transfers the user's albums into an [Owned] collection,
// spending the user. The transfer is total: after this call the user holds
// nothing, and every further album accessor fails.
func (u *User) IntoCollection() (*Owned, error) {
	if u.moved {
		return nil, fmt.Errorf("%s's albums: %w", u.Name, shared.ErrCollectionMoved)
	}
	owned := NewOwned(u.albums)
	u.albums = nil
	u.moved = true
	return owned, nil
}

// BorrowCollection returns a read-only view over the user's albums. The user
// keeps the data; the call is repeatable and views may coexist freely.
func (u *User) BorrowCollection() (*Borrowed, error) {
	if u.moved {
		return nil, fmt.Errorf("%s's albums: %w", u.Name, shared.ErrCollectionMoved)
	}
	return Borrow(u.albums), nil
}

// CloneCollection returns an independent deep copy of the user's albums. The
// user keeps the data; the snapshot is decoupled from it entirely.
func (u *User) CloneCollection() (*Cloned, error) {
	if u.moved {
		return nil, fmt.Errorf("%s's albums: %w", u.Name, shared.ErrCollectionMoved)
	}
	return NewCloned(u.albums), nil
}

// Header renders the console header line for the user's collection.
func (u *User) Header() string {
	return fmt.Sprintf("%s's albums:", u.Name)
}
