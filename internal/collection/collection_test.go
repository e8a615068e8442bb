package collection

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/crates/internal/models"
	"github.com/desertthunder/crates/internal/shared"
	tu "github.com/desertthunder/crates/internal/testing"
)

func TestRender(t *testing.T) {
	t.Run("one line per album in order", func(t *testing.T) {
		wrapped := Wrap(tu.SampleAlbums())

		got := Render(wrapped)
		if got != tu.SampleRendering {
			t.Errorf("Render() = %q, want %q", got, tu.SampleRendering)
		}
	})

	t.Run("equals concatenated single renders", func(t *testing.T) {
		albums := []models.Album{
			{Title: "A", Artist: "One"},
			{Title: "B", Artist: "Two"},
			{Title: "A", Artist: "One"},
		}

		var want strings.Builder
		for _, a := range albums {
			want.WriteString(a.Render())
			want.WriteByte('\n')
		}

		if got := Render(Wrap(albums)); got != want.String() {
			t.Errorf("Render() = %q, want %q", got, want.String())
		}
	})

	t.Run("empty collection renders to empty string", func(t *testing.T) {
		if got := Render(Wrap(nil)); got != "" {
			t.Errorf("Render(empty) = %q, want empty string", got)
		}
	})

	t.Run("composes with every realization", func(t *testing.T) {
		albums := tu.SampleAlbums()
		realizations := map[string]Collection{
			"owned":       NewOwned(tu.SampleAlbums()),
			"borrowed":    Borrow(albums),
			"cloned":      NewCloned(albums),
			"transparent": Wrap(tu.SampleAlbums()),
		}

		for name, c := range realizations {
			if got := Render(c); got != tu.SampleRendering {
				t.Errorf("%s: Render() = %q, want %q", name, got, tu.SampleRendering)
			}
		}
	})
}

func TestTitles(t *testing.T) {
	titles := Titles(Wrap(tu.SampleAlbums()))

	want := []string{"Sgt. Pepper's Lonely Hearts Club Band", "Dark Side of the Moon"}
	if len(titles) != len(want) {
		t.Fatalf("Titles returned %d entries, want %d", len(titles), len(want))
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty(Wrap(nil)) {
		t.Error("empty wrapper should report empty")
	}
	if IsEmpty(Wrap(tu.SampleAlbums())) {
		t.Error("populated wrapper should not report empty")
	}
}

func TestOwned(t *testing.T) {
	t.Run("holds what it was given", func(t *testing.T) {
		owned := NewOwned(tu.SampleAlbums())

		if owned.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", owned.Len())
		}
		if owned.Render() != tu.SampleRendering {
			t.Errorf("Render() = %q", owned.Render())
		}
	})

	t.Run("IntoTransparent empties the source", func(t *testing.T) {
		owned := NewOwned(tu.SampleAlbums())

		wrapped := owned.IntoTransparent()

		if wrapped.Render() != tu.SampleRendering {
			t.Errorf("wrapper rendered %q", wrapped.Render())
		}
		if owned.Len() != 0 {
			t.Errorf("source still holds %d albums after transfer", owned.Len())
		}
	})
}

func TestBorrowed(t *testing.T) {
	t.Run("repeated renders are identical", func(t *testing.T) {
		borrowed := Borrow(tu.SampleAlbums())

		first := borrowed.Render()
		second := borrowed.Render()
		if first != second {
			t.Errorf("renders differ: %q vs %q", first, second)
		}
	})

	t.Run("views may coexist over one sequence", func(t *testing.T) {
		albums := tu.SampleAlbums()
		a := Borrow(albums)
		b := Borrow(albums)

		if a.Render() != b.Render() {
			t.Error("two views over the same sequence rendered differently")
		}
	})
}

func TestCloned(t *testing.T) {
	t.Run("repeated renders are identical", func(t *testing.T) {
		cloned := NewCloned(tu.SampleAlbums())

		if cloned.Render() != cloned.Render() {
			t.Error("renders of the snapshot differ")
		}
	})

	t.Run("independent of later source mutation", func(t *testing.T) {
		src := tu.SampleAlbums()
		cloned := NewCloned(src)
		want := cloned.Render()

		src[0] = models.Album{Title: "Overwritten", Artist: "Nobody"}

		if got := cloned.Render(); got != want {
			t.Errorf("snapshot changed after source mutation: %q", got)
		}
	})
}

func TestTransparent(t *testing.T) {
	albums := tu.SampleAlbums()
	wrapped := Wrap(models.CloneAll(albums))

	t.Run("length matches the wrapped sequence", func(t *testing.T) {
		if wrapped.Len() != len(albums) {
			t.Errorf("Len() = %d, want %d", wrapped.Len(), len(albums))
		}
		if len(wrapped) != len(albums) {
			t.Errorf("len(wrapped) = %d, want %d", len(wrapped), len(albums))
		}
	})

	t.Run("indexing matches the wrapped sequence", func(t *testing.T) {
		for i := range albums {
			if wrapped.At(i) != albums[i] {
				t.Errorf("At(%d) = %+v, want %+v", i, wrapped.At(i), albums[i])
			}
			if wrapped[i] != albums[i] {
				t.Errorf("wrapped[%d] = %+v, want %+v", i, wrapped[i], albums[i])
			}
		}
	})

	t.Run("range visits albums in order", func(t *testing.T) {
		var seen []string
		for _, a := range wrapped {
			seen = append(seen, a.Title)
		}
		for i := range albums {
			if seen[i] != albums[i].Title {
				t.Errorf("range order broke at %d: %q", i, seen[i])
			}
		}
	})
}

func TestUser(t *testing.T) {
	t.Run("Header", func(t *testing.T) {
		user := NewUser("Daniel", tu.SampleAlbums())

		if got := user.Header(); got != "Daniel's albums:" {
			t.Errorf("Header() = %q, want %q", got, "Daniel's albums:")
		}
	})

	t.Run("BorrowCollection leaves the owner intact", func(t *testing.T) {
		user := NewUser("Daniel", tu.SampleAlbums())

		for i := 0; i < 3; i++ {
			borrowed, err := user.BorrowCollection()
			if err != nil {
				t.Fatalf("borrow %d failed: %v", i, err)
			}
			if got := borrowed.Render(); got != tu.SampleRendering {
				t.Errorf("borrow %d rendered %q", i, got)
			}
		}
	})

	t.Run("CloneCollection leaves the owner intact", func(t *testing.T) {
		user := NewUser("Daniel", tu.SampleAlbums())

		snapshot, err := user.CloneCollection()
		if err != nil {
			t.Fatalf("clone failed: %v", err)
		}

		if _, err := user.BorrowCollection(); err != nil {
			t.Errorf("owner unusable after clone: %v", err)
		}
		if snapshot.Render() != tu.SampleRendering {
			t.Errorf("snapshot rendered %q", snapshot.Render())
		}
	})

	t.Run("IntoCollection spends the owner", func(t *testing.T) {
		user := NewUser("Daniel", tu.SampleAlbums())

		owned, err := user.IntoCollection()
		if err != nil {
			t.Fatalf("take failed: %v", err)
		}
		if owned.Render() != tu.SampleRendering {
			t.Errorf("owned rendered %q", owned.Render())
		}

		if _, err := user.IntoCollection(); !errors.Is(err, shared.ErrCollectionMoved) {
			t.Errorf("second take error = %v, want ErrCollectionMoved", err)
		}
		if _, err := user.BorrowCollection(); !errors.Is(err, shared.ErrCollectionMoved) {
			t.Errorf("borrow after take error = %v, want ErrCollectionMoved", err)
		}
		if _, err := user.CloneCollection(); !errors.Is(err, shared.ErrCollectionMoved) {
			t.Errorf("clone after take error = %v, want ErrCollectionMoved", err)
		}
	})

	t.Run("snapshot outlives a consumed owner", func(t *testing.T) {
		user := NewUser("Daniel", tu.SampleAlbums())

		snapshot, err := user.CloneCollection()
		if err != nil {
			t.Fatalf("clone failed: %v", err)
		}
		if _, err := user.IntoCollection(); err != nil {
			t.Fatalf("take failed: %v", err)
		}

		if snapshot.Render() != tu.SampleRendering {
			t.Errorf("snapshot rendered %q after owner was spent", snapshot.Render())
		}
	})

	t.Run("name survives the transfer", func(t *testing.T) {
		user := NewUser("Daniel", tu.SampleAlbums())
		if _, err := user.IntoCollection(); err != nil {
			t.Fatalf("take failed: %v", err)
		}

		if user.Header() != "Daniel's albums:" {
			t.Errorf("Header() = %q after transfer", user.Header())
		}
	})
}
