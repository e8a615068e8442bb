// package testing contains shared testing utilities
package testing

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/crates/internal/models"
)

// SampleAlbums returns the two-album fixture used across the test suite. A
// fresh slice is allocated on every call so tests can hand ownership away or
// mutate their copy without affecting each other.
func SampleAlbums() []models.Album {
	return []models.Album{
		{Title: "Sgt. Pepper's Lonely Hearts Club Band", Artist: "The Beatles"},
		{Title: "Dark Side of the Moon", Artist: "Pink Floyd"},
	}
}

// SampleRendering is the expected multi-line rendering of [SampleAlbums].
const SampleRendering = "Sgt. Pepper's Lonely Hearts Club Band (The Beatles)\n" +
	"Dark Side of the Moon (Pink Floyd)\n"

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func AssertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output missing %q, got: %s", want, output)
	}
}

func AssertNotContains(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Errorf("output should not contain %q, got: %s", unwanted, output)
	}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
