// package formatter exports album collections to console-ready formats (plain text, CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/desertthunder/crates/internal/collection"
)

// ExportToText renders a collection as plain text: the owner header line
// followed by one line per album. An empty owner name omits the header.
func ExportToText(name string, c collection.Collection) []byte {
	var buf bytes.Buffer

	if name != "" {
		buf.WriteString(fmt.Sprintf("%s's albums:\n", name))
	}
	buf.WriteString(collection.Render(c))

	return buf.Bytes()
}

// ExportToCSV converts a collection to CSV format with columns: Title, Artist
func ExportToCSV(c collection.Collection) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i := 0; i < c.Len(); i++ {
		album := c.At(i)
		if err := writer.Write([]string{album.Title, album.Artist}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a collection to Markdown format with a numbered
// album listing.
func ExportToMarkdown(name string, c collection.Collection) []byte {
	var buf bytes.Buffer

	if name != "" {
		buf.WriteString(fmt.Sprintf("# %s's albums\n\n", name))
	}
	buf.WriteString(fmt.Sprintf("**Albums**: %d\n\n", c.Len()))

	for i := 0; i < c.Len(); i++ {
		album := c.At(i)
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, album.Artist, album.Title))
	}

	return buf.Bytes()
}

// UpperTitles renders each album title in upper case, one per line, in
// sequence order.
func UpperTitles(c collection.Collection) string {
	var b strings.Builder
	for _, title := range collection.Titles(c) {
		b.WriteString(strings.ToUpper(title))
		b.WriteByte('\n')
	}
	return b.String()
}
