package output

import (
	"fmt"
	"io"

	"github.com/rodaine/table"
)

// Display caps. The full result is always fetched; only the rendering is cut.
const (
	DefaultCap = 20
	HistoryCap = 20
	BlockTxCap = 10
)

// Cap returns at most limit items and how many were left out.
func Cap[T any](items []T, limit int) (shown []T, more int) {
	if len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}

// More writes "...and N more <noun>" when more > 0.
func More(w io.Writer, more int, noun string) {
	if more <= 0 {
		return
	}
	if noun == "" {
		fmt.Fprintf(w, "...and %d more\n", more)
		return
	}
	fmt.Fprintf(w, "...and %d more %s\n", more, noun)
}

// NewTable returns a table writing to w with the shared header style.
func NewTable(w io.Writer, headers ...interface{}) table.Table {
	return table.New(headers...).
		WithWriter(w).
		WithHeaderFormatter(headerFmt)
}
