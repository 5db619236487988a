package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format pads each cell to the widest entry of its column, measured in
// terminal cells. Rows shorter than the first row are padded with empty
// cells; trailing whitespace is trimmed from every line.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for c, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(columnGap)
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(runewidth.FillLeft(cell, widths[c]))
			} else {
				b.WriteString(runewidth.FillRight(cell, widths[c]))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
