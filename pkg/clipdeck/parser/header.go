package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// header maps normalized column names to their 0-based column index.
type header struct {
	// row is the 0-based index of the header row.
	row     int
	columns map[string]int
}

// findHeader locates the header row of a sheet.
// The header is the first row holding a non-blank cell; ok is false for a blank sheet.
func findHeader(rows [][]string) (h header, ok bool) {
	for rowIdx, row := range rows {
		if rowIsBlank(row) {
			continue
		}
		h = header{row: rowIdx, columns: make(map[string]int)}
		for colIdx, cell := range row {
			name := normalizeHeader(cell)
			if name == "" {
				continue
			}
			// First occurrence wins on duplicated names.
			if _, exists := h.columns[name]; !exists {
				h.columns[name] = colIdx
			}
		}
		return h, true
	}
	return header{}, false
}

// index returns the column index of name, or -1.
func (h header) index(name string) int {
	if idx, ok := h.columns[normalizeHeader(name)]; ok {
		return idx
	}
	return -1
}

// normalizeHeader trims a header and composes it to NFC, so that
// decomposed accents (common in files saved on macOS) match.
func normalizeHeader(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellAt returns the cell at idx, or "" when the row is shorter.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
