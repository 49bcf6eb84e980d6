package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
)

// ExtractCategory builds a category from the rows of a sheet.
// Rows above and including the header are skipped, and rows with a blank
// title are counted in Dropped. A sheet without a title column yields a
// category with no records.
func ExtractCategory(sheetName string, rows [][]string, opts Options) models.Category {
	category := models.Category{Name: sheetName}

	h, ok := findHeader(rows)
	if !ok {
		return category
	}
	titleIdx := h.index(opts.TitleColumn)
	if titleIdx < 0 {
		return category
	}
	circIdx := h.index(opts.CirculationColumn)

	for rowIdx := h.row + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if rowIsBlank(row) {
			continue
		}

		title := cellAt(row, titleIdx)
		if strings.TrimSpace(title) == "" {
			category.Dropped++
			continue
		}

		category.Records = append(category.Records, models.Record{
			Row:         rowIdx + 1, // 1-based row index
			Title:       title,
			Circulation: parseCount(cellAt(row, circIdx)),
		})
	}

	return category
}

// parseCount parses a circulation cell.
// Integers are taken as is, decimals are rounded, anything else counts as 0.
func parseCount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt64 {
			return 0
		}
		return int64(math.Round(f))
	}
	return 0
}
