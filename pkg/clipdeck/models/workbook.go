package models

// WorkbookData represents the categories read from a workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Categories lists one entry per processed sheet, in workbook order.
	Categories []Category `json:"categories"`
	// Skipped lists the sheet names ignored because of their default name.
	Skipped []string `json:"skipped,omitempty"`
}

// RecordCount returns the number of records across all categories.
func (w *WorkbookData) RecordCount() int {
	n := 0
	for _, c := range w.Categories {
		n += c.Count()
	}
	return n
}
