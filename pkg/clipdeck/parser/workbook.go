package parser

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
)

// Options configures how sheets are turned into categories.
type Options struct {
	// TitleColumn is the header of the headline column.
	TitleColumn string
	// CirculationColumn is the header of the circulation column.
	CirculationColumn string
	// SkipPrefixes lists sheet name prefixes of placeholder sheets.
	SkipPrefixes []string
}

// DefaultOptions returns the column names used by the clipping spreadsheets.
func DefaultOptions() Options {
	return Options{
		TitleColumn:       "Título",
		CirculationColumn: "Circulação",
		SkipPrefixes:      []string{"Sheet"},
	}
}

// skips reports whether a sheet carries a default, unused name.
func (o Options) skips(sheetName string) bool {
	for _, prefix := range o.SkipPrefixes {
		if prefix != "" && strings.HasPrefix(sheetName, prefix) {
			return true
		}
	}
	return false
}

// ReadWorkbook parses spreadsheet bytes into categories.
// name is only used as the book name of the result.
func ReadWorkbook(name string, data []byte, opts Options) (*models.WorkbookData, error) {
	src, err := openSource(data)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return readCategories(src, name, opts)
}

// ReadWorkbookFile parses a spreadsheet stored on disk.
func ReadWorkbookFile(path string, opts Options) (*models.WorkbookData, error) {
	src, err := openSourceFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return readCategories(src, filepath.Base(path), opts)
}

func readCategories(src sheetSource, bookName string, opts Options) (*models.WorkbookData, error) {
	wb := &models.WorkbookData{BookName: bookName}

	for _, sheetName := range src.SheetNames() {
		if opts.skips(sheetName) {
			wb.Skipped = append(wb.Skipped, sheetName)
			continue
		}

		rows, err := src.Rows(sheetName)
		if err != nil {
			return nil, NewIngestError(sheetName, err)
		}
		wb.Categories = append(wb.Categories, ExtractCategory(sheetName, rows, opts))
	}

	return wb, nil
}
