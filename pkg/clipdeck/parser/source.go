// Package parser provides spreadsheet parsing utilities.
package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
	"github.com/gabriel-vasile/mimetype"
	"github.com/xuri/excelize/v2"
)

// xlsCharset is the charset passed to the BIFF reader for non-unicode strings.
const xlsCharset = "utf-8"

// sheetSource is a read-only view of a workbook, one row slice per sheet row.
type sheetSource interface {
	SheetNames() []string
	Rows(sheetName string) ([][]string, error)
	Close() error
}

// openSource opens spreadsheet bytes, choosing the reader from the content.
func openSource(data []byte) (sheetSource, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidFormat)
	}
	if isCompoundDocument(mimetype.Detect(data)) {
		return openXLS(bytes.NewReader(data), nil)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &excelSource{f: f}, nil
}

// openSourceFile opens a spreadsheet stored on disk.
func openSourceFile(path string) (sheetSource, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}
	if isCompoundDocument(mt) {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, err := openXLS(fh, fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return src, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &excelSource{f: f}, nil
}

// isCompoundDocument reports whether mt is an OLE2 container (legacy .xls).
func isCompoundDocument(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("application/vnd.ms-excel") || m.Is("application/x-ole-storage") {
			return true
		}
	}
	return false
}

// excelSource reads OOXML workbooks.
type excelSource struct {
	f *excelize.File
}

func (s *excelSource) SheetNames() []string {
	return s.f.GetSheetList()
}

func (s *excelSource) Rows(sheetName string) ([][]string, error) {
	// Raw values keep numbers free of the cell number format.
	return s.f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

func (s *excelSource) Close() error {
	return s.f.Close()
}

// xlsSource reads BIFF8 workbooks.
type xlsSource struct {
	wb     *xls.WorkBook
	sheets map[string]int
	names  []string
	closer io.Closer
}

func openXLS(r io.ReadSeeker, closer io.Closer) (src sheetSource, err error) {
	// The BIFF reader panics on some malformed streams.
	defer func() {
		if p := recover(); p != nil {
			src, err = nil, fmt.Errorf("%w: %v", ErrInvalidFormat, p)
		}
	}()

	wb, err := xls.OpenReader(r, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if wb == nil {
		return nil, fmt.Errorf("%w: no workbook stream", ErrInvalidFormat)
	}

	s := &xlsSource{wb: wb, sheets: make(map[string]int), closer: closer}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		if _, dup := s.sheets[sheet.Name]; dup {
			continue
		}
		s.sheets[sheet.Name] = i
		s.names = append(s.names, sheet.Name)
	}
	return s, nil
}

func (s *xlsSource) SheetNames() []string {
	return s.names
}

func (s *xlsSource) Rows(sheetName string) (rows [][]string, err error) {
	idx, ok := s.sheets[sheetName]
	if !ok {
		return nil, fmt.Errorf("sheet %s does not exist", sheetName)
	}

	defer func() {
		if p := recover(); p != nil {
			rows, err = nil, fmt.Errorf("%w: %v", ErrInvalidFormat, p)
		}
	}()

	sheet := s.wb.GetSheet(idx)
	if sheet == nil {
		return nil, nil
	}
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, trimTrailingEmpty(cells))
	}
	return rows, nil
}

func (s *xlsSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// trimTrailingEmpty drops empty cells at the end of a row, as excelize does.
func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}
