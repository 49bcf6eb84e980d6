package parser

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
	"github.com/xuri/excelize/v2"
)

// newClippingFile creates a workbook with a placeholder "Sheet1" and two categories.
func newClippingFile(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()

	if _, err := f.NewSheet("Política"); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	f.SetCellValue("Política", "A1", "Título")
	f.SetCellValue("Política", "B1", "Circulação")
	f.SetCellValue("Política", "A2", "Reforma aprovada")
	f.SetCellValue("Política", "B2", 1234567)
	f.SetCellValue("Política", "A3", "")
	f.SetCellValue("Política", "B3", 999)
	f.SetCellValue("Política", "A4", "Eleições")
	f.SetCellValue("Política", "B4", 1500.5)

	if _, err := f.NewSheet("Economia"); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	f.SetCellValue("Economia", "A1", "Título")
	f.SetCellValue("Economia", "A2", "Juros em alta")

	return f
}

func TestReadWorkbook(t *testing.T) {
	f := newClippingFile(t)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}

	wb, err := ReadWorkbook("clipping.xlsx", buf.Bytes(), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}

	want := &models.WorkbookData{
		BookName: "clipping.xlsx",
		Categories: []models.Category{
			{
				Name: "Política",
				Records: []models.Record{
					{Row: 2, Title: "Reforma aprovada", Circulation: 1234567},
					{Row: 4, Title: "Eleições", Circulation: 1501},
				},
				Dropped: 1,
			},
			{
				Name: "Economia",
				Records: []models.Record{
					{Row: 2, Title: "Juros em alta", Circulation: 0},
				},
			},
		},
		Skipped: []string{"Sheet1"},
	}
	if diff := cmp.Diff(want, wb); diff != "" {
		t.Errorf("ReadWorkbook mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWorkbookFile(t *testing.T) {
	f := newClippingFile(t)
	defer f.Close()

	tmpFile := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := ReadWorkbookFile(tmpFile, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadWorkbookFile failed: %v", err)
	}
	if wb.BookName != "input.xlsx" {
		t.Errorf("Expected book name input.xlsx, got %q", wb.BookName)
	}
	if len(wb.Categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(wb.Categories))
	}
	if wb.RecordCount() != 3 {
		t.Errorf("Expected 3 records, got %d", wb.RecordCount())
	}
}

func TestReadWorkbookOnlyDefaultSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Título")
	f.SetCellValue("Sheet1", "A2", "Ignored")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}

	wb, err := ReadWorkbook("only-default.xlsx", buf.Bytes(), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(wb.Categories) != 0 {
		t.Errorf("Expected no categories, got %d", len(wb.Categories))
	}
}

func TestReadWorkbookInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("Título;Circulação\nA;1\n")},
		{"truncated zip", []byte("PK\x03\x04garbage")},
	}

	for _, tt := range tests {
		_, err := ReadWorkbook(tt.name, tt.data, DefaultOptions())
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ReadWorkbook(%s) error = %v, expected ErrInvalidFormat", tt.name, err)
		}
	}
}

func TestReadWorkbookXLS(t *testing.T) {
	path := filepath.Join("testdata", "Table.xls")

	src, err := openSourceFile(path)
	if err != nil {
		t.Fatalf("openSourceFile failed: %v", err)
	}
	defer src.Close()

	if _, ok := src.(*xlsSource); !ok {
		t.Fatalf("Expected the BIFF reader, got %T", src)
	}
	if diff := cmp.Diff([]string{"Table"}, src.SheetNames()); diff != "" {
		t.Errorf("SheetNames mismatch (-want +got):\n%s", diff)
	}
	rows, err := src.Rows("Table")
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("Expected a header and data rows, got %d rows", len(rows))
	}
	if diff := cmp.Diff([]string{"Code", "Name", "Description"}, rows[0]); diff != "" {
		t.Errorf("Header row mismatch (-want +got):\n%s", diff)
	}

	opts := Options{TitleColumn: "Code", CirculationColumn: "Circulação"}
	wb, err := ReadWorkbookFile(path, opts)
	if err != nil {
		t.Fatalf("ReadWorkbookFile failed: %v", err)
	}
	if wb.BookName != "Table.xls" {
		t.Errorf("Expected book name Table.xls, got %q", wb.BookName)
	}
	if len(wb.Categories) != 1 || wb.Categories[0].Name != "Table" {
		t.Fatalf("Expected one category named Table, got %+v", wb.Categories)
	}
	records := wb.Categories[0].Records
	if len(records) == 0 {
		t.Fatal("Expected records below the header")
	}
	if diff := cmp.Diff(models.Record{Row: 2, Title: "code1"}, records[0]); diff != "" {
		t.Errorf("First record mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	fromBytes, err := ReadWorkbook("Table.xls", data, opts)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if diff := cmp.Diff(wb, fromBytes); diff != "" {
		t.Errorf("File and byte readers disagree (-file +bytes):\n%s", diff)
	}
}

func TestReadWorkbookMalformedXLS(t *testing.T) {
	broken, err := os.ReadFile(filepath.Join("testdata", "broken.xls"))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	ole2Magic := []byte("\xD0\xCF\x11\xE0\xA1\xB1\x1A\xE1")

	tests := []struct {
		name string
		data []byte
	}{
		{"magic only", ole2Magic},
		{"garbage header", append(append([]byte{}, ole2Magic...), bytes.Repeat([]byte{0xff}, 1024)...)},
		{"corrupt workbook", broken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if p := recover(); p != nil {
					t.Fatalf("ReadWorkbook panicked: %v", p)
				}
			}()

			_, err := ReadWorkbook(tt.name, tt.data, DefaultOptions())
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ReadWorkbook(%s) error = %v, expected ErrInvalidFormat", tt.name, err)
			}
		})
	}
}

func TestExtractCategory(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name string
		rows [][]string
		want models.Category
	}{
		{
			name: "leading blank rows",
			rows: [][]string{
				nil,
				{"", ""},
				{"Título", "Circulação"},
				{"Manchete", "10"},
			},
			want: models.Category{Name: "leading blank rows", Records: []models.Record{
				{Row: 4, Title: "Manchete", Circulation: 10},
			}},
		},
		{
			name: "missing title column",
			rows: [][]string{
				{"Assunto", "Circulação"},
				{"Manchete", "10"},
			},
			want: models.Category{Name: "missing title column"},
		},
		{
			name: "header only",
			rows: [][]string{{"Título"}},
			want: models.Category{Name: "header only"},
		},
		{
			name: "all titles blank",
			rows: [][]string{
				{"Título", "Circulação"},
				{"", "10"},
				{"   ", "20"},
			},
			want: models.Category{Name: "all titles blank", Dropped: 2},
		},
		{
			name: "decomposed header accent",
			rows: [][]string{
				{" Ti\u0301tulo ", "Circulação"},
				{"Manchete", "7"},
			},
			want: models.Category{Name: "decomposed header accent", Records: []models.Record{
				{Row: 2, Title: "Manchete", Circulation: 7},
			}},
		},
		{
			name: "title kept verbatim",
			rows: [][]string{
				{"Circulação", "Título"},
				{"", "  Manchete com espaços "},
			},
			want: models.Category{Name: "title kept verbatim", Records: []models.Record{
				{Row: 2, Title: "  Manchete com espaços ", Circulation: 0},
			}},
		},
	}

	for _, tt := range tests {
		got := ExtractCategory(tt.name, tt.rows, opts)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ExtractCategory(%s) mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"123", 123},
		{" 42 ", 42},
		{"123.45", 123},
		{"99.5", 100},
		{"-100", -100},
		{"1.2e3", 1200},
		{"NaN", 0},
		{"hello", 0},
		{"", 0},
	}

	for _, tt := range tests {
		result := parseCount(tt.input)
		if result != tt.expected {
			t.Errorf("parseCount(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestSkips(t *testing.T) {
	opts := Options{SkipPrefixes: []string{"Sheet", "Planilha", ""}}

	tests := []struct {
		name     string
		expected bool
	}{
		{"Sheet1", true},
		{"Sheet", true},
		{"Planilha2", true},
		{"sheet1", false},
		{"Esportes", false},
		{"My Sheet", false},
	}

	for _, tt := range tests {
		if got := opts.skips(tt.name); got != tt.expected {
			t.Errorf("skips(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
