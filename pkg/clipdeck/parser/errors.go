package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input is not a readable spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// IngestError represents an error while reading one sheet.
type IngestError struct {
	SheetName string
	Err       error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("reading sheet %q: %v", e.SheetName, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// NewIngestError creates a new IngestError.
func NewIngestError(sheetName string, err error) *IngestError {
	return &IngestError{
		SheetName: sheetName,
		Err:       err,
	}
}
