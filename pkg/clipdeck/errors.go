package clipdeck

import (
	"errors"
	"fmt"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/logo"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the spreadsheet cannot be read.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrUnsupportedImage indicates the logo is not a usable image.
var ErrUnsupportedImage = logo.ErrUnsupportedImage

// ErrMissingInput indicates a request without a spreadsheet.
var ErrMissingInput = errors.New("no spreadsheet given")

// Stage names the step of Generate that failed.
type Stage string

const (
	StageWorkbook Stage = "workbook"
	StageLogo     Stage = "logo"
	StageAssemble Stage = "assemble"
	StageRender   Stage = "render"
)

// GenerateError represents an error during report generation.
type GenerateError struct {
	Stage Stage
	Err   error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generate (%s): %v", e.Stage, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

// NewGenerateError creates a new GenerateError.
func NewGenerateError(stage Stage, err error) *GenerateError {
	return &GenerateError{
		Stage: stage,
		Err:   err,
	}
}

// StageOf returns the failed stage of err, or "" when err did not come
// from Generate.
func StageOf(err error) Stage {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge.Stage
	}
	return ""
}

// Cause returns the error wrapped by a GenerateError, or err itself.
func Cause(err error) error {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge.Err
	}
	return err
}
