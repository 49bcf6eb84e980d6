package clipdeck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/deck"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/logo"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/parser"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/render"
)

// Input holds the uploaded files of one report.
// Each file is given either as a path on disk or as bytes; the path wins.
type Input struct {
	// Name is the book name of the workbook. Empty means the base name of
	// WorkbookPath.
	Name         string
	Workbook     []byte
	WorkbookPath string
	// Logo is optional.
	Logo     []byte
	LogoPath string
}

// Report is the outcome of Generate.
type Report struct {
	Workbook *models.WorkbookData
	Deck     *models.Deck
	// PPTX holds the rendered file.
	PPTX []byte
}

// Generate reads the workbook and the logo of in, assembles the deck and
// renders it. Failures are returned as *GenerateError.
func Generate(ctx context.Context, in Input, opts Options) (*Report, error) {
	opts, err := opts.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	wb, err := readWorkbook(in, opts.Parser)
	if err != nil {
		return nil, NewGenerateError(StageWorkbook, err)
	}

	img, err := readLogo(in, opts.MaxLogoPixels)
	if err != nil {
		return nil, NewGenerateError(StageLogo, err)
	}

	b := deck.NewBuilder(opts.Layout, opts.Style, opts.Labels)
	d, err := b.Assemble(ctx, wb, img)
	if err != nil {
		return nil, NewGenerateError(StageAssemble, err)
	}

	pptx, err := render.Bytes(d, opts.Metadata)
	if err != nil {
		return nil, NewGenerateError(StageRender, err)
	}

	return &Report{Workbook: wb, Deck: d, PPTX: pptx}, nil
}

func readWorkbook(in Input, opts parser.Options) (*models.WorkbookData, error) {
	if in.WorkbookPath != "" {
		if _, err := os.Stat(in.WorkbookPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filepath.Base(in.WorkbookPath))
		}
		wb, err := parser.ReadWorkbookFile(in.WorkbookPath, opts)
		if err != nil {
			return nil, err
		}
		if in.Name != "" {
			wb.BookName = in.Name
		}
		return wb, nil
	}
	if len(in.Workbook) == 0 {
		return nil, ErrMissingInput
	}
	return parser.ReadWorkbook(in.Name, in.Workbook, opts)
}

func readLogo(in Input, maxPixels int) (*models.Image, error) {
	data := in.Logo
	if in.LogoPath != "" {
		var err error
		if data, err = os.ReadFile(in.LogoPath); err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: empty file", ErrUnsupportedImage)
		}
	}
	if len(data) == 0 {
		return nil, nil
	}
	return logo.Decode(data, maxPixels)
}
