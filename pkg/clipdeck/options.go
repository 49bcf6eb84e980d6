// Package clipdeck turns news-clipping spreadsheets into slide decks.
package clipdeck

import (
	"fmt"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/deck"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/layout"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/logo"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/parser"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/render"
)

// Options configures report generation.
type Options struct {
	// Parser selects the columns and the skipped sheets.
	Parser parser.Options
	Labels deck.Labels
	Style  layout.Style
	Layout layout.Layout
	// MaxLogoPixels caps the logo height in pixels (0 keeps the original size).
	MaxLogoPixels int
	// Metadata is written to the document properties.
	Metadata render.Metadata
}

// DefaultOptions returns the options of the standard clipping report.
func DefaultOptions() Options {
	labels := deck.DefaultLabels()
	return Options{
		Parser:        parser.DefaultOptions(),
		Labels:        labels,
		Style:         layout.DefaultStyle(),
		Layout:        layout.DefaultLayout(),
		MaxLogoPixels: logo.DefaultMaxPixels,
		Metadata:      render.Metadata{Title: labels.Title, Creator: "clipdeck"},
	}
}

// Validate checks the options and returns a copy with normalized colours.
func (o Options) Validate() (Options, error) {
	o.Style = o.Style.Normalize()
	if err := o.Style.Validate(); err != nil {
		return o, fmt.Errorf("style: %w", err)
	}
	if o.Parser.TitleColumn == "" {
		return o, fmt.Errorf("title column must not be empty")
	}
	if o.MaxLogoPixels < 0 {
		return o, fmt.Errorf("max logo pixels must not be negative")
	}
	return o, nil
}
