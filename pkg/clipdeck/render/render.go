// Package render writes assembled decks as PPTX files.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
)

// ErrEmptyDeck indicates a deck without slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// Metadata holds the document properties of the rendered file.
type Metadata struct {
	Title   string
	Creator string
}

// Render writes d to w as a PPTX document.
func Render(d *models.Deck, w io.Writer, meta Metadata) error {
	if d == nil || len(d.Slides) == 0 {
		return ErrEmptyDeck
	}

	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = meta.Title
	props.Creator = meta.Creator

	for i, s := range d.Slides {
		// A new presentation already holds one empty slide.
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		for j, e := range s.Elements {
			if err := drawElement(slide, e); err != nil {
				return fmt.Errorf("slide %d element %d (%s): %w", i+1, j+1, e.Kind, err)
			}
		}
	}

	writer, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("create PPTX writer: %w", err)
	}
	pptx, ok := writer.(*ppt.PPTXWriter)
	if !ok {
		return fmt.Errorf("unexpected writer %T", writer)
	}
	if err := pptx.WriteTo(w); err != nil {
		return fmt.Errorf("write PPTX: %w", err)
	}
	return nil
}

// Bytes renders d into memory.
func Bytes(d *models.Deck, meta Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(d, &buf, meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawElement adds e to slide. Colours are RRGGBB and GoPPT takes AARRGGBB.
func drawElement(slide *ppt.Slide, e models.Element) error {
	switch e.Kind {
	case models.ElementFill:
		shape := slide.CreateRichTextShape()
		shape.SetOffsetX(e.Box.X).SetOffsetY(e.Box.Y)
		shape.SetWidth(e.Box.W).SetHeight(e.Box.H)
		shape.SetFill(ppt.NewFill().SetSolid(ppt.NewColor("FF"+e.Fill)))
	case models.ElementText:
		if e.Style == nil {
			return errors.New("text element without style")
		}
		shape := slide.CreateRichTextShape()
		shape.SetOffsetX(e.Box.X).SetOffsetY(e.Box.Y)
		shape.SetWidth(e.Box.W).SetHeight(e.Box.H)
		for i, text := range e.Paragraphs {
			if i > 0 {
				shape.CreateParagraph()
			}
			font := shape.CreateTextRun(text).GetFont()
			font.SetName(e.Style.Font)
			font.SetSize(e.Style.Size).SetBold(e.Style.Bold).SetItalic(e.Style.Italic)
			font.SetColor(ppt.NewColor("FF"+e.Style.Color))
		}
	case models.ElementImage:
		if e.Image == nil || len(e.Image.Data) == 0 {
			return errors.New("image element without data")
		}
		shape := slide.CreateDrawingShape()
		shape.SetImageData(e.Image.Data, e.Image.MIME)
		shape.SetOffsetX(e.Box.X).SetOffsetY(e.Box.Y)
		shape.SetWidth(e.Box.W).SetHeight(e.Box.H)
	default:
		return fmt.Errorf("unknown element kind %q", e.Kind)
	}
	return nil
}
