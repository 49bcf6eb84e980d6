package layout

import (
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
)

// Role selects which font family and default size of a Style a field uses.
type Role string

const (
	RoleTitle Role = "title"
	RoleBody  Role = "body"
)

// Template field names.
const (
	FieldTitle       = "title"
	FieldSubtitle    = "subtitle"
	FieldHeading     = "heading"
	FieldTotals      = "totals"
	FieldHeadline    = "headline"
	FieldCirculation = "circulation"
)

// Field places one text box. Distances are in inches from the top-left corner.
type Field struct {
	Name   string
	Left   float64
	Top    float64
	Height float64
	// Width of 0 stretches the box to the slide width minus Left on both sides.
	Width float64
	Role  Role
	// Size of 0 uses the Style size of the role.
	Size   int
	Bold   bool
	Italic bool
}

// Template is the declarative layout of one slide kind.
type Template struct {
	Name   string
	Fields []Field
}

// Place returns the text elements of t filled with values, in field order.
// Fields without a value are left out.
func (t Template) Place(slideWidth int64, style Style, values map[string][]string) []models.Element {
	var elements []models.Element
	for _, f := range t.Fields {
		paragraphs, ok := values[f.Name]
		if !ok {
			continue
		}
		elements = append(elements, models.Element{
			Kind:       models.ElementText,
			Field:      f.Name,
			Box:        f.box(slideWidth),
			Paragraphs: paragraphs,
			Style:      f.textStyle(style),
		})
	}
	return elements
}

func (f Field) box(slideWidth int64) models.Box {
	w := Inches(f.Width)
	if f.Width == 0 {
		w = slideWidth - 2*Inches(f.Left)
	}
	return models.Box{
		X: Inches(f.Left),
		Y: Inches(f.Top),
		W: w,
		H: Inches(f.Height),
	}
}

func (f Field) textStyle(style Style) *models.TextStyle {
	ts := &models.TextStyle{
		Font:   style.BodyFont,
		Size:   style.BodySize,
		Color:  style.TextColor,
		Bold:   f.Bold,
		Italic: f.Italic,
	}
	if f.Role == RoleTitle {
		ts.Font = style.TitleFont
		ts.Size = style.TitleSize
	}
	if f.Size > 0 {
		ts.Size = f.Size
	}
	return ts
}
