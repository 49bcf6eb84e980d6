package layout

import (
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
)

// LogoSpec places the logo relative to the top-right corner of a slide.
type LogoSpec struct {
	// Right is the distance from the right edge to the left side of the logo.
	Right float64
	Top   float64
	// Height is the rendered height; the width follows the image aspect ratio.
	Height float64
}

// Layout holds the slide size and the template of each slide kind.
// All distances are in inches.
type Layout struct {
	SlideWidth  float64
	SlideHeight float64
	Title       Template
	Summary     Template
	News        Template
	Logo        LogoSpec
}

// DefaultLayout returns the fixed layout of the clipping report on a 4:3 slide.
func DefaultLayout() Layout {
	return Layout{
		SlideWidth:  10,
		SlideHeight: 7.5,
		Title: Template{
			Name: string(models.SlideTitle),
			Fields: []Field{
				{Name: FieldTitle, Left: 1, Top: 1.5, Height: 1, Role: RoleTitle, Bold: true},
				{Name: FieldSubtitle, Left: 1, Top: 3, Height: 0.7, Role: RoleBody, Size: 16, Italic: true},
			},
		},
		Summary: Template{
			Name: string(models.SlideSummary),
			Fields: []Field{
				{Name: FieldHeading, Left: 0.7, Top: 0.5, Height: 1, Role: RoleTitle, Bold: true},
				{Name: FieldTotals, Left: 0.7, Top: 1.7, Height: 1, Role: RoleBody},
			},
		},
		News: Template{
			Name: string(models.SlideNews),
			Fields: []Field{
				{Name: FieldHeading, Left: 0.7, Top: 0.3, Height: 0.8, Role: RoleTitle, Bold: true},
				{Name: FieldHeadline, Left: 0.7, Top: 1.3, Height: 3, Role: RoleBody},
				{Name: FieldCirculation, Left: 0.7, Top: 4.6, Height: 0.7, Role: RoleBody, Italic: true},
			},
		},
		Logo: LogoSpec{Right: 1.5, Top: 0.2, Height: 1},
	}
}

// Width returns the slide width in EMU.
func (l Layout) Width() int64 {
	return Inches(l.SlideWidth)
}

// Height returns the slide height in EMU.
func (l Layout) Height() int64 {
	return Inches(l.SlideHeight)
}

// Background returns a fill element covering the whole slide.
func (l Layout) Background(style Style) models.Element {
	return models.Element{
		Kind: models.ElementFill,
		Box:  models.Box{W: l.Width(), H: l.Height()},
		Fill: style.Background,
	}
}

// PlaceLogo returns the picture element of img.
func (l Layout) PlaceLogo(img *models.Image) models.Element {
	h := Inches(l.Logo.Height)
	w := h
	if img.Width > 0 && img.Height > 0 {
		w = h * int64(img.Width) / int64(img.Height)
	}
	return models.Element{
		Kind:  models.ElementImage,
		Field: "logo",
		Box: models.Box{
			X: l.Width() - Inches(l.Logo.Right),
			Y: Inches(l.Logo.Top),
			W: w,
			H: h,
		},
		Image: img,
	}
}
