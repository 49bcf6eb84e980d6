package models

// SlideKind identifies which template produced a slide.
type SlideKind string

const (
	// SlideTitle is the opening slide of the report.
	SlideTitle SlideKind = "title"
	// SlideSummary opens a category with its totals.
	SlideSummary SlideKind = "summary"
	// SlideNews presents a single record.
	SlideNews SlideKind = "news"
)

// ElementKind identifies the kind of a placed element.
type ElementKind string

const (
	// ElementFill is a solid rectangle without text.
	ElementFill ElementKind = "fill"
	// ElementText is a text box.
	ElementText ElementKind = "text"
	// ElementImage is a picture.
	ElementImage ElementKind = "image"
)

// Box is a rectangle in EMU (English Metric Units).
type Box struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
	W int64 `json:"w"`
	H int64 `json:"h"`
}

// TextStyle holds the font settings of a text element.
type TextStyle struct {
	// Font is the font family name.
	Font string `json:"font"`
	// Size is the font size in points.
	Size int `json:"size"`
	// Color is the text colour as RRGGBB.
	Color  string `json:"color"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Image is a raster picture ready to be embedded.
type Image struct {
	Data []byte `json:"-"`
	// MIME is the content type of Data (image/png, image/jpeg or image/gif).
	MIME string `json:"mime"`
	// Width and Height are the pixel dimensions of Data.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Element is a positioned piece of slide content.
type Element struct {
	Kind ElementKind `json:"kind"`
	// Field is the template field name that produced the element.
	Field string `json:"field,omitempty"`
	Box   Box    `json:"box"`
	// Paragraphs holds the text lines of a text element.
	Paragraphs []string   `json:"paragraphs,omitempty"`
	Style      *TextStyle `json:"style,omitempty"`
	// Fill is the RRGGBB fill colour of a fill element.
	Fill  string `json:"fill,omitempty"`
	Image *Image `json:"image,omitempty"`
}

// Slide is an ordered list of elements, painted first to last.
type Slide struct {
	Kind     SlideKind `json:"kind"`
	Elements []Element `json:"elements"`
}

// Text returns the paragraphs of the element produced by field, or nil.
func (s Slide) Text(field string) []string {
	for _, e := range s.Elements {
		if e.Kind == ElementText && e.Field == field {
			return e.Paragraphs
		}
	}
	return nil
}

// Deck is the full assembled report.
type Deck struct {
	// Width and Height are the slide dimensions in EMU.
	Width  int64   `json:"width"`
	Height int64   `json:"height"`
	Slides []Slide `json:"slides"`
}

// Count returns the number of slides of the given kind.
func (d *Deck) Count(kind SlideKind) int {
	n := 0
	for _, s := range d.Slides {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
