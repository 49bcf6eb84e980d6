package layout

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^[0-9A-F]{6}$`)

// Style holds the visual settings shared by every slide of a deck.
// It is a plain value: copies can be changed without affecting other decks.
type Style struct {
	// Background is the slide fill colour as RRGGBB.
	Background string `mapstructure:"background"`
	// TextColor is the colour of every text run as RRGGBB.
	TextColor string `mapstructure:"text_color"`
	TitleFont string `mapstructure:"title_font"`
	BodyFont  string `mapstructure:"body_font"`
	// TitleSize and BodySize are font sizes in points.
	TitleSize int `mapstructure:"title_size"`
	BodySize  int `mapstructure:"body_size"`
}

// DefaultStyle returns the light gray report style.
func DefaultStyle() Style {
	return Style{
		Background: "E6E6E6",
		TextColor:  "323232",
		TitleFont:  "Calibri",
		BodyFont:   "Calibri",
		TitleSize:  28,
		BodySize:   18,
	}
}

// Normalize upper-cases colours and strips a leading '#'.
func (s Style) Normalize() Style {
	s.Background = normalizeColor(s.Background)
	s.TextColor = normalizeColor(s.TextColor)
	return s
}

// Validate checks colours and sizes.
func (s Style) Validate() error {
	if !hexColor.MatchString(s.Background) {
		return fmt.Errorf("invalid background colour: %q (must be RRGGBB)", s.Background)
	}
	if !hexColor.MatchString(s.TextColor) {
		return fmt.Errorf("invalid text colour: %q (must be RRGGBB)", s.TextColor)
	}
	if s.TitleFont == "" || s.BodyFont == "" {
		return fmt.Errorf("font names must not be empty")
	}
	if s.TitleSize <= 0 || s.BodySize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	return nil
}

func normalizeColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
}
