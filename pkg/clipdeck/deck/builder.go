// Package deck assembles clipping reports into slide decks.
package deck

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/layout"
	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
)

// Labels holds the fixed texts of the report.
type Labels struct {
	Title            string `mapstructure:"title"`
	Subtitle         string `mapstructure:"subtitle"`
	NewsHeading      string `mapstructure:"news_heading"`
	NewsCount        string `mapstructure:"news_count"`
	CirculationTotal string `mapstructure:"circulation_total"`
	Circulation      string `mapstructure:"circulation"`
}

// DefaultLabels returns the Portuguese labels of the clipping report.
func DefaultLabels() Labels {
	return Labels{
		Title:            "Relatório de Notícias",
		Subtitle:         "Gerado automaticamente via API",
		NewsHeading:      "NOTÍCIA",
		NewsCount:        "Total de Notícias",
		CirculationTotal: "Total de Circulação",
		Circulation:      "Circulação",
	}
}

// Builder turns categories into a deck. A Builder holds no per-deck state
// and may be shared between goroutines.
type Builder struct {
	Layout layout.Layout
	Style  layout.Style
	Labels Labels
}

// NewBuilder creates a Builder with the given layout, style and labels.
func NewBuilder(l layout.Layout, style layout.Style, labels Labels) *Builder {
	return &Builder{
		Layout: l,
		Style:  style,
		Labels: labels,
	}
}

// Assemble builds the deck of wb. logo may be nil.
// Categories without records produce no slides.
func (b *Builder) Assemble(ctx context.Context, wb *models.WorkbookData, logo *models.Image) (*models.Deck, error) {
	a := &assembly{
		b:      b,
		format: newFormatter(),
		logo:   logo,
		deck: &models.Deck{
			Width:  b.Layout.Width(),
			Height: b.Layout.Height(),
		},
	}

	a.add(models.SlideTitle, b.Layout.Title, map[string][]string{
		layout.FieldTitle:    {b.Labels.Title},
		layout.FieldSubtitle: {b.Labels.Subtitle},
	})

	for _, category := range wb.Categories {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("assembling category %q: %w", category.Name, err)
		}
		if category.Count() == 0 {
			continue
		}
		a.addCategory(category)
	}

	return a.deck, nil
}

// assembly is the state of one Assemble call.
type assembly struct {
	b      *Builder
	format *formatter
	logo   *models.Image
	deck   *models.Deck
}

func (a *assembly) addCategory(category models.Category) {
	labels := a.b.Labels

	a.add(models.SlideSummary, a.b.Layout.Summary, map[string][]string{
		layout.FieldHeading: {a.format.upper.String(category.Name)},
		layout.FieldTotals: {
			labels.NewsCount + ": " + strconv.Itoa(category.Count()),
			labels.CirculationTotal + ": " + a.format.count(category.TotalCirculation()),
		},
	})

	for _, record := range category.Records {
		a.add(models.SlideNews, a.b.Layout.News, map[string][]string{
			layout.FieldHeading:     {labels.NewsHeading},
			layout.FieldHeadline:    {record.Title},
			layout.FieldCirculation: {labels.Circulation + ": " + a.format.count(record.Circulation)},
		})
	}
}

// add appends a slide: background, template fields, then the logo on top.
func (a *assembly) add(kind models.SlideKind, tmpl layout.Template, values map[string][]string) {
	l := a.b.Layout

	elements := []models.Element{l.Background(a.b.Style)}
	elements = append(elements, tmpl.Place(l.Width(), a.b.Style, values)...)
	if a.logo != nil {
		elements = append(elements, l.PlaceLogo(a.logo))
	}

	a.deck.Slides = append(a.deck.Slides, models.Slide{Kind: kind, Elements: elements})
}
