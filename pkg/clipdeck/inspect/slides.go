// Package inspect reads rendered decks back, slide by slide.
package inspect

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// XML namespaces used in PresentationML
const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const presentationPart = "ppt/presentation.xml"

// ZipSignature is the local file header magic every PPTX starts with.
var ZipSignature = []byte("PK\x03\x04")

// ErrNotPresentation indicates the archive has no slide list.
var ErrNotPresentation = errors.New("not a presentation")

// Slide summarizes one slide of a deck.
type Slide struct {
	// Index is the slide position (1-based).
	Index int `json:"index"`
	// Part is the archive path of the slide XML.
	Part string `json:"part"`
	// Paragraphs holds the non-empty text paragraphs, in document order.
	Paragraphs []string `json:"paragraphs,omitempty"`
	// Shapes is the number of shape elements (text boxes and fills).
	Shapes int `json:"shapes"`
	// Pictures is the number of picture elements.
	Pictures int `json:"pictures"`
}

// Summary lists the slides of a deck in presentation order.
type Summary struct {
	Slides []Slide `json:"slides"`
}

// Text returns every paragraph of the deck, slide after slide.
func (s *Summary) Text() []string {
	var out []string
	for _, sl := range s.Slides {
		out = append(out, sl.Paragraphs...)
	}
	return out
}

// Read parses PPTX bytes.
func Read(data []byte) (*Summary, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return readSummary(r)
}

// ReadFile parses a PPTX file.
func ReadFile(pptxPath string) (*Summary, error) {
	data, err := os.ReadFile(pptxPath)
	if err != nil {
		return nil, err
	}
	return Read(data)
}

func readSummary(r *zip.Reader) (*Summary, error) {
	presentationXML, err := readZipFile(r, presentationPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	slideIDs := parseSlideIDs(presentationXML)

	relsXML, err := readZipFile(r, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresentation, err)
	}
	targets := parseRelationships(relsXML)

	summary := &Summary{}
	for i, rID := range slideIDs {
		target, ok := targets[rID]
		if !ok {
			return nil, fmt.Errorf("slide %d: relationship %s not found", i+1, rID)
		}
		part := resolveRelativePath(target, path.Dir(presentationPart))

		slideXML, err := readZipFile(r, part)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		slide := parseSlideXML(slideXML)
		slide.Index = i + 1
		slide.Part = part
		summary.Slides = append(summary.Slides, slide)
	}

	return summary, nil
}

// parseSlideIDs returns the relationship ids of p:sldIdLst, in order.
func parseSlideIDs(data []byte) []string {
	var ids []string
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sldId" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local == "id" && attr.Name.Space == nsR {
				ids = append(ids, attr.Value)
			}
		}
	}

	return ids
}

// parseRelationships maps relationship ids to their targets.
func parseRelationships(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && target != "" {
				result[rID] = target
			}
		}
	}

	return result
}

// parseSlideXML collects the text paragraphs and counts shapes and pictures.
func parseSlideXML(data []byte) Slide {
	var slide Slide
	var paragraph strings.Builder
	inParagraph := false

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Space == nsP && t.Name.Local == "sp":
				slide.Shapes++
			case t.Name.Space == nsP && t.Name.Local == "pic":
				slide.Pictures++
			case t.Name.Space == nsA && t.Name.Local == "p":
				inParagraph = true
				paragraph.Reset()
			case t.Name.Space == nsA && t.Name.Local == "t":
				text, _ := readElementText(decoder)
				if inParagraph {
					paragraph.WriteString(text)
				}
			}
		case xml.EndElement:
			if t.Name.Space == nsA && t.Name.Local == "p" {
				inParagraph = false
				if text := strings.TrimSpace(paragraph.String()); text != "" {
					slide.Paragraphs = append(slide.Paragraphs, paragraph.String())
				}
			}
		}
	}

	return slide
}

// Helper functions

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s: %w", name, os.ErrNotExist)
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

// resolveRelativePath resolves a relationship target against the source part directory.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}
