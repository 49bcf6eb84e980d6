package inspect

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const presentationXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:sldIdLst>
    <p:sldId id="257" r:id="rId3"/>
    <p:sldId id="256" r:id="rId2"/>
  </p:sldIdLst>
</p:presentation>`

const presentationRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide2.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="/ppt/slides/slide1.xml"/>
</Relationships>`

const titleSlideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree>
    <p:sp><p:txBody><a:p><a:r><a:t>Relatório </a:t></a:r><a:r><a:t>de Notícias</a:t></a:r></a:p></p:txBody></p:sp>
    <p:sp><p:txBody><a:p><a:r><a:t>  </a:t></a:r></a:p><a:p><a:r><a:t>Gerado automaticamente via API</a:t></a:r></a:p></p:txBody></p:sp>
    <p:pic><p:blipFill/></p:pic>
  </p:spTree></p:cSld>
</p:sld>`

const newsSlideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree>
    <p:sp/>
    <p:sp><p:txBody><a:p><a:r><a:t>NOTÍCIA</a:t></a:r></a:p></p:txBody></p:sp>
  </p:spTree></p:cSld>
</p:sld>`

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func testDeck(t *testing.T) []byte {
	return buildZip(t, map[string]string{
		"ppt/presentation.xml":            presentationXML,
		"ppt/_rels/presentation.xml.rels": presentationRels,
		"ppt/slides/slide1.xml":           titleSlideXML,
		"ppt/slides/slide2.xml":           newsSlideXML,
	})
}

func TestRead(t *testing.T) {
	summary, err := Read(testDeck(t))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := &Summary{Slides: []Slide{
		{
			Index:      1,
			Part:       "ppt/slides/slide1.xml",
			Paragraphs: []string{"Relatório de Notícias", "Gerado automaticamente via API"},
			Shapes:     2,
			Pictures:   1,
		},
		{
			Index:      2,
			Part:       "ppt/slides/slide2.xml",
			Paragraphs: []string{"NOTÍCIA"},
			Shapes:     2,
		},
	}}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryText(t *testing.T) {
	summary, err := Read(testDeck(t))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := []string{"Relatório de Notícias", "Gerado automaticamente via API", "NOTÍCIA"}
	if diff := cmp.Diff(want, summary.Text()); diff != "" {
		t.Errorf("Text mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, testDeck(t), 0o644); err != nil {
		t.Fatalf("Failed to write deck: %v", err)
	}

	summary, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(summary.Slides) != 2 {
		t.Errorf("Expected 2 slides, got %d", len(summary.Slides))
	}
}

func TestReadNotPresentation(t *testing.T) {
	data := buildZip(t, map[string]string{"xl/workbook.xml": "<workbook/>"})

	_, err := Read(data)
	if !errors.Is(err, ErrNotPresentation) {
		t.Errorf("Expected ErrNotPresentation, got %v", err)
	}
}

func TestReadMissingSlide(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/presentation.xml":            presentationXML,
		"ppt/_rels/presentation.xml.rels": presentationRels,
		"ppt/slides/slide1.xml":           titleSlideXML,
	})

	_, err := Read(data)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a missing part error, got %v", err)
	}
}

func TestReadNotZip(t *testing.T) {
	if _, err := Read([]byte("plain text")); err == nil {
		t.Error("Expected an error for non-zip input")
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"slides/slide1.xml", "ppt", "ppt/slides/slide1.xml"},
		{"/ppt/slides/slide3.xml", "ppt", "ppt/slides/slide3.xml"},
		{"../media/image1.png", "ppt/slides", "ppt/media/image1.png"},
	}

	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, tt.baseDir); got != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q", tt.target, tt.baseDir, got, tt.expected)
		}
	}
}
