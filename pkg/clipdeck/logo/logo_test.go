package logo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePassthrough(t *testing.T) {
	data := encodePNG(t, solid(40, 20))

	img, err := Decode(data, DefaultMaxPixels)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.MIME != "image/png" {
		t.Errorf("Expected image/png, got %s", img.MIME)
	}
	if img.Width != 40 || img.Height != 20 {
		t.Errorf("Expected 40x20, got %dx%d", img.Width, img.Height)
	}
	if !bytes.Equal(img.Data, data) {
		t.Errorf("Expected PNG bytes to be kept as is")
	}
}

func TestDecodeGIF(t *testing.T) {
	var buf bytes.Buffer
	if err := gif.Encode(&buf, solid(8, 8), nil); err != nil {
		t.Fatalf("Failed to encode GIF: %v", err)
	}

	img, err := Decode(buf.Bytes(), DefaultMaxPixels)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.MIME != "image/gif" {
		t.Errorf("Expected image/gif, got %s", img.MIME)
	}
}

func TestDecodeBMPConvertsToPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, solid(16, 8)); err != nil {
		t.Fatalf("Failed to encode BMP: %v", err)
	}

	img, err := Decode(buf.Bytes(), DefaultMaxPixels)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.MIME != "image/png" {
		t.Errorf("Expected image/png, got %s", img.MIME)
	}
	if img.Width != 16 || img.Height != 8 {
		t.Errorf("Expected 16x8, got %dx%d", img.Width, img.Height)
	}
	if _, err := png.Decode(bytes.NewReader(img.Data)); err != nil {
		t.Errorf("Converted data is not a PNG: %v", err)
	}
}

func TestDecodeDownscales(t *testing.T) {
	data := encodePNG(t, solid(300, 600))

	img, err := Decode(data, 100)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width != 50 || img.Height != 100 {
		t.Errorf("Expected 50x100, got %dx%d", img.Width, img.Height)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("Downscaled data is not a PNG: %v", err)
	}
	if cfg.Width != 50 || cfg.Height != 100 {
		t.Errorf("Encoded size %dx%d, expected 50x100", cfg.Width, cfg.Height)
	}
}

func TestDecodeNoLimit(t *testing.T) {
	data := encodePNG(t, solid(10, 700))

	img, err := Decode(data, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Height != 700 {
		t.Errorf("Expected original height, got %d", img.Height)
	}
}

func TestDecodeUnsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("definitely not an image")},
		{"pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")},
		{"truncated png", []byte("\x89PNG\r\n\x1a\n")},
	}

	for _, tt := range tests {
		_, err := Decode(tt.data, DefaultMaxPixels)
		if !errors.Is(err, ErrUnsupportedImage) {
			t.Errorf("Decode(%s) error = %v, expected ErrUnsupportedImage", tt.name, err)
		}
	}
}
