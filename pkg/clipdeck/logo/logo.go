// Package logo prepares uploaded images for embedding in a deck.
package logo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/ukaji3/clipdeck-go/pkg/clipdeck/models"
)

// ErrUnsupportedImage indicates the logo is not a readable raster image.
var ErrUnsupportedImage = errors.New("unsupported image")

// DefaultMaxPixels caps the height of embedded logos. A logo is shown one
// inch tall, so 512 pixels is well above any screen or print density.
const DefaultMaxPixels = 512

// passthrough lists the formats embedded without re-encoding.
var passthrough = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// reencoded lists the formats converted to PNG before embedding.
var reencoded = map[string]bool{
	"image/bmp":  true,
	"image/webp": true,
}

// Decode validates data and returns an image ready to embed.
// PNG, JPEG and GIF are kept as is; BMP and WebP are converted to PNG.
// Images taller than maxPixels are downscaled (maxPixels <= 0 disables it).
func Decode(data []byte, maxPixels int) (*models.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUnsupportedImage)
	}

	mime := mimetype.Detect(data).String()
	if !passthrough[mime] && !reencoded[mime] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mime)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrUnsupportedImage)
	}

	tooTall := maxPixels > 0 && cfg.Height > maxPixels
	if passthrough[mime] && !tooTall {
		return &models.Image{Data: data, MIME: mime, Width: cfg.Width, Height: cfg.Height}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if tooTall {
		img = scaleToHeight(img, maxPixels)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}

	bounds := img.Bounds()
	return &models.Image{
		Data:   buf.Bytes(),
		MIME:   "image/png",
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// scaleToHeight resizes img to height h, keeping the aspect ratio.
func scaleToHeight(img image.Image, h int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx() * h / bounds.Dy()
	if w < 1 {
		w = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
