package parser

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImage indicates embedded media that cannot be decoded,
// such as EMF or WMF vector pictures.
var ErrUnsupportedImage = errors.New("unsupported image format")

// ImageFileName returns the file name an image anchored at cell is saved as.
func ImageFileName(cell string) string {
	return fmt.Sprintf("img_%s.png", cell)
}

// SaveImage decodes the picture, scales it down so its longest side is at
// most maxSize pixels (0 keeps the original size) and writes it to dir as
// PNG. It returns the written file name.
func SaveImage(pic models.Picture, dir string, maxSize int) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(pic.Data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return "", fmt.Errorf("%s: %w", pic.Media, ErrUnsupportedImage)
		}
		return "", fmt.Errorf("decode %s: %w", pic.Media, err)
	}

	img = fitImage(img, maxSize)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	name := ImageFileName(pic.Cell)
	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return name, nil
}

// fitImage scales img down to fit a maxSize square, keeping its aspect ratio.
func fitImage(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}

	nw, nh := maxSize, maxSize
	if w >= h {
		nh = h * maxSize / w
	} else {
		nw = w * maxSize / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
