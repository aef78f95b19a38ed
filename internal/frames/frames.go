// Package frames converts image files to and from skeleton frames.
//
// Gray intensity becomes the grid value on a 0..255 scale. PNG and TIFF
// are supported; the format is chosen from the file extension on save and
// sniffed from the content on load.
package frames

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/katalvlaran/skeletrack/grid"
)

// ErrUnsupportedFormat is returned for an unknown file extension on save.
var ErrUnsupportedFormat = errors.New("frames: unsupported image format")

// Decode reads a PNG or TIFF image into a grid.
func Decode(r io.Reader) (*grid.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("frames: decode: %w", err)
	}
	return FromImage(img)
}

// FromImage converts img to a grid of gray intensities.
func FromImage(img image.Image) (*grid.Grid, error) {
	b := img.Bounds()
	g, err := grid.New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			g.Set(grid.Pixel{X: x - b.Min.X, Y: y - b.Min.Y}, float64(gray.Y)/257)
		}
	}
	return g, nil
}

// ToImage renders g as an 8-bit gray image, clamping values to 0..255.
func ToImage(g *grid.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	g.Scan(func(p grid.Pixel, v float64) {
		img.SetGray(p.X, p.Y, color.Gray{Y: uint8(math.Max(0, math.Min(255, math.Round(v))))})
	})
	return img
}

// Load reads one frame from path.
func Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// LoadStack reads one frame per path, in order, as frames 1..N.
func LoadStack(paths ...string) (*grid.Stack, error) {
	fs := make([]*grid.Grid, 0, len(paths))
	for _, p := range paths {
		g, err := Load(p)
		if err != nil {
			return nil, err
		}
		fs = append(fs, g)
	}
	return grid.NewStack(fs...)
}

// Save writes g to path as PNG (.png) or TIFF (.tif, .tiff).
func Save(path string, g *grid.Grid) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".tif" && ext != ".tiff" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img := ToImage(g)
	if ext == ".png" {
		return png.Encode(f, img)
	}
	return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
}
