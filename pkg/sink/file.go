// Package sink delivers rendered images: files, terminals, and pixel
// displays.
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// WritePPM writes img as a binary PPM (P6): a "P6\n<w> <h>\n255\n" header
// followed by width*height RGB triples in row-major order. Alpha is dropped.
func WritePPM(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := bw.Write([]byte{c.R, c.G, c.B}); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// SavePPM saves img as a binary PPM file.
func SavePPM(path string, img *image.RGBA) error {
	return saveWith(path, img, WritePPM)
}

// SavePNG saves img as a PNG file.
func SavePNG(path string, img *image.RGBA) error {
	return saveWith(path, img, func(w io.Writer, img *image.RGBA) error {
		return png.Encode(w, img)
	})
}

// Save picks the encoder from the file extension (.ppm or .png).
func Save(path string, img *image.RGBA) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return SavePPM(path, img)
	case ".png":
		return SavePNG(path, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func saveWith(path string, img *image.RGBA, encode func(io.Writer, *image.RGBA) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
