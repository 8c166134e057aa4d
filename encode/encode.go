// Package encode serializes a captured RGBA buffer to the supported output
// formats.
package encode

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/chai2010/webp"
)

// Format selects the output encoding. Its string value doubles as the file
// extension.
type Format string

const (
	PNG  Format = "png"
	PAM  Format = "pam"
	WebP Format = "webp"
)

// ParseFormat maps a user-supplied format name to a Format,
// case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case PNG, PAM, WebP:
		return f, nil
	}
	return "", fmt.Errorf("invalid image format %q (supported: png, pam, webp)", name)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// Encode writes img to w in the given format. PNG and PAM are lossless by
// nature; WebP is written in lossless mode.
func Encode(w io.Writer, img *image.RGBA, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case PAM:
		return encodePAM(w, img)
	case WebP:
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	}
	return fmt.Errorf("invalid image format %q", f)
}

// encodePAM writes the P7 "portable arbitrary map" variant of PNM with an
// RGB_ALPHA tuple, one raw RGBA byte quad per pixel in row order.
func encodePAM(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	_, err := fmt.Fprintf(w, "P7\nWIDTH %d\nHEIGHT %d\nDEPTH 4\nMAXVAL 255\nTUPLTYPE RGB_ALPHA\nENDHDR\n",
		b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	rowLen := b.Dx() * 4
	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := img.PixOffset(b.Min.X, y)
		if _, err := w.Write(img.Pix[o : o+rowLen]); err != nil {
			return err
		}
	}
	return nil
}
