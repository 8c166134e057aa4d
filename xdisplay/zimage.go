package xdisplay

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"

	"xshot/capture"
)

// ZImage is a raw ZPixmap framebuffer as returned by the X server, together
// with the layout information needed to decode it.
type ZImage struct {
	Data         []byte
	Width        int
	Height       int
	Depth        byte
	BitsPerPixel byte
	ScanlinePad  byte
	MSBFirst     bool
}

func newZImage(reply *xproto.GetImageReply, setup *xproto.SetupInfo, w, h int) *ZImage {
	zi := &ZImage{
		Data:     reply.Data,
		Width:    w,
		Height:   h,
		Depth:    reply.Depth,
		MSBFirst: setup.ImageByteOrder == xproto.ImageOrderMSBFirst,
	}
	for _, f := range setup.PixmapFormats {
		if f.Depth == reply.Depth {
			zi.BitsPerPixel = f.BitsPerPixel
			zi.ScanlinePad = f.ScanlinePad
			break
		}
	}
	return zi
}

// stride is the padded byte length of one scanline.
func (zi *ZImage) stride() int {
	pad := int(zi.ScanlinePad)
	if pad == 0 {
		pad = int(zi.BitsPerPixel)
	}
	bits := zi.Width * int(zi.BitsPerPixel)
	return (bits + pad - 1) / pad * pad / 8
}

// ToRGBA decodes the ZPixmap into an RGBA8 buffer. Only the common 32
// bits-per-pixel layouts are handled: depth 24 (BGRX, forced opaque) and
// depth 32 (BGRA, alpha preserved), in either server byte order. Anything
// else is reported as capture.ErrUnsupportedPixelFormat.
func (zi *ZImage) ToRGBA() (*image.RGBA, error) {
	if zi.BitsPerPixel != 32 || (zi.Depth != 24 && zi.Depth != 32) {
		return nil, fmt.Errorf("%w: got depth %d at %d bits per pixel",
			capture.ErrUnsupportedPixelFormat, zi.Depth, zi.BitsPerPixel)
	}
	stride := zi.stride()
	if len(zi.Data) < stride*zi.Height {
		return nil, fmt.Errorf("%w: %d bytes of pixel data for %dx%d",
			capture.ErrUnsupportedPixelFormat, len(zi.Data), zi.Width, zi.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, zi.Width, zi.Height))
	for y := 0; y < zi.Height; y++ {
		row := zi.Data[y*stride : y*stride+zi.Width*4]
		for x := 0; x < zi.Width; x++ {
			p := row[x*4 : x*4+4 : x*4+4]
			var r, g, b, a byte
			if zi.MSBFirst {
				a, r, g, b = p[0], p[1], p[2], p[3]
			} else {
				b, g, r, a = p[0], p[1], p[2], p[3]
			}
			if zi.Depth == 24 {
				a = 0xff
			}
			o := img.PixOffset(x, y)
			img.Pix[o+0] = r
			img.Pix[o+1] = g
			img.Pix[o+2] = b
			img.Pix[o+3] = a
		}
	}
	return img, nil
}
