package capture

import (
	"image"

	"xshot/geometry"
)

const bytesPerPixel = 4

// MaskOffscreen blanks every pixel of img that no physical screen covers.
// sel is the root-relative rectangle img was captured from and screens are
// the monitor rectangles, also root-relative. A virtual root with a
// non-rectangular combined layout contains framebuffer memory for regions no
// monitor displays; its content is undefined and must not leak into the
// output.
//
// With at most one overlapping screen there is nothing to mask and img is
// returned unchanged; this also covers an empty screen list. Otherwise a
// fresh fully transparent buffer is allocated and the per-screen sub-regions
// of img are copied into it.
func MaskOffscreen(img *image.RGBA, sel geometry.RootRect, screens []geometry.RootRect) *image.RGBA {
	overlapping := make([]geometry.RootRect, 0, len(screens))
	for _, s := range screens {
		if ov, ok := s.Intersect(sel); ok {
			overlapping = append(overlapping, ov)
		}
	}
	if len(overlapping) <= 1 {
		return img
	}

	masked := image.NewRGBA(image.Rect(0, 0, sel.W, sel.H))
	for _, ov := range overlapping {
		copyRect(masked, img, ov.RelativeTo(sel))
	}
	return masked
}

// copyRect copies the sub rectangle of src into dst at the same offset, one
// row at a time. sub must lie within the bounds of both images.
func copyRect(dst, src *image.RGBA, sub geometry.LocalRect) {
	rowLen := sub.W * bytesPerPixel
	for y := sub.Y; y < sub.Y+sub.H; y++ {
		si := src.PixOffset(sub.X, y)
		di := dst.PixOffset(sub.X, y)
		copy(dst.Pix[di:di+rowLen], src.Pix[si:si+rowLen])
	}
}
