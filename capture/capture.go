// Package capture turns a capture request into a single RGBA buffer: it
// resolves the target rectangle, pulls the raw framebuffer from a Source,
// converts it to RGBA and masks the off-screen regions of multi-monitor root
// captures.
package capture

import (
	"errors"
	"fmt"
	"image"
	"log"

	"xshot/geometry"
)

// Window identifies an X window on the Source's display.
type Window uint32

// Pipeline failure kinds. Callers match on them with errors.Is; every
// returned error also carries a human-readable message.
var (
	ErrWindowLookupFailed     = errors.New("window lookup failed")
	ErrEmptySelection         = errors.New("selection does not overlap the window")
	ErrCaptureFailed          = errors.New("failed to get image from the display")
	ErrUnsupportedPixelFormat = errors.New("unsupported pixel format, only 24/32-bit (A)RGB is supported")
)

// RawImage is a captured framebuffer still in the display's native layout.
type RawImage interface {
	// ToRGBA converts the raw data to an RGBA8 buffer. Depths or layouts it
	// cannot decode are reported as ErrUnsupportedPixelFormat.
	ToRGBA() (*image.RGBA, error)
}

// Source is the display collaborator the pipeline captures from.
type Source interface {
	// RootWindow returns the default root window.
	RootWindow() Window
	// WindowRect resolves a window to its root-relative rectangle.
	WindowRect(win Window) (geometry.RootRect, error)
	// Image pulls the raw framebuffer for a window-relative rectangle of win.
	Image(win Window, sel geometry.LocalRect) (RawImage, error)
	// Screens enumerates the physical monitor rectangles within the virtual
	// root, in root-relative coordinates.
	Screens() ([]geometry.RootRect, error)
}

// Request describes a single capture. A zero Window selects the default root;
// an empty Geometry selects the whole target window.
type Request struct {
	Window   Window
	Geometry string
}

// Run executes the capture stages in order: resolve target, resolve
// selection, capture, convert, mask. Masking applies only when the captured
// window is the default root itself. A failure to enumerate screens skips
// masking with a warning instead of aborting, since an unmasked capture is
// still a useful result.
func Run(src Source, req Request) (*image.RGBA, error) {
	root := src.RootWindow()
	win := req.Window
	if win == 0 {
		win = root
	}

	winRect, err := src.WindowRect(win)
	if err != nil {
		return nil, fmt.Errorf("%w: window %d: %v", ErrWindowLookupFailed, win, err)
	}

	// The selection stays root-relative until the capture call, which wants
	// window-relative coordinates.
	sel := winRect
	if req.Geometry != "" {
		g, err := geometry.ParseGeometry(req.Geometry)
		if err != nil {
			return nil, err
		}
		var ok bool
		if sel, ok = g.Intersect(winRect); !ok {
			return nil, fmt.Errorf("%w: geometry %q, window %dx%d at %d,%d",
				ErrEmptySelection, req.Geometry, winRect.W, winRect.H, winRect.X, winRect.Y)
		}
	}

	raw, err := src.Image(win, sel.RelativeTo(winRect))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	img, err := raw.ToRGBA()
	if err != nil {
		return nil, err
	}

	// Only a capture of the root itself can contain framebuffer memory that
	// no monitor displays, so masking is keyed on the window handle, never on
	// the selection's shape.
	if win == root {
		screens, err := src.Screens()
		if err != nil {
			log.Printf("Failed to enumerate screens, not masking: %v", err)
		} else {
			img = MaskOffscreen(img, sel, screens)
		}
	}

	return img, nil
}
