// Package xdisplay is the X server side of a capture: connection handling,
// window geometry resolution, raw ZPixmap capture and monitor enumeration.
// It implements capture.Source.
package xdisplay

import (
	"fmt"

	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/kbinani/screenshot"

	"xshot/capture"
	"xshot/geometry"
)

// AllPlanes requests every plane of a drawable from GetImage.
const AllPlanes = ^uint32(0)

// Display is an open connection to an X server.
type Display struct {
	xu *xgbutil.XUtil
}

// Open connects to the named X display; an empty name falls back to $DISPLAY.
func Open(display string) (*Display, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to open display: %w", err)
	}
	return &Display{xu: xu}, nil
}

// Close releases the server connection.
func (d *Display) Close() {
	d.xu.Conn().Close()
}

// RootWindow returns the default root window of the display.
func (d *Display) RootWindow() capture.Window {
	return capture.Window(d.xu.RootWin())
}

// ActiveWindow resolves the window manager's _NET_ACTIVE_WINDOW hint, backing
// the CLI's "-i active" shorthand.
func (d *Display) ActiveWindow() (capture.Window, error) {
	win, err := ewmh.ActiveWindowGet(d.xu)
	if err != nil {
		return 0, fmt.Errorf("unable to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("window manager reports no active window")
	}
	return capture.Window(win), nil
}

// WindowRect resolves win to its root-relative rectangle. GetGeometry
// positions a window against its parent, so the origin is additionally
// translated through the root window.
func (d *Display) WindowRect(win capture.Window) (geometry.RootRect, error) {
	conn := d.xu.Conn()
	geom, err := xproto.GetGeometry(conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return geometry.RootRect{}, fmt.Errorf("unable to get window geometry: %w", err)
	}
	trans, err := xproto.TranslateCoordinates(conn, xproto.Window(win), geom.Root, 0, 0).Reply()
	if err != nil {
		return geometry.RootRect{}, fmt.Errorf("unable to translate window coordinates: %w", err)
	}
	return geometry.RootRect{Rect: geometry.Rect{
		X: int(trans.DstX),
		Y: int(trans.DstY),
		W: int(geom.Width),
		H: int(geom.Height),
	}}, nil
}

// Image pulls the raw framebuffer for the window-relative rectangle sel of
// win as a ZPixmap.
func (d *Display) Image(win capture.Window, sel geometry.LocalRect) (capture.RawImage, error) {
	if sel.Empty() {
		return nil, fmt.Errorf("empty capture rectangle")
	}
	reply, err := xproto.GetImage(d.xu.Conn(), xproto.ImageFormatZPixmap,
		xproto.Drawable(win), int16(sel.X), int16(sel.Y),
		uint16(sel.W), uint16(sel.H), AllPlanes).Reply()
	if err != nil {
		return nil, fmt.Errorf("unable to get image: %w", err)
	}
	return newZImage(reply, xproto.Setup(d.xu.Conn()), sel.W, sel.H), nil
}

// Screens enumerates the physical monitor rectangles inside the virtual root.
// Xinerama is the authoritative source; when the extension is missing or
// inactive, the per-display bounds reported by the screenshot library are
// used instead. Both failing is reported upward, where it is treated as a
// soft condition (capture proceeds unmasked).
func (d *Display) Screens() ([]geometry.RootRect, error) {
	screens, xerr := d.xineramaScreens()
	if xerr == nil {
		return screens, nil
	}
	if screens = displayBounds(); len(screens) > 0 {
		return screens, nil
	}
	return nil, fmt.Errorf("unable to enumerate screens: %v", xerr)
}

func (d *Display) xineramaScreens() ([]geometry.RootRect, error) {
	conn := d.xu.Conn()
	if err := xinerama.Init(conn); err != nil {
		return nil, err
	}
	active, err := xinerama.IsActive(conn).Reply()
	if err != nil {
		return nil, err
	}
	if active.State == 0 {
		return nil, fmt.Errorf("xinerama is not active")
	}
	reply, err := xinerama.QueryScreens(conn).Reply()
	if err != nil {
		return nil, err
	}
	screens := make([]geometry.RootRect, 0, len(reply.ScreenInfo))
	for _, si := range reply.ScreenInfo {
		screens = append(screens, geometry.RootRect{Rect: geometry.Rect{
			X: int(si.XOrg),
			Y: int(si.YOrg),
			W: int(si.Width),
			H: int(si.Height),
		}})
	}
	return screens, nil
}

func displayBounds() []geometry.RootRect {
	n := screenshot.NumActiveDisplays()
	screens := make([]geometry.RootRect, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		screens = append(screens, geometry.RootRect{Rect: geometry.Rect{
			X: b.Min.X,
			Y: b.Min.Y,
			W: b.Dx(),
			H: b.Dy(),
		}})
	}
	return screens
}
