// Package geometry provides the rectangle arithmetic used to resolve capture
// selections: intersection, X11 geometry-string parsing, and explicit
// translation between root-relative and window-relative coordinate spaces.
package geometry

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidGeometry is returned by ParseGeometry for input that does not
// match the accepted WxH[+X+Y] grammar.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Rect is an axis-aligned rectangle. W and H are never negative; a zero W or
// H denotes an empty area. Rects are immutable values; operations return new
// Rects. The coordinate space a Rect lives in is carried by the RootRect and
// LocalRect wrappers so that the two spaces cannot be mixed up.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of r and o, which must be expressed in the
// same coordinate space. ok is false when the rectangles are disjoint or only
// touch along an edge (zero-area overlap).
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2-x1 <= 0 || y2-y1 <= 0 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, true
}

// RootRect is a Rect positioned relative to the virtual root window's origin,
// the top-left corner of the desktop spanning all monitors.
type RootRect struct {
	Rect
}

// LocalRect is a Rect positioned relative to a particular window's own
// origin. Raw framebuffer captures are always requested in this space.
type LocalRect struct {
	Rect
}

// Intersect returns the overlap of two root-relative rectangles.
func (r RootRect) Intersect(o RootRect) (RootRect, bool) {
	out, ok := r.Rect.Intersect(o.Rect)
	return RootRect{out}, ok
}

// RelativeTo rebases r against origin's position, yielding the same area
// expressed in origin's window-relative space. This is the only way to move
// between the two coordinate spaces.
func (r RootRect) RelativeTo(origin RootRect) LocalRect {
	return LocalRect{Rect{X: r.X - origin.X, Y: r.Y - origin.Y, W: r.W, H: r.H}}
}

var geometryRE = regexp.MustCompile(`^(\d+)x(\d+)(?:([+-]\d+)([+-]\d+))?$`)

// ParseGeometry parses an X11-style geometry string. Accepted forms are
// "WxH+X+Y" (either offset sign may be "+" or "-") and the shorthand "WxH",
// which defaults the offset to +0+0. W and H must be non-negative integers.
// The parsed rectangle is root-relative by convention.
func ParseGeometry(s string) (RootRect, error) {
	m := geometryRE.FindStringSubmatch(s)
	if m == nil {
		return RootRect{}, fmt.Errorf("%w: %q", ErrInvalidGeometry, s)
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return RootRect{}, fmt.Errorf("%w: width %q: %v", ErrInvalidGeometry, m[1], err)
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return RootRect{}, fmt.Errorf("%w: height %q: %v", ErrInvalidGeometry, m[2], err)
	}
	var x, y int
	if m[3] != "" {
		if x, err = strconv.Atoi(m[3]); err != nil {
			return RootRect{}, fmt.Errorf("%w: x offset %q: %v", ErrInvalidGeometry, m[3], err)
		}
		if y, err = strconv.Atoi(m[4]); err != nil {
			return RootRect{}, fmt.Errorf("%w: y offset %q: %v", ErrInvalidGeometry, m[4], err)
		}
	}
	return RootRect{Rect{X: x, Y: y, W: w, H: h}}, nil
}
