package geometry

import (
	"errors"
	"testing"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
		ok   bool
	}{
		{
			name: "partial overlap",
			a:    Rect{X: 0, Y: 0, W: 100, H: 100},
			b:    Rect{X: 50, Y: 50, W: 100, H: 100},
			want: Rect{X: 50, Y: 50, W: 50, H: 50},
			ok:   true,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, W: 100, H: 100},
			b:    Rect{X: 10, Y: 20, W: 30, H: 40},
			want: Rect{X: 10, Y: 20, W: 30, H: 40},
			ok:   true,
		},
		{
			name: "negative origin overlap",
			a:    Rect{X: -50, Y: -50, W: 100, H: 100},
			b:    Rect{X: 0, Y: 0, W: 100, H: 100},
			want: Rect{X: 0, Y: 0, W: 50, H: 50},
			ok:   true,
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 100, Y: 100, W: 10, H: 10},
			ok:   false,
		},
		{
			name: "edge touching vertically",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 10, Y: 0, W: 10, H: 10},
			ok:   false,
		},
		{
			name: "edge touching horizontally",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 0, Y: 10, W: 10, H: 10},
			ok:   false,
		},
		{
			name: "corner touching",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 10, Y: 10, W: 10, H: 10},
			ok:   false,
		},
		{
			name: "empty operand",
			a:    Rect{X: 5, Y: 5, W: 0, H: 10},
			b:    Rect{X: 0, Y: 0, W: 100, H: 100},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("a.Intersect(b) = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
			// Intersection is commutative.
			rev, revOK := tt.b.Intersect(tt.a)
			if rev != got || revOK != ok {
				t.Fatalf("b.Intersect(a) = %+v, %v; want %+v, %v", rev, revOK, got, ok)
			}
		})
	}
}

func TestIntersectSelf(t *testing.T) {
	r := Rect{X: -3, Y: 7, W: 42, H: 17}
	got, ok := r.Intersect(r)
	if !ok || got != r {
		t.Fatalf("r.Intersect(r) = %+v, %v; want %+v, true", got, ok, r)
	}
}

func TestRootRectIntersect(t *testing.T) {
	a := RootRect{Rect{X: 0, Y: 0, W: 1920, H: 1080}}
	b := RootRect{Rect{X: 1920, Y: 0, W: 1280, H: 1024}}
	if _, ok := a.Intersect(b); ok {
		t.Fatal("edge-adjacent monitors must not intersect")
	}
}

func TestRelativeTo(t *testing.T) {
	sel := RootRect{Rect{X: 150, Y: 220, W: 40, H: 30}}
	win := RootRect{Rect{X: 100, Y: 200, W: 640, H: 480}}
	got := sel.RelativeTo(win)
	want := LocalRect{Rect{X: 50, Y: 20, W: 40, H: 30}}
	if got != want {
		t.Fatalf("RelativeTo = %+v; want %+v", got, want)
	}
}

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		in   string
		want RootRect
	}{
		{"100x50+10+20", RootRect{Rect{X: 10, Y: 20, W: 100, H: 50}}},
		{"100x50-10-20", RootRect{Rect{X: -10, Y: -20, W: 100, H: 50}}},
		{"1920x1080+0+0", RootRect{Rect{X: 0, Y: 0, W: 1920, H: 1080}}},
		{"640x480", RootRect{Rect{X: 0, Y: 0, W: 640, H: 480}}},
		{"0x0+5+5", RootRect{Rect{X: 5, Y: 5, W: 0, H: 0}}},
	}
	for _, tt := range tests {
		got, err := ParseGeometry(tt.in)
		if err != nil {
			t.Fatalf("ParseGeometry(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseGeometry(%q) = %+v; want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseGeometryInvalid(t *testing.T) {
	inputs := []string{
		"",
		"bogus",
		"100x",
		"x50",
		"100x50+10",   // single offset is not part of the grammar
		"-100x50+0+0", // negative width
		"100x50+10+20junk",
		"100 x 50",
	}
	for _, in := range inputs {
		if _, err := ParseGeometry(in); !errors.Is(err, ErrInvalidGeometry) {
			t.Fatalf("ParseGeometry(%q) = %v; want ErrInvalidGeometry", in, err)
		}
	}
}
