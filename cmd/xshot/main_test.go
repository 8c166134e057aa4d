package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"xshot/encode"
)

func TestParseWindowID(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"1234", 1234},
		{"0x2a00007", 0x2a00007},
	}
	for _, tt := range tests {
		got, err := parseWindowID(tt.in)
		if err != nil {
			t.Fatalf("parseWindowID(%q) failed: %v", tt.in, err)
		}
		if uint32(got) != tt.want {
			t.Fatalf("parseWindowID(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseWindowIDInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12.5", "-7", "0"} {
		if _, err := parseWindowID(in); err == nil {
			t.Fatalf("parseWindowID(%q) succeeded; want error", in)
		}
	}
}

func TestTooManyArguments(t *testing.T) {
	// Argument validation fails before the pipeline touches the display.
	err := run([]string{"out.png", "extra.png"})
	if err == nil {
		t.Fatal("expected an error for two positional arguments")
	}
	if !strings.Contains(err.Error(), "arg") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnknownFlag(t *testing.T) {
	if err := run([]string{"--bogus"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestWriteOutputFile(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writeOutput(img, encode.PNG, path); err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output failed: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("decoded %dx%d; want 3x2", b.Dx(), b.Dy())
	}
}

func TestWriteOutputCreateFailure(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	err := writeOutput(img, encode.PNG, filepath.Join(t.TempDir(), "missing", "shot.png"))
	if err == nil {
		t.Fatal("expected an error when the output directory does not exist")
	}
}
