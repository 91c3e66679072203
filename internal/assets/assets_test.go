package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

var testPalette = PlaceholderPalette{
	Fills: []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}},
	Ink:   color.RGBA{0, 0, 0, 255},
}

func TestAtlasFrames(t *testing.T) {
	a, err := NewAtlas(32, 32, 12, 8)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 96 {
		t.Errorf("len %d, want 96", a.Len())
	}

	tests := []struct {
		index int
		want  image.Rectangle
		ok    bool
	}{
		{0, image.Rect(0, 0, 32, 32), true},
		{5, image.Rect(160, 0, 192, 32), true},
		{12, image.Rect(0, 32, 32, 64), true},
		{95, image.Rect(352, 224, 384, 256), true},
		{96, image.Rectangle{}, false},
		{-1, image.Rectangle{}, false},
	}
	for _, tt := range tests {
		got, ok := a.Frame(tt.index)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Frame(%d) = %v, %v; want %v, %v", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewAtlasRejectsEmptyGrid(t *testing.T) {
	if _, err := NewAtlas(32, 0, 12, 8); !errors.Is(err, ErrBadGrid) {
		t.Errorf("err = %v, want ErrBadGrid", err)
	}
}

func TestPlaceholder(t *testing.T) {
	a, _ := NewAtlas(32, 32, 12, 8)
	img := Placeholder(a, testPalette)

	if img.Bounds().Size() != a.Size() {
		t.Fatalf("size %v, want %v", img.Bounds().Size(), a.Size())
	}
	// Corner pixel inside the inset of frame 0 (player group) and frame 4 (enemy group).
	if got := img.RGBAAt(3, 28); got != testPalette.Fills[0] {
		t.Errorf("frame 0 fill %v", got)
	}
	if got := img.RGBAAt(4*32+3, 28); got != testPalette.Fills[1] {
		t.Errorf("frame 4 fill %v", got)
	}
	if got := img.RGBAAt(4*32+3, 3*32+28); got != testPalette.Fills[2] {
		t.Errorf("frame 40 fill %v", got)
	}
	// Nose marker at the top centre.
	if got := img.RGBAAt(16, 1); got != testPalette.Ink {
		t.Errorf("nose pixel %v", got)
	}
}

func TestManagerFallsBackToPlaceholder(t *testing.T) {
	a, _ := NewAtlas(32, 32, 12, 8)
	m := NewManager(t.TempDir(), testPalette, log.New(io.Discard))

	sheet, err := m.LoadSheet("character.png", a)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !sheet.Placeholder {
		t.Errorf("expected placeholder")
	}
	if again, _ := m.LoadSheet("character.png", a); again != sheet {
		t.Errorf("sheet not cached")
	}

	m.Cleanup()
	if fresh, _ := m.LoadSheet("character.png", a); fresh == sheet {
		t.Errorf("cleanup kept the sheet")
	}
}

func TestManagerLoadsPNG(t *testing.T) {
	dir := t.TempDir()
	a, _ := NewAtlas(4, 4, 2, 2)
	writePNG(t, filepath.Join(dir, "ok.png"), 8, 8)
	writePNG(t, filepath.Join(dir, "small.png"), 4, 8)
	if err := os.WriteFile(filepath.Join(dir, "junk.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir, testPalette, log.New(io.Discard))

	sheet, err := m.LoadSheet("ok.png", a)
	if err != nil || sheet.Placeholder {
		t.Fatalf("ok.png: %v (placeholder=%v)", err, sheet != nil && sheet.Placeholder)
	}
	if _, err := m.LoadSheet("small.png", a); !errors.Is(err, ErrBadGrid) {
		t.Errorf("small.png: err = %v, want ErrBadGrid", err)
	}
	if _, err := m.LoadSheet("junk.png", a); err == nil {
		t.Errorf("junk.png: expected decode error")
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}
