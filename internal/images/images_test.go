// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// writePNG writes a w x h PNG fixture and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "logo.png", 120, 80)

	logo, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if logo.Width != 120 || logo.Height != 80 {
		t.Errorf("dimensions = %dx%d, want 120x80", logo.Width, logo.Height)
	}
	if logo.Type != "PNG" {
		t.Errorf("type = %q, want PNG", logo.Type)
	}
	if logo.Name != "logo.png" {
		t.Errorf("name = %q", logo.Name)
	}

	// PNG input keeps the raw file bytes.
	raw, _ := os.ReadFile(path)
	if len(logo.Data) != len(raw) {
		t.Errorf("data length %d, want raw file length %d", len(logo.Data), len(raw))
	}
}

func TestLoadBMPTranscodes(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	path := filepath.Join(dir, "logo.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	logo, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if logo.Type != "PNG" {
		t.Errorf("type = %q, want PNG after transcoding", logo.Type)
	}
	if logo.Width != 30 || logo.Height != 20 {
		t.Errorf("dimensions = %dx%d, want 30x20", logo.Width, logo.Height)
	}

	// Transcoded bytes must decode as PNG with the same dimensions.
	cfg, format, err := image.DecodeConfig(bytes.NewReader(logo.Data))
	if err != nil || format != "png" {
		t.Fatalf("decoding transcoded data: format=%q err=%v", format, err)
	}
	if cfg.Width != 30 || cfg.Height != 20 {
		t.Errorf("transcoded dimensions = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}
}
