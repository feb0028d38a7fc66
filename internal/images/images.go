// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images loads logo and banner files for overlay drawing. It reads
// intrinsic pixel dimensions from the image header and normalizes formats
// the PDF writer cannot embed (BMP, TIFF, WebP) to PNG in memory.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode reports an image file that exists but cannot be decoded.
var ErrDecode = errors.New("unsupported or corrupt image")

// Logo is a loaded image ready for embedding.
type Logo struct {
	// Path is the source file path, also used as the registration key for
	// the drawing layer.
	Path string

	// Name is the base file name, for progress output.
	Name string

	// Width and Height are the intrinsic pixel dimensions.
	Width  int
	Height int

	// Type is the embeddable image type: PNG, JPEG, or GIF.
	Type string

	// Data holds the embeddable bytes. For PNG, JPEG, and GIF inputs this
	// is the raw file content; other formats are transcoded to PNG.
	Data []byte
}

// embeddable maps decoded format names to the types the PDF writer accepts
// directly.
var embeddable = map[string]string{
	"png":  "PNG",
	"jpeg": "JPEG",
	"gif":  "GIF",
}

// Load reads an image file. A missing file surfaces the fs.ErrNotExist from
// the read; undecodable content wraps ErrDecode.
func Load(path string) (*Logo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w: %v", filepath.Base(path), ErrDecode, err)
	}

	logo := &Logo{
		Path:   path,
		Name:   filepath.Base(path),
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	if tp, ok := embeddable[format]; ok {
		logo.Type = tp
		logo.Data = data
		return logo, nil
	}

	// BMP, TIFF, WebP: decode fully and re-encode as PNG.
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w: %v", logo.Name, ErrDecode, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("converting %s (%s) to PNG: %w", logo.Name, strings.ToUpper(format), err)
	}
	logo.Type = "PNG"
	logo.Data = buf.Bytes()
	return logo, nil
}

// String describes the logo the way progress output reports it.
func (l *Logo) String() string {
	return fmt.Sprintf("%s (%dx%d px)", l.Name, l.Width, l.Height)
}
