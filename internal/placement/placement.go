// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package placement computes target rectangles for images overlaid on PDF
// pages. All coordinates are in page points with the origin at the top-left
// corner and y growing downward, matching the drawing layer.
package placement

import (
	"errors"
	"fmt"
)

// Rect is an axis-aligned region on a page.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// PageSize holds the dimensions of one page, in points.
type PageSize struct {
	W, H float64
}

// Corner names a fixed page corner.
type Corner string

const (
	BottomRight Corner = "bottom-right"
	BottomLeft  Corner = "bottom-left"
	TopRight    Corner = "top-right"
	TopLeft     Corner = "top-left"
)

// corners lists the valid corner names in the order they are reported in
// errors.
var corners = []Corner{BottomRight, BottomLeft, TopRight, TopLeft}

// ErrEmptyImage reports an image with a zero or negative dimension, which
// has no aspect ratio to preserve.
var ErrEmptyImage = errors.New("image has zero width or height")

// ParseCorner validates a corner name. Unknown names fail with an error
// listing the valid corners.
func ParseCorner(s string) (Corner, error) {
	c := Corner(s)
	for _, valid := range corners {
		if c == valid {
			return c, nil
		}
	}
	return "", unknownCornerError(s)
}

func unknownCornerError(s string) error {
	return fmt.Errorf("unknown position %q, valid: %s, %s, %s, %s",
		s, corners[0], corners[1], corners[2], corners[3])
}

// ScaleToFit scales an image of pxW x pxH pixels so that its longer side
// equals target points, preserving the aspect ratio. Square images scale to
// target x target.
func ScaleToFit(pxW, pxH int, target float64) (w, h float64, err error) {
	if pxW <= 0 || pxH <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrEmptyImage, pxW, pxH)
	}
	ratio := float64(pxW) / float64(pxH)
	if ratio >= 1 {
		return target, target / ratio, nil
	}
	return target * ratio, target, nil
}

// CornerRect returns the rectangle for an imgW x imgH point image placed in
// the given corner of a page, inset by margin on the touching edges.
func CornerRect(page PageSize, c Corner, imgW, imgH, margin float64) (Rect, error) {
	r := Rect{W: imgW, H: imgH}
	switch c {
	case TopLeft:
		r.X, r.Y = margin, margin
	case TopRight:
		r.X, r.Y = page.W-imgW-margin, margin
	case BottomLeft:
		r.X, r.Y = margin, page.H-imgH-margin
	case BottomRight:
		r.X, r.Y = page.W-imgW-margin, page.H-imgH-margin
	default:
		return Rect{}, unknownCornerError(string(c))
	}
	return r, nil
}

// FooterRect returns the full-width banner rectangle at the bottom of a
// page: margin in from the left and right edges, margin up from the bottom.
// The banner is stretched to the rectangle, so its aspect ratio is not
// preserved.
func FooterRect(page PageSize, bannerH, margin float64) Rect {
	return Rect{
		X: margin,
		Y: page.H - bannerH - margin,
		W: page.W - 2*margin,
		H: bannerH,
	}
}
