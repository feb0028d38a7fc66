// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package placement

import "fmt"

// Mode tags a placement request variant.
type Mode int

const (
	// ModeCorner places one logo in the same corner of every page.
	ModeCorner Mode = iota
	// ModeBanner places a full-width banner at the bottom of every page.
	ModeBanner
	// ModeAlternating places Left on odd pages (bottom-left) and Right on
	// even pages (bottom-right), 1-based.
	ModeAlternating
)

// Logo identifies an image by key together with its intrinsic pixel
// dimensions. The key is resolved to actual image data by the drawing layer.
type Logo struct {
	Key string
	PxW int
	PxH int
}

// Request is one placement pass over the document. Exactly the fields for
// its Mode are read.
type Request struct {
	Mode Mode

	Corner Corner // ModeCorner
	Logo   Logo   // ModeCorner, ModeBanner

	Left  Logo // ModeAlternating
	Right Logo // ModeAlternating

	Size   float64 // ModeCorner, ModeAlternating: target size in points
	Height float64 // ModeBanner: banner height in points
	Margin float64
}

// Placement is one image drawn into one rectangle on one page.
type Placement struct {
	Page int // 1-based
	Logo string
	Rect Rect
}

// Plan computes every placement for the given pages and requests. It is a
// pure function: requests are expanded in order, each pass visiting pages in
// ascending order, and the result is drawn serially afterward against the
// single open document.
func Plan(pages []PageSize, reqs []Request) ([]Placement, error) {
	var out []Placement
	for _, req := range reqs {
		pls, err := planRequest(pages, req)
		if err != nil {
			return nil, err
		}
		out = append(out, pls...)
	}
	return out, nil
}

func planRequest(pages []PageSize, req Request) ([]Placement, error) {
	switch req.Mode {
	case ModeCorner:
		return planCorner(pages, req)
	case ModeBanner:
		return planBanner(pages, req), nil
	case ModeAlternating:
		return planAlternating(pages, req)
	default:
		return nil, fmt.Errorf("unknown placement mode %d", req.Mode)
	}
}

func planCorner(pages []PageSize, req Request) ([]Placement, error) {
	w, h, err := ScaleToFit(req.Logo.PxW, req.Logo.PxH, req.Size)
	if err != nil {
		return nil, fmt.Errorf("corner logo %s: %w", req.Logo.Key, err)
	}
	out := make([]Placement, 0, len(pages))
	for i, page := range pages {
		rect, err := CornerRect(page, req.Corner, w, h, req.Margin)
		if err != nil {
			return nil, err
		}
		out = append(out, Placement{Page: i + 1, Logo: req.Logo.Key, Rect: rect})
	}
	return out, nil
}

func planBanner(pages []PageSize, req Request) []Placement {
	out := make([]Placement, 0, len(pages))
	for i, page := range pages {
		rect := FooterRect(page, req.Height, req.Margin)
		out = append(out, Placement{Page: i + 1, Logo: req.Logo.Key, Rect: rect})
	}
	return out
}

// planAlternating scales each side with its own aspect ratio, so left and
// right placements may differ in size even with the same target.
func planAlternating(pages []PageSize, req Request) ([]Placement, error) {
	leftW, leftH, err := ScaleToFit(req.Left.PxW, req.Left.PxH, req.Size)
	if err != nil {
		return nil, fmt.Errorf("alternating left logo %s: %w", req.Left.Key, err)
	}
	rightW, rightH, err := ScaleToFit(req.Right.PxW, req.Right.PxH, req.Size)
	if err != nil {
		return nil, fmt.Errorf("alternating right logo %s: %w", req.Right.Key, err)
	}

	out := make([]Placement, 0, len(pages))
	for i, page := range pages {
		pageNum := i + 1
		var (
			logo    Logo
			rect    Rect
			rectErr error
		)
		if pageNum%2 == 1 {
			logo = req.Left
			rect, rectErr = CornerRect(page, BottomLeft, leftW, leftH, req.Margin)
		} else {
			logo = req.Right
			rect, rectErr = CornerRect(page, BottomRight, rightW, rightH, req.Margin)
		}
		if rectErr != nil {
			return nil, rectErr
		}
		out = append(out, Placement{Page: pageNum, Logo: logo.Key, Rect: rect})
	}
	return out, nil
}
