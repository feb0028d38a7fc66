// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the serializable job and configuration records
// shared by the CLI, the stamping pipeline, and batch job files.
package types

import (
	"errors"
	"fmt"
)

// CornerRequest places one logo in the same corner of every page.
type CornerRequest struct {
	// Image is the path to the logo file.
	Image string `json:"image" yaml:"image"`

	// Position is one of top-left, top-right, bottom-left, bottom-right
	// (default bottom-right).
	Position string `json:"position,omitempty" yaml:"position,omitempty"`

	// Size is the target logo size in points; the longer image side is
	// scaled to it. Nil means unset (default 50).
	Size *int `json:"size,omitempty" yaml:"size,omitempty"`
}

// BannerRequest places a full-width banner at the bottom of every page.
type BannerRequest struct {
	// Image is the path to the banner file.
	Image string `json:"image" yaml:"image"`

	// Height is the banner height in points. Nil means unset (default 30).
	Height *int `json:"height,omitempty" yaml:"height,omitempty"`
}

// AlternatingRequest places Left on odd pages (bottom-left corner) and
// Right on even pages (bottom-right corner), 1-based.
type AlternatingRequest struct {
	// Left is the logo for odd pages.
	Left string `json:"left" yaml:"left"`

	// Right is the logo for even pages.
	Right string `json:"right" yaml:"right"`

	// Size is the target logo size in points. Nil means unset (default 50).
	Size *int `json:"size,omitempty" yaml:"size,omitempty"`
}

// Job describes one stamping run: an input PDF, an output path, and the
// placement requests to apply. Corner and Alternating are mutually
// exclusive; Banner combines with either and is applied after it.
type Job struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`

	Corner      *CornerRequest      `json:"corner,omitempty" yaml:"corner,omitempty"`
	Banner      *BannerRequest      `json:"footer_banner,omitempty" yaml:"footer_banner,omitempty"`
	Alternating *AlternatingRequest `json:"alternating,omitempty" yaml:"alternating,omitempty"`

	// Margin is the inset from the page edge in points. Nil means unset
	// (default 15); an explicit 0 places images flush with the edge.
	Margin *int `json:"margin,omitempty" yaml:"margin,omitempty"`
}

// Int returns a pointer to v, for the optional geometry fields.
func Int(v int) *int { return &v }

// Validation errors for Job.
var (
	ErrNoMode        = errors.New("no placement mode selected: need corner, footer-banner, or alternating")
	ErrExclusiveMode = errors.New("corner and alternating modes are mutually exclusive")
)

// Validate checks the mode composition rule: at least one request, and not
// both corner and alternating.
func (j Job) Validate() error {
	if j.Corner == nil && j.Banner == nil && j.Alternating == nil {
		return ErrNoMode
	}
	if j.Corner != nil && j.Alternating != nil {
		return ErrExclusiveMode
	}
	if j.Input == "" || j.Output == "" {
		return fmt.Errorf("job needs both input and output paths")
	}
	return nil
}

// Modes returns a short label of the active placement modes, for ledger
// records and progress output.
func (j Job) Modes() string {
	s := ""
	switch {
	case j.Corner != nil:
		s = "corner"
	case j.Alternating != nil:
		s = "alternating"
	}
	if j.Banner != nil {
		if s != "" {
			s += "+banner"
		} else {
			s = "banner"
		}
	}
	return s
}

// WithDefaults returns a copy of the job with unset (nil) geometry values
// filled from cfg. Explicit values survive, including zeros.
func (j Job) WithDefaults(cfg StampConfig) Job {
	cfg = cfg.Normalized()
	if j.Margin == nil {
		j.Margin = Int(cfg.Margin)
	}
	if j.Corner != nil {
		c := *j.Corner
		if c.Size == nil {
			c.Size = Int(cfg.CornerSize)
		}
		if c.Position == "" {
			c.Position = "bottom-right"
		}
		j.Corner = &c
	}
	if j.Banner != nil {
		b := *j.Banner
		if b.Height == nil {
			b.Height = Int(cfg.BannerHeight)
		}
		j.Banner = &b
	}
	if j.Alternating != nil {
		a := *j.Alternating
		if a.Size == nil {
			a.Size = Int(cfg.AltSize)
		}
		j.Alternating = &a
	}
	return j
}
