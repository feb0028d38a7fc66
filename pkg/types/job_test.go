// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"
)

func TestJobValidate(t *testing.T) {
	corner := &CornerRequest{Image: "logo.png"}
	alt := &AlternatingRequest{Left: "l.png", Right: "r.png"}
	banner := &BannerRequest{Image: "banner.png"}

	tests := []struct {
		name    string
		job     Job
		wantErr error
	}{
		{"corner only", Job{Input: "a", Output: "b", Corner: corner}, nil},
		{"banner only", Job{Input: "a", Output: "b", Banner: banner}, nil},
		{"alternating plus banner", Job{Input: "a", Output: "b", Alternating: alt, Banner: banner}, nil},
		{"no mode", Job{Input: "a", Output: "b"}, ErrNoMode},
		{"corner and alternating", Job{Input: "a", Output: "b", Corner: corner, Alternating: alt}, ErrExclusiveMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := (Job{Corner: corner}).Validate(); err == nil {
		t.Error("missing paths should fail validation")
	}
}

func TestJobModes(t *testing.T) {
	corner := &CornerRequest{Image: "logo.png"}
	alt := &AlternatingRequest{Left: "l.png", Right: "r.png"}
	banner := &BannerRequest{Image: "banner.png"}

	tests := []struct {
		job  Job
		want string
	}{
		{Job{Corner: corner}, "corner"},
		{Job{Alternating: alt}, "alternating"},
		{Job{Banner: banner}, "banner"},
		{Job{Corner: corner, Banner: banner}, "corner+banner"},
		{Job{Alternating: alt, Banner: banner}, "alternating+banner"},
	}
	for _, tt := range tests {
		if got := tt.job.Modes(); got != tt.want {
			t.Errorf("Modes() = %q, want %q", got, tt.want)
		}
	}
}

func TestWithDefaultsDoesNotShareRequests(t *testing.T) {
	orig := Job{Corner: &CornerRequest{Image: "logo.png"}}
	filled := orig.WithDefaults(StampConfig{})

	*filled.Corner.Size = 99
	if orig.Corner.Size != nil {
		t.Error("WithDefaults must copy the corner request, not alias it")
	}
}

func TestWithDefaultsKeepsExplicitZero(t *testing.T) {
	job := Job{
		Margin: Int(0),
		Corner: &CornerRequest{Image: "logo.png", Size: Int(0)},
		Banner: &BannerRequest{Image: "banner.png", Height: Int(0)},
	}.WithDefaults(StampConfig{})

	if *job.Margin != 0 {
		t.Errorf("explicit margin 0 became %d", *job.Margin)
	}
	if *job.Corner.Size != 0 {
		t.Errorf("explicit size 0 became %d", *job.Corner.Size)
	}
	if *job.Banner.Height != 0 {
		t.Errorf("explicit height 0 became %d", *job.Banner.Height)
	}
}

func TestWithDefaultsFillsUnset(t *testing.T) {
	job := Job{Corner: &CornerRequest{Image: "logo.png"}}.WithDefaults(StampConfig{})

	if job.Margin == nil || *job.Margin != DefaultMargin {
		t.Errorf("margin = %v, want %d", job.Margin, DefaultMargin)
	}
	if job.Corner.Size == nil || *job.Corner.Size != DefaultCornerSize {
		t.Errorf("size = %v, want %d", job.Corner.Size, DefaultCornerSize)
	}
}

func TestStampConfigNormalized(t *testing.T) {
	got := StampConfig{}.Normalized()
	want := StampConfig{
		Margin:       DefaultMargin,
		CornerSize:   DefaultCornerSize,
		BannerHeight: DefaultBannerHeight,
		AltSize:      DefaultAltSize,
	}
	if got != want {
		t.Errorf("Normalized() = %+v, want %+v", got, want)
	}

	// Explicit values survive.
	got = StampConfig{Margin: 3}.Normalized()
	if got.Margin != 3 {
		t.Errorf("margin = %d, want 3", got.Margin)
	}
}
