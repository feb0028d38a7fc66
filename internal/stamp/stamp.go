// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stamp runs stamping jobs: it loads the images, inspects the input
// document, plans every placement, and hands the plan to the document layer
// for drawing. Progress is reported line by line to an io.Writer.
package stamp

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/pdfstamp/internal/document"
	"github.com/pdiddy/pdfstamp/internal/images"
	"github.com/pdiddy/pdfstamp/internal/placement"
	"github.com/pdiddy/pdfstamp/pkg/types"
)

// Result summarizes a completed stamping run.
type Result struct {
	Pages      int
	Placements int
	OutputSize int64
}

// Run executes a single job. The input document is opened once, every
// placement is computed up front, and the output is saved exactly once at
// the end; any failure aborts before the output file is written.
func Run(job types.Job, w io.Writer) (Result, error) {
	job = job.WithDefaults(types.StampConfig{})
	if err := job.Validate(); err != nil {
		return Result{}, err
	}

	info, err := document.Inspect(job.Input)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "opening %s (%d pages)\n", job.Input, info.Pages)

	logos := make(map[string]*images.Logo)
	loadLogo := func(path string) (placement.Logo, error) {
		if l, ok := logos[path]; ok {
			return placement.Logo{Key: path, PxW: l.Width, PxH: l.Height}, nil
		}
		l, err := images.Load(path)
		if err != nil {
			return placement.Logo{}, err
		}
		fmt.Fprintf(w, "  loaded %s\n", l)
		logos[path] = l
		return placement.Logo{Key: path, PxW: l.Width, PxH: l.Height}, nil
	}

	var reqs []placement.Request

	// Corner and alternating are mutually exclusive; the footer banner pass
	// always runs after whichever of them is active.
	if job.Corner != nil {
		corner, err := placement.ParseCorner(job.Corner.Position)
		if err != nil {
			return Result{}, err
		}
		logo, err := loadLogo(job.Corner.Image)
		if err != nil {
			return Result{}, err
		}
		fmt.Fprintf(w, "corner mode: %s, %d pt\n", corner, *job.Corner.Size)
		reqs = append(reqs, placement.Request{
			Mode:   placement.ModeCorner,
			Corner: corner,
			Logo:   logo,
			Size:   float64(*job.Corner.Size),
			Margin: float64(*job.Margin),
		})
	}

	if job.Alternating != nil {
		left, err := loadLogo(job.Alternating.Left)
		if err != nil {
			return Result{}, err
		}
		right, err := loadLogo(job.Alternating.Right)
		if err != nil {
			return Result{}, err
		}
		fmt.Fprintf(w, "alternating mode: odd pages %s (bottom-left), even pages %s (bottom-right), %d pt\n",
			logos[job.Alternating.Left].Name, logos[job.Alternating.Right].Name, *job.Alternating.Size)
		reqs = append(reqs, placement.Request{
			Mode:   placement.ModeAlternating,
			Left:   left,
			Right:  right,
			Size:   float64(*job.Alternating.Size),
			Margin: float64(*job.Margin),
		})
	}

	if job.Banner != nil {
		logo, err := loadLogo(job.Banner.Image)
		if err != nil {
			return Result{}, err
		}
		fmt.Fprintf(w, "footer banner: %d pt high\n", *job.Banner.Height)
		reqs = append(reqs, placement.Request{
			Mode:   placement.ModeBanner,
			Logo:   logo,
			Height: float64(*job.Banner.Height),
			Margin: float64(*job.Margin),
		})
	}

	placements, err := placement.Plan(info.Dims, reqs)
	if err != nil {
		return Result{}, err
	}

	if err := document.Stamp(job.Input, job.Output, logos, placements, info.Pages, w); err != nil {
		return Result{}, err
	}

	outInfo, err := os.Stat(job.Output)
	if err != nil {
		return Result{}, fmt.Errorf("checking output: %w", err)
	}
	fmt.Fprintf(w, "saved %s (%.2f MB, %d pages)\n",
		job.Output, float64(outInfo.Size())/(1024*1024), info.Pages)

	return Result{
		Pages:      info.Pages,
		Placements: len(placements),
		OutputSize: outInfo.Size(),
	}, nil
}
