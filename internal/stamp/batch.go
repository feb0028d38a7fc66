// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stamp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfstamp/internal/ledger"
	"github.com/pdiddy/pdfstamp/pkg/types"
)

// BatchResult holds the outcome of a batch stamping run.
type BatchResult struct {
	Stamped int
	Skipped int
	Failed  int
}

// Total returns the total number of jobs processed.
func (r BatchResult) Total() int {
	return r.Stamped + r.Skipped + r.Failed
}

// HasFailures reports whether any jobs failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// RunBatch processes jobs in order, printing per-job status and returning a
// summary. It continues after individual failures. With a ledger, inputs
// whose modification time is unchanged since their last run are skipped.
func RunBatch(jobs []types.Job, led *ledger.Ledger, w io.Writer) BatchResult {
	var result BatchResult
	for _, job := range jobs {
		info, err := os.Stat(job.Input)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
			result.Failed++
			continue
		}
		modTime := ledger.ModTime(info)

		if led != nil {
			seen, err := led.Seen(job.Input, modTime)
			if err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
				result.Failed++
				continue
			}
			if seen {
				fmt.Fprintf(w, "skipped: %s (unchanged)\n", job.Input)
				result.Skipped++
				continue
			}
		}

		if _, err := Run(job, w); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
			result.Failed++
			continue
		}
		result.Stamped++

		if led != nil {
			if err := led.Record(job.Input, modTime, job.Output, job.Modes()); err != nil {
				fmt.Fprintf(w, "  warning: ledger update failed: %v\n", err)
			}
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d stamped, %d skipped, %d failed (total: %d)\n",
		result.Stamped, result.Skipped, result.Failed, result.Total())
	return result
}

// DirJobs builds one job per *.pdf file in cfg.InputDir, cloning the
// placement requests from template. Outputs keep the input file name inside
// cfg.OutputDir; when the two directories coincide, a -stamped suffix keeps
// inputs and outputs apart.
func DirJobs(cfg types.BatchConfig, template types.Job) ([]types.Job, error) {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = cfg.InputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	sameDir := filepath.Clean(outDir) == filepath.Clean(cfg.InputDir)

	var jobs []types.Job
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		outName := name
		if sameDir {
			stem := strings.TrimSuffix(name, filepath.Ext(name))
			outName = stem + "-stamped.pdf"
		}
		job := template
		job.Input = filepath.Join(cfg.InputDir, name)
		job.Output = filepath.Join(outDir, outName)
		jobs = append(jobs, job)
	}
	return jobs, nil
}
