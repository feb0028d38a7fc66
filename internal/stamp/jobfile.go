// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stamp

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfstamp/pkg/types"
)

// JobFile is the on-disk representation of a batch of stamping jobs. A
// defaults block fills geometry values the individual jobs leave unset.
type JobFile struct {
	Defaults types.StampConfig `yaml:"defaults"`
	Jobs     []types.Job       `yaml:"jobs"`
}

// ReadJobFile loads a jobs file from disk.
func ReadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing jobs file %s: %w", path, err)
	}
	return &jf, nil
}

// WriteJobFile saves a jobs file to disk.
func WriteJobFile(path string, jf *JobFile) error {
	data, err := yaml.Marshal(jf)
	if err != nil {
		return fmt.Errorf("marshaling jobs file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ResolvedJobs returns the jobs with the defaults block applied.
func (jf *JobFile) ResolvedJobs() []types.Job {
	jobs := make([]types.Job, len(jf.Jobs))
	for i, job := range jf.Jobs {
		jobs[i] = job.WithDefaults(jf.Defaults)
	}
	return jobs
}
