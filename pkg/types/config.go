package types

// Default values for stamp geometry, in points.
const (
	DefaultMargin       = 15
	DefaultCornerSize   = 50
	DefaultBannerHeight = 30
	DefaultAltSize      = 50
)

// StampConfig holds the shared geometry defaults applied to jobs that do not
// set their own values.
type StampConfig struct {
	// Margin is the inset from the nearest page edge(s), in points (default 15).
	Margin int `json:"margin" yaml:"margin"`

	// CornerSize is the target size for corner logos, in points (default 50).
	CornerSize int `json:"corner_size" yaml:"corner_size"`

	// BannerHeight is the footer banner height, in points (default 30).
	BannerHeight int `json:"banner_height" yaml:"banner_height"`

	// AltSize is the target size for alternating logos, in points (default 50).
	AltSize int `json:"alt_size" yaml:"alt_size"`
}

// Normalized returns a copy with zero values replaced by defaults.
func (c StampConfig) Normalized() StampConfig {
	if c.Margin == 0 {
		c.Margin = DefaultMargin
	}
	if c.CornerSize == 0 {
		c.CornerSize = DefaultCornerSize
	}
	if c.BannerHeight == 0 {
		c.BannerHeight = DefaultBannerHeight
	}
	if c.AltSize == 0 {
		c.AltSize = DefaultAltSize
	}
	return c
}

// BatchConfig holds settings for batch stamping runs.
type BatchConfig struct {
	// InputDir is the directory scanned for *.pdf inputs.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory stamped copies are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// LedgerPath is the SQLite ledger recording completed runs. Empty
	// disables the ledger and reruns stamp every input again.
	LedgerPath string `json:"ledger_path,omitempty" yaml:"ledger_path,omitempty"`
}
