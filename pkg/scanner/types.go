// Package scanner orchestrates the scan pipeline: file discovery,
// parallel signal extraction, and the post-merge aggregation barrier.
package scanner

import "github.com/driftlens/driftlens/pkg/signal"

// DefaultInclude covers the source files the extractors understand.
var DefaultInclude = []string{
	"**/*.css",
	"**/*.scss",
	"**/*.js",
	"**/*.jsx",
	"**/*.ts",
	"**/*.tsx",
	"**/*.vue",
	"**/*.svelte",
}

// DefaultExclude skips build output and dependencies.
var DefaultExclude = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/.next/**",
	"**/coverage/**",
	"**/*.min.*",
}

// ScanConfig controls discovery and extraction.
type ScanConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	// Workers overrides the computed pool size when positive.
	Workers int `yaml:"workers"`
}

// DefaultScanConfig returns the stock include/exclude sets.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Include: DefaultInclude,
		Exclude: DefaultExclude,
	}
}

// FileResult is one file's extraction output.
type FileResult struct {
	Path    string             `json:"path"`
	Signals []signal.RawSignal `json:"signals"`
}

// ScanStats reports pipeline timings and counts.
type ScanStats struct {
	FilesDiscovered  int   `json:"filesDiscovered"`
	FilesExtracted   int   `json:"filesExtracted"`
	FilesFailed      int   `json:"filesFailed"`
	SignalsExtracted int   `json:"signalsExtracted"`
	DiscoveryTimeMs  int64 `json:"discoveryTimeMs"`
	ExtractionTimeMs int64 `json:"extractionTimeMs"`
	TotalTimeMs      int64 `json:"totalTimeMs"`
}

// ScanResult is a completed scan: the merged deduplicated signal set plus
// per-file results and stats.
type ScanResult struct {
	Signals []signal.RawSignal `json:"signals"`
	Files   []FileResult       `json:"files"`
	Stats   ScanStats          `json:"stats"`
}
