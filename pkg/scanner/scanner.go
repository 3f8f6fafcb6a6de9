package scanner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/driftlens/driftlens/pkg/aggregate"
	"github.com/driftlens/driftlens/pkg/extract"
	"github.com/driftlens/driftlens/pkg/util"
)

// Scanner runs the scan pipeline: discover, extract in parallel, merge.
type Scanner struct {
	extractors []extract.Extractor
	cache      *util.FileCache
	log        *slog.Logger
}

// NewScanner builds a scanner with the default extractor set plus any
// extra extractors, such as the tree-sitter component detector. The
// cache is optional; without one files are read directly.
func NewScanner(cache *util.FileCache, logger *slog.Logger, extra ...extract.Extractor) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		extractors: append(extract.DefaultExtractors(), extra...),
		cache:      cache,
		log:        logger,
	}
}

// Run executes a full scan of rootDir. The merged signal set is
// deduplicated by id through the aggregator after all extraction work
// has completed.
func (s *Scanner) Run(rootDir string, cfg ScanConfig) (*ScanResult, error) {
	totalStart := time.Now()
	stats := ScanStats{}

	discoveryStart := time.Now()
	files, err := DiscoverFiles(rootDir, cfg)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}
	stats.FilesDiscovered = len(files)
	stats.DiscoveryTimeMs = time.Since(discoveryStart).Milliseconds()

	s.log.Info("discovery complete", "files", len(files), "ms", stats.DiscoveryTimeMs)

	if len(files) == 0 {
		stats.TotalTimeMs = time.Since(totalStart).Milliseconds()
		return &ScanResult{Stats: stats}, nil
	}

	extractionStart := time.Now()
	results, failed := ExtractAll(files, s.extractors, s.cache, cfg.Workers, s.log)
	stats.FilesExtracted = len(results)
	stats.FilesFailed = failed
	stats.ExtractionTimeMs = time.Since(extractionStart).Milliseconds()

	agg := aggregate.New()
	for _, r := range results {
		agg.AddEmitter(r.Path, aggregate.Signals(r.Signals))
	}
	merged := agg.AllSignals()
	aggregate.SortSignals(merged)
	stats.SignalsExtracted = len(merged)

	s.log.Info("extraction complete",
		"extracted", len(results), "failed", failed,
		"signals", len(merged), "ms", stats.ExtractionTimeMs)

	stats.TotalTimeMs = time.Since(totalStart).Milliseconds()

	return &ScanResult{
		Signals: merged,
		Files:   results,
		Stats:   stats,
	}, nil
}
