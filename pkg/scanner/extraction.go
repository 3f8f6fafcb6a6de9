package scanner

import (
	"log/slog"
	"os"
	"sync"

	"github.com/driftlens/driftlens/pkg/extract"
	"github.com/driftlens/driftlens/pkg/util"
)

// ExtractAll runs the extractor set over each file in parallel. Extraction
// is pure per file, so workers share nothing; results merge at a single
// barrier in the caller. Per-file failures are logged and counted, never
// fatal: one unreadable file must not abort a scan.
func ExtractAll(
	files []string,
	extractors []extract.Extractor,
	cache *util.FileCache,
	workers int,
	logger *slog.Logger,
) ([]FileResult, int) {
	if len(files) == 0 {
		return nil, 0
	}
	if logger == nil {
		logger = slog.Default()
	}

	numWorkers := util.GetOptimalPoolSizeWithOverride(workers)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	paths := make(chan string, numWorkers*2)
	type resultOrError struct {
		result FileResult
		err    error
		file   string
	}
	results := make(chan resultOrError, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				content, err := readFile(cache, path)
				if err != nil {
					results <- resultOrError{err: err, file: path}
					continue
				}
				results <- resultOrError{
					result: FileResult{
						Path:    path,
						Signals: extract.ExtractAll(extractors, content, path),
					},
				}
			}
		}()
	}

	go func() {
		for _, f := range files {
			paths <- f
		}
		close(paths)
		wg.Wait()
		close(results)
	}()

	var extracted []FileResult
	failed := 0
	for r := range results {
		if r.err != nil {
			logger.Warn("extraction failed", "file", r.file, "error", r.err)
			failed++
			continue
		}
		extracted = append(extracted, r.result)
	}

	return extracted, failed
}

func readFile(cache *util.FileCache, path string) (string, error) {
	if cache == nil {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return cache.Read(path)
}
