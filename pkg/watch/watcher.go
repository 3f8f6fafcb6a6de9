// Package watch re-extracts signals for files as they change, feeding
// incremental updates to watch-mode consumers.
package watch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/driftlens/driftlens/pkg/extract"
	"github.com/driftlens/driftlens/pkg/scanner"
	"github.com/driftlens/driftlens/pkg/util"
)

// DefaultDebounceMs groups rapid change bursts into one re-extraction.
const DefaultDebounceMs = 200

// Event is one incremental update: a re-extracted file or a removal.
type Event struct {
	Path    string
	Removed bool
	Result  *scanner.FileResult
}

// Options configures a Watcher.
type Options struct {
	DebounceMs int
	Scan       scanner.ScanConfig
}

// Watcher watches a directory tree and re-extracts changed files.
// Changes within the debounce window collapse into one extraction.
type Watcher struct {
	watcher    *fsnotify.Watcher
	extractors []extract.Extractor
	cache      *util.FileCache
	onChange   func(Event)
	log        *slog.Logger
	opts       Options
	root       string

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// New builds a watcher delivering events to onChange. The cache, when
// present, is invalidated before each re-extraction.
func New(opts Options, cache *util.FileCache, onChange func(Event), logger *slog.Logger) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watch: onChange callback is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if opts.DebounceMs <= 0 {
		opts.DebounceMs = DefaultDebounceMs
	}
	if len(opts.Scan.Include) == 0 && len(opts.Scan.Exclude) == 0 {
		opts.Scan = scanner.DefaultScanConfig()
	}

	return &Watcher{
		watcher:        fsw,
		extractors:     extract.DefaultExtractors(),
		cache:          cache,
		onChange:       onChange,
		log:            logger,
		opts:           opts,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start begins watching rootPath and its subdirectories.
func (w *Watcher) Start(rootPath string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.mu.Unlock()

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("resolve watch root: %w", err)
	}
	w.root = absRoot

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Continue on error.
		}
		if !info.IsDir() {
			return nil
		}
		if w.excluded(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.log.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to setup watches: %w", err)
	}

	w.log.Info("file watcher started", "root", absRoot)
	go w.eventLoop()
	return nil
}

// Stop tears the watcher down. Idempotent.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	for _, timer := range w.debounceTimers {
		timer.Stop()
	}
	w.debounceTimers = make(map[string]*time.Timer)
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.log.Info("file watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	if w.excluded(path) || !w.included(path) {
		return
	}

	w.log.Debug("file event", "op", event.Op.String(), "file", path)

	switch {
	case event.Op&fsnotify.Write == fsnotify.Write,
		event.Op&fsnotify.Create == fsnotify.Create:
		w.debounceExtract(path)
	case event.Op&fsnotify.Remove == fsnotify.Remove,
		event.Op&fsnotify.Rename == fsnotify.Rename:
		w.removeFile(path)
	}
}

// debounceExtract schedules a re-extraction; repeated events for the same
// file within the window collapse to the last one.
func (w *Watcher) debounceExtract(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists {
		timer.Stop()
	}
	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.opts.DebounceMs)*time.Millisecond,
		func() {
			w.extractFile(path)
			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()
		},
	)
}

func (w *Watcher) extractFile(path string) {
	if w.cache != nil {
		w.cache.Invalidate(path)
	}

	content, err := w.readFile(path)
	if err != nil {
		w.log.Warn("failed to read changed file", "file", path, "error", err)
		return
	}

	result := scanner.FileResult{
		Path:    path,
		Signals: extract.ExtractAll(w.extractors, content, path),
	}
	w.onChange(Event{Path: path, Result: &result})
}

func (w *Watcher) removeFile(path string) {
	if w.cache != nil {
		w.cache.Invalidate(path)
	}
	w.onChange(Event{Path: path, Removed: true})
}

func (w *Watcher) readFile(path string) (string, error) {
	if w.cache != nil {
		return w.cache.Read(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (w *Watcher) relPath(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (w *Watcher) excluded(path string) bool {
	rel := w.relPath(path)
	for _, pattern := range w.opts.Scan.Exclude {
		if ok, _ := doublestar.PathMatch(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (w *Watcher) included(path string) bool {
	if len(w.opts.Scan.Include) == 0 {
		return true
	}
	rel := w.relPath(path)
	for _, pattern := range w.opts.Scan.Include {
		if ok, _ := doublestar.PathMatch(pattern, rel); ok {
			return true
		}
	}
	return false
}
