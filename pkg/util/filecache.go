package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxCachedFiles bounds open mappings; eviction unmaps the least
// recently read file.
const DefaultMaxCachedFiles = 1024

// FileCache reads file contents through memory mappings, keeping the most
// recently read files mapped. Watch mode re-reads the same files on every
// change burst, which is where the cache pays off.
//
// Thread-safe.
type FileCache struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *mappedFile]
	log   *slog.Logger

	hits   int64
	misses int64
}

type mappedFile struct {
	data     mmap.MMap
	file     *os.File
	fallback bool // data is heap memory, not a mapping
}

func (m *mappedFile) close(log *slog.Logger) {
	if m.data != nil && !m.fallback {
		if err := m.data.Unmap(); err != nil {
			log.Warn("unmap failed", "error", err)
		}
	}
	if m.file != nil {
		m.file.Close()
	}
}

// FileCacheStats reports cache effectiveness.
type FileCacheStats struct {
	Cached int
	Hits   int64
	Misses int64
}

// NewFileCache builds a cache holding at most maxFiles mappings. Zero or
// negative maxFiles takes the default.
func NewFileCache(maxFiles int, logger *slog.Logger) (*FileCache, error) {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxCachedFiles
	}
	if logger == nil {
		logger = slog.Default()
	}
	fc := &FileCache{log: logger}
	cache, err := lru.NewWithEvict[string, *mappedFile](maxFiles, func(_ string, mf *mappedFile) {
		mf.close(logger)
	})
	if err != nil {
		return nil, fmt.Errorf("file cache: %w", err)
	}
	fc.cache = cache
	return fc, nil
}

// Read returns the file content. The returned string is a copy, valid
// after eviction.
func (fc *FileCache) Read(path string) (string, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if mf, ok := fc.cache.Get(path); ok {
		fc.hits++
		return string(mf.data), nil
	}
	fc.misses++

	mf, err := mapFile(path)
	if err != nil {
		return "", err
	}
	fc.cache.Add(path, mf)
	return string(mf.data), nil
}

// Invalidate drops a path from the cache, unmapping it. Used by the
// watcher when a file changes.
func (fc *FileCache) Invalidate(path string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.cache.Remove(path)
}

// Stats returns current cache counters.
func (fc *FileCache) Stats() FileCacheStats {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return FileCacheStats{
		Cached: fc.cache.Len(),
		Hits:   fc.hits,
		Misses: fc.misses,
	}
}

// Close unmaps everything.
func (fc *FileCache) Close() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.cache.Purge()
}

// mapFile maps path read-only, falling back to a plain read when mmap
// fails (empty files cannot be mapped at all).
func mapFile(path string) (*mappedFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Size() == 0 {
		return &mappedFile{file: file}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		defer file.Close()
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		return &mappedFile{data: mmap.MMap(raw), fallback: true}, nil
	}
	return &mappedFile{data: data, file: file}, nil
}
