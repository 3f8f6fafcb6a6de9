// Package aggregate merges RawSignal streams from multiple scanner sources
// into one deduplicated view.
package aggregate

import (
	"sort"
	"sync"

	"github.com/driftlens/driftlens/pkg/signal"
)

// Emitter is any source of raw signals: a scanner run, a framework
// component scanner, a cached result set.
type Emitter interface {
	Emit() []signal.RawSignal
}

// Signals is a fixed slice of signals acting as its own emitter.
type Signals []signal.RawSignal

func (s Signals) Emit() []signal.RawSignal { return s }

// Stats summarizes the aggregated signal population.
type Stats struct {
	Total    int                 `json:"total"`
	ByType   map[signal.Type]int `json:"byType"`
	BySource map[string]int      `json:"bySource"`
}

// Aggregator collects emitters by source name and answers deduplicated
// queries across all of them. Dedup is by signal id, so the same CSS
// variable seen by two scanners counts once. Safe for concurrent use.
type Aggregator struct {
	mu      sync.RWMutex
	order   []string
	sources map[string]Emitter
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{sources: make(map[string]Emitter)}
}

// AddEmitter registers (or replaces) the emitter for a source.
func (a *Aggregator) AddEmitter(source string, e Emitter) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.sources[source]; !exists {
		a.order = append(a.order, source)
	}
	a.sources[source] = e
}

// AllSignals returns every distinct signal across all sources. Insertion
// order of sources is preserved; within a duplicate id the first
// occurrence wins.
func (a *Aggregator) AllSignals() []signal.RawSignal {
	a.mu.RLock()
	defer a.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []signal.RawSignal
	for _, source := range a.order {
		for _, sig := range a.sources[source].Emit() {
			if _, dup := seen[sig.ID]; dup {
				continue
			}
			seen[sig.ID] = struct{}{}
			out = append(out, sig)
		}
	}
	return out
}

// BySource returns the signals reported by one source, deduplicated
// within that source only.
func (a *Aggregator) BySource(source string) []signal.RawSignal {
	a.mu.RLock()
	e, ok := a.sources[source]
	a.mu.RUnlock()
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	var out []signal.RawSignal
	for _, sig := range e.Emit() {
		if _, dup := seen[sig.ID]; dup {
			continue
		}
		seen[sig.ID] = struct{}{}
		out = append(out, sig)
	}
	return out
}

// ByType filters the deduplicated population down to one signal type.
func (a *Aggregator) ByType(t signal.Type) []signal.RawSignal {
	var out []signal.RawSignal
	for _, sig := range a.AllSignals() {
		if sig.Type == t {
			out = append(out, sig)
		}
	}
	return out
}

// Sources lists registered source names in insertion order.
func (a *Aggregator) Sources() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string(nil), a.order...)
}

// Stats computes totals over the deduplicated population. BySource counts
// dedup within each source, so overlapping sources may sum past Total.
func (a *Aggregator) Stats() Stats {
	stats := Stats{
		ByType:   make(map[signal.Type]int),
		BySource: make(map[string]int),
	}
	for _, sig := range a.AllSignals() {
		stats.Total++
		stats.ByType[sig.Type]++
	}
	for _, source := range a.Sources() {
		stats.BySource[source] = len(a.BySource(source))
	}
	return stats
}

// Clear drops all registered emitters.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.order = nil
	a.sources = make(map[string]Emitter)
}

// SortSignals orders signals by path, line, column, then type for stable
// report output.
func SortSignals(sigs []signal.RawSignal) {
	sort.SliceStable(sigs, func(i, j int) bool {
		a, b := sigs[i], sigs[j]
		if a.Location.Path != b.Location.Path {
			return a.Location.Path < b.Location.Path
		}
		if a.Location.Line != b.Location.Line {
			return a.Location.Line < b.Location.Line
		}
		if a.Location.Column != b.Location.Column {
			return a.Location.Column < b.Location.Column
		}
		return a.Type < b.Type
	})
}
