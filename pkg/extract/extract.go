// Package extract turns raw source text into RawSignals, one extractor per
// design-value category.
//
// Extractors are pure functions over (content, path): stateless,
// deterministic, and incapable of failing. Malformed input yields fewer or
// zero signals, never an error, so one broken file can never abort a scan.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/driftlens/driftlens/pkg/signal"
)

// Extractor extracts all signals of one category from a single file.
type Extractor interface {
	// Name identifies the extractor in logs and aggregator sources.
	Name() string
	// Extract returns every signal found in content. It must not panic on
	// arbitrary input; unparseable regions are skipped.
	Extract(content, path string) []signal.RawSignal
}

// DefaultExtractors returns the full extractor set in stable order.
func DefaultExtractors() []Extractor {
	return []Extractor{
		ColorExtractor{},
		SpacingExtractor{},
		TypographyExtractor{},
		ShadowExtractor{},
		MotionExtractor{},
		BreakpointExtractor{},
		ArbitraryValueExtractor{},
		InlineStyleExtractor{},
		TokenDefinitionExtractor{},
	}
}

// ExtractAll runs every extractor against one file and concatenates results.
func ExtractAll(extractors []Extractor, content, path string) []signal.RawSignal {
	var out []signal.RawSignal
	for _, ex := range extractors {
		out = append(out, ex.Extract(content, path)...)
	}
	return out
}

// fileContext classifies a file by extension into the base Context every
// signal from that file shares.
func fileContext(path string) signal.Context {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	ctx := signal.Context{FileType: ext, Scope: signal.ScopeGlobal}
	switch ext {
	case "css", "scss", "sass", "less":
		// stylesheet: global scope, no framework
	case "tsx", "jsx":
		ctx.Framework = "react"
		ctx.Scope = signal.ScopeInline
	case "vue":
		ctx.Framework = "vue"
		ctx.Scope = signal.ScopeInline
	case "svelte":
		ctx.Framework = "svelte"
		ctx.Scope = signal.ScopeInline
	case "ts", "js", "mjs", "cjs":
		ctx.Scope = signal.ScopeInline
	case "html", "htm":
		ctx.Scope = signal.ScopeInline
	}
	return ctx
}
