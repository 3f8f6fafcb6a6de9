// Package component detects UI component definitions in JS/TS source via
// tree-sitter, emitting definitional signals the aggregator merges with
// the regex extractors' output.
package component

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/driftlens/driftlens/pkg/signal"
)

type grammar int

const (
	grammarJavaScript grammar = iota
	grammarTypeScript
	grammarTSX
)

// Detector parses JS/TS sources and reports component definitions:
// functions, arrow bindings, and classes with uppercase names.
//
// Parsers initialize lazily per grammar. Parsing serializes on a mutex;
// the scan pipeline parallelizes across files, not within them.
type Detector struct {
	mu      sync.Mutex
	parsers map[grammar]*ts.Parser
	log     *slog.Logger
}

// NewDetector returns a Detector. Close must be called to free parsers.
func NewDetector(logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		parsers: make(map[grammar]*ts.Parser),
		log:     logger,
	}
}

// Close frees all parsers.
func (d *Detector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range d.parsers {
		p.Close()
	}
	d.parsers = make(map[grammar]*ts.Parser)
}

// Name identifies the detector when it runs inside the extractor set.
func (d *Detector) Name() string { return "component" }

// Extract makes the detector pluggable into the scan pipeline alongside
// the regex extractors.
func (d *Detector) Extract(content, path string) []signal.RawSignal {
	return d.Detect(content, path)
}

// Detect parses content and returns one component-def signal per
// component found. Unsupported extensions and parse failures yield no
// signals, never an error.
func (d *Detector) Detect(content, path string) []signal.RawSignal {
	g, ok := grammarFor(path)
	if !ok {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	parser, err := d.parser(g)
	if err != nil {
		d.log.Warn("parser init failed", "file", path, "error", err)
		return nil
	}

	source := []byte(content)
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	ctx := signal.Context{
		FileType:  strings.TrimPrefix(filepath.Ext(path), "."),
		Framework: frameworkFor(path),
		Scope:     "global",
	}

	var out []signal.RawSignal
	seen := map[string]bool{}
	walk(tree.RootNode(), func(node *ts.Node) {
		name, ok := componentName(node, source)
		if !ok || seen[name] {
			return
		}
		seen[name] = true
		pos := node.StartPosition()
		loc := signal.Location{
			Path:   path,
			Line:   int(pos.Row) + 1,
			Column: int(pos.Column) + 1,
		}
		out = append(out, signal.New(signal.TypeComponentDef, name, loc, ctx, signal.Metadata{
			Name: name,
		}))
	})
	return out
}

func (d *Detector) parser(g grammar) (*ts.Parser, error) {
	if p, ok := d.parsers[g]; ok {
		return p, nil
	}

	var langPtr unsafe.Pointer
	switch g {
	case grammarTypeScript:
		langPtr = ts_typescript.LanguageTypescript()
	case grammarTSX:
		langPtr = ts_typescript.LanguageTSX()
	default:
		langPtr = ts_javascript.Language()
	}

	p := ts.NewParser()
	if err := p.SetLanguage(ts.NewLanguage(langPtr)); err != nil {
		p.Close()
		return nil, fmt.Errorf("set language: %w", err)
	}
	d.parsers[g] = p
	return p, nil
}

func grammarFor(path string) (grammar, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs":
		return grammarJavaScript, true
	case ".ts":
		return grammarTypeScript, true
	case ".tsx":
		return grammarTSX, true
	}
	return 0, false
}

func frameworkFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsx", ".tsx":
		return "react"
	}
	return ""
}

func walk(node *ts.Node, visit func(*ts.Node)) {
	visit(node)
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child != nil {
			walk(child, visit)
		}
	}
}

// componentName extracts the definition name when node defines a
// component: a function, class, or arrow binding named with an uppercase
// initial, the JSX convention.
func componentName(node *ts.Node, source []byte) (string, bool) {
	switch node.Kind() {
	case "function_declaration", "class_declaration":
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return "", false
		}
		name := nameNode.Utf8Text(source)
		return name, isComponentName(name)
	case "variable_declarator":
		value := node.ChildByFieldName("value")
		if value == nil {
			return "", false
		}
		switch value.Kind() {
		case "arrow_function", "function_expression", "call_expression":
		default:
			return "", false
		}
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil || nameNode.Kind() != "identifier" {
			return "", false
		}
		name := nameNode.Utf8Text(source)
		return name, isComponentName(name)
	}
	return "", false
}

// isComponentName applies the JSX convention: uppercase initial, but not
// a SCREAMING_CASE constant.
func isComponentName(name string) bool {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return false
	}
	for _, r := range name {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}
