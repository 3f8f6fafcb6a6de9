package extract

import (
	"regexp"
	"strings"

	"github.com/driftlens/driftlens/pkg/signal"
)

// colorRe matches a color literal anywhere on a line: hex in its 3/4/6/8
// digit forms, or a functional rgb/rgba/hsl/hsla value.
var colorRe = regexp.MustCompile(`#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3,4})\b|\b(?:rgb|rgba|hsl|hsla)\(\s*[^)]*\)`)

// ColorExtractor finds hardcoded color literals. Unlike the declaration
// extractors it scans raw text, so colors inside shorthands, gradients, and
// JSX attributes are caught too.
type ColorExtractor struct{}

func (ColorExtractor) Name() string { return "color" }

func (ColorExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	var out []signal.RawSignal
	seen := map[string]struct{}{}

	for lineNo, line := range strings.Split(content, "\n") {
		for _, m := range colorRe.FindAllStringIndex(line, -1) {
			literal := line[m[0]:m[1]]

			// A color after var(-- on the same declaration is a custom
			// property fallback: the value is already tokenized.
			if decl := declarationAround(line, m[0]); decl != "" && IsTokenReference(decl) {
				continue
			}
			// Token definition sites declare the vocabulary, not drift.
			prop := propertyBefore(line, m[0])
			if strings.HasPrefix(prop, "$") || strings.HasPrefix(prop, "--") {
				continue
			}

			sig := signal.New(signal.TypeColorValue, literal,
				signal.Location{Path: path, Line: lineNo + 1, Column: m[0] + 1},
				ctx,
				signal.Metadata{Property: prop})
			if _, dup := seen[sig.ID]; dup {
				continue
			}
			seen[sig.ID] = struct{}{}
			out = append(out, sig)
		}
	}
	return out
}

// declarationAround returns the declaration value text containing byte
// offset pos, or "" when pos is not inside a recognizable declaration.
func declarationAround(line string, pos int) string {
	colon := strings.LastIndex(line[:pos], ":")
	if colon < 0 {
		return ""
	}
	end := strings.IndexAny(line[pos:], ";\n")
	if end < 0 {
		return line[colon+1:]
	}
	return line[colon+1 : pos+end]
}

// propertyBefore extracts the kebab-case property name of the declaration
// preceding pos, or "" when none is found.
func propertyBefore(line string, pos int) string {
	colon := strings.LastIndex(line[:pos], ":")
	if colon < 0 {
		return ""
	}
	head := strings.TrimRight(line[:colon], " \t'\"")
	i := len(head)
	for i > 0 {
		c := head[i-1]
		if c == '-' || c == '$' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			i--
			continue
		}
		break
	}
	if i == len(head) {
		return ""
	}
	return CamelToKebab(head[i:])
}
