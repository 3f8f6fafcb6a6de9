package extract

import (
	"strings"

	"github.com/driftlens/driftlens/pkg/signal"
)

// InlineStyleExtractor finds JSX inline style objects (style={{...}}) and
// emits one inline-style signal per block, with the object keys converted
// to CSS property names and bare numbers suffixed per property rules.
type InlineStyleExtractor struct{}

func (InlineStyleExtractor) Name() string { return "inline-style" }

func (InlineStyleExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	ctx.Scope = signal.ScopeInline
	var out []signal.RawSignal

	for searchFrom := 0; ; {
		idx := strings.Index(content[searchFrom:], "style={{")
		if idx < 0 {
			break
		}
		at := searchFrom + idx
		bodyStart := at + len("style={{")

		body, ok := ScanBraceBlock(content, bodyStart)
		if !ok {
			// Unbalanced block: skip this occurrence, keep scanning.
			searchFrom = bodyStart
			continue
		}
		searchFrom = bodyStart + len(body)

		decls := parseStyleObject(body)
		if len(decls) == 0 {
			continue
		}

		line := 1 + strings.Count(content[:at], "\n")
		column := at - strings.LastIndex(content[:at], "\n")
		out = append(out, signal.New(signal.TypeInlineStyle, strings.Join(decls, "; "),
			signal.Location{Path: path, Line: line, Column: column},
			ctx, signal.Metadata{Property: "style"}))
	}
	return out
}

// parseStyleObject renders a JS style object body as normalized CSS
// declarations. Token references drop out; interpolated values collapse to
// the dynamic placeholder.
func parseStyleObject(body string) []string {
	var decls []string
	for _, entry := range splitTopLevel(body, ',') {
		entry = strings.TrimSpace(entry)
		if entry == "" || strings.HasPrefix(entry, "...") {
			continue
		}
		colon := strings.Index(entry, ":")
		if colon < 0 {
			continue
		}
		prop := CamelToKebab(strings.TrimSpace(entry[:colon]))
		value := CollapseInterpolations(strings.TrimSpace(entry[colon+1:]))
		if IsTokenReference(value) {
			continue
		}
		if lit := strings.Trim(value, `'"`); IsInertLiteral(lit) {
			decls = append(decls, prop+": "+lit)
			continue
		}
		value = NormalizeDeclarationValue(prop, value)
		if value == "" {
			continue
		}
		decls = append(decls, prop+": "+value)
	}
	return decls
}

// splitTopLevel splits s on sep occurrences outside strings, templates,
// brackets, and parens.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
