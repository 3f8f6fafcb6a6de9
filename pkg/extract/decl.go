package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/driftlens/driftlens/pkg/signal"
)

// declKeyRe matches a property key followed by a colon: CSS declarations,
// SCSS, CSS-in-JS template text, and JS object literals (camelCase keys,
// optionally quoted).
var declKeyRe = regexp.MustCompile(`['"]?([A-Za-z][A-Za-z0-9-]*)['"]?\s*:`)

// nextKeyRe decides whether text after a top-level comma starts another
// object-literal entry rather than continuing a comma-separated CSS value.
var nextKeyRe = regexp.MustCompile(`^\s*['"]?[A-Za-z$_][A-Za-z0-9$_-]*['"]?\s*:`)

// mediaFeatures are media-query bound features, never real declarations.
var mediaFeatures = map[string]bool{
	"min-width":  true,
	"max-width":  true,
	"min-height": true,
	"max-height": true,
}

// decl is one parsed property/value occurrence.
type decl struct {
	prop   string // kebab-case property name
	value  string // raw value text, trimmed
	line   int    // 1-indexed
	column int    // 1-indexed, at the property name
}

// eachDeclaration walks content line by line calling fn for every
// declaration found. Token references and values with unresolvable
// interpolations are dropped here so individual extractors never see them;
// balanced interpolations arrive collapsed to (dynamic).
func eachDeclaration(content string, fn func(d decl)) {
	for lineNo, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		mediaLine := strings.Contains(line, "@media")
		pos := 0
		for pos < len(line) {
			m := declKeyRe.FindStringSubmatchIndex(line[pos:])
			if m == nil {
				break
			}
			keyStart := pos + m[2]
			prop := line[keyStart : pos+m[3]]
			valStart := pos + m[1]

			// Custom property definitions (--name: value) declare tokens;
			// they are the vocabulary, not drift.
			if keyStart > 0 && line[keyStart-1] == '-' {
				pos = valStart
				continue
			}

			value, valEnd := scanDeclValue(line, valStart)
			pos = valEnd

			prop = CamelToKebab(prop)
			// Media query bounds belong to the breakpoint extractor; a
			// min-width there is not a sizing declaration.
			if mediaLine && mediaFeatures[prop] {
				continue
			}

			value = strings.TrimSpace(value)
			if value == "" || IsTokenReference(value) {
				continue
			}
			if strings.Contains(value, "${") {
				value = CollapseInterpolations(value)
				if strings.Contains(value, "${") {
					continue // interpolation spans lines; not a concrete value
				}
			}

			value = strings.TrimSpace(strings.Trim(strings.TrimRight(value, ", "), `'"`))
			fn(decl{
				prop:   prop,
				value:  value,
				line:   lineNo + 1,
				column: keyStart + 1,
			})
		}
	}
}

// scanDeclValue reads a declaration value starting at start, tracking quote
// and bracket state. It stops at a top-level `;`, `{`, `}`, end of line, or
// a top-level comma when the text after it opens another key (so one-line
// object literals split correctly while comma-separated CSS values, shadow
// lists, and font stacks stay whole).
func scanDeclValue(line string, start int) (string, int) {
	depth := 0
	var quote byte
	escaped := false

	for i := start; i < len(line); i++ {
		c := line[i]
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
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ';', '{', '}':
			if depth == 0 {
				return line[start:i], i + 1
			}
		case ',':
			if depth == 0 && nextKeyRe.MatchString(line[i+1:]) {
				return line[start:i], i + 1
			}
		}
	}
	return line[start:], len(line)
}

// lengthRe matches one numeric length token inside a declaration value.
var lengthRe = regexp.MustCompile(`(-?\d*\.?\d+)(px|rem|em|%|vh|vw|vmin|vmax|pt|ch|ex)?\b`)

// lengthToken is one numeric component of a value like "4px 8px".
type lengthToken struct {
	text    string  // literal text with unit, e.g. "4px"
	numeric float64 // parsed magnitude in its own unit
	unit    string
}

// lengthTokens splits a declaration value into its numeric length parts.
// Bare numbers get px appended when the property takes lengths; for
// unitless properties the number passes through as-is. Inert components
// (bare 0, 1) are dropped.
func lengthTokens(prop, value string) []lengthToken {
	if isDynamic(value) {
		return nil
	}
	var out []lengthToken
	for _, m := range lengthRe.FindAllStringSubmatch(value, -1) {
		num, unit := m[1], m[2]
		if unit == "" {
			if IsInertLiteral(num) {
				continue
			}
			if !IsUnitless(prop) {
				unit = "px"
			}
		}
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue
		}
		out = append(out, lengthToken{text: num + unit, numeric: f, unit: unit})
	}
	return out
}

// emitLengths converts the numeric parts of d into signals of type t.
func emitLengths(t signal.Type, d decl, path string, ctx signal.Context) []signal.RawSignal {
	var out []signal.RawSignal
	for _, tok := range lengthTokens(d.prop, d.value) {
		out = append(out, signal.New(t, tok.text,
			signal.Location{Path: path, Line: d.line, Column: d.column},
			ctx,
			signal.Metadata{NumericValue: signal.Num(tok.numeric), Unit: tok.unit, Property: d.prop}))
	}
	return out
}
