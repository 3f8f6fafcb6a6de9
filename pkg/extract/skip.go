package extract

import (
	"regexp"
	"strings"
)

// scssVarRe matches an SCSS variable reference ($name). The rune after the
// dollar must start an identifier so template interpolations (${...}) are
// not mistaken for SCSS variables.
var scssVarRe = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_-]*`)

// IsTokenReference reports whether v already goes through the token system.
// Such values are not drift and carry no clustering signal.
func IsTokenReference(v string) bool {
	if strings.Contains(v, "var(--") {
		return true
	}
	if strings.Contains(v, "theme.") || strings.Contains(v, "tokens.") {
		return true
	}
	return scssVarRe.MatchString(v)
}

// inertLiterals are semantically inert values: extracting them would add
// noise without contributing anything clusterable.
var inertLiterals = map[string]struct{}{
	"0":       {},
	"1":       {},
	"auto":    {},
	"inherit": {},
	"initial": {},
	"unset":   {},
	"none":    {},
	"normal":  {},
}

// IsInertLiteral reports whether v is one of the skip-listed inert values.
func IsInertLiteral(v string) bool {
	_, ok := inertLiterals[strings.TrimSpace(v)]
	return ok
}

// skippable combines the two extractor skip rules.
func skippable(v string) bool {
	return IsTokenReference(v) || IsInertLiteral(v)
}
