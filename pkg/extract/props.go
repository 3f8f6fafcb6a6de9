package extract

import (
	"regexp"
	"strings"
)

// camelRe finds lower-to-upper boundaries for kebab conversion.
var camelRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// CamelToKebab converts a JS object key (marginTop, WebkitTransition) to its
// CSS property name (margin-top, -webkit-transition).
func CamelToKebab(s string) string {
	s = strings.Trim(s, `'"`)
	kebab := strings.ToLower(camelRe.ReplaceAllString(s, "${1}-${2}"))
	// Vendor-prefixed keys start with an uppercase rune in JS objects.
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		kebab = "-" + kebab
	}
	return kebab
}

// unitlessProps are CSS properties whose numeric values never take a length
// unit. A bare number for any other length-accepting property gets "px".
var unitlessProps = map[string]struct{}{
	"opacity":           {},
	"z-index":           {},
	"flex":              {},
	"flex-grow":         {},
	"flex-shrink":       {},
	"font-weight":       {},
	"line-height":       {},
	"order":             {},
	"zoom":              {},
	"aspect-ratio":      {},
	"scale":             {},
	"tab-size":          {},
	"orphans":           {},
	"widows":            {},
	"column-count":      {},
	"fill-opacity":      {},
	"stroke-opacity":    {},
	"stop-opacity":      {},
	"animation-iteration-count": {},
}

// IsUnitless reports whether prop must not receive a px suffix.
func IsUnitless(prop string) bool {
	_, ok := unitlessProps[prop]
	return ok
}

var bareNumberRe = regexp.MustCompile(`^-?\d*\.?\d+$`)

// NormalizeDeclarationValue renders a JS object-literal value as CSS text:
// quotes stripped, bare numbers suffixed with px unless prop is unitless.
func NormalizeDeclarationValue(prop, value string) string {
	v := strings.TrimSpace(strings.Trim(strings.TrimSpace(value), `'"`))
	if bareNumberRe.MatchString(v) && !IsUnitless(prop) {
		return v + "px"
	}
	return v
}
