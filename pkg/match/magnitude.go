package match

import (
	"regexp"
	"strconv"
)

var magnitudeRe = regexp.MustCompile(`^(-?\d*\.?\d+)(px|rem|em|ms|s|pt)?$`)

// ParseMagnitude converts a literal like "16px", "1rem", or "0.2s" to a
// comparable px (or ms) magnitude. Relative units convert at the default
// 16px root. Viewport and percent units have no absolute magnitude and
// are rejected.
func ParseMagnitude(raw string) (float64, bool) {
	m := magnitudeRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "", "px", "ms":
		return n, true
	case "rem", "em":
		return n * 16, true
	case "pt":
		return n * 96.0 / 72.0, true
	case "s":
		return n * 1000, true
	}
	return 0, false
}
