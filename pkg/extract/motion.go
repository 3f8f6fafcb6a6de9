package extract

import (
	"regexp"
	"strconv"

	"github.com/driftlens/driftlens/pkg/signal"
)

// durationRe matches one CSS time value (150ms, .2s).
var durationRe = regexp.MustCompile(`(-?\d*\.?\d+)(ms|s)\b`)

// easingRe matches an easing function or keyword inside a motion value.
var easingRe = regexp.MustCompile(`cubic-bezier\([^)]*\)|steps\([^)]*\)|\b(?:ease-in-out|ease-in|ease-out|ease|linear|step-start|step-end)\b`)

// motionProps are the declarations that carry durations and easings.
var motionProps = map[string]struct{}{
	"transition":                 {},
	"transition-duration":        {},
	"transition-delay":           {},
	"transition-timing-function": {},
	"animation":                  {},
	"animation-duration":         {},
	"animation-delay":            {},
	"animation-timing-function":  {},
}

// MotionExtractor covers motion durations and easing curves.
type MotionExtractor struct{}

func (MotionExtractor) Name() string { return "motion" }

func (MotionExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	var out []signal.RawSignal

	eachDeclaration(content, func(d decl) {
		if _, ok := motionProps[d.prop]; !ok {
			return
		}
		if isDynamic(d.value) || IsInertLiteral(d.value) {
			return
		}
		loc := signal.Location{Path: path, Line: d.line, Column: d.column}

		for _, m := range durationRe.FindAllStringSubmatch(d.value, -1) {
			n, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			// Normalize seconds to ms in metadata so clustering compares
			// like with like; the literal text is preserved as the value.
			ms := n
			if m[2] == "s" {
				ms = n * 1000
			}
			out = append(out, signal.New(signal.TypeMotionDuration, m[0], loc, ctx,
				signal.Metadata{NumericValue: signal.Num(ms), Unit: "ms", Property: d.prop}))
		}

		for _, m := range easingRe.FindAllString(d.value, -1) {
			if IsInertLiteral(m) {
				continue
			}
			out = append(out, signal.New(signal.TypeMotionEasing, m, loc, ctx,
				signal.Metadata{Property: d.prop}))
		}
	})
	return out
}
