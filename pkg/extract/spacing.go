package extract

import (
	"strings"

	"github.com/driftlens/driftlens/pkg/signal"
)

// spacingProps map a kebab-case property to the signal type its lengths
// produce. Shorthands like `margin: 4px 8px` emit one signal per component.
var spacingProps = map[string]signal.Type{
	"margin":         signal.TypeSpacingValue,
	"margin-top":     signal.TypeSpacingValue,
	"margin-right":   signal.TypeSpacingValue,
	"margin-bottom":  signal.TypeSpacingValue,
	"margin-left":    signal.TypeSpacingValue,
	"margin-inline":  signal.TypeSpacingValue,
	"margin-block":   signal.TypeSpacingValue,
	"padding":        signal.TypeSpacingValue,
	"padding-top":    signal.TypeSpacingValue,
	"padding-right":  signal.TypeSpacingValue,
	"padding-bottom": signal.TypeSpacingValue,
	"padding-left":   signal.TypeSpacingValue,
	"padding-inline": signal.TypeSpacingValue,
	"padding-block":  signal.TypeSpacingValue,
	"gap":            signal.TypeSpacingValue,
	"row-gap":        signal.TypeSpacingValue,
	"column-gap":     signal.TypeSpacingValue,
	"top":            signal.TypeSpacingValue,
	"right":          signal.TypeSpacingValue,
	"bottom":         signal.TypeSpacingValue,
	"left":           signal.TypeSpacingValue,
	"inset":          signal.TypeSpacingValue,

	"width":      signal.TypeSizingValue,
	"height":     signal.TypeSizingValue,
	"min-width":  signal.TypeSizingValue,
	"min-height": signal.TypeSizingValue,
	"max-width":  signal.TypeSizingValue,
	"max-height": signal.TypeSizingValue,
	"flex-basis": signal.TypeSizingValue,

	"border-radius":              signal.TypeRadiusValue,
	"border-top-left-radius":     signal.TypeRadiusValue,
	"border-top-right-radius":    signal.TypeRadiusValue,
	"border-bottom-left-radius":  signal.TypeRadiusValue,
	"border-bottom-right-radius": signal.TypeRadiusValue,

	"border-width":        signal.TypeBorderWidth,
	"border-top-width":    signal.TypeBorderWidth,
	"border-right-width":  signal.TypeBorderWidth,
	"border-bottom-width": signal.TypeBorderWidth,
	"border-left-width":   signal.TypeBorderWidth,
	"outline-width":       signal.TypeBorderWidth,
}

// SpacingExtractor covers the box-model categories: spacing, sizing,
// radius, and border width.
type SpacingExtractor struct{}

func (SpacingExtractor) Name() string { return "spacing" }

func (SpacingExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	var out []signal.RawSignal
	eachDeclaration(content, func(d decl) {
		t, ok := spacingProps[d.prop]
		if !ok {
			// `border: 1px solid red` carries a width in its shorthand.
			if d.prop == "border" || strings.HasPrefix(d.prop, "border-") {
				if toks := lengthTokens(d.prop, d.value); len(toks) > 0 && !strings.Contains(d.prop, "radius") {
					t, ok = signal.TypeBorderWidth, true
				}
			}
			if !ok {
				return
			}
		}
		if IsInertLiteral(d.value) {
			return
		}
		out = append(out, emitLengths(t, d, path, ctx)...)
	})
	return out
}
