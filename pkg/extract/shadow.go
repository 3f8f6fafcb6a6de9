package extract

import (
	"strconv"

	"github.com/driftlens/driftlens/pkg/signal"
)

// ShadowExtractor covers box/text shadows, opacity, and z-index. These
// share whole-value semantics: the declaration value is the signal.
type ShadowExtractor struct{}

func (ShadowExtractor) Name() string { return "shadow" }

func (ShadowExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	var out []signal.RawSignal

	eachDeclaration(content, func(d decl) {
		if IsInertLiteral(d.value) {
			return
		}
		loc := signal.Location{Path: path, Line: d.line, Column: d.column}

		switch d.prop {
		case "box-shadow", "text-shadow", "filter-drop-shadow":
			out = append(out, signal.New(signal.TypeShadowValue, d.value, loc, ctx,
				signal.Metadata{Property: d.prop}))

		case "opacity", "fill-opacity", "stroke-opacity":
			n, err := strconv.ParseFloat(d.value, 64)
			if err != nil {
				return
			}
			out = append(out, signal.New(signal.TypeOpacityValue, d.value, loc, ctx,
				signal.Metadata{NumericValue: signal.Num(n), Property: d.prop}))

		case "z-index":
			n, err := strconv.ParseFloat(d.value, 64)
			if err != nil {
				return
			}
			out = append(out, signal.New(signal.TypeZIndex, d.value, loc, ctx,
				signal.Metadata{NumericValue: signal.Num(n), Property: d.prop}))
		}
	})
	return out
}
