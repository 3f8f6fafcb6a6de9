package extract

import (
	"strconv"

	"github.com/driftlens/driftlens/pkg/signal"
)

// TypographyExtractor covers font-size, font-family, font-weight,
// line-height, and letter-spacing declarations.
type TypographyExtractor struct{}

func (TypographyExtractor) Name() string { return "typography" }

func (TypographyExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	var out []signal.RawSignal

	eachDeclaration(content, func(d decl) {
		if IsInertLiteral(d.value) {
			return
		}
		switch d.prop {
		case "font-size":
			out = append(out, emitLengths(signal.TypeFontSize, d, path, ctx)...)

		case "letter-spacing":
			out = append(out, emitLengths(signal.TypeLetterSpacing, d, path, ctx)...)

		case "font-family":
			if isDynamic(d.value) {
				return
			}
			out = append(out, signal.New(signal.TypeFontFamily, d.value,
				signal.Location{Path: path, Line: d.line, Column: d.column},
				ctx, signal.Metadata{Property: d.prop}))

		case "font-weight":
			if isDynamic(d.value) {
				return
			}
			meta := signal.Metadata{Property: d.prop}
			if n, err := strconv.ParseFloat(d.value, 64); err == nil {
				meta.NumericValue = signal.Num(n)
			}
			out = append(out, signal.New(signal.TypeFontWeight, d.value,
				signal.Location{Path: path, Line: d.line, Column: d.column},
				ctx, meta))

		case "line-height":
			// Unitless line-height stays unitless; lengths keep their unit.
			if toks := lengthTokens(d.prop, d.value); len(toks) > 0 {
				for _, tok := range toks {
					out = append(out, signal.New(signal.TypeLineHeight, tok.text,
						signal.Location{Path: path, Line: d.line, Column: d.column},
						ctx,
						signal.Metadata{NumericValue: signal.Num(tok.numeric), Unit: tok.unit, Property: d.prop}))
				}
			}
		}
	})
	return out
}
