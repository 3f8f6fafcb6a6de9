package synth

import "github.com/driftlens/driftlens/pkg/signal"

// inputCategories maps extractable signal types to synthesizer input
// categories. Definitional and compound types carry no clusterable value
// and are absent.
var inputCategories = map[signal.Type]string{
	signal.TypeColorValue:     InputColor,
	signal.TypeSpacingValue:   InputSpacing,
	signal.TypeSizingValue:    InputSizing,
	signal.TypeRadiusValue:    InputRadius,
	signal.TypeBorderWidth:    InputBorderWidth,
	signal.TypeFontSize:       InputFontSize,
	signal.TypeBreakpoint:     InputBreakpoint,
	signal.TypeShadowValue:    InputShadow,
	signal.TypeMotionDuration: InputDuration,
}

// FromSignals converts a merged scan signal set into synthesizer input.
// Signal types outside the clusterable categories are skipped.
func FromSignals(signals []signal.RawSignal) []ExtractedValue {
	var out []ExtractedValue
	for _, sig := range signals {
		category, ok := inputCategories[sig.Type]
		if !ok {
			continue
		}
		out = append(out, ExtractedValue{
			Property: sig.Metadata.Property,
			Value:    sig.Value,
			RawValue: sig.Value,
			Category: category,
			Context:  sig.Location.Path,
		})
	}
	return out
}
