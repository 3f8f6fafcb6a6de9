package drift

import (
	"fmt"

	"github.com/driftlens/driftlens/pkg/match"
	"github.com/driftlens/driftlens/pkg/signal"
	"github.com/driftlens/driftlens/pkg/synth"
)

// detectTypes maps extractable signal types to drift classification.
// Types absent here (token definitions, component defs, easing keywords)
// never become drift findings.
var detectTypes = map[signal.Type]Type{
	signal.TypeColorValue:     TypeHardcodedColor,
	signal.TypeSpacingValue:   TypeHardcodedSpacing,
	signal.TypeSizingValue:    TypeHardcodedSpacing,
	signal.TypeRadiusValue:    TypeHardcodedRadius,
	signal.TypeFontSize:       TypeHardcodedFontSize,
	signal.TypeShadowValue:    TypeHardcodedShadow,
	signal.TypeBorderWidth:    TypeHardcodedValue,
	signal.TypeMotionDuration: TypeHardcodedValue,
	signal.TypeArbitraryValue: TypeHardcodedValue,
	signal.TypeInlineStyle:    TypeHardcodedValue,
}

// candidateCategories maps token categories to the fix-matcher category
// vocabulary. Radius tokens are matched under the border category.
var candidateCategories = map[synth.Category]string{
	synth.CategoryColor:      "color",
	synth.CategorySpacing:    "spacing",
	synth.CategoryRadius:     "border",
	synth.CategoryBorder:     "border",
	synth.CategoryTypography: "typography",
	synth.CategoryShadow:     "shadow",
}

// Candidates converts a synthesized token set into fix-matcher candidates.
// Tokens outside the matchable categories (breakpoints, other) are skipped.
func Candidates(tokens []synth.DesignToken) []match.Candidate {
	out := make([]match.Candidate, 0, len(tokens))
	for _, tok := range tokens {
		cat, ok := candidateCategories[tok.Category]
		if !ok {
			continue
		}
		out = append(out, match.Candidate{
			Name:     tok.Name,
			Category: cat,
			Value:    tok.Value.Raw,
		})
	}
	return out
}

// Detect classifies raw scan signals against a token vocabulary, producing
// one drift signal per hardcoded (non-tokenized) occurrence. A value that
// equals an existing token exactly is still drift, the source uses the
// literal instead of the token reference, and carries an exact suggestion.
func Detect(signals []signal.RawSignal, tokens []synth.DesignToken) []Signal {
	candidates := Candidates(tokens)

	var out []Signal
	for _, sig := range signals {
		driftType, ok := detectTypes[sig.Type]
		if !ok || sig.Context.IsTokenized {
			continue
		}

		ds := Signal{
			ID:          sig.ID,
			Type:        driftType,
			Severity:    severityFor(driftType, sig),
			Message:     fmt.Sprintf("hardcoded %s %q", sig.Type, sig.Value),
			FilePath:    sig.Location.Path,
			Line:        sig.Location.Line,
			ActualValue: sig.Value,
		}
		if fix, ok := match.BestFix(string(driftType), sig.Value, candidates); ok {
			ds.ExpectedValue = fix.Candidate.Value
			ds.Suggestions = []string{
				fmt.Sprintf("%s → %s (%s)", sig.Value, fix.Candidate.Name, fix.Confidence),
			}
			ds.Message = fmt.Sprintf("hardcoded %s %q, closest token %s",
				sig.Type, sig.Value, fix.Candidate.Name)
		}
		out = append(out, ds)
	}
	return out
}

// severityFor grades a finding. Inline-scope values bypass the styling
// system entirely and always warn; colors warn because palette drift is
// the most visible kind; everything else is informational.
func severityFor(t Type, sig signal.RawSignal) Severity {
	if sig.Context.Scope == signal.ScopeInline {
		return SeverityWarning
	}
	if t == TypeHardcodedColor {
		return SeverityWarning
	}
	return SeverityInfo
}
