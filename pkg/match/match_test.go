package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in  string
		hex string
		ok  bool
	}{
		{"#abc", "#aabbcc", true},
		{"#AABBCC", "#aabbcc", true},
		{"#aabbccdd", "#aabbcc", true},
		{"rgb(30, 144, 255)", "#1e90ff", true},
		{"rgba(30, 144, 255, 0.5)", "#1e90ff", true},
		{"hsl(0, 100%, 50%)", "#ff0000", true},
		{"hsl(0, 0%, 50%)", "#808080", true},
		{"rgb(300, 0, 0)", "", false},
		{"var(--brand)", "", false},
		{"#12", "", false},
	}
	for _, tc := range cases {
		c, ok := ParseColor(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if ok {
			assert.Equal(t, tc.hex, c.Hex(), tc.in)
		}
	}
}

func TestColorSimilarity(t *testing.T) {
	assert.InDelta(t, 100, ColorSimilarity("#ff0000", "#ff0000"), 0.001)
	assert.InDelta(t, 100, ColorSimilarity("#f00", "rgb(255, 0, 0)"), 0.001)

	near := ColorSimilarity("#ff0000", "#fe0000")
	assert.Greater(t, near, 99.0)

	far := ColorSimilarity("#ff0000", "#00ff00")
	assert.Less(t, far, 20.0)

	assert.Zero(t, ColorSimilarity("not-a-color", "#ff0000"))
}

func TestColorsMatch_Threshold(t *testing.T) {
	assert.True(t, ColorsMatch("#ff0000", "#fa0a0a"))
	assert.False(t, ColorsMatch("#ff0000", "#00ff00"))
}

func TestNameScore(t *testing.T) {
	assert.InDelta(t, 100, NameScore("spacing-4", "spacing-4"), 0.001)
	assert.InDelta(t, 100, NameScore("Spacing-4", "spacing-4"), 0.001)

	// Substring containment scores by coverage.
	sub := NameScore("gap", "spacing-gap-x")
	assert.InDelta(t, 70+3.0/13*50, sub, 0.001)

	// Shared words score by query-word coverage.
	words := NameScore("primary color", "color-brand")
	assert.InDelta(t, 65, words, 0.001)

	// Edit distance fallback carries the fuzziness penalty.
	fuzzy := NameScore("radius", "radish")
	assert.InDelta(t, (1-2.0/6)*100-20, fuzzy, 0.001)

	assert.Zero(t, NameScore("", "spacing-4"))
}

func TestNameScore_Ordering(t *testing.T) {
	exact := NameScore("spacing-4", "spacing-4")
	sub := NameScore("gap", "spacing-gap-x")
	words := NameScore("primary color", "color-brand")
	fuzzy := NameScore("radius", "radish")
	assert.Greater(t, exact, sub)
	assert.Greater(t, sub, words)
	assert.Greater(t, words, fuzzy)
}

func TestParseMagnitude(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"16px", 16, true},
		{"1rem", 16, true},
		{"1.5em", 24, true},
		{"12pt", 16, true},
		{"0.2s", 200, true},
		{"200ms", 200, true},
		{"0", 0, true},
		{"-4px", -4, true},
		{"50%", 0, false},
		{"100vh", 0, false},
		{"auto", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseMagnitude(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if ok {
			assert.InDelta(t, tc.out, got, 0.001, tc.in)
		}
	}
}

func TestBestFix_CategoryConstraint(t *testing.T) {
	candidates := []Candidate{
		{Name: "radius-2", Category: "border", Value: "8px"},
		{Name: "font-size-1", Category: "typography", Value: "8px"},
	}

	fix, ok := BestFix("hardcoded-radius", "8px", candidates)
	require.True(t, ok)
	assert.Equal(t, "radius-2", fix.Candidate.Name)
	assert.Equal(t, ConfidenceExact, fix.Confidence)

	// The numerically identical typography token is inadmissible.
	_, ok = BestFix("hardcoded-radius", "8px", candidates[1:])
	assert.False(t, ok)
}

func TestBestFix_UnitConversionIsExact(t *testing.T) {
	fix, ok := BestFix("hardcoded-spacing", "1rem", []Candidate{
		{Name: "spacing-4", Category: "spacing", Value: "16px"},
	})
	require.True(t, ok)
	assert.Equal(t, ConfidenceExact, fix.Confidence)
}

func TestBestFix_NumericTiers(t *testing.T) {
	token := []Candidate{{Name: "spacing-4", Category: "spacing", Value: "16px"}}

	fix, ok := BestFix("hardcoded-spacing", "15px", token)
	require.True(t, ok)
	assert.Equal(t, ConfidenceMedium, fix.Confidence)

	fix, ok = BestFix("hardcoded-spacing", "15.5px", token)
	require.True(t, ok)
	assert.Equal(t, ConfidenceHigh, fix.Confidence)

	fix, ok = BestFix("hardcoded-spacing", "12px", token)
	require.True(t, ok)
	assert.Equal(t, ConfidenceLow, fix.Confidence)

	_, ok = BestFix("hardcoded-spacing", "40px", token)
	assert.False(t, ok)
}

func TestBestFix_ColorTiers(t *testing.T) {
	tokens := []Candidate{
		{Name: "color-1", Category: "color", Value: "#ff0000"},
		{Name: "color-2", Category: "color", Value: "#00ff00"},
	}

	fix, ok := BestFix("hardcoded-color", "rgb(255, 0, 0)", tokens)
	require.True(t, ok)
	assert.Equal(t, "color-1", fix.Candidate.Name)
	assert.Equal(t, ConfidenceExact, fix.Confidence)

	fix, ok = BestFix("hardcoded-color", "#fe0101", tokens)
	require.True(t, ok)
	assert.Equal(t, "color-1", fix.Candidate.Name)
	assert.Equal(t, ConfidenceHigh, fix.Confidence)
}

func TestBestFix_PrefersHigherConfidence(t *testing.T) {
	fix, ok := BestFix("hardcoded-spacing", "16px", []Candidate{
		{Name: "spacing-3", Category: "spacing", Value: "12px"},
		{Name: "spacing-4", Category: "spacing", Value: "16px"},
	})
	require.True(t, ok)
	assert.Equal(t, "spacing-4", fix.Candidate.Name)
	assert.Equal(t, ConfidenceExact, fix.Confidence)
}

func TestBestFix_UnknownDriftType(t *testing.T) {
	_, ok := BestFix("missing-token", "8px", []Candidate{
		{Name: "radius-2", Category: "border", Value: "8px"},
	})
	assert.False(t, ok)
}
