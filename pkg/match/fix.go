package match

import (
	"math"
	"sort"
)

// Confidence tiers a fix suggestion. Exact equality of normalized values
// always yields ConfidenceExact.
type Confidence string

const (
	ConfidenceExact  Confidence = "exact"
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// rank orders confidence tiers for comparison, higher is better.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceExact:
		return 4
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// Candidate is a token offered to the fix matcher. Category is the token
// category string as persisted.
type Candidate struct {
	Name     string
	Category string
	Value    string
}

// Fix is a matched replacement with its confidence tier.
type Fix struct {
	Candidate  Candidate
	Confidence Confidence
	Score      float64
}

// fixCategories constrains each drift type to one token category.
// Cross-category matches are rejected even when numerically identical.
var fixCategories = map[string]string{
	"hardcoded-color":     "color",
	"hardcoded-spacing":   "spacing",
	"hardcoded-radius":    "border",
	"hardcoded-font-size": "typography",
	"hardcoded-shadow":    "shadow",
}

// relative closeness cutoffs for numeric values.
const (
	highRelDiff   = 0.05
	mediumRelDiff = 0.15
	lowRelDiff    = 0.30
)

// BestFix picks the closest admissible token for a drift finding, or
// false when no candidate clears the category constraint and the
// closeness floor.
func BestFix(driftType, value string, candidates []Candidate) (Fix, bool) {
	wantCat, ok := fixCategories[driftType]
	if !ok {
		return Fix{}, false
	}

	var fixes []Fix
	for _, c := range candidates {
		if c.Category != wantCat {
			continue
		}
		conf, score, ok := closeness(value, c.Value)
		if !ok {
			continue
		}
		fixes = append(fixes, Fix{Candidate: c, Confidence: conf, Score: score})
	}
	if len(fixes) == 0 {
		return Fix{}, false
	}
	sort.Slice(fixes, func(i, j int) bool {
		if ri, rj := fixes[i].Confidence.rank(), fixes[j].Confidence.rank(); ri != rj {
			return ri > rj
		}
		if fixes[i].Score != fixes[j].Score {
			return fixes[i].Score > fixes[j].Score
		}
		return fixes[i].Candidate.Name < fixes[j].Candidate.Name
	})
	return fixes[0], true
}

// closeness tiers a drift value against one token value. Numeric values
// compare by unit-normalized magnitude, colors by RGB similarity, and
// anything else by literal equality.
func closeness(value, tokenValue string) (Confidence, float64, bool) {
	if va, okA := ParseMagnitude(value); okA {
		vb, okB := ParseMagnitude(tokenValue)
		if !okB {
			return "", 0, false
		}
		if va == vb {
			return ConfidenceExact, 100, true
		}
		base := math.Max(math.Abs(va), math.Abs(vb))
		if base == 0 {
			return "", 0, false
		}
		rel := math.Abs(va-vb) / base
		score := (1 - rel) * 100
		switch {
		case rel <= highRelDiff:
			return ConfidenceHigh, score, true
		case rel <= mediumRelDiff:
			return ConfidenceMedium, score, true
		case rel <= lowRelDiff:
			return ConfidenceLow, score, true
		}
		return "", 0, false
	}

	if ca, okA := ParseColor(value); okA {
		cb, okB := ParseColor(tokenValue)
		if !okB {
			return "", 0, false
		}
		sim := RGBSimilarity(ca, cb)
		switch {
		case ca.Hex() == cb.Hex():
			return ConfidenceExact, 100, true
		case sim >= 90:
			return ConfidenceHigh, sim, true
		case sim >= DefaultColorThreshold:
			return ConfidenceMedium, sim, true
		}
		return "", 0, false
	}

	if value == tokenValue {
		return ConfidenceExact, 100, true
	}
	return "", 0, false
}
