// Package synth turns the raw value distribution of a scan into a canonical
// design-token set and a generated stylesheet.
package synth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Category classifies a synthesized token. The set is closed and shared
// with persistence and fix matching.
type Category string

const (
	CategoryColor      Category = "color"
	CategorySpacing    Category = "spacing"
	CategoryRadius     Category = "radius"
	CategoryBorder     Category = "border"
	CategoryTypography Category = "typography"
	CategoryShadow     Category = "shadow"
	CategoryBreakpoint Category = "breakpoint"
	CategoryOther      Category = "other"
)

// ValueKind tags the token value union.
type ValueKind string

const (
	KindColor      ValueKind = "color"
	KindSpacing    ValueKind = "spacing"
	KindTypography ValueKind = "typography"
	KindShadow     ValueKind = "shadow"
	KindBorder     ValueKind = "border"
	KindRaw        ValueKind = "raw"
)

// Value is the tagged value union carried by a token.
type Value struct {
	Kind ValueKind `json:"kind"`
	Raw  string    `json:"value"`
}

// DesignToken is a canonical, named design value synthesized from the full
// value distribution of a scan.
type DesignToken struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Category Category          `json:"category"`
	Value    Value             `json:"value"`
	Source   []string          `json:"source"`
	Aliases  []string          `json:"aliases,omitempty"`
	UsedBy   []string          `json:"usedBy,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ExtractedValue is one observed value handed to the synthesizer, already
// classified by the extraction layer.
type ExtractedValue struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	RawValue string `json:"rawValue"`
	Category string `json:"category"`
	Context  string `json:"context,omitempty"`
}

// Input categories accepted by Synthesize.
const (
	InputColor       = "color"
	InputSpacing     = "spacing"
	InputSizing      = "sizing"
	InputRadius      = "radius"
	InputBorderWidth = "border-width"
	InputFontSize    = "font-size"
	InputBreakpoint  = "breakpoint"
	InputShadow      = "shadow"
	InputDuration    = "motion-duration"
)

// Result is the synthesizer output: the token set plus a generated
// stylesheet declaring one custom property per token.
type Result struct {
	Tokens []DesignToken `json:"tokens"`
	CSS    string        `json:"css"`
}

// tokenID derives a stable id from the identifying token fields, so
// repeated synthesis runs over the same distribution agree.
func tokenID(category Category, name, value string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", category, name, value)))
	return hex.EncodeToString(sum[:12])
}
