// Package signal defines the raw design-value observations produced by
// extractors and consumed by the aggregation, synthesis, and drift layers.
package signal

// Type identifies the design-value category of a RawSignal.
//
// The set is closed: consumers switch exhaustively over it and persist the
// string form, so new members must be added here and nowhere else.
type Type string

const (
	TypeColorValue    Type = "color-value"
	TypeSpacingValue  Type = "spacing-value"
	TypeSizingValue   Type = "sizing-value"
	TypeRadiusValue   Type = "radius-value"
	TypeBorderWidth   Type = "border-width"
	TypeShadowValue   Type = "shadow-value"
	TypeOpacityValue  Type = "opacity-value"
	TypeZIndex        Type = "z-index"
	TypeFontSize      Type = "font-size"
	TypeFontFamily    Type = "font-family"
	TypeFontWeight    Type = "font-weight"
	TypeLineHeight    Type = "line-height"
	TypeLetterSpacing Type = "letter-spacing"
	TypeMotionDuration Type = "motion-duration"
	TypeMotionEasing   Type = "motion-easing"
	TypeBreakpoint     Type = "breakpoint"
	TypeArbitraryValue Type = "arbitrary-value"
	TypeInlineStyle    Type = "inline-style"

	// Definitional types: these mark declarations of the vocabulary itself
	// (a CSS custom property, a detected component), not hardcoded usage.
	TypeTokenDefinition Type = "token-definition"
	TypeComponentDef    Type = "component-def"
)

// AllTypes lists every valid signal type, in declaration order.
func AllTypes() []Type {
	return []Type{
		TypeColorValue, TypeSpacingValue, TypeSizingValue, TypeRadiusValue,
		TypeBorderWidth, TypeShadowValue, TypeOpacityValue, TypeZIndex,
		TypeFontSize, TypeFontFamily, TypeFontWeight, TypeLineHeight,
		TypeLetterSpacing, TypeMotionDuration, TypeMotionEasing,
		TypeBreakpoint, TypeArbitraryValue, TypeInlineStyle,
		TypeTokenDefinition, TypeComponentDef,
	}
}

// Valid reports whether t is a member of the closed type set.
func (t Type) Valid() bool {
	switch t {
	case TypeColorValue, TypeSpacingValue, TypeSizingValue, TypeRadiusValue,
		TypeBorderWidth, TypeShadowValue, TypeOpacityValue, TypeZIndex,
		TypeFontSize, TypeFontFamily, TypeFontWeight, TypeLineHeight,
		TypeLetterSpacing, TypeMotionDuration, TypeMotionEasing,
		TypeBreakpoint, TypeArbitraryValue, TypeInlineStyle,
		TypeTokenDefinition, TypeComponentDef:
		return true
	}
	return false
}

// Scope describes where a value was found relative to the styling system.
type Scope string

const (
	ScopeInline Scope = "inline"
	ScopeGlobal Scope = "global"
)

// Location is a position in a scanned source file. Line is 1-indexed.
type Location struct {
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

// Context carries file-level classification for a signal.
type Context struct {
	FileType    string `json:"fileType"`
	Framework   string `json:"framework,omitempty"`
	Scope       Scope  `json:"scope"`
	IsTokenized bool   `json:"isTokenized"`
}

// Metadata holds type-specific structured fields. All fields are optional;
// extractors populate what they can parse.
type Metadata struct {
	NumericValue *float64 `json:"numericValue,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	Property     string   `json:"property,omitempty"`
	Name         string   `json:"name,omitempty"`
}

// RawSignal is one observed occurrence of a design-relevant value.
//
// Signals are created fresh on every scan pass and never mutated; the next
// scan supersedes them wholesale. JSON field names are a wire contract shared
// with the persistence and reporting layers.
type RawSignal struct {
	ID       string   `json:"id"`
	Type     Type     `json:"type"`
	Value    string   `json:"value"`
	Location Location `json:"location"`
	Context  Context  `json:"context"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Num returns a Metadata numeric pointer for v.
func Num(v float64) *float64 { return &v }
