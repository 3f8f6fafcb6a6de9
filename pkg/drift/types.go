// Package drift groups near-duplicate drift findings into a small number
// of actionable groups via ordered, pluggable strategies.
package drift

// Type classifies a drift finding. The set is closed and shared with the
// fix matcher and persistence.
type Type string

const (
	TypeHardcodedValue    Type = "hardcoded-value"
	TypeHardcodedColor    Type = "hardcoded-color"
	TypeHardcodedSpacing  Type = "hardcoded-spacing"
	TypeHardcodedRadius   Type = "hardcoded-radius"
	TypeHardcodedFontSize Type = "hardcoded-font-size"
	TypeHardcodedShadow   Type = "hardcoded-shadow"
	TypeMissingToken      Type = "missing-token"
	TypeDeprecatedToken   Type = "deprecated-token"
)

// Valid reports whether t is a known drift type.
func (t Type) Valid() bool {
	switch t {
	case TypeHardcodedValue, TypeHardcodedColor, TypeHardcodedSpacing,
		TypeHardcodedRadius, TypeHardcodedFontSize, TypeHardcodedShadow,
		TypeMissingToken, TypeDeprecatedToken:
		return true
	}
	return false
}

// Severity is the finding severity level.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Signal is one classified drift finding, produced by comparison logic
// upstream of this package.
type Signal struct {
	ID            string   `json:"id"`
	Type          Type     `json:"type"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message,omitempty"`
	FilePath      string   `json:"filePath"`
	Line          int      `json:"line,omitempty"`
	EntityID      string   `json:"entityId,omitempty"`
	ActualValue   string   `json:"actualValue"`
	ExpectedValue string   `json:"expectedValue,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// GroupingKey records which strategy produced a group and under what key.
type GroupingKey struct {
	Strategy string `json:"strategy"`
	Value    string `json:"value"`
}

// SeverityCount tallies group members per severity.
type SeverityCount struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}

// Group is an aggregation of signals sharing a grouping key.
type Group struct {
	ID               string        `json:"id"`
	GroupingKey      GroupingKey   `json:"groupingKey"`
	Summary          string        `json:"summary"`
	Signals          []Signal      `json:"signals"`
	TotalCount       int           `json:"totalCount"`
	BySeverity       SeverityCount `json:"bySeverity"`
	CommonSuggestion string        `json:"commonSuggestion,omitempty"`
	Representative   Signal        `json:"representative"`
}

// Result is one aggregation run over a signal set.
type Result struct {
	Groups         []Group  `json:"groups"`
	Ungrouped      []Signal `json:"ungrouped"`
	TotalSignals   int      `json:"totalSignals"`
	ReductionRatio float64  `json:"reductionRatio"`
}
