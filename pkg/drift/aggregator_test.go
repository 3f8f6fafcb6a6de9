package drift

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hardcoded(id, value string) Signal {
	return Signal{
		ID:          id,
		Type:        TypeHardcodedValue,
		Severity:    SeverityWarning,
		FilePath:    "src/components/Button.tsx",
		ActualValue: value,
	}
}

func mustAggregator(t *testing.T, cfg Config) *Aggregator {
	t.Helper()
	agg, err := NewAggregator(cfg)
	require.NoError(t, err)
	return agg
}

func TestNewAggregator_UnknownStrategyFailsFast(t *testing.T) {
	_, err := NewAggregator(Config{Passes: BuiltinPasses("value", "bogus")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestAggregate_CountConservation(t *testing.T) {
	signals := []Signal{
		hardcoded("1", "#ff0000"),
		hardcoded("2", "#ff0000"),
		hardcoded("3", "#ff0000"),
		hardcoded("4", "12px"),
		{ID: "5", Type: TypeMissingToken, FilePath: "src/a.css"},
		{ID: "6", Type: TypeDeprecatedToken, EntityID: "btn"},
	}
	res := mustAggregator(t, Config{}).Aggregate(signals)

	grouped := 0
	for _, g := range res.Groups {
		grouped += g.TotalCount
		assert.GreaterOrEqual(t, g.TotalCount, DefaultMinGroupSize)
	}
	assert.Equal(t, len(signals), grouped+len(res.Ungrouped))
	assert.Equal(t, len(signals), res.TotalSignals)
}

func TestAggregate_MinGroupSize(t *testing.T) {
	signals := []Signal{
		hardcoded("1", "#ff0000"),
		hardcoded("2", "#ff0000"),
		hardcoded("3", "#ff0000"),
		hardcoded("4", "#ff0000"),
		hardcoded("5", "#ff0000"),
		hardcoded("6", "#00ff00"),
	}
	// Only the value strategy, so the singleton has nowhere else to go.
	res := mustAggregator(t, Config{Passes: BuiltinPasses(StrategyValue)}).Aggregate(signals)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, 5, res.Groups[0].TotalCount)
	require.Len(t, res.Ungrouped, 1)
	assert.Equal(t, "#00ff00", res.Ungrouped[0].ActualValue)
}

func TestAggregate_StableGroupIDs(t *testing.T) {
	signals := []Signal{
		hardcoded("1", "#ff0000"),
		hardcoded("2", "#ff0000"),
	}
	agg := mustAggregator(t, Config{})
	a := agg.Aggregate(signals)
	b := agg.Aggregate(signals)
	require.Len(t, a.Groups, 1)
	require.Len(t, b.Groups, 1)
	assert.Equal(t, a.Groups[0].ID, b.Groups[0].ID)
	assert.Equal(t, GroupingKey{Strategy: "value", Value: "#ff0000"}, a.Groups[0].GroupingKey)
}

func TestAggregate_ValueStrategySkipsOtherTypes(t *testing.T) {
	signals := []Signal{
		{ID: "1", Type: TypeHardcodedColor, ActualValue: "#ff0000", FilePath: "a/x.css"},
		{ID: "2", Type: TypeHardcodedColor, ActualValue: "#ff0000", FilePath: "b/y.css"},
	}
	res := mustAggregator(t, Config{Passes: BuiltinPasses(StrategyValue)}).Aggregate(signals)
	assert.Empty(t, res.Groups)
	assert.Len(t, res.Ungrouped, 2)
}

func TestAggregate_SuggestionStrategy(t *testing.T) {
	sig := func(id, suggestion string) Signal {
		return Signal{
			ID:          id,
			Type:        TypeHardcodedSpacing,
			FilePath:    "src/a.css",
			Suggestions: []string{suggestion},
		}
	}
	signals := []Signal{
		sig("1", "13px → spacing-3 (high)"),
		sig("2", "14px → spacing-3 (medium)"),
		sig("3", "30px → spacing-6 (low)"),
	}
	res := mustAggregator(t, Config{Passes: BuiltinPasses(StrategySuggestion)}).Aggregate(signals)

	require.Len(t, res.Groups, 1)
	g := res.Groups[0]
	assert.Equal(t, "spacing-3", g.GroupingKey.Value)
	assert.Equal(t, "spacing-3", g.CommonSuggestion)
	assert.Contains(t, g.Summary, "spacing-3")
	assert.Len(t, res.Ungrouped, 1)
}

func TestAggregate_PathStrategyPatternsThenDirectory(t *testing.T) {
	signals := []Signal{
		{ID: "1", Type: TypeHardcodedColor, FilePath: "src/legacy/old.css"},
		{ID: "2", Type: TypeHardcodedColor, FilePath: "src/legacy/nested/older.css"},
		{ID: "3", Type: TypeHardcodedColor, FilePath: "src/app/main.css"},
		{ID: "4", Type: TypeHardcodedColor, FilePath: "src/app/theme.css"},
	}
	res := mustAggregator(t, Config{
		Passes:       BuiltinPasses(StrategyPath),
		PathPatterns: []string{"src/legacy/**"},
	}).Aggregate(signals)

	require.Len(t, res.Groups, 2)
	byKey := map[string]Group{}
	for _, g := range res.Groups {
		byKey[g.GroupingKey.Value] = g
	}
	assert.Equal(t, 2, byKey["src/legacy/**"].TotalCount)
	assert.Equal(t, 2, byKey["src/app"].TotalCount)
}

func TestAggregate_EntityStrategySummaryListsTypes(t *testing.T) {
	signals := []Signal{
		{ID: "1", Type: TypeHardcodedColor, EntityID: "button", FilePath: "a.tsx"},
		{ID: "2", Type: TypeHardcodedSpacing, EntityID: "button", FilePath: "a.tsx"},
	}
	res := mustAggregator(t, Config{Passes: BuiltinPasses(StrategyEntity)}).Aggregate(signals)

	require.Len(t, res.Groups, 1)
	assert.Contains(t, res.Groups[0].Summary, "hardcoded-color")
	assert.Contains(t, res.Groups[0].Summary, "hardcoded-spacing")
}

func TestAggregate_LaterPassConsumesLeftovers(t *testing.T) {
	// Two signals share a value; two more only share a directory. The
	// value pass takes the first pair, the path pass the second.
	signals := []Signal{
		hardcoded("1", "#ff0000"),
		hardcoded("2", "#ff0000"),
		{ID: "3", Type: TypeHardcodedColor, FilePath: "src/x/a.css"},
		{ID: "4", Type: TypeHardcodedSpacing, FilePath: "src/x/b.css"},
	}
	res := mustAggregator(t, Config{Passes: BuiltinPasses(StrategyValue, StrategyPath)}).Aggregate(signals)

	require.Len(t, res.Groups, 2)
	assert.Equal(t, "value", res.Groups[0].GroupingKey.Strategy)
	assert.Equal(t, "path", res.Groups[1].GroupingKey.Strategy)
	assert.Empty(t, res.Ungrouped)
}

func TestAggregate_CustomStrategy(t *testing.T) {
	severity := customStrategy{}
	signals := []Signal{
		{ID: "1", Type: TypeHardcodedColor, Severity: SeverityCritical, FilePath: "a.css"},
		{ID: "2", Type: TypeHardcodedSpacing, Severity: SeverityCritical, FilePath: "b.css"},
	}
	res := mustAggregator(t, Config{Passes: []Pass{Custom(severity)}}).Aggregate(signals)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, "severity", res.Groups[0].GroupingKey.Strategy)
}

func TestAggregate_CustomPassBeforeBuiltin(t *testing.T) {
	// Both signals carry a file path, so the path strategy would claim
	// them. A custom pass placed ahead of it gets first pick.
	signals := []Signal{
		{ID: "1", Type: TypeHardcodedColor, Severity: SeverityCritical, FilePath: "src/a.css"},
		{ID: "2", Type: TypeHardcodedSpacing, Severity: SeverityCritical, FilePath: "src/b.css"},
	}
	res := mustAggregator(t, Config{
		Passes: []Pass{Custom(customStrategy{}), Builtin(StrategyPath)},
	}).Aggregate(signals)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, "severity", res.Groups[0].GroupingKey.Strategy)
	assert.Empty(t, res.Ungrouped)
}

type customStrategy struct{}

func (customStrategy) Type() string { return "severity" }

func (customStrategy) Key(sig Signal) (string, bool) {
	return string(sig.Severity), sig.Severity != ""
}

func (customStrategy) Summarize(signals []Signal, key string) string {
	return fmt.Sprintf("%d %s signals", len(signals), key)
}

func TestAggregate_ReductionRatio(t *testing.T) {
	signals := []Signal{
		hardcoded("1", "#ff0000"),
		hardcoded("2", "#ff0000"),
		hardcoded("3", "#ff0000"),
		hardcoded("4", "#ff0000"),
	}
	res := mustAggregator(t, Config{Passes: BuiltinPasses(StrategyValue)}).Aggregate(signals)
	assert.InDelta(t, 4.0, res.ReductionRatio, 0.001)

	empty := mustAggregator(t, Config{}).Aggregate(nil)
	assert.Zero(t, empty.ReductionRatio)
	assert.Empty(t, empty.Groups)
	assert.Empty(t, empty.Ungrouped)
}

func TestAggregate_RepresentativePrefersCritical(t *testing.T) {
	signals := []Signal{
		hardcoded("1", "#ff0000"),
		{ID: "2", Type: TypeHardcodedValue, Severity: SeverityCritical, ActualValue: "#ff0000", FilePath: "a.css"},
	}
	res := mustAggregator(t, Config{Passes: BuiltinPasses(StrategyValue)}).Aggregate(signals)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "2", res.Groups[0].Representative.ID)
}

func TestFirstSuggestedToken(t *testing.T) {
	assert.Equal(t, "spacing-3", firstSuggestedToken(Signal{Suggestions: []string{"13px → spacing-3 (high)"}}))
	assert.Equal(t, "color-neutral-900", firstSuggestedToken(Signal{Suggestions: []string{"#111 → color-neutral-900"}}))
	assert.Equal(t, "", firstSuggestedToken(Signal{}))
}
