package drift

import (
	"fmt"
	"hash/fnv"
)

// DefaultMinGroupSize is the smallest bucket that becomes a group.
const DefaultMinGroupSize = 2

// DefaultStrategies is the built-in pass order.
var DefaultStrategies = []string{StrategyValue, StrategySuggestion, StrategyPath, StrategyEntity}

// Pass is one slot in the aggregation chain: either a built-in strategy
// referenced by name or a user-supplied Strategy. Built-in names are
// resolved when the aggregator is built.
type Pass struct {
	name     string
	strategy Strategy
}

// Builtin references a built-in strategy by name.
func Builtin(name string) Pass { return Pass{name: name} }

// Custom wraps a user strategy so it can sit anywhere in the chain.
func Custom(s Strategy) Pass { return Pass{strategy: s} }

// BuiltinPasses turns a plain name list into passes, for config surfaces
// that only carry strings.
func BuiltinPasses(names ...string) []Pass {
	passes := make([]Pass, len(names))
	for i, name := range names {
		passes[i] = Builtin(name)
	}
	return passes
}

// Config sets up an Aggregator. Zero values take the defaults above.
type Config struct {
	// Passes run in order; built-ins and custom strategies mix freely.
	// Nil takes DefaultStrategies.
	Passes []Pass
	// MinGroupSize is the smallest bucket promoted to a group.
	MinGroupSize int
	// PathPatterns are globs consulted by the path strategy before it
	// falls back to directory grouping.
	PathPatterns []string
}

// Aggregator reduces a drift signal set pass by pass: each strategy
// buckets only the signals left ungrouped by the previous pass.
type Aggregator struct {
	strategies   []Strategy
	minGroupSize int
}

// NewAggregator validates the configuration and builds the strategy chain.
// An unknown built-in name fails here, not mid-run.
func NewAggregator(cfg Config) (*Aggregator, error) {
	passes := cfg.Passes
	if passes == nil {
		passes = BuiltinPasses(DefaultStrategies...)
	}
	strategies := make([]Strategy, 0, len(passes))
	for _, p := range passes {
		if p.strategy != nil {
			strategies = append(strategies, p.strategy)
			continue
		}
		s, err := builtinStrategy(p.name, cfg.PathPatterns)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}

	size := cfg.MinGroupSize
	if size <= 0 {
		size = DefaultMinGroupSize
	}
	return &Aggregator{strategies: strategies, minGroupSize: size}, nil
}

// Aggregate runs the configured passes over the signal set. Group counts
// plus the ungrouped remainder always add back up to the input size.
func (a *Aggregator) Aggregate(signals []Signal) Result {
	res := Result{
		Groups:       []Group{},
		Ungrouped:    []Signal{},
		TotalSignals: len(signals),
	}

	working := signals
	for _, strat := range a.strategies {
		var leftover []Signal
		buckets := map[string][]Signal{}
		var order []string
		for _, sig := range working {
			key, ok := strat.Key(sig)
			if !ok {
				leftover = append(leftover, sig)
				continue
			}
			if _, seen := buckets[key]; !seen {
				order = append(order, key)
			}
			buckets[key] = append(buckets[key], sig)
		}
		for _, key := range order {
			members := buckets[key]
			if len(members) < a.minGroupSize {
				leftover = append(leftover, members...)
				continue
			}
			res.Groups = append(res.Groups, buildGroup(strat, key, members))
		}
		working = leftover
	}
	res.Ungrouped = append(res.Ungrouped, working...)

	if denom := len(res.Groups) + len(res.Ungrouped); denom > 0 {
		res.ReductionRatio = float64(res.TotalSignals) / float64(denom)
	}
	return res
}

func buildGroup(strat Strategy, key string, members []Signal) Group {
	g := Group{
		ID:             groupID(strat.Type(), key),
		GroupingKey:    GroupingKey{Strategy: strat.Type(), Value: key},
		Summary:        strat.Summarize(members, key),
		Signals:        members,
		TotalCount:     len(members),
		Representative: members[0],
	}
	for _, sig := range members {
		switch sig.Severity {
		case SeverityCritical:
			g.BySeverity.Critical++
		case SeverityWarning:
			g.BySeverity.Warning++
		case SeverityInfo:
			g.BySeverity.Info++
		}
		if sig.Severity == SeverityCritical && g.Representative.Severity != SeverityCritical {
			g.Representative = sig
		}
	}
	g.CommonSuggestion = commonSuggestion(members)
	return g
}

// commonSuggestion returns the suggested token shared by every member
// that carries a suggestion, or empty when they disagree.
func commonSuggestion(members []Signal) string {
	common := ""
	for _, sig := range members {
		token := firstSuggestedToken(sig)
		if token == "" {
			continue
		}
		if common == "" {
			common = token
			continue
		}
		if token != common {
			return ""
		}
	}
	return common
}

// groupID hashes "strategy:key" so the same logical group keeps its id
// across runs on unchanged input.
func groupID(strategy, key string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s:%s", strategy, key)
	return fmt.Sprintf("%016x", h.Sum64())
}
