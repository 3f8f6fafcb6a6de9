package drift

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Strategy buckets drift signals under string keys. Key returns false when
// the strategy does not apply to a signal; such signals pass untouched to
// the next strategy in the chain.
type Strategy interface {
	Type() string
	Key(sig Signal) (string, bool)
	Summarize(signals []Signal, key string) string
}

// Built-in strategy names, accepted by NewAggregator in configured order.
const (
	StrategyValue      = "value"
	StrategySuggestion = "suggestion"
	StrategyPath       = "path"
	StrategyEntity     = "entity"
)

// valueStrategy groups hardcoded-value signals by their literal value.
// Other drift types carry more specific classification and are left for
// later strategies.
type valueStrategy struct{}

func (valueStrategy) Type() string { return StrategyValue }

func (valueStrategy) Key(sig Signal) (string, bool) {
	if sig.Type != TypeHardcodedValue || sig.ActualValue == "" {
		return "", false
	}
	return sig.ActualValue, true
}

func (valueStrategy) Summarize(signals []Signal, key string) string {
	return fmt.Sprintf("%d occurrences of hardcoded value %q", len(signals), key)
}

// suggestionStrategy groups by the first suggested replacement token,
// parsed from the "value → token (confidence)" suggestion form.
type suggestionStrategy struct{}

func (suggestionStrategy) Type() string { return StrategySuggestion }

func (suggestionStrategy) Key(sig Signal) (string, bool) {
	token := firstSuggestedToken(sig)
	return token, token != ""
}

func (suggestionStrategy) Summarize(signals []Signal, key string) string {
	return fmt.Sprintf("%d values that should use token %q", len(signals), key)
}

// firstSuggestedToken extracts the token name from a signal's first
// suggestion. Suggestions read "value → token (confidence)"; the
// confidence suffix is optional.
func firstSuggestedToken(sig Signal) string {
	if len(sig.Suggestions) == 0 {
		return ""
	}
	s := sig.Suggestions[0]
	if i := strings.Index(s, "→"); i >= 0 {
		s = s[i+len("→"):]
	}
	if i := strings.LastIndex(s, "("); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// pathStrategy groups by the first matching configured glob pattern,
// falling back to the containing directory.
type pathStrategy struct {
	patterns []string
}

func (pathStrategy) Type() string { return StrategyPath }

func (s pathStrategy) Key(sig Signal) (string, bool) {
	if sig.FilePath == "" {
		return "", false
	}
	for _, pat := range s.patterns {
		if ok, err := doublestar.Match(pat, sig.FilePath); err == nil && ok {
			return pat, true
		}
	}
	return path.Dir(sig.FilePath), true
}

func (pathStrategy) Summarize(signals []Signal, key string) string {
	return fmt.Sprintf("%d drift signals under %s", len(signals), key)
}

// entityStrategy groups by the originating component or entity id.
type entityStrategy struct{}

func (entityStrategy) Type() string { return StrategyEntity }

func (entityStrategy) Key(sig Signal) (string, bool) {
	return sig.EntityID, sig.EntityID != ""
}

func (entityStrategy) Summarize(signals []Signal, key string) string {
	seen := map[Type]bool{}
	var types []string
	for _, sig := range signals {
		if !seen[sig.Type] {
			seen[sig.Type] = true
			types = append(types, string(sig.Type))
		}
	}
	sort.Strings(types)
	return fmt.Sprintf("%d drift signals in %s (%s)", len(signals), key, strings.Join(types, ", "))
}

// builtinStrategy resolves a built-in name. The path strategy is the only
// one that takes configuration.
func builtinStrategy(name string, pathPatterns []string) (Strategy, error) {
	switch name {
	case StrategyValue:
		return valueStrategy{}, nil
	case StrategySuggestion:
		return suggestionStrategy{}, nil
	case StrategyPath:
		return pathStrategy{patterns: pathPatterns}, nil
	case StrategyEntity:
		return entityStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown grouping strategy %q", name)
}
