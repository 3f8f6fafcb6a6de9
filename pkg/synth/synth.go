package synth

import (
	"fmt"
	"sort"

	"github.com/driftlens/driftlens/pkg/match"
)

// numericCats lists the numeric input categories in emission order, with
// their output category, value kind, and token name prefix.
var numericCats = []struct {
	input  string
	cat    Category
	kind   ValueKind
	prefix string
}{
	{InputSpacing, CategorySpacing, KindSpacing, "spacing"},
	{InputSizing, CategorySpacing, KindSpacing, "size"},
	{InputRadius, CategoryRadius, KindBorder, "radius"},
	{InputBorderWidth, CategoryBorder, KindBorder, "border-width"},
	{InputFontSize, CategoryTypography, KindTypography, "font-size"},
	{InputBreakpoint, CategoryBreakpoint, KindRaw, "breakpoint"},
	{InputDuration, CategoryOther, KindRaw, "duration"},
}

// minFontSizePx filters extraction noise below realistic typography.
const minFontSizePx = 8

// Synthesize reduces the full extracted value distribution of a scan to a
// canonical token set plus a generated stylesheet. Clustering is a global
// reduction: boundaries depend on every observed value, so the caller runs
// it once after all extraction has merged.
func Synthesize(values []ExtractedValue) Result {
	res := Result{Tokens: []DesignToken{}}
	if len(values) == 0 {
		return res
	}

	byCat := map[string][]ExtractedValue{}
	for _, v := range values {
		byCat[v.Category] = append(byCat[v.Category], v)
	}

	var tokens []DesignToken
	tokens = append(tokens, synthesizeColors(byCat[InputColor])...)

	// Breakpoint magnitudes claim their values exclusively: a width that
	// also appears in a media query is a breakpoint, not a size.
	breakpointPx := map[float64]bool{}
	for _, s := range collectSamples(byCat[InputBreakpoint]) {
		breakpointPx[s.px] = true
	}

	for _, nc := range numericCats {
		samples := collectSamples(byCat[nc.input])
		switch nc.input {
		case InputSizing:
			samples = filterSamples(samples, func(s sample) bool {
				return !breakpointPx[s.px]
			})
		case InputFontSize:
			samples = filterSamples(samples, func(s sample) bool {
				return s.px >= minFontSizePx
			})
		}
		clusters := clusterNumeric(samples, categoryTolerances[nc.input])
		tokens = append(tokens, emitNumericTokens(nc.cat, nc.kind, nc.prefix, clusters, byCat[nc.input])...)
	}

	tokens = append(tokens, synthesizeShadows(byCat[InputShadow])...)
	tokens = mergeDuplicates(tokens)

	res.Tokens = tokens
	res.CSS = GenerateCSS(tokens)
	return res
}

func filterSamples(samples []sample, keep func(sample) bool) []sample {
	out := samples[:0]
	for _, s := range samples {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// emitNumericTokens names clusters ascending by representative magnitude.
// A zero cluster is always "<prefix>-none" with the literal value "0",
// never folded into the smallest non-zero cluster.
func emitNumericTokens(cat Category, kind ValueKind, prefix string, clusters []cluster, values []ExtractedValue) []DesignToken {
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].rep().px < clusters[j].rep().px
	})

	usedBy := contextsByValue(values)

	var out []DesignToken
	seq := 0
	for _, c := range clusters {
		rep := c.rep()
		var name, value string
		if rep.px == 0 {
			name = prefix + "-none"
			value = "0"
		} else {
			seq++
			name = fmt.Sprintf("%s-%d", prefix, seq)
			value = rep.raw
		}
		sources := c.sources()
		out = append(out, DesignToken{
			ID:       tokenID(cat, name, value),
			Name:     name,
			Category: cat,
			Value:    Value{Kind: kind, Raw: value},
			Source:   sources,
			UsedBy:   mergeContexts(usedBy, sources),
		})
	}
	return out
}

// contextsByValue indexes the distinct contexts each literal was seen in.
func contextsByValue(values []ExtractedValue) map[string][]string {
	idx := map[string]map[string]bool{}
	for _, v := range values {
		if v.Context == "" {
			continue
		}
		if idx[v.Value] == nil {
			idx[v.Value] = map[string]bool{}
		}
		idx[v.Value][v.Context] = true
	}
	out := make(map[string][]string, len(idx))
	for val, set := range idx {
		for ctx := range set {
			out[val] = append(out[val], ctx)
		}
		sort.Strings(out[val])
	}
	return out
}

func mergeContexts(usedBy map[string][]string, sources []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, src := range sources {
		for _, ctx := range usedBy[src] {
			if !seen[ctx] {
				seen[ctx] = true
				out = append(out, ctx)
			}
		}
	}
	sort.Strings(out)
	return out
}

// synthesizeColors dedups by canonical hex, splits the palette into a
// neutral (grayscale-like) scale and accent colors, and names the scale so
// lightness strictly follows the numeric step: 50 lightest, 950 darkest.
func synthesizeColors(values []ExtractedValue) []DesignToken {
	type colorGroup struct {
		c     match.RGB
		hex   string
		raws  []string
		count int
		ctxs  map[string]bool
	}
	groups := map[string]*colorGroup{}
	var order []string
	for _, v := range values {
		c, ok := match.ParseColor(v.Value)
		if !ok {
			continue
		}
		key := c.Hex()
		g := groups[key]
		if g == nil {
			g = &colorGroup{c: c, hex: key, ctxs: map[string]bool{}}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
		if !contains(g.raws, v.Value) {
			g.raws = append(g.raws, v.Value)
		}
		if v.Context != "" {
			g.ctxs[v.Context] = true
		}
	}

	var neutrals, accents []*colorGroup
	for _, key := range order {
		g := groups[key]
		if g.c.Neutral() {
			neutrals = append(neutrals, g)
		} else {
			accents = append(accents, g)
		}
	}

	var out []DesignToken
	emit := func(g *colorGroup, name string) {
		var ctxs []string
		for ctx := range g.ctxs {
			ctxs = append(ctxs, ctx)
		}
		sort.Strings(ctxs)
		sort.Strings(g.raws)
		out = append(out, DesignToken{
			ID:       tokenID(CategoryColor, name, g.hex),
			Name:     name,
			Category: CategoryColor,
			Value:    Value{Kind: KindColor, Raw: g.hex},
			Source:   g.raws,
			UsedBy:   ctxs,
		})
	}

	// Lightest first, so ascending steps read darker.
	sort.Slice(neutrals, func(i, j int) bool {
		li, lj := neutrals[i].c.Lightness(), neutrals[j].c.Lightness()
		if li != lj {
			return li > lj
		}
		return neutrals[i].hex < neutrals[j].hex
	})
	steps := assignNeutralSteps(len(neutrals))
	for i, g := range neutrals {
		emit(g, fmt.Sprintf("color-neutral-%d", steps[i]))
	}

	sort.Slice(accents, func(i, j int) bool {
		if accents[i].count != accents[j].count {
			return accents[i].count > accents[j].count
		}
		return accents[i].hex < accents[j].hex
	})
	for i, g := range accents {
		emit(g, fmt.Sprintf("color-%d", i+1))
	}
	return out
}

// synthesizeShadows dedups exact literals: shadow stacks are compound
// values with no meaningful numeric distance.
func synthesizeShadows(values []ExtractedValue) []DesignToken {
	counts := map[string]int{}
	ctxs := map[string]map[string]bool{}
	var order []string
	for _, v := range values {
		if counts[v.Value] == 0 {
			order = append(order, v.Value)
			ctxs[v.Value] = map[string]bool{}
		}
		counts[v.Value]++
		if v.Context != "" {
			ctxs[v.Value][v.Context] = true
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})

	var out []DesignToken
	for i, val := range order {
		name := fmt.Sprintf("shadow-%d", i+1)
		var used []string
		for ctx := range ctxs[val] {
			used = append(used, ctx)
		}
		sort.Strings(used)
		out = append(out, DesignToken{
			ID:       tokenID(CategoryShadow, name, val),
			Name:     name,
			Category: CategoryShadow,
			Value:    Value{Kind: KindShadow, Raw: val},
			Source:   []string{val},
			UsedBy:   used,
		})
	}
	return out
}

// mergeDuplicates enforces per-category value uniqueness: when two tokens
// in one category normalize to the same value, the later one collapses
// into the earlier as an alias.
func mergeDuplicates(tokens []DesignToken) []DesignToken {
	type key struct {
		cat  Category
		norm string
	}
	index := map[key]int{}
	out := tokens[:0]
	for _, t := range tokens {
		k := key{t.Category, normalizeTokenValue(t)}
		if i, ok := index[k]; ok {
			kept := &out[i]
			kept.Aliases = append(kept.Aliases, t.Name)
			kept.Source = mergeSorted(kept.Source, t.Source)
			kept.UsedBy = mergeSorted(kept.UsedBy, t.UsedBy)
			continue
		}
		index[k] = len(out)
		out = append(out, t)
	}
	return out
}

// normalizeTokenValue reduces a token value to its comparison form: px
// magnitude for numeric values, the literal otherwise.
func normalizeTokenValue(t DesignToken) string {
	if px, ok := match.ParseMagnitude(t.Value.Raw); ok {
		return fmt.Sprintf("%g", px)
	}
	return t.Value.Raw
}

func mergeSorted(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range append(a, b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
