package synth

import (
	"sort"

	"github.com/driftlens/driftlens/pkg/match"
)

// sample is one distinct literal value with its occurrence count, reduced
// to a px magnitude for clustering.
type sample struct {
	raw   string
	px    float64
	count int
}

// cluster is a group of samples close enough to share one token.
type cluster struct {
	samples []sample
}

// rep returns the cluster representative: the most frequent sample,
// breaking ties toward the smaller magnitude for determinism.
func (c cluster) rep() sample {
	best := c.samples[0]
	for _, s := range c.samples[1:] {
		if s.count > best.count || (s.count == best.count && s.px < best.px) {
			best = s
		}
	}
	return best
}

// sources lists the literal values merged into the cluster, ascending.
func (c cluster) sources() []string {
	out := make([]string, len(c.samples))
	for i, s := range c.samples {
		out[i] = s.raw
	}
	return out
}

// tolerance controls when two neighboring magnitudes join one cluster.
type tolerance struct {
	abs float64 // absolute slack in px
	rel float64 // fraction of the smaller magnitude
}

// categoryTolerances per numeric input category. Breakpoints cluster only
// on exact equality: 768 and 800 are different design decisions.
var categoryTolerances = map[string]tolerance{
	InputSpacing:     {abs: 1, rel: 0.15},
	InputSizing:      {abs: 2, rel: 0.08},
	InputRadius:      {abs: 1, rel: 0.25},
	InputBorderWidth: {abs: 0.5, rel: 0.2},
	InputFontSize:    {abs: 0.5, rel: 0.10},
	InputBreakpoint:  {abs: 0, rel: 0},
	InputDuration:    {abs: 25, rel: 0.2},
}

// clusterNumeric groups samples by proximity under the category tolerance.
//
// Zero is always isolated: "no spacing" and "smallest real spacing" are
// different intents, so a zero-valued cluster never absorbs a non-zero
// neighbor no matter how near.
func clusterNumeric(samples []sample, tol tolerance) []cluster {
	if len(samples) == 0 {
		return nil
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].px != samples[j].px {
			return samples[i].px < samples[j].px
		}
		return samples[i].raw < samples[j].raw
	})

	var zero cluster
	var rest []sample
	for _, s := range samples {
		if s.px == 0 {
			zero.samples = append(zero.samples, s)
		} else {
			rest = append(rest, s)
		}
	}

	var out []cluster
	if len(zero.samples) > 0 {
		out = append(out, zero)
	}

	var cur cluster
	for _, s := range rest {
		if len(cur.samples) == 0 {
			cur.samples = []sample{s}
			continue
		}
		last := cur.samples[len(cur.samples)-1]
		gap := s.px - last.px
		slack := tol.abs
		if rel := tol.rel * last.px; rel > slack {
			slack = rel
		}
		if gap <= slack {
			cur.samples = append(cur.samples, s)
			continue
		}
		out = append(out, cur)
		cur = cluster{samples: []sample{s}}
	}
	if len(cur.samples) > 0 {
		out = append(out, cur)
	}
	return out
}

// collectSamples folds identical literals into counted samples.
func collectSamples(values []ExtractedValue) []sample {
	counts := map[string]int{}
	for _, v := range values {
		counts[v.Value]++
	}
	var out []sample
	for raw, count := range counts {
		px, ok := match.ParseMagnitude(raw)
		if !ok {
			continue
		}
		out = append(out, sample{raw: raw, px: px, count: count})
	}
	return out
}
