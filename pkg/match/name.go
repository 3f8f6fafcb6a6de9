package match

import (
	"regexp"
	"strings"
)

var wordSplitRe = regexp.MustCompile(`[^a-z0-9]+`)

// NameScore scores how well a query names a target token, 0 to 100.
// Exact matches score 100; substring containment and shared words score
// by coverage; anything else falls back to edit distance with a fuzziness
// penalty.
func NameScore(query, target string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))
	if q == "" || t == "" {
		return 0
	}
	if q == t {
		return 100
	}

	if strings.Contains(t, q) || strings.Contains(q, t) {
		shorter, longer := len(q), len(t)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return clampScore(70 + float64(shorter)/float64(longer)*50)
	}

	qWords := splitWords(q)
	tWords := splitWords(t)
	if shared := sharedWords(qWords, tWords); shared > 0 {
		frac := float64(shared) / float64(len(qWords))
		return clampScore(50 + frac*30)
	}

	longest := len(q)
	if len(t) > longest {
		longest = len(t)
	}
	sim := (1 - float64(levenshtein(q, t))/float64(longest)) * 100
	return clampScore(sim - 20)
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func splitWords(s string) []string {
	var out []string
	for _, w := range wordSplitRe.Split(s, -1) {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

func sharedWords(a, b []string) int {
	set := map[string]bool{}
	for _, w := range b {
		set[w] = true
	}
	n := 0
	for _, w := range a {
		if set[w] {
			n++
		}
	}
	return n
}

// levenshtein computes edit distance with a two-row table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
