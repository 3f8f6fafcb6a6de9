package synth

// neutralSteps is the canonical scale naming, lightest to darkest.
var neutralSteps = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// assignNeutralSteps picks a step for each of n neutral tokens so that the
// names span the scale and step order follows lightness order: callers
// sort lightest first, and 50 is the lightest name.
func assignNeutralSteps(n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{500}
	}
	if n >= len(neutralSteps) {
		steps := make([]int, n)
		for i := range steps {
			if i < len(neutralSteps) {
				steps[i] = neutralSteps[i]
			} else {
				// More neutrals than scale names; overflow past 950.
				steps[i] = 950 + (i-len(neutralSteps)+1)*10
			}
		}
		return steps
	}
	steps := make([]int, n)
	for i := range steps {
		idx := i * (len(neutralSteps) - 1) / (n - 1)
		steps[i] = neutralSteps[idx]
	}
	return steps
}
