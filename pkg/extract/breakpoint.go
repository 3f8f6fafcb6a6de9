package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/driftlens/driftlens/pkg/signal"
)

// mediaBoundRe matches one (min|max)-(width|height) bound inside a media
// query. A query carrying both a min and a max bound yields two signals.
var mediaBoundRe = regexp.MustCompile(`\(\s*((?:min|max)-(?:width|height))\s*:\s*(\d*\.?\d+)(px|rem|em)\s*\)`)

// BreakpointExtractor finds media-query breakpoint bounds.
type BreakpointExtractor struct{}

func (BreakpointExtractor) Name() string { return "breakpoint" }

func (BreakpointExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	var out []signal.RawSignal

	for lineNo, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, "@media") {
			continue
		}
		for _, m := range mediaBoundRe.FindAllStringSubmatchIndex(line, -1) {
			feature := line[m[2]:m[3]]
			num := line[m[4]:m[5]]
			unit := line[m[6]:m[7]]

			n, err := strconv.ParseFloat(num, 64)
			if err != nil {
				continue
			}
			out = append(out, signal.New(signal.TypeBreakpoint, num+unit,
				signal.Location{Path: path, Line: lineNo + 1, Column: m[0] + 1},
				ctx,
				signal.Metadata{NumericValue: signal.Num(n), Unit: unit, Property: feature}))
		}
	}
	return out
}
