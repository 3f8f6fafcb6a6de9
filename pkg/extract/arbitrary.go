package extract

import (
	"regexp"
	"strings"

	"github.com/driftlens/driftlens/pkg/signal"
)

// arbitraryRe matches utility-class bracket syntax: bg-[#fff], p-[13px],
// w-[calc(100%-2rem)]. The bracketed literal bypasses the token scale.
var arbitraryRe = regexp.MustCompile(`([\w-]+)-\[([^\]]+)\]`)

// ArbitraryValueExtractor finds arbitrary values in utility class strings.
type ArbitraryValueExtractor struct{}

func (ArbitraryValueExtractor) Name() string { return "arbitrary" }

func (ArbitraryValueExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	var out []signal.RawSignal

	for lineNo, line := range strings.Split(content, "\n") {
		for _, m := range arbitraryRe.FindAllStringSubmatchIndex(line, -1) {
			utility := line[m[2]:m[3]]
			inner := line[m[4]:m[5]]

			// bg-[var(--brand)] and friends already reference a token.
			if IsTokenReference(inner) || isDynamic(inner) {
				continue
			}
			out = append(out, signal.New(signal.TypeArbitraryValue, inner,
				signal.Location{Path: path, Line: lineNo + 1, Column: m[0] + 1},
				ctx,
				signal.Metadata{Property: utility}))
		}
	}
	return out
}
