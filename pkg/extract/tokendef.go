package extract

import (
	"regexp"
	"strings"

	"github.com/driftlens/driftlens/pkg/signal"
)

// customPropRe matches a CSS custom property definition site.
var customPropRe = regexp.MustCompile(`(--[A-Za-z][A-Za-z0-9-]*)\s*:\s*([^;}\n]+)`)

// scssDefRe matches an SCSS variable definition ($name: value).
var scssDefRe = regexp.MustCompile(`^\s*(\$[A-Za-z_][A-Za-z0-9_-]*)\s*:\s*([^;]+);`)

// TokenDefinitionExtractor records where the token vocabulary itself is
// declared: CSS custom properties and SCSS variables. These signals carry
// IsTokenized context and back the aggregator's cross-source dedup.
type TokenDefinitionExtractor struct{}

func (TokenDefinitionExtractor) Name() string { return "token-definition" }

func (TokenDefinitionExtractor) Extract(content, path string) []signal.RawSignal {
	ctx := fileContext(path)
	ctx.IsTokenized = true
	var out []signal.RawSignal

	for lineNo, line := range strings.Split(content, "\n") {
		for _, m := range customPropRe.FindAllStringSubmatchIndex(line, -1) {
			name := line[m[2]:m[3]]
			value := strings.TrimSpace(line[m[4]:m[5]])
			out = append(out, signal.New(signal.TypeTokenDefinition, value,
				signal.Location{Path: path, Line: lineNo + 1, Column: m[0] + 1},
				ctx, signal.Metadata{Name: name}))
		}
		if m := scssDefRe.FindStringSubmatchIndex(line); m != nil {
			name := line[m[2]:m[3]]
			value := strings.TrimSpace(line[m[4]:m[5]])
			out = append(out, signal.New(signal.TypeTokenDefinition, value,
				signal.Location{Path: path, Line: lineNo + 1, Column: m[2] + 1},
				ctx, signal.Metadata{Name: name}))
		}
	}
	return out
}
