package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/driftlens/driftlens/pkg/drift"
	"github.com/driftlens/driftlens/pkg/scanner"
	"github.com/driftlens/driftlens/pkg/synth"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printScanReport(root string, res *scanner.ScanResult) {
	color.New(color.FgCyan, color.Bold).Printf("Scan of %s\n\n", root)

	fmt.Printf("  Files discovered  %d\n", res.Stats.FilesDiscovered)
	fmt.Printf("  Files extracted   %d\n", res.Stats.FilesExtracted)
	if res.Stats.FilesFailed > 0 {
		color.New(color.FgRed).Printf("  Files failed      %d\n", res.Stats.FilesFailed)
	}
	fmt.Printf("  Signals           %d\n", res.Stats.SignalsExtracted)
	fmt.Printf("  Time              %dms\n", res.Stats.TotalTimeMs)

	counts := map[string]int{}
	for _, sig := range res.Signals {
		counts[string(sig.Type)]++
	}
	if len(counts) == 0 {
		return
	}

	types := make([]string, 0, len(counts))
	width := 0
	for t := range counts {
		types = append(types, t)
		if len(t) > width {
			width = len(t)
		}
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return types[i] < types[j]
	})

	fmt.Println()
	fmt.Println("Signals by type")
	for _, t := range types {
		fmt.Printf("  %-*s  %d\n", width, t, counts[t])
	}
}

func printTokenReport(res synth.Result) {
	if len(res.Tokens) == 0 {
		fmt.Println("No tokens synthesized.")
		return
	}

	byCat := map[synth.Category][]synth.DesignToken{}
	var cats []synth.Category
	for _, tok := range res.Tokens {
		if _, seen := byCat[tok.Category]; !seen {
			cats = append(cats, tok.Category)
		}
		byCat[tok.Category] = append(byCat[tok.Category], tok)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	dim := color.New(color.FgHiBlack).SprintFunc()
	for i, cat := range cats {
		if i > 0 {
			fmt.Println()
		}
		color.New(color.FgCyan, color.Bold).Printf("%s  (%d)\n", cat, len(byCat[cat]))

		width := 0
		for _, tok := range byCat[cat] {
			if len(tok.Name) > width {
				width = len(tok.Name)
			}
		}
		for _, tok := range byCat[cat] {
			line := fmt.Sprintf("  %-*s  %s", width, tok.Name, tok.Value.Raw)
			if len(tok.Aliases) > 0 {
				line += "  " + dim("(aka "+strings.Join(tok.Aliases, ", ")+")")
			}
			fmt.Println(line)
		}
	}
}

func printDriftReport(res drift.Result) {
	color.New(color.FgCyan, color.Bold).
		Printf("%d drift signals → %d groups, %d ungrouped  (%.1fx reduction)\n",
			res.TotalSignals, len(res.Groups), len(res.Ungrouped), res.ReductionRatio)

	for _, g := range res.Groups {
		fmt.Println()
		fmt.Printf("%s  [%s: %s]\n", severityTag(g), g.GroupingKey.Strategy, g.GroupingKey.Value)
		fmt.Printf("  %s\n", g.Summary)
		rep := g.Representative
		if rep.FilePath != "" {
			loc := rep.FilePath
			if rep.Line > 0 {
				loc = fmt.Sprintf("%s:%d", rep.FilePath, rep.Line)
			}
			fmt.Printf("  e.g. %s\n", loc)
		}
		if g.CommonSuggestion != "" {
			color.New(color.FgGreen).Printf("  fix: use %s\n", g.CommonSuggestion)
		}
	}

	if len(res.Ungrouped) > 0 {
		fmt.Println()
		color.New(color.FgHiBlack).Printf("%d signals did not group\n", len(res.Ungrouped))
	}
}

// severityTag renders the per-severity member counts of a group, colored
// by level.
func severityTag(g drift.Group) string {
	var parts []string
	if g.BySeverity.Critical > 0 {
		parts = append(parts, color.New(color.FgRed, color.Bold).Sprintf("%d critical", g.BySeverity.Critical))
	}
	if g.BySeverity.Warning > 0 {
		parts = append(parts, color.New(color.FgYellow).Sprintf("%d warning", g.BySeverity.Warning))
	}
	if g.BySeverity.Info > 0 {
		parts = append(parts, color.New(color.FgBlue).Sprintf("%d info", g.BySeverity.Info))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d signals", g.TotalCount)
	}
	return strings.Join(parts, ", ")
}
