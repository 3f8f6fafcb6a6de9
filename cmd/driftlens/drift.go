package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/driftlens/driftlens/pkg/drift"
	"github.com/driftlens/driftlens/pkg/store"
	"github.com/driftlens/driftlens/pkg/synth"
)

func runDrift(cfg *ProjectConfig, args []string) error {
	fs := flag.NewFlagSet("drift", flag.ContinueOnError)
	root := fs.String("root", "", "scan this directory instead of loading a stored scan")
	scanID := fs.String("scan", "", "stored scan id (default: latest)")
	storeFlag := fs.String("store", "", "sqlite store path")
	input := fs.String("input", "", "JSON file of pre-classified drift signals")
	strategies := fs.String("strategies", "", "comma-separated grouping strategies in priority order")
	minGroup := fs.Int("min-group", 0, "minimum signals per group (default 2)")
	asJSON := fs.Bool("json", false, "print the aggregation result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		signals []drift.Signal
		scanRef string
		st      *store.Store
	)
	if *input != "" {
		data, err := os.ReadFile(*input)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, &signals); err != nil {
			return fmt.Errorf("parse drift signals %q: %w", *input, err)
		}
	} else {
		raw, ref, s, err := loadSignals(cfg, *root, *scanID, *storeFlag)
		if err != nil {
			return err
		}
		st, scanRef = s, ref
		tokens := synth.Synthesize(synth.FromSignals(raw))
		signals = drift.Detect(raw, tokens.Tokens)
	}
	if st != nil {
		defer st.Close()
	}

	res, err := aggregateDrift(cfg, *strategies, *minGroup, signals)
	if err != nil {
		return err
	}
	if st != nil && scanRef != "" {
		if serr := st.SaveDrift(scanRef, res); serr != nil {
			return fmt.Errorf("save drift result: %w", serr)
		}
	}

	if *asJSON {
		return printJSON(res)
	}
	printDriftReport(res)
	return nil
}

// aggregateDrift builds the aggregator from flags over config file
// values and runs it.
func aggregateDrift(cfg *ProjectConfig, strategies string, minGroup int, signals []drift.Signal) (drift.Result, error) {
	dcfg := drift.Config{MinGroupSize: minGroup}
	if cfg != nil {
		dcfg.PathPatterns = cfg.Drift.PathPatterns
		if cfg.Drift.Strategies != nil {
			dcfg.Passes = drift.BuiltinPasses(cfg.Drift.Strategies...)
		}
		if dcfg.MinGroupSize == 0 {
			dcfg.MinGroupSize = cfg.Drift.MinGroupSize
		}
	}
	if strategies != "" {
		dcfg.Passes = drift.BuiltinPasses(splitList(strategies)...)
	}

	agg, err := drift.NewAggregator(dcfg)
	if err != nil {
		return drift.Result{}, err
	}
	return agg.Aggregate(signals), nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
