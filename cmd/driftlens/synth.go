package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/driftlens/driftlens/pkg/synth"
)

func runSynth(cfg *ProjectConfig, args []string) error {
	fs := flag.NewFlagSet("synth", flag.ContinueOnError)
	root := fs.String("root", "", "scan this directory instead of loading a stored scan")
	scanID := fs.String("scan", "", "stored scan id (default: latest)")
	storeFlag := fs.String("store", "", "sqlite store path")
	cssOut := fs.String("css", "", "write the generated stylesheet to this file")
	asJSON := fs.Bool("json", false, "print tokens and CSS as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	signals, scanRef, st, err := loadSignals(cfg, *root, *scanID, *storeFlag)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	res := synth.Synthesize(synth.FromSignals(signals))
	if st != nil && scanRef != "" {
		if err := st.SaveTokens(scanRef, res); err != nil {
			return fmt.Errorf("save tokens: %w", err)
		}
	}

	if *asJSON {
		return printJSON(res)
	}
	printTokenReport(res)

	if *cssOut != "" {
		if err := os.WriteFile(*cssOut, []byte(res.CSS), 0o644); err != nil {
			return fmt.Errorf("write stylesheet: %w", err)
		}
		fmt.Printf("\nWrote %s\n", *cssOut)
	}
	return nil
}
