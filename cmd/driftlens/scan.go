package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/driftlens/driftlens/pkg/component"
	"github.com/driftlens/driftlens/pkg/scanner"
	"github.com/driftlens/driftlens/pkg/signal"
	"github.com/driftlens/driftlens/pkg/store"
)

// newScanner wires the tree-sitter component detector into the extractor
// set. The returned cleanup frees the parsers.
func newScanner() (*scanner.Scanner, func()) {
	det := component.NewDetector(slog.Default())
	return scanner.NewScanner(nil, slog.Default(), det), det.Close
}

func runScan(cfg *ProjectConfig, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	root := fs.String("root", ".", "project directory to scan")
	storeFlag := fs.String("store", "", "sqlite store path (default "+defaultStorePath+")")
	noSave := fs.Bool("no-save", false, "do not persist the scan")
	asJSON := fs.Bool("json", false, "print the full scan result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc, done := newScanner()
	defer done()
	res, err := sc.Run(*root, resolveScanConfig(cfg))
	if err != nil {
		return err
	}

	if *asJSON {
		return printJSON(res)
	}
	printScanReport(*root, res)

	if !*noSave {
		st, err := store.Open(resolveStorePath(*storeFlag, cfg))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		id, err := st.SaveScan(*root, res)
		if err != nil {
			return fmt.Errorf("save scan: %w", err)
		}
		fmt.Printf("\nSaved scan %s\n", id)
	}
	return nil
}

// loadSignals returns the signal set a command operates on: a fresh scan
// of root when given, otherwise a stored scan (explicit id or latest).
// The returned store, when non-nil, is open and owned by the caller.
func loadSignals(cfg *ProjectConfig, root, scanID, storeFlag string) ([]signal.RawSignal, string, *store.Store, error) {
	if root != "" {
		sc, done := newScanner()
		defer done()
		res, err := sc.Run(root, resolveScanConfig(cfg))
		if err != nil {
			return nil, "", nil, err
		}
		return res.Signals, "", nil, nil
	}

	st, err := store.Open(resolveStorePath(storeFlag, cfg))
	if err != nil {
		return nil, "", nil, fmt.Errorf("open store: %w", err)
	}

	var rec *store.ScanRecord
	if scanID != "" {
		rec, err = st.GetScan(scanID)
	} else {
		rec, err = st.LatestScan()
	}
	if err != nil {
		_ = st.Close()
		return nil, "", nil, err
	}
	if rec == nil {
		_ = st.Close()
		return nil, "", nil, fmt.Errorf("no stored scans, run 'driftlens scan' first")
	}
	return rec.Result.Signals, rec.ID, st, nil
}
