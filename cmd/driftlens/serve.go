package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/driftlens/driftlens/pkg/mcp"
	"github.com/driftlens/driftlens/pkg/mcplog"
	"github.com/driftlens/driftlens/pkg/store"
)

func runServe(cfg *ProjectConfig, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	storeFlag := fs.String("store", "", "sqlite store path")
	mcpLog := fs.String("mcp-log", "", "JSONL tool-call log path (empty disables logging)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := store.Open(resolveStorePath(*storeFlag, cfg))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logPath := *mcpLog
	if logPath == "" && cfg != nil {
		logPath = cfg.MCPLog
	}
	toolLog, err := mcplog.NewLogger(logPath)
	if err != nil {
		return err
	}
	if toolLog != nil {
		defer toolLog.Close()
	}

	sc, done := newScanner()
	defer done()
	srv := mcp.NewServer(sc, st, toolLog, slog.Default())
	return srv.ServeStdio()
}
