package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	var cmdErr error
	switch command := os.Args[1]; command {
	case "scan":
		cmdErr = runScan(cfg, os.Args[2:])
	case "synth":
		cmdErr = runSynth(cfg, os.Args[2:])
	case "drift":
		cmdErr = runDrift(cfg, os.Args[2:])
	case "watch":
		cmdErr = runWatch(cfg, os.Args[2:])
	case "serve":
		cmdErr = runServe(cfg, os.Args[2:])
	case "version":
		fmt.Printf("driftlens %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "driftlens: %v\n", cmdErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: driftlens <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan       Scan a project for hardcoded design values")
	fmt.Println("  synth      Synthesize design tokens from a scan")
	fmt.Println("  drift      Group drift findings into actionable clusters")
	fmt.Println("  watch      Watch for file changes and re-extract incrementally")
	fmt.Println("  serve      Start the MCP server on stdin/stdout")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
