package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/driftlens/driftlens/pkg/util"
	"github.com/driftlens/driftlens/pkg/watch"
)

func runWatch(cfg *ProjectConfig, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	root := fs.String("root", ".", "project directory to watch")
	debounce := fs.Int("debounce", 0, "debounce window in milliseconds (default 200)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cache, err := util.NewFileCache(util.DefaultMaxCachedFiles, slog.Default())
	if err != nil {
		return err
	}
	defer cache.Close()

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	w, err := watch.New(watch.Options{
		DebounceMs: *debounce,
		Scan:       resolveScanConfig(cfg),
	}, cache, func(ev watch.Event) {
		if ev.Removed {
			red.Printf("- %s\n", ev.Path)
			return
		}
		green.Printf("+ %s  (%d signals)\n", ev.Path, len(ev.Result.Signals))
	}, slog.Default())
	if err != nil {
		return err
	}

	if err := w.Start(*root); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", *root)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
