package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ytdigest/internal/logger"
	"ytdigest/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory for transcript files and summarize them",
	Long: `watch monitors the configured input directory for .srt and .json
transcript files. Each new file is chunked and summarized like a fetched
transcript, then moved to the processed directory.`,
	Args: cobra.NoArgs,
	RunE: runWatch,

	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)
	proc, err := buildProcessor(cfg, log)
	if err != nil {
		return err
	}

	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Processed, cfg.Output.Dir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	w, err := watcher.New(cfg.Paths.Input, proc.ProcessFile, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "Watching %s (output: %s). Press Ctrl+C to stop.", cfg.Paths.Input, cfg.Output.Dir)

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	log.Info(ctx, "Shut down")
	return nil
}
