package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ytdigest/internal/chunker"
	"ytdigest/internal/config"
	"ytdigest/internal/embedding"
	"ytdigest/internal/logger"
	"ytdigest/internal/processor"
	"ytdigest/internal/summarizer"
	"ytdigest/internal/transcript"
	"ytdigest/pkg/executor"
)

var (
	flagConfig       string
	flagOutput       string
	flagFormat       string
	flagChunking     string
	flagChunkSize    int
	flagChunkOverlap int
	flagInterval     int
	flagModel        string
	flagLanguages    []string
	flagDocx         bool
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "ytdigest [url|video-id]...",
	Short: "Summarize YouTube videos from their transcripts",
	Long: `ytdigest fetches the transcript of each given YouTube video, splits it
into chunks sized for the model (strategy picked automatically from the
video length unless overridden), summarizes the chunks with Gemini, and
writes one markdown report per video.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummarize,

	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: config.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (default: summaries)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "summary format: concise, detailed, bullet_points")
	rootCmd.Flags().StringVar(&flagChunking, "chunking", "", "chunking strategy: none, recursive, semantic, timestamp, auto")
	rootCmd.Flags().IntVar(&flagChunkSize, "chunk-size", 0, "chunk size in tokens (default: 1000)")
	rootCmd.Flags().IntVar(&flagChunkOverlap, "chunk-overlap", 0, "chunk overlap in tokens (default: 200)")
	rootCmd.Flags().IntVar(&flagInterval, "interval", 0, "timestamp chunking interval in seconds (default: 300)")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "Gemini model to use")
	rootCmd.Flags().StringSliceVar(&flagLanguages, "language", nil, "preferred transcript languages (default: en)")
	rootCmd.Flags().BoolVar(&flagDocx, "docx", false, "also write a .docx report")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.Dir = flagOutput
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flagFormat
	}
	if cmd.Flags().Changed("chunking") {
		cfg.Chunking.Strategy = flagChunking
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.Chunking.MaxChunkTokens = flagChunkSize
	}
	if cmd.Flags().Changed("chunk-overlap") {
		cfg.Chunking.OverlapTokens = flagChunkOverlap
	}
	if cmd.Flags().Changed("interval") {
		cfg.Chunking.TimestampIntervalSeconds = flagInterval
	}
	if cmd.Flags().Changed("model") {
		cfg.Gemini.Model = flagModel
	}
	if cmd.Flags().Changed("language") {
		cfg.Transcript.Languages = flagLanguages
	}
	if cmd.Flags().Changed("docx") {
		cfg.Output.Docx = flagDocx
	}
	if flagVerbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildProcessor(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	exec := executor.New()
	fetcher := transcript.NewFetcher(exec, cfg.Transcript.YtDlpPath, cfg.Transcript.Languages, !cfg.Transcript.ManualOnly, log)
	provider := embedding.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.EmbeddingModel, log)

	chunkCfg, err := cfg.Chunking.ChunkerConfig()
	if err != nil {
		return nil, err
	}
	chk, err := chunker.New(chunkCfg, provider)
	if err != nil {
		return nil, err
	}

	sum := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	return processor.New(cfg, fetcher, chk, sum, log), nil
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)
	proc, err := buildProcessor(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	successCount := 0
	failCount := 0
	for i, url := range args {
		if ctx.Err() != nil {
			break
		}
		log.Info(ctx, "[%d/%d] %s", i+1, len(args), url)
		if err := proc.ProcessURL(ctx, url); err != nil {
			log.Error(ctx, "Failed to process %s: %v", url, err)
			failCount++
			continue
		}
		successCount++
	}

	log.Info(ctx, "Done: %d succeeded, %d failed", successCount, failCount)
	if failCount > 0 {
		return fmt.Errorf("%d of %d videos failed", failCount, len(args))
	}
	return nil
}
