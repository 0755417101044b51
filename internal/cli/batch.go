package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/textsieve/textsieve/internal/worker"
)

var (
	batchOutDir  string
	batchSQLite  string
	batchWorkers int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Process many collections concurrently",
	Long: `Batch reads a manifest file listing collection sources (one file path
or URL per line, #-comments allowed) and processes them on a worker
pool. Collections run independently; items within each collection are
still processed in order, so every collection gets the same result it
would get from a standalone run.

Example:
  textsieve batch sources.txt --out-dir reports/
  textsieve batch sources.txt --workers 8 --sqlite runs.db`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "reports", "directory for per-collection JSON reports")
	batchCmd.Flags().StringVar(&batchSQLite, "sqlite", "", "persist every run into this SQLite database")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker count (0 = number of CPUs)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Concurrency.Workers = batchWorkers
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.Output.SQLitePath = batchSQLite
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	bp := worker.NewBatchProcessor(p, cfg.Concurrency.Workers,
		cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)

	results, err := bp.ProcessManifest(ctx, manifest)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Source, res.Error)
			continue
		}

		annotateWithLLM(ctx, cfg, res.Report)

		jsonPath := filepath.Join(batchOutDir, reportName(res.Source))
		if err := writeReport(ctx, cfg, res.Report, jsonPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Source, err)
			continue
		}

		s := res.Report.Summary
		fmt.Fprintf(os.Stderr, "✓ %s: %d processed, %d output → %s\n",
			res.Source, s.TotalProcessed, s.OutputItems, jsonPath)
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d succeeded, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(results))
	}
	return nil
}

// reportName derives a filesystem-safe report filename from a source
func reportName(src string) string {
	name := strings.TrimPrefix(src, "http://")
	name = strings.TrimPrefix(name, "https://")
	name = strings.TrimSuffix(name, filepath.Ext(name))
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	mapped = strings.Trim(mapped, "-")
	if mapped == "" {
		mapped = "collection"
	}
	return mapped + ".json"
}
