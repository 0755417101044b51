package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/textsieve/textsieve/internal/llm"
	"github.com/textsieve/textsieve/internal/model"
	"github.com/textsieve/textsieve/internal/pipeline"
	"github.com/textsieve/textsieve/internal/schema"
	"github.com/textsieve/textsieve/internal/sink"
)

var (
	outJSON         string
	outSQLite       string
	textField       string
	maxItems        int
	stripHTML       bool
	timeout         time.Duration
	minLength       int
	maxLength       int
	similarity      float64
	schemaPath      string
	noDedupe        bool
	noPII           bool
	noSentiment     bool
	noEntities      bool
	noKeywords      bool
	noLanguage      bool
	noReadability   bool
	flagOnly        bool
	removePII       bool
	includeOriginal bool
	llmEnabled      bool
	llmModel        string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <source>",
	Short: "Process one collection of text records",
	Long: `Run enriches and validates every record in a collection. The source is
a local JSON/JSONL file or an HTTP(S) URL serving one.

Example:
  textsieve run reviews.json
  textsieve run reviews.json --flag-only --remove-pii
  textsieve run https://example.com/items.json --schema rules.yaml --json out.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Output flags
	runCmd.Flags().StringVar(&outJSON, "json", "processed.json", "output JSON path")
	runCmd.Flags().StringVar(&outSQLite, "sqlite", "", "also persist the run into this SQLite database")
	runCmd.Flags().BoolVar(&flagOnly, "flag-only", false, "keep invalid items, flagged, instead of rejecting them")
	runCmd.Flags().BoolVar(&removePII, "remove-pii", false, "emit a redacted copy of texts containing PII")
	runCmd.Flags().BoolVar(&includeOriginal, "include-original", false, "carry all input fields into the output items")

	// Input flags
	runCmd.Flags().StringVar(&textField, "text-field", "text", "input field holding the subject text")
	runCmd.Flags().IntVar(&maxItems, "max-items", 0, "truncate the collection (0 = no limit)")
	runCmd.Flags().BoolVar(&stripHTML, "strip-html", false, "strip HTML markup from subject texts before analysis")
	runCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall run timeout")

	// Validation flags
	runCmd.Flags().IntVar(&minLength, "min-length", 0, "minimum text length in characters (0 = unbounded)")
	runCmd.Flags().IntVar(&maxLength, "max-length", 0, "maximum text length in characters (0 = unbounded)")
	runCmd.Flags().Float64Var(&similarity, "similarity", 0.85, "duplicate similarity threshold in [0,1]")
	runCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema file for field validation")
	runCmd.Flags().BoolVar(&noDedupe, "no-dedupe", false, "disable duplicate detection")
	runCmd.Flags().BoolVar(&noPII, "no-pii", false, "disable PII detection")

	// Enrichment flags
	runCmd.Flags().BoolVar(&noSentiment, "no-sentiment", false, "disable sentiment analysis")
	runCmd.Flags().BoolVar(&noEntities, "no-entities", false, "disable entity extraction")
	runCmd.Flags().BoolVar(&noKeywords, "no-keywords", false, "disable keyword extraction")
	runCmd.Flags().BoolVar(&noLanguage, "no-language", false, "disable language detection")
	runCmd.Flags().BoolVar(&noReadability, "no-readability", false, "disable readability scoring")

	// LLM flags
	runCmd.Flags().BoolVar(&llmEnabled, "llm", false, "attach an LLM-generated run recap to the summary")
	runCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runRun(cmd *cobra.Command, args []string) error {
	src := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing: %s\n", src)
		fmt.Fprintf(os.Stderr, "Text field: %s\n\n", cfg.TextField)
	}

	report, err := p.RunSource(ctx, src)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	annotateWithLLM(ctx, cfg, report)

	if err := writeReport(ctx, cfg, report, cfg.Output.JSONPath); err != nil {
		return err
	}
	printSummary(report)
	return nil
}

// applyRunFlags overrides the loaded config with explicitly set flags.
// Booleans with a false default only apply when changed so a config file
// setting is not clobbered.
func applyRunFlags(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	if flags.Changed("text-field") {
		cfg.TextField = textField
	}
	if flags.Changed("max-items") {
		cfg.MaxItems = maxItems
	}
	if flags.Changed("strip-html") {
		cfg.StripHTML = stripHTML
	}
	if flags.Changed("min-length") {
		cfg.Validation.MinTextLength = minLength
	}
	if flags.Changed("max-length") {
		cfg.Validation.MaxTextLength = maxLength
	}
	if flags.Changed("similarity") {
		cfg.Validation.SimilarityThreshold = similarity
	}
	if flags.Changed("schema") {
		cfg.Validation.SchemaPath = schemaPath
	}
	if noDedupe {
		cfg.Validation.Duplicates = false
	}
	if noPII {
		cfg.Validation.PII = false
	}
	if noSentiment {
		cfg.Enrich.Sentiment = false
	}
	if noEntities {
		cfg.Enrich.Entities = false
	}
	if noKeywords {
		cfg.Enrich.Keywords = false
	}
	if noLanguage {
		cfg.Enrich.Language = false
	}
	if noReadability {
		cfg.Enrich.Readability = false
	}
	if flags.Changed("json") {
		cfg.Output.JSONPath = outJSON
	}
	if flags.Changed("sqlite") {
		cfg.Output.SQLitePath = outSQLite
	}
	if flagOnly {
		cfg.Output.FlagOnly = true
	}
	if removePII {
		cfg.Output.RemovePII = true
	}
	if includeOriginal {
		cfg.Output.IncludeOriginal = true
	}
	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

// buildPipeline loads the optional schema and assembles the pipeline
func buildPipeline(cfg *model.Config) (*pipeline.Pipeline, error) {
	var sch *schema.Schema
	if cfg.Validation.SchemaPath != "" {
		var err error
		sch, err = schema.Load(cfg.Validation.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("load schema: %w", err)
		}
	}
	return pipeline.New(cfg, sch), nil
}

// annotateWithLLM attaches the optional run recap; failures only warn
func annotateWithLLM(ctx context.Context, cfg *model.Config, report *model.Report) {
	if cfg.LLM.Provider == "" {
		return
	}
	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ LLM recap disabled: %v\n", err)
		return
	}
	llm.Annotate(ctx, provider, report, cfg.LLM)
}

// writeReport persists the report to the JSON sink and, when configured,
// the SQLite sink
func writeReport(ctx context.Context, cfg *model.Config, report *model.Report, jsonPath string) error {
	if err := sink.WriteReport(report, jsonPath); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", jsonPath)
	}

	if cfg.Output.SQLitePath != "" {
		store, err := sink.OpenSQLite(ctx, cfg.Output.SQLitePath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if err := store.SaveReport(ctx, report); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Saved run %s to %s\n", report.Summary.RunID, cfg.Output.SQLitePath)
		}
	}
	return nil
}

// printSummary writes the run counters to stderr
func printSummary(report *model.Report) {
	s := report.Summary
	fmt.Fprintf(os.Stderr, "Processed %d items: %d valid, %d duplicates, %d with PII\n",
		s.TotalProcessed, s.ValidItems, s.DuplicatesFound, s.ItemsWithPII)
	fmt.Fprintf(os.Stderr, "Output %d items, rejected %d\n", s.OutputItems, s.RejectedItems)
	if s.SkippedNoText > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d items with no subject text\n", s.SkippedNoText)
	}
}
