// Package pipeline orchestrates the per-item transformation: enrichment
// analyzers, validation checks, the keep/flag/reject decision and the
// run-level counters.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/textsieve/textsieve/internal/analyze"
	"github.com/textsieve/textsieve/internal/dedupe"
	"github.com/textsieve/textsieve/internal/keywords"
	"github.com/textsieve/textsieve/internal/model"
	"github.com/textsieve/textsieve/internal/pii"
	"github.com/textsieve/textsieve/internal/schema"
	"github.com/textsieve/textsieve/internal/source"
)

// Pipeline wires the analyzers and validators for one or more runs.
// The stateless analyzers are shared; the stateful subsystems (duplicate
// detector, keyword corpus) are created fresh inside each Run.
type Pipeline struct {
	cfg    *model.Config
	schema *schema.Schema // nil or empty = schema check skipped

	sentiment   *analyze.SentimentScorer
	entities    *analyze.EntityExtractor
	language    *analyze.LanguageGuesser
	readability *analyze.ReadabilityCalculator
	piiDetector *pii.Detector

	loader *source.Loader

	// Warnf surfaces recoverable per-item warnings; defaults to stderr
	Warnf func(format string, args ...interface{})
}

// New creates a pipeline for the given configuration and optional schema
func New(cfg *model.Config, sch *schema.Schema) *Pipeline {
	return &Pipeline{
		cfg:         cfg,
		schema:      sch,
		sentiment:   analyze.NewSentimentScorer(),
		entities:    analyze.NewEntityExtractor(),
		language:    analyze.NewLanguageGuesser(),
		readability: analyze.NewReadabilityCalculator(),
		piiDetector: pii.NewDetector(),
		loader:      source.NewLoader(cfg.HTTP, cfg.Cache),
		Warnf: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
		},
	}
}

// RunSource retrieves the collection named by src — a file path or an
// HTTP(S) URL — applies the configured preprocessing and runs it
func (p *Pipeline) RunSource(ctx context.Context, src string) (*model.Report, error) {
	var items []model.InputItem
	var err error
	if source.IsURL(src) {
		items, err = p.loader.Load(ctx, src, p.cfg.MaxItems)
	} else {
		items, err = source.LoadFile(src, p.cfg.MaxItems)
	}
	if err != nil {
		return nil, err
	}
	if p.cfg.StripHTML {
		source.StripItemText(items, p.cfg.TextField)
	}
	return p.Run(items, src), nil
}

// Run processes the whole collection in a single forward pass and returns
// the output items with the run summary. The duplicate index is built over
// the full input before the pass; the canonical map and the keyword corpus
// grow strictly in item order during it. Items whose subject text is absent
// or empty are skipped with a warning and touch no counters.
func (p *Pipeline) Run(items []model.InputItem, sourceName string) *model.Report {
	started := time.Now().UTC()
	cfg := p.cfg

	// Subject texts, extracted once: the dedupe index needs them all before
	// the first item is processed.
	texts := make([]string, len(items))
	present := make([]bool, len(items))
	for i, item := range items {
		texts[i], present[i] = item.Text(cfg.TextField)
	}

	var detector *dedupe.Detector
	if cfg.Validation.Duplicates {
		var indexed []string
		for i := range items {
			if present[i] {
				indexed = append(indexed, texts[i])
			}
		}
		detector = dedupe.NewDetector(dedupe.BuildIndex(indexed), cfg.Validation.SimilarityThreshold)
	}

	var extractor *keywords.Extractor
	if cfg.Enrich.Keywords {
		extractor = keywords.NewExtractor()
	}

	summary := model.Summary{
		RunID:     ulid.Make().String(),
		Source:    sourceName,
		StartedAt: started,
	}
	var output []model.ProcessedItem

	for i, item := range items {
		if !present[i] {
			summary.SkippedNoText++
			p.Warnf("item %d: field %q missing or empty, skipped", i, cfg.TextField)
			continue
		}
		text := texts[i]
		summary.TotalProcessed++

		processed := model.ProcessedItem{
			ID:           i,
			OriginalText: text,
		}
		if cfg.Output.IncludeOriginal {
			processed.Fields = item
		}

		processed.Enrichment = p.enrich(text, extractor)
		processed.Validation = p.validate(i, item, text, detector, &processed, &summary)

		if processed.Validation.IsValid {
			summary.ValidItems++
		}
		if cfg.Output.FlagOnly || processed.Validation.IsValid {
			output = append(output, processed)
			summary.OutputItems++
		}
	}

	summary.RejectedItems = summary.TotalProcessed - summary.OutputItems
	summary.CompletedAt = time.Now().UTC()

	return &model.Report{Summary: summary, Items: output}
}

// enrich runs the enabled analyzers. Sub-records stay absent when their
// option is off.
func (p *Pipeline) enrich(text string, extractor *keywords.Extractor) *model.EnrichmentResult {
	e := cfgEnrich(p.cfg)
	if e == nil {
		return nil
	}

	if p.cfg.Enrich.Sentiment {
		s := p.sentiment.Analyze(text)
		e.Sentiment = &s
	}
	if p.cfg.Enrich.Entities {
		ents := p.entities.Analyze(text)
		e.Entities = &ents
	}
	if extractor != nil {
		kw := extractor.ExtractTop(text)
		e.Keywords = &kw
	}
	if p.cfg.Enrich.Language {
		e.Language = p.language.Analyze(text)
	}
	if p.cfg.Enrich.Readability {
		r := p.readability.Analyze(text)
		e.Readability = &r
	}
	return e
}

// cfgEnrich returns an empty result when at least one analyzer is enabled,
// nil otherwise
func cfgEnrich(cfg *model.Config) *model.EnrichmentResult {
	en := cfg.Enrich
	if en.Sentiment || en.Entities || en.Keywords || en.Language || en.Readability {
		return &model.EnrichmentResult{}
	}
	return nil
}

// validate runs the quality checks and applies the validity policy:
// validity starts true and is revoked by a failed length check, a duplicate
// mark, PII outside flag-only mode, or a schema violation.
func (p *Pipeline) validate(id int, item model.InputItem, text string,
	detector *dedupe.Detector, processed *model.ProcessedItem, summary *model.Summary) model.ValidationResult {

	cfg := p.cfg
	v := model.ValidationResult{
		IsValid:     true,
		LengthValid: true,
		SchemaValid: true,
	}

	length := len([]rune(text))
	if cfg.Validation.MinTextLength > 0 && length < cfg.Validation.MinTextLength {
		v.LengthValid = false
	}
	if max := cfg.Validation.MaxTextLength; max > 0 && length > max {
		v.LengthValid = false
	}
	if !v.LengthValid {
		v.IsValid = false
	}

	if detector != nil {
		if dupOf, isDup := detector.Check(id, text); isDup {
			canonical := dupOf
			v.IsDuplicate = true
			v.DuplicateOf = &canonical
			v.IsValid = false
			summary.DuplicatesFound++
		}
	}

	if cfg.Validation.PII {
		res := p.piiDetector.Scan(text, cfg.Output.RemovePII)
		if res.HasPII {
			v.HasPII = true
			v.PIITypes = res.Types
			summary.ItemsWithPII++
			if !cfg.Output.FlagOnly {
				v.IsValid = false
			}
			if cfg.Output.RemovePII {
				processed.ProcessedText = res.Redacted
			}
		}
	}

	if !p.schema.Empty() {
		if violations := p.schema.Validate(item); len(violations) > 0 {
			v.SchemaValid = false
			v.SchemaErrors = violations
			v.IsValid = false
		}
	}

	return v
}
