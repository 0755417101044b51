// Package llm generates the optional run recap. The recap is narrative
// only: it is attached to the summary after the counters are final and
// can never change a processing decision.
package llm

import (
	"context"
	"fmt"

	"github.com/textsieve/textsieve/internal/model"
)

// Provider turns a finished run summary into a short narrative
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a markdown recap of the run
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input for a run recap
type SummarizeRequest struct {
	// Summary holds the final run counters
	Summary model.Summary

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model overrides the configured model when non-empty
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse is the recap output
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// NewProvider builds the configured provider. An empty provider name
// means the recap is disabled and returns (nil, nil).
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q (supported: openai)", cfg.Provider)
	}
}

// Annotate attaches a recap note to the report. Recap failures degrade to
// a warning inside the note; they never fail the run.
func Annotate(ctx context.Context, provider Provider, report *model.Report, cfg model.LLMConfig) {
	if provider == nil {
		return
	}

	note := &model.LLMNote{
		Enabled:  true,
		Provider: provider.Name(),
		Model:    cfg.Model,
	}
	report.Summary.LLM = note

	resp, err := provider.Summarize(ctx, SummarizeRequest{
		Summary:   report.Summary,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		note.Warnings = append(note.Warnings, fmt.Sprintf("recap failed: %v", err))
		return
	}
	note.Model = resp.Model
	note.SummaryMD = resp.Summary
}
