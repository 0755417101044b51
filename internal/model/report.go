package model

import "time"

// Summary is the run-level metadata record persisted next to the output
// collection. Counters exclude items dropped for a missing subject text.
type Summary struct {
	RunID       string    `json:"run_id"`           // ULID, unique per pipeline run
	Source      string    `json:"source,omitempty"` // File path or URL the collection came from
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`

	TotalProcessed  int `json:"totalProcessed"` // Items that entered the pipeline
	ValidItems      int `json:"validItems"`
	DuplicatesFound int `json:"duplicatesFound"`
	ItemsWithPII    int `json:"itemsWithPII"`
	OutputItems     int `json:"outputItems"`
	RejectedItems   int `json:"rejectedItems"` // totalProcessed - outputItems

	SkippedNoText int `json:"skippedNoText,omitempty"` // Dropped before the pipeline

	LLM *LLMNote `json:"llm,omitempty"` // Optional narrative, never affects counters
}

// Report bundles the output collection with its summary for persistence
type Report struct {
	Summary Summary         `json:"summary"`
	Items   []ProcessedItem `json:"items"`
}

// LLMNote contains the optional LLM-generated recap of a run.
// It is clearly separated from the counters and never influences them.
type LLMNote struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
