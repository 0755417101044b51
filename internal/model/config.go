package model

import (
	"fmt"
	"runtime"
	"time"
)

// Config is the full pipeline configuration.
// Hierarchy (highest to lowest priority): CLI flags, TEXTSIEVE_* environment
// variables, config file (~/.textsieve/config.yaml), defaults.
type Config struct {
	// TextField names the input field holding the subject text
	TextField string `yaml:"text_field" mapstructure:"text_field"`

	// MaxItems truncates the input collection when > 0
	MaxItems int `yaml:"max_items" mapstructure:"max_items"`

	// StripHTML runs subject text through an HTML-to-text pass before analysis
	StripHTML bool `yaml:"strip_html" mapstructure:"strip_html"`

	Enrich       EnrichConfig      `yaml:"enrich" mapstructure:"enrich"`
	Validation   ValidationConfig  `yaml:"validation" mapstructure:"validation"`
	Output       OutputConfig      `yaml:"output" mapstructure:"output"`
	HTTP         HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM          LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// EnrichConfig toggles the five enrichment analyzers
type EnrichConfig struct {
	Sentiment   bool `yaml:"sentiment" mapstructure:"sentiment"`
	Entities    bool `yaml:"entities" mapstructure:"entities"`
	Keywords    bool `yaml:"keywords" mapstructure:"keywords"`
	Language    bool `yaml:"language" mapstructure:"language"`
	Readability bool `yaml:"readability" mapstructure:"readability"`
}

// ValidationConfig toggles the quality checks
type ValidationConfig struct {
	Duplicates          bool    `yaml:"duplicates" mapstructure:"duplicates"`
	SimilarityThreshold float64 `yaml:"similarity_threshold" mapstructure:"similarity_threshold"` // [0,1]
	PII                 bool    `yaml:"pii" mapstructure:"pii"`
	MinTextLength       int     `yaml:"min_text_length" mapstructure:"min_text_length"` // 0 = unbounded
	MaxTextLength       int     `yaml:"max_text_length" mapstructure:"max_text_length"` // 0 = unbounded
	SchemaPath          string  `yaml:"schema_path" mapstructure:"schema_path"`         // Empty = schema check skipped
}

// OutputConfig controls the keep/flag/reject policy and the sinks
type OutputConfig struct {
	IncludeOriginal bool   `yaml:"include_original" mapstructure:"include_original"`
	FlagOnly        bool   `yaml:"flag_only" mapstructure:"flag_only"`
	RemovePII       bool   `yaml:"remove_pii" mapstructure:"remove_pii"`
	JSONPath        string `yaml:"json_path" mapstructure:"json_path"`
	SQLitePath      string `yaml:"sqlite_path" mapstructure:"sqlite_path"` // Empty = SQLite sink disabled
	Verbose         bool   `yaml:"verbose" mapstructure:"verbose"`
}

// HTTPConfig controls collection retrieval over HTTP(S)
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy" mapstructure:"https_proxy"`
}

// CacheConfig controls the fetch cache for HTTP sources
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// RateLimitConfig throttles HTTP retrieval per host in batch mode
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// ConcurrencyConfig sizes the batch worker pool. Items within a single
// collection are always processed sequentially; workers only parallelize
// across independent collections.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// LLMConfig configures the optional run-summary narrative
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		TextField: "text",
		MaxItems:  0,
		Enrich: EnrichConfig{
			Sentiment:   true,
			Entities:    true,
			Keywords:    true,
			Language:    true,
			Readability: true,
		},
		Validation: ValidationConfig{
			Duplicates:          true,
			SimilarityThreshold: 0.85,
			PII:                 true,
			MinTextLength:       0,
			MaxTextLength:       0,
		},
		Output: OutputConfig{
			JSONPath: "processed.json",
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "textsieve/0.1 (+https://github.com/textsieve/textsieve)",
			MaxBodyBytes:  10_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 500,
		},
	}
}

// Validate reports configuration faults. These are fatal: the run aborts
// before any item is processed.
func (c *Config) Validate() error {
	if c.TextField == "" {
		return fmt.Errorf("text_field must not be empty")
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("max_items must be >= 0, got %d", c.MaxItems)
	}
	if t := c.Validation.SimilarityThreshold; t < 0 || t > 1 {
		return fmt.Errorf("similarity_threshold must be in [0,1], got %g", t)
	}
	if c.Validation.MinTextLength < 0 {
		return fmt.Errorf("min_text_length must be >= 0, got %d", c.Validation.MinTextLength)
	}
	if c.Validation.MaxTextLength < 0 {
		return fmt.Errorf("max_text_length must be >= 0, got %d", c.Validation.MaxTextLength)
	}
	if max := c.Validation.MaxTextLength; max > 0 && c.Validation.MinTextLength > max {
		return fmt.Errorf("min_text_length %d exceeds max_text_length %d",
			c.Validation.MinTextLength, max)
	}
	if c.Concurrency.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Concurrency.Workers)
	}
	return nil
}
