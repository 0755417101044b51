package model

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"empty text field", func(c *Config) { c.TextField = "" }, false},
		{"negative max items", func(c *Config) { c.MaxItems = -1 }, false},
		{"threshold above one", func(c *Config) { c.Validation.SimilarityThreshold = 1.5 }, false},
		{"threshold below zero", func(c *Config) { c.Validation.SimilarityThreshold = -0.1 }, false},
		{"threshold bounds", func(c *Config) { c.Validation.SimilarityThreshold = 1.0 }, true},
		{"negative min length", func(c *Config) { c.Validation.MinTextLength = -1 }, false},
		{"min above max", func(c *Config) {
			c.Validation.MinTextLength = 100
			c.Validation.MaxTextLength = 10
		}, false},
		{"max zero means unbounded", func(c *Config) {
			c.Validation.MinTextLength = 100
			c.Validation.MaxTextLength = 0
		}, true},
		{"negative workers", func(c *Config) { c.Concurrency.Workers = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
