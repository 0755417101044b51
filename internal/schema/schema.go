// Package schema validates input items against a small declarative
// constraint language interpreted at validation time: required fields,
// primitive type checks, enums and string length bounds, described in YAML.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/textsieve/textsieve/internal/model"
)

// Schema is a caller-supplied structural description of an input item
type Schema struct {
	Fields []FieldRule `yaml:"fields"`
}

// FieldRule constrains a single field
type FieldRule struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"` // string, number, integer, boolean, list
	Required  bool     `yaml:"required"`
	MinLength int      `yaml:"min_length"` // String fields only; 0 = unbounded
	MaxLength int      `yaml:"max_length"` // String fields only; 0 = unbounded
	Enum      []string `yaml:"enum"`       // String fields only
}

var validTypes = map[string]struct{}{
	"": {}, "string": {}, "number": {}, "integer": {}, "boolean": {}, "list": {},
}

// Load reads and parses a schema document from disk
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML schema document and rejects unknown field types.
// A malformed schema is a configuration fault: the run must abort before
// any item is processed.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	for _, f := range s.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema field with empty name")
		}
		if _, ok := validTypes[f.Type]; !ok {
			return nil, fmt.Errorf("schema field %q: unknown type %q", f.Name, f.Type)
		}
	}
	return &s, nil
}

// Empty reports whether the schema constrains nothing; an empty description
// means validation is skipped and treated as passing.
func (s *Schema) Empty() bool {
	return s == nil || len(s.Fields) == 0
}

// Validate checks one item and returns human-readable violation messages.
// An empty result means the item conforms. Violations are item-level
// findings, never run faults.
func (s *Schema) Validate(item model.InputItem) []string {
	if s.Empty() {
		return nil
	}

	var violations []string
	for _, rule := range s.Fields {
		raw, present := item[rule.Name]
		if !present || raw == nil {
			if rule.Required {
				violations = append(violations, fmt.Sprintf("field %q is required", rule.Name))
			}
			continue
		}
		violations = append(violations, rule.check(raw)...)
	}
	return violations
}

func (r FieldRule) check(raw interface{}) []string {
	var violations []string

	fail := func(format string, args ...interface{}) {
		violations = append(violations, fmt.Sprintf("field %q ", r.Name)+fmt.Sprintf(format, args...))
	}

	switch r.Type {
	case "string":
		str, ok := raw.(string)
		if !ok {
			fail("must be a string, got %T", raw)
			break
		}
		length := len([]rune(str))
		if r.MinLength > 0 && length < r.MinLength {
			fail("is shorter than %d characters", r.MinLength)
		}
		if r.MaxLength > 0 && length > r.MaxLength {
			fail("is longer than %d characters", r.MaxLength)
		}
		if len(r.Enum) > 0 && !contains(r.Enum, str) {
			fail("must be one of %v, got %q", r.Enum, str)
		}
	case "number":
		if !isNumber(raw) {
			fail("must be a number, got %T", raw)
		}
	case "integer":
		f, ok := asFloat(raw)
		if !ok || f != math.Trunc(f) {
			fail("must be an integer, got %v", raw)
		}
	case "boolean":
		if _, ok := raw.(bool); !ok {
			fail("must be a boolean, got %T", raw)
		}
	case "list":
		if _, ok := raw.([]interface{}); !ok {
			fail("must be a list, got %T", raw)
		}
	}

	return violations
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// isNumber accepts the numeric shapes JSON and YAML decoding produce
func isNumber(raw interface{}) bool {
	_, ok := asFloat(raw)
	return ok
}

func asFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
