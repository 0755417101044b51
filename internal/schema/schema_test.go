package schema

import (
	"strings"
	"testing"

	"github.com/textsieve/textsieve/internal/model"
)

const reviewSchema = `
fields:
  - name: text
    type: string
    required: true
    min_length: 5
  - name: rating
    type: integer
  - name: category
    type: string
    enum: [electronics, books, clothing]
  - name: tags
    type: list
  - name: verified
    type: boolean
`

func mustParse(t *testing.T, doc string) *Schema {
	t.Helper()
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestValidateConformingItem(t *testing.T) {
	s := mustParse(t, reviewSchema)
	item := model.InputItem{
		"text":     "a perfectly fine review",
		"rating":   float64(5), // JSON decoding yields float64
		"category": "books",
		"tags":     []interface{}{"a", "b"},
		"verified": true,
	}
	if v := s.Validate(item); len(v) != 0 {
		t.Errorf("expected no violations, got %v", v)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	s := mustParse(t, reviewSchema)
	v := s.Validate(model.InputItem{"rating": float64(3)})
	if len(v) != 1 || !strings.Contains(v[0], "required") {
		t.Errorf("expected one required-field violation, got %v", v)
	}
}

func TestValidateOptionalAbsentFieldsPass(t *testing.T) {
	s := mustParse(t, reviewSchema)
	// Only the required field; every optional rule is skipped
	if v := s.Validate(model.InputItem{"text": "long enough"}); len(v) != 0 {
		t.Errorf("absent optional fields should not violate, got %v", v)
	}
}

func TestValidateTypeMismatches(t *testing.T) {
	s := mustParse(t, reviewSchema)
	item := model.InputItem{
		"text":     12345,
		"rating":   2.5,
		"tags":     "not-a-list",
		"verified": "yes",
	}
	v := s.Validate(item)
	if len(v) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(v), v)
	}
}

func TestValidateStringBoundsAndEnum(t *testing.T) {
	s := mustParse(t, reviewSchema)
	v := s.Validate(model.InputItem{"text": "hi", "category": "toys"})
	if len(v) != 2 {
		t.Fatalf("expected 2 violations, got %v", v)
	}
	if !strings.Contains(v[0], "shorter than 5") {
		t.Errorf("expected length violation first, got %q", v[0])
	}
	if !strings.Contains(v[1], "must be one of") {
		t.Errorf("expected enum violation, got %q", v[1])
	}
}

func TestValidateNullCountsAsAbsent(t *testing.T) {
	s := mustParse(t, reviewSchema)
	v := s.Validate(model.InputItem{"text": nil})
	if len(v) != 1 || !strings.Contains(v[0], "required") {
		t.Errorf("null required field should violate as missing, got %v", v)
	}
}

func TestParseRejectsUnknownType(t *testing.T) {
	_, err := Parse([]byte("fields:\n  - name: x\n    type: decimal\n"))
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestParseRejectsEmptyName(t *testing.T) {
	_, err := Parse([]byte("fields:\n  - type: string\n"))
	if err == nil {
		t.Fatal("expected error for empty field name")
	}
}

func TestEmptySchemaPasses(t *testing.T) {
	var s *Schema
	if !s.Empty() {
		t.Error("nil schema should be empty")
	}
	if v := s.Validate(model.InputItem{"anything": 1}); v != nil {
		t.Errorf("empty schema should not produce violations, got %v", v)
	}

	parsed := mustParse(t, "fields: []\n")
	if !parsed.Empty() {
		t.Error("schema with no fields should be empty")
	}
}
