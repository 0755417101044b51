// Package pii scans text for personally identifiable information across four
// pattern categories and can redact matches with category placeholders.
package pii

import "regexp"

// Category names in the fixed reporting order
const (
	TypeEmail      = "email"
	TypePhone      = "phone"
	TypeSSN        = "ssn"
	TypeCreditCard = "credit_card"
)

// category pairs a compiled pattern with its name and redaction placeholder.
// Placeholders contain no digits or '@', so redacted text never re-matches:
// running the redactor twice is a no-op.
type category struct {
	name        string
	re          *regexp.Regexp
	placeholder string
}

// Detector holds the compiled category patterns
type Detector struct {
	categories []category
}

// Result of one scan
type Result struct {
	HasPII   bool
	Types    []string // Matched category names in the fixed order
	Redacted string   // Working copy with placeholders; set only when redaction was requested
}

// NewDetector compiles the four category patterns
func NewDetector() *Detector {
	return &Detector{
		categories: []category{
			{
				name:        TypeEmail,
				re:          regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
				placeholder: "[EMAIL_REDACTED]",
			},
			{
				// Loose US/international numeric pattern
				name:        TypePhone,
				re:          regexp.MustCompile(`(?:\+?\d{1,2}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`),
				placeholder: "[PHONE_REDACTED]",
			},
			{
				name:        TypeSSN,
				re:          regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
				placeholder: "[SSN_REDACTED]",
			},
			{
				name:        TypeCreditCard,
				re:          regexp.MustCompile(`\b(?:\d{4}[\s\-]?){3}\d{4}\b`),
				placeholder: "[CARD_REDACTED]",
			},
		},
	}
}

// Scan detects each category against the original text and, when redact is
// set, replaces every match of the detected categories in a working copy.
// Redaction applies the most specific patterns first (email, ssn, card, then
// phone) so the loose phone pattern cannot chew into a card or ID number
// before its own category has replaced it. The original text is never
// mutated.
func (d *Detector) Scan(text string, redact bool) Result {
	result := Result{}

	matched := make(map[string]bool, len(d.categories))
	for _, cat := range d.categories {
		if cat.re.MatchString(text) {
			matched[cat.name] = true
			result.Types = append(result.Types, cat.name)
		}
	}
	result.HasPII = len(result.Types) > 0

	if !redact || !result.HasPII {
		return result
	}

	working := text
	for _, name := range []string{TypeEmail, TypeSSN, TypeCreditCard, TypePhone} {
		if !matched[name] {
			continue
		}
		cat := d.category(name)
		working = cat.re.ReplaceAllString(working, cat.placeholder)
	}
	result.Redacted = working
	return result
}

func (d *Detector) category(name string) category {
	for _, cat := range d.categories {
		if cat.name == name {
			return cat
		}
	}
	return category{}
}
