package model

import "encoding/json"

// InputItem is one record of the input collection: an open-ended mapping from
// field name to value. One designated field (Config.TextField) holds the
// subject text that the pipeline analyzes.
type InputItem map[string]interface{}

// Text returns the subject text stored under the given field name.
// The second return value is false when the field is absent, not a string,
// or empty — such items never enter the pipeline.
func (it InputItem) Text(field string) (string, bool) {
	raw, ok := it[field]
	if !ok {
		return "", false
	}
	text, ok := raw.(string)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// SentimentResult is the output of the lexicon-based sentiment scorer
type SentimentResult struct {
	Score       int      `json:"score"`       // Sum of lexicon polarities over all tokens
	Comparative float64  `json:"comparative"` // Score normalized by token count
	Positive    []string `json:"positive"`    // Tokens with positive polarity, in token order
	Negative    []string `json:"negative"`    // Tokens with negative polarity, in token order
}

// EntityResult holds rule-based entity extraction output.
// Each list carries matched spans in text order; empty, never absent.
type EntityResult struct {
	People        []string `json:"people"`
	Places        []string `json:"places"`
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
	Values        []string `json:"values"`
}

// ReadabilityResult holds simple surface-level readability statistics
type ReadabilityResult struct {
	WordCount           int     `json:"wordCount"`
	SentenceCount       int     `json:"sentenceCount"`
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"` // Rounded to 1 decimal
	AvgWordLength       float64 `json:"avgWordLength"`       // Rounded to 1 decimal
}

// Language labels form a fixed closed set
const (
	LangEnglish    = "english"
	LangSpanish    = "spanish"
	LangFrench     = "french"
	LangGerman     = "german"
	LangPortuguese = "portuguese"
	LangUnknown    = "unknown"
)

// EnrichmentResult aggregates the per-item annotations. A sub-record is
// present iff its enrichment option was enabled for the run — absent, not
// empty, when disabled. Keywords uses a pointer so that an enabled-but-empty
// result still serializes as an empty list.
type EnrichmentResult struct {
	Sentiment   *SentimentResult   `json:"sentiment,omitempty"`
	Entities    *EntityResult      `json:"entities,omitempty"`
	Keywords    *[]string          `json:"keywords,omitempty"`
	Language    string             `json:"language,omitempty"`
	Readability *ReadabilityResult `json:"readability,omitempty"`
}

// ValidationResult aggregates the per-item quality checks
type ValidationResult struct {
	IsValid      bool     `json:"isValid"`
	IsDuplicate  bool     `json:"isDuplicate"`
	DuplicateOf  *int     `json:"duplicateOf,omitempty"` // Always an earlier item's id
	HasPII       bool     `json:"hasPII"`
	PIITypes     []string `json:"piiTypes,omitempty"`
	LengthValid  bool     `json:"lengthValid"`
	SchemaValid  bool     `json:"schemaValid"`
	SchemaErrors []string `json:"schemaErrors,omitempty"`
}

// ProcessedItem is the enriched and validated derivative of one input item.
// ID is the item's position in the originally loaded sequence, so the output
// collection can have gaps when invalid items are filtered out.
type ProcessedItem struct {
	ID            int               `json:"id"`
	OriginalText  string            `json:"originalText"`
	ProcessedText string            `json:"processedText,omitempty"` // Only when PII was redacted
	Enrichment    *EnrichmentResult `json:"enrichment,omitempty"`
	Validation    ValidationResult  `json:"validation"`

	// Fields holds the full original record when includeOriginal is set;
	// MarshalJSON merges them into the top-level object.
	Fields InputItem `json:"-"`
}

// MarshalJSON merges the original input fields into the serialized item when
// they were requested. Pipeline-owned keys win on collision.
func (p ProcessedItem) MarshalJSON() ([]byte, error) {
	type plain ProcessedItem
	base, err := json.Marshal(plain(p))
	if err != nil {
		return nil, err
	}
	if len(p.Fields) == 0 {
		return base, nil
	}

	merged := make(map[string]interface{}, len(p.Fields)+5)
	for k, v := range p.Fields {
		merged[k] = v
	}
	var own map[string]interface{}
	if err := json.Unmarshal(base, &own); err != nil {
		return nil, err
	}
	for k, v := range own {
		merged[k] = v
	}
	return json.Marshal(merged)
}
