package analyze

import "github.com/textsieve/textsieve/internal/model"

// SentimentScorer scores text against a fixed polarity lexicon.
// It is a pure function of its input: no shared state, safe to call from
// any goroutine.
type SentimentScorer struct {
	lexicon map[string]int
}

// NewSentimentScorer creates a scorer backed by the built-in lexicon
func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{lexicon: polarityLexicon}
}

// Analyze tokenizes the text and sums lexicon polarities. Comparative is the
// score normalized by token count (denominator floored at 1). Positive and
// negative carry the contributing tokens in token order, duplicates
// preserved, in their case-folded form.
func (s *SentimentScorer) Analyze(text string) model.SentimentResult {
	tokens := Tokenize(text)

	result := model.SentimentResult{
		Positive: []string{},
		Negative: []string{},
	}

	for _, tok := range tokens {
		polarity := s.lexicon[tok]
		switch {
		case polarity > 0:
			result.Positive = append(result.Positive, tok)
		case polarity < 0:
			result.Negative = append(result.Negative, tok)
		}
		result.Score += polarity
	}

	denom := len(tokens)
	if denom < 1 {
		denom = 1
	}
	result.Comparative = float64(result.Score) / float64(denom)

	return result
}
