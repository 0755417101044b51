package analyze

import (
	"math"

	"github.com/textsieve/textsieve/internal/model"
)

// ReadabilityCalculator computes surface statistics of a text: word and
// sentence counts and their 1-decimal averages.
type ReadabilityCalculator struct{}

// NewReadabilityCalculator creates a calculator
func NewReadabilityCalculator() *ReadabilityCalculator {
	return &ReadabilityCalculator{}
}

// Analyze counts words with the shared tokenizer and sentences by splitting
// on '.', '!', '?' runs. Averages guard their denominator with 1 when the
// count is zero and are rounded to 1 decimal place.
func (c *ReadabilityCalculator) Analyze(text string) model.ReadabilityResult {
	tokens := Tokenize(text)
	sentences := SplitSentences(text)

	wordCount := len(tokens)
	sentenceCount := len(sentences)

	totalWordLen := 0
	for _, tok := range tokens {
		totalWordLen += len([]rune(tok))
	}

	return model.ReadabilityResult{
		WordCount:           wordCount,
		SentenceCount:       sentenceCount,
		AvgWordsPerSentence: round1(float64(wordCount) / float64(nonZero(sentenceCount))),
		AvgWordLength:       round1(float64(totalWordLen) / float64(nonZero(wordCount))),
	}
}

func nonZero(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
