package analyze

import "testing"

func TestReadability(t *testing.T) {
	c := NewReadabilityCalculator()
	res := c.Analyze("One two three. Four five.")

	if res.WordCount != 5 {
		t.Errorf("expected 5 words, got %d", res.WordCount)
	}
	if res.SentenceCount != 2 {
		t.Errorf("expected 2 sentences, got %d", res.SentenceCount)
	}
	if res.AvgWordsPerSentence != 2.5 {
		t.Errorf("expected avg 2.5 words/sentence, got %g", res.AvgWordsPerSentence)
	}
	// one(3) two(3) three(5) four(4) five(4) = 19/5
	if res.AvgWordLength != 3.8 {
		t.Errorf("expected avg word length 3.8, got %g", res.AvgWordLength)
	}
}

func TestReadabilityEmptyText(t *testing.T) {
	c := NewReadabilityCalculator()
	res := c.Analyze("")

	if res.WordCount != 0 || res.SentenceCount != 0 {
		t.Errorf("expected zero counts, got %d/%d", res.WordCount, res.SentenceCount)
	}
	if res.AvgWordsPerSentence != 0 || res.AvgWordLength != 0 {
		t.Errorf("expected zero averages, got %g/%g", res.AvgWordsPerSentence, res.AvgWordLength)
	}
}

func TestReadabilityNoTerminator(t *testing.T) {
	c := NewReadabilityCalculator()
	res := c.Analyze("a fragment without punctuation")

	if res.SentenceCount != 1 {
		t.Errorf("unterminated text counts as one sentence, got %d", res.SentenceCount)
	}
	if res.AvgWordsPerSentence != 4 {
		t.Errorf("expected 4 words/sentence, got %g", res.AvgWordsPerSentence)
	}
}
