package analyze

import (
	"strings"
	"unicode"
)

// Tokenize splits text into case-folded tokens on whitespace and punctuation.
// Apostrophes inside a word are kept ("don't" stays one token). This is the
// single tokenizer shared by the sentiment scorer, the readability
// calculator, the language guesser and the keyword corpus, so their token
// counts always agree.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			current.WriteRune(unicode.ToLower(r))
		case r == '\'' && current.Len() > 0:
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	// Trim trailing apostrophes left by closing quotes
	for i, tok := range tokens {
		tokens[i] = strings.TrimRight(tok, "'")
	}
	return tokens
}

// SplitSentences returns the non-empty spans between runs of '.', '!', '?'.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
