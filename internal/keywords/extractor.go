// Package keywords ranks the terms of a document by TF-IDF against a corpus
// that grows by one document per call.
//
// The corpus is owned by a single pipeline run and only ever appended to:
// each extraction first commits the document's terms to the corpus, then
// ranks against the statistics accumulated so far. Earlier items never see
// later items' vocabulary, so results depend on item order and on the subset
// of items processed. That non-reproducibility is part of the contract, not
// an accident.
package keywords

import (
	"math"
	"sort"

	"github.com/textsieve/textsieve/internal/analyze"
)

// defaultTopN is the maximum number of terms returned per document
const defaultTopN = 10

// minTermRunes drops one- and two-letter fragments from ranking
const minTermRunes = 3

// Extractor holds the growing term-statistics corpus
type Extractor struct {
	docCount int
	docFreq  map[string]int // term -> number of corpus docs containing it
	topN     int
}

// NewExtractor creates an extractor with an empty corpus
func NewExtractor() *Extractor {
	return &Extractor{
		docFreq: make(map[string]int),
		topN:    defaultTopN,
	}
}

// DocCount returns how many documents have been committed to the corpus
func (e *Extractor) DocCount() int {
	return e.docCount
}

// ExtractTop appends the text to the corpus and returns its top terms by
// TF-IDF weight, at most 10, descending. Ties keep the terms' first
// occurrence order in the document. Edge cases (no usable terms) degrade to
// an empty list, never an error.
func (e *Extractor) ExtractTop(text string) []string {
	terms := termsOf(text)

	// Commit to the corpus before ranking, so the document counts against
	// its own IDF.
	e.docCount++
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		e.docFreq[t]++
	}

	if len(terms) == 0 {
		return []string{}
	}

	counts := make(map[string]int, len(terms))
	var order []string // unique terms in first-occurrence order
	for _, t := range terms {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	type ranked struct {
		term   string
		weight float64
	}
	rankedTerms := make([]ranked, 0, len(order))
	for _, t := range order {
		tf := float64(counts[t]) / float64(len(terms))
		idf := math.Log(1 + float64(e.docCount)/float64(e.docFreq[t]))
		rankedTerms = append(rankedTerms, ranked{term: t, weight: tf * idf})
	}

	sort.SliceStable(rankedTerms, func(i, j int) bool {
		return rankedTerms[i].weight > rankedTerms[j].weight
	})

	n := e.topN
	if n > len(rankedTerms) {
		n = len(rankedTerms)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = rankedTerms[i].term
	}
	return top
}

// termsOf tokenizes and drops stopwords and short fragments
func termsOf(text string) []string {
	tokens := analyze.Tokenize(text)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len([]rune(tok)) < minTermRunes {
			continue
		}
		if analyze.IsEnglishStopword(tok) {
			continue
		}
		terms = append(terms, tok)
	}
	return terms
}
