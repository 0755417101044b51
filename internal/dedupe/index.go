// Package dedupe detects duplicate items with an approximate-match index
// built once over the whole input, paired with a strictly forward-only
// canonical-occurrence map.
package dedupe

import "github.com/textsieve/textsieve/internal/analyze"

// Index is an immutable approximate-match structure over the subject texts
// of every loaded item, in input order. It is built once before the forward
// pass and only read afterwards.
//
// Comparison is O(n) per query over the stored texts. Acceptable for the
// collection sizes this tool targets; larger datasets should switch to an
// indexed approach such as MinHash/LSH.
type Index struct {
	texts     []string
	tokenSets []map[string]struct{}
}

// Match is the best stored candidate for a queried text
type Match struct {
	Text       string
	Similarity float64 // Jaccard over token sets, in [0,1]
}

// BuildIndex tokenizes and stores every text, preserving insertion order
func BuildIndex(texts []string) *Index {
	ix := &Index{
		texts:     make([]string, len(texts)),
		tokenSets: make([]map[string]struct{}, len(texts)),
	}
	for i, t := range texts {
		ix.texts[i] = t
		ix.tokenSets[i] = tokenSet(t)
	}
	return ix
}

// Len returns the number of stored texts
func (ix *Index) Len() int {
	return len(ix.texts)
}

// BestMatch returns the stored text most similar to the query. The first
// stored text (insertion order) reaching the maximum similarity wins ties.
// Because every input text is itself a member of the index, a queried member
// normally finds itself with similarity 1.0 — the detector therefore
// collapses toward exact/near-exact matching.
func (ix *Index) BestMatch(text string) (Match, bool) {
	if len(ix.texts) == 0 {
		return Match{}, false
	}
	query := tokenSet(text)

	best := Match{Similarity: -1}
	for i, stored := range ix.tokenSets {
		score := jaccard(query, stored)
		if score > best.Similarity {
			best = Match{Text: ix.texts[i], Similarity: score}
		}
	}
	return best, true
}

func tokenSet(text string) map[string]struct{} {
	tokens := analyze.Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
