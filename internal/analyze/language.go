package analyze

import "github.com/textsieve/textsieve/internal/model"

// languagePrefixRunes caps how much of the text the guesser inspects
const languagePrefixRunes = 500

// languageCandidates is the fixed candidate order; on a tie the first
// candidate reaching the current maximum wins.
var languageCandidates = []string{
	model.LangEnglish,
	model.LangSpanish,
	model.LangFrench,
	model.LangGerman,
	model.LangPortuguese,
}

// englishStopwords is the only bundled stopword list. Scoring compares each
// candidate against its own list, so with a single list only english can ever
// reach a nonzero count; every other language falls through to unknown. This
// is a known limitation of the stopword data, kept rather than papered over
// with invented per-language lists.
var englishStopwords = newStopwordSet(
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "from", "in", "into", "of", "on", "to", "with",
	"is", "are", "was", "were", "be", "been", "being", "am",
	"it", "its", "this", "that", "these", "those", "there", "here",
	"he", "she", "they", "we", "you", "i", "his", "her", "their", "our",
	"what", "which", "who", "whom", "how", "why", "where",
	"not", "no", "nor", "so", "too", "very", "can", "will", "just",
	"do", "does", "did", "have", "has", "had", "would", "should", "could",
	"as", "than", "such", "both", "each", "more", "most", "some", "any",
)

// languageStopwords maps each candidate label to its stopword set
var languageStopwords = map[string]map[string]struct{}{
	model.LangEnglish:    englishStopwords,
	model.LangSpanish:    {},
	model.LangFrench:     {},
	model.LangGerman:     {},
	model.LangPortuguese: {},
}

// IsEnglishStopword reports whether the case-folded token is on the bundled
// English stopword list. The keyword extractor uses it to drop glue words
// before ranking.
func IsEnglishStopword(token string) bool {
	_, ok := englishStopwords[token]
	return ok
}

func newStopwordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// LanguageGuesser labels text with one of a fixed closed set of languages by
// counting stopword hits in the first 500 characters.
type LanguageGuesser struct{}

// NewLanguageGuesser creates a guesser
func NewLanguageGuesser() *LanguageGuesser {
	return &LanguageGuesser{}
}

// Analyze returns the winning language label, or "unknown" when no candidate
// scores a single stopword hit.
func (g *LanguageGuesser) Analyze(text string) string {
	runes := []rune(text)
	if len(runes) > languagePrefixRunes {
		runes = runes[:languagePrefixRunes]
	}
	tokens := Tokenize(string(runes))

	best := model.LangUnknown
	bestCount := 0
	for _, lang := range languageCandidates {
		set := languageStopwords[lang]
		count := 0
		for _, tok := range tokens {
			if _, ok := set[tok]; ok {
				count++
			}
		}
		if count > bestCount {
			best = lang
			bestCount = count
		}
	}
	return best
}
