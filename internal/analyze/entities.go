package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/textsieve/textsieve/internal/model"
)

// EntityExtractor finds people, places, organizations, dates and values with
// lexical/grammatical rules. It is an intentionally rough approximation:
// capitalization patterns, honorifics, prepositions and unit words, no
// learned model.
type EntityExtractor struct {
	org       *regexp.Regexp
	honorific *regexp.Regexp
	namePair  *regexp.Regexp
	place     *regexp.Regexp
	dateText  *regexp.Regexp
	dateNum   *regexp.Regexp
	year      *regexp.Regexp
	currency  *regexp.Regexp
	percent   *regexp.Regexp
	quantity  *regexp.Regexp
}

// placePrefixes are capitalized words that start multi-word place names far
// more often than person names ("New York", "San Juan", "Lake Tahoe").
var placePrefixes = map[string]struct{}{
	"The": {}, "New": {}, "North": {}, "South": {}, "East": {}, "West": {},
	"San": {}, "Los": {}, "Las": {}, "Saint": {}, "St": {}, "Mount": {},
	"Lake": {}, "Fort": {}, "Port": {}, "Cape": {},
}

var monthNames = map[string]struct{}{
	"January": {}, "February": {}, "March": {}, "April": {}, "May": {},
	"June": {}, "July": {}, "August": {}, "September": {}, "October": {},
	"November": {}, "December": {},
}

// NewEntityExtractor compiles the rule patterns
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{
		org: regexp.MustCompile(
			`\b(?:[A-Z][A-Za-z&]*\s+)+(?:Inc|Corp|Corporation|Ltd|LLC|Co|Company|Group|Labs|Foundation|University|Institute)\.?`),
		honorific: regexp.MustCompile(
			`\b(?:Mr|Mrs|Ms|Dr|Prof|Professor|President|Sir)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`),
		namePair: regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`),
		place: regexp.MustCompile(
			`\b(?:in|at|from|near|to)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		dateText: regexp.MustCompile(
			`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?\b`),
		dateNum:  regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		year:     regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
		currency: regexp.MustCompile(`[$€£¥]\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:million|billion|trillion))?`),
		percent:  regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`),
		quantity: regexp.MustCompile(
			`\b\d[\d,]*(?:\.\d+)?\s+(?:dollars|euros|pounds|percent|million|billion|thousand)\b`),
	}
}

// span is a half-open [start,end) byte range in the analyzed text
type span struct {
	start, end int
	text       string
}

// Analyze extracts all five entity categories. Every category returns the
// matched spans in text order; an empty list, never absence, when nothing
// matched.
func (e *EntityExtractor) Analyze(text string) model.EntityResult {
	orgs := findSpans(e.org, text)

	var people []span
	people = append(people, findSpans(e.honorific, text)...)
	for _, cand := range findSpans(e.namePair, text) {
		if overlapsAny(cand, orgs) || overlapsAny(cand, people) {
			continue
		}
		first, _, _ := strings.Cut(cand.text, " ")
		if _, ok := placePrefixes[first]; ok {
			continue
		}
		if _, ok := monthNames[first]; ok {
			continue
		}
		people = append(people, cand)
	}

	var places []span
	for _, m := range e.place.FindAllStringSubmatchIndex(text, -1) {
		cand := span{start: m[2], end: m[3], text: text[m[2]:m[3]]}
		if overlapsAny(cand, orgs) {
			continue
		}
		first, _, _ := strings.Cut(cand.text, " ")
		if _, ok := monthNames[first]; ok {
			continue
		}
		places = append(places, cand)
	}

	dates := findSpans(e.dateText, text)
	dates = append(dates, findSpans(e.dateNum, text)...)
	for _, y := range findSpans(e.year, text) {
		if !overlapsAny(y, dates) {
			dates = append(dates, y)
		}
	}

	values := findSpans(e.currency, text)
	values = append(values, findSpans(e.percent, text)...)
	for _, q := range findSpans(e.quantity, text) {
		if !overlapsAny(q, values) {
			values = append(values, q)
		}
	}

	return model.EntityResult{
		People:        spanTexts(people),
		Places:        spanTexts(places),
		Organizations: spanTexts(orgs),
		Dates:         spanTexts(dates),
		Values:        spanTexts(values),
	}
}

func findSpans(re *regexp.Regexp, text string) []span {
	var spans []span
	for _, m := range re.FindAllStringIndex(text, -1) {
		spans = append(spans, span{start: m[0], end: m[1], text: text[m[0]:m[1]]})
	}
	return spans
}

func overlapsAny(s span, others []span) bool {
	for _, o := range others {
		if s.start < o.end && o.start < s.end {
			return true
		}
	}
	return false
}

// spanTexts orders spans by position and returns their text
func spanTexts(spans []span) []string {
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.text
	}
	return out
}
