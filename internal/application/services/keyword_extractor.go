package services

import (
	"regexp"
	"strings"
)

// categoryVocabulary is the closed set of event categories, in the order
// matches are reported.
var categoryVocabulary = []string{
	"academic", "social", "sports", "cultural", "technology",
	"arts", "music", "food", "workshop", "club", "class",
}

// keywordStopwords filters the free-token fallback: determiners, generic
// event words, temporal words and pronouns carry no category signal.
var keywordStopwords = map[string]struct{}{
	"what": {}, "which": {}, "have": {}, "there": {}, "events": {},
	"event": {}, "this": {}, "next": {}, "month": {}, "week": {},
	"today": {}, "tomorrow": {}, "that": {}, "with": {}, "about": {},
	"show": {}, "tell": {}, "find": {}, "give": {},
}

var alphaTokenPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

const maxFallbackKeywords = 2

// CategoryVocabulary returns the closed category vocabulary in match order.
func CategoryVocabulary() []string {
	return categoryVocabulary
}

// KeywordExtractor pulls category tokens out of free text against the
// closed vocabulary, falling back to plain word extraction when no
// vocabulary term appears. Fallback tokens may be noise (a club name, but
// also any leftover word); callers only ever apply them as filters.
type KeywordExtractor struct{}

// NewKeywordExtractor creates a keyword extractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// Extract returns matched lowercase tokens in vocabulary order, or at most
// two surviving fallback tokens in order of appearance. The result may be
// empty.
func (e *KeywordExtractor) Extract(message string) []string {
	t := strings.ToLower(strings.TrimSpace(message))
	if t == "" {
		return nil
	}

	var found []string
	for _, category := range categoryVocabulary {
		if strings.Contains(t, category) {
			found = append(found, category)
		}
	}
	if len(found) > 0 {
		return found
	}

	for _, token := range alphaTokenPattern.FindAllString(t, -1) {
		if _, stop := keywordStopwords[token]; stop {
			continue
		}
		found = append(found, token)
		if len(found) == maxFallbackKeywords {
			break
		}
	}
	return found
}
