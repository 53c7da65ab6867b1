package services

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	extractor := NewKeywordExtractor()

	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"single category", "any sports events this week?", []string{"sports"}},
		{"category case folded", "SPORTS please", []string{"sports"}},
		{"multiple categories in vocabulary order", "music or food events", []string{"music", "food"}},
		{"vocabulary order not message order", "food or music events", []string{"music", "food"}},
		{"no category falls back to tokens", "anything about the chess club meetup", []string{"club"}},
		{"fallback skips stopwords", "what events are there", nil},
		{"fallback capped at two", "robotics photography astronomy gatherings", []string{"robotics", "photography"}},
		{"short tokens dropped", "do you go to gym", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractPrefersVocabularyOverFallback(t *testing.T) {
	extractor := NewKeywordExtractor()

	// Once a vocabulary term matches, free tokens are never considered.
	got := extractor.Extract("workshop about robotics")
	if !reflect.DeepEqual(got, []string{"workshop"}) {
		t.Errorf("Extract = %v, want [workshop]", got)
	}
}
