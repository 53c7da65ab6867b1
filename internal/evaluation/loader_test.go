package evaluation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
)

func writeGoldenFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golden.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write golden file: %v", err)
	}
	return path
}

func TestLoadGoldenMessages(t *testing.T) {
	path := writeGoldenFile(t, `[
		{"id": "g-01", "message": "hi", "intent": "greeting", "difficulty": "easy"},
		{"id": "d-01", "message": "events today", "intent": "events_on_date", "difficulty": "easy"}
	]`)

	messages, err := LoadGoldenMessages(path)
	if err != nil {
		t.Fatalf("LoadGoldenMessages error: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0].Intent != entities.IntentGreeting {
		t.Errorf("first intent = %q", messages[0].Intent)
	}
}

func TestLoadGoldenMessagesMissingFile(t *testing.T) {
	if _, err := LoadGoldenMessages("does-not-exist.json"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadGoldenMessagesBadJSON(t *testing.T) {
	path := writeGoldenFile(t, `{not json`)
	if _, err := LoadGoldenMessages(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidateGoldenMessages(t *testing.T) {
	valid := []GoldenMessage{
		{ID: "a", Message: "hi", Intent: entities.IntentGreeting, Difficulty: "easy"},
	}
	if err := ValidateGoldenMessages(valid); err != nil {
		t.Errorf("valid set rejected: %v", err)
	}

	tests := []struct {
		name     string
		messages []GoldenMessage
	}{
		{"missing id", []GoldenMessage{{Message: "hi", Intent: entities.IntentGreeting, Difficulty: "easy"}}},
		{"duplicate id", []GoldenMessage{
			{ID: "a", Message: "hi", Intent: entities.IntentGreeting, Difficulty: "easy"},
			{ID: "a", Message: "yes", Intent: entities.IntentConfirmation, Difficulty: "easy"},
		}},
		{"missing text", []GoldenMessage{{ID: "a", Intent: entities.IntentGreeting, Difficulty: "easy"}}},
		{"invalid intent", []GoldenMessage{{ID: "a", Message: "hi", Intent: "nonsense", Difficulty: "easy"}}},
		{"invalid difficulty", []GoldenMessage{{ID: "a", Message: "hi", Intent: entities.IntentGreeting, Difficulty: "impossible"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateGoldenMessages(tt.messages); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestShippedGoldenSetIsValid(t *testing.T) {
	path := filepath.Join("..", "..", "config", "golden_messages.json")
	messages, err := LoadGoldenMessages(path)
	if err != nil {
		t.Fatalf("failed to load shipped golden set: %v", err)
	}
	if err := ValidateGoldenMessages(messages); err != nil {
		t.Errorf("shipped golden set invalid: %v", err)
	}
}
