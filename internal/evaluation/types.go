package evaluation

import (
	"time"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
)

// GoldenMessage represents a labeled chat message with its expected intent.
type GoldenMessage struct {
	ID         string          `json:"id"`
	Message    string          `json:"message"`
	Intent     entities.Intent `json:"intent"`
	Difficulty string          `json:"difficulty"` // easy, medium, hard
}

// EvalResult holds the evaluation outcome for a single message.
type EvalResult struct {
	MessageID string
	Message   string
	Expected  entities.Intent
	Actual    entities.Intent
	Correct   bool
	Latency   time.Duration
}

// EvalSummary holds aggregate metrics across all golden messages.
type EvalSummary struct {
	TotalMessages int
	CorrectCount  int
	Accuracy      float64
	AvgLatency    time.Duration
	ByIntent      map[entities.Intent]*IntentSummary
	Confusions    []Confusion
}

// IntentSummary holds metrics grouped by expected intent.
type IntentSummary struct {
	Count    int
	Correct  int
	Accuracy float64
}

// Confusion records one misclassified message.
type Confusion struct {
	MessageID string
	Message   string
	Expected  entities.Intent
	Actual    entities.Intent
}
