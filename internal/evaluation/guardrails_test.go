package evaluation

import (
	"testing"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
)

func TestGuardrailsPass(t *testing.T) {
	g := NewGuardrails(GuardrailConfig{MinOverallAccuracy: 0.8, MinPerIntentAccuracy: 0.5})

	summary := &EvalSummary{
		TotalMessages: 10,
		CorrectCount:  9,
		Accuracy:      0.9,
		ByIntent: map[entities.Intent]*IntentSummary{
			entities.IntentGreeting: {Count: 5, Correct: 5, Accuracy: 1.0},
			entities.IntentHelp:     {Count: 5, Correct: 4, Accuracy: 0.8},
		},
	}

	if violations := g.Check(summary); len(violations) != 0 {
		t.Errorf("unexpected violations: %v", violations)
	}
}

func TestGuardrailsFlagLowAccuracy(t *testing.T) {
	g := NewGuardrails(GuardrailConfig{MinOverallAccuracy: 0.9, MinPerIntentAccuracy: 0.7})

	summary := &EvalSummary{
		TotalMessages: 10,
		CorrectCount:  7,
		Accuracy:      0.7,
		ByIntent: map[entities.Intent]*IntentSummary{
			entities.IntentGreeting: {Count: 5, Correct: 2, Accuracy: 0.4},
		},
	}

	violations := g.Check(summary)
	if len(violations) != 2 {
		t.Errorf("got %d violations, want overall and per-intent: %v", len(violations), violations)
	}
}

func TestGuardrailsDefaults(t *testing.T) {
	g := NewGuardrails(GuardrailConfig{})
	if g.config.MinOverallAccuracy != 0.9 || g.config.MinPerIntentAccuracy != 0.7 {
		t.Errorf("defaults = %+v", g.config)
	}
}
