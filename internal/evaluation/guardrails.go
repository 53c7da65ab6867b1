package evaluation

import "fmt"

type GuardrailConfig struct {
	MinOverallAccuracy   float64
	MinPerIntentAccuracy float64
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	if config.MinOverallAccuracy <= 0 {
		config.MinOverallAccuracy = 0.9
	}
	if config.MinPerIntentAccuracy <= 0 {
		config.MinPerIntentAccuracy = 0.7
	}
	return &Guardrails{config: config}
}

// Check returns one violation string per threshold the summary misses.
func (g *Guardrails) Check(summary *EvalSummary) []string {
	var violations []string

	if summary.Accuracy < g.config.MinOverallAccuracy {
		violations = append(violations, fmt.Sprintf(
			"overall accuracy %.2f below threshold %.2f", summary.Accuracy, g.config.MinOverallAccuracy))
	}

	for intent, is := range summary.ByIntent {
		if is.Accuracy < g.config.MinPerIntentAccuracy {
			violations = append(violations, fmt.Sprintf(
				"intent %q accuracy %.2f below threshold %.2f", intent, is.Accuracy, g.config.MinPerIntentAccuracy))
		}
	}

	return violations
}
