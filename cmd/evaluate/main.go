package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/sejongtown/campus-assistant/internal/application/services"
	"github.com/sejongtown/campus-assistant/internal/evaluation"
)

func main() {
	goldenPath := "config/golden_messages.json"
	if len(os.Args) > 1 {
		goldenPath = os.Args[1]
	}

	messages, err := evaluation.LoadGoldenMessages(goldenPath)
	if err != nil {
		log.Fatalf("Failed to load golden messages: %v", err)
	}
	if err := evaluation.ValidateGoldenMessages(messages); err != nil {
		log.Fatalf("Invalid golden messages: %v", err)
	}

	runner := evaluation.NewRunner(services.NewIntentClassifier())
	summary := runner.Run(messages)

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	guardrails := evaluation.NewGuardrails(evaluation.GuardrailConfig{})
	if violations := guardrails.Check(summary); len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, "guardrail violation:", v)
		}
		os.Exit(1)
	}
}
