package evaluation

import (
	"time"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
)

// IntentDetector is the slice of the classifier the runner needs.
type IntentDetector interface {
	Detect(message string) entities.Intent
}

// Runner runs evaluation across a set of golden messages.
type Runner struct {
	classifier IntentDetector
}

func NewRunner(classifier IntentDetector) *Runner {
	return &Runner{classifier: classifier}
}

func (r *Runner) Run(messages []GoldenMessage) *EvalSummary {
	summary := &EvalSummary{
		TotalMessages: len(messages),
		ByIntent:      make(map[entities.Intent]*IntentSummary),
	}

	for _, gm := range messages {
		start := time.Now()
		actual := r.classifier.Detect(gm.Message)
		duration := time.Since(start)

		result := EvalResult{
			MessageID: gm.ID,
			Message:   gm.Message,
			Expected:  gm.Intent,
			Actual:    actual,
			Correct:   actual == gm.Intent,
			Latency:   duration,
		}

		r.updateSummary(summary, result)
	}

	r.finalizeSummary(summary)
	return summary
}

func (r *Runner) updateSummary(s *EvalSummary, res EvalResult) {
	s.AvgLatency += res.Latency
	if res.Correct {
		s.CorrectCount++
	} else {
		s.Confusions = append(s.Confusions, Confusion{
			MessageID: res.MessageID,
			Message:   res.Message,
			Expected:  res.Expected,
			Actual:    res.Actual,
		})
	}

	if _, ok := s.ByIntent[res.Expected]; !ok {
		s.ByIntent[res.Expected] = &IntentSummary{}
	}
	is := s.ByIntent[res.Expected]
	is.Count++
	if res.Correct {
		is.Correct++
	}
}

func (r *Runner) finalizeSummary(s *EvalSummary) {
	s.Accuracy = Accuracy(s.CorrectCount, s.TotalMessages)
	if s.TotalMessages > 0 {
		s.AvgLatency /= time.Duration(s.TotalMessages)
	}

	for _, is := range s.ByIntent {
		is.Accuracy = Accuracy(is.Correct, is.Count)
	}
}
