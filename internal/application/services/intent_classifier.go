package services

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// intentRule pairs a predicate with the intent it selects. Rules are
// evaluated top-to-bottom and the first match wins; the ordering is the
// priority contract, not an optimization.
type intentRule struct {
	matches func(string) bool
	intent  entities.Intent
}

// IntentClassifier maps a free-text message to exactly one intent via an
// ordered rule table. Courtesy intents are checked before any event-domain
// intent, and explicit recommend/registration phrasing before generic date
// or category phrasing, so "recommend events this month" stays a
// recommendation request rather than a date query.
type IntentClassifier struct {
	rules []intentRule
}

var (
	greetingWords       = []string{"hi", "hello", "hey", "yo", "annyeong"}
	greetingPhrases     = []string{"good morning", "good afternoon", "good evening"}
	confirmationWords   = []string{"yes", "yeah", "yep", "sure", "ok", "okay"}
	confirmationPhrases = []string{"sounds good", "of course"}
	negationWords       = []string{"no", "nope", "nah"}
	negationPhrases     = []string{"not really", "no thanks"}
	gratitudeWords      = []string{"thank", "thanks", "thx", "ty"}
	smalltalkPhrases    = []string{"how are you", "what's up", "whats up", "who are you", "what are you"}
	recommendPhrases    = []string{"recommend", "suggest", "any events i should"}
	myEventsPhrases     = []string{"my events", "what i registered", "registered", "i joined", "i signed up"}
	relativeDatePhrases = []string{"today", "tomorrow", "this week", "next week", "this month", "next month"}
	helpPhrases         = []string{"help", "what can you do", "how to"}
)

// dateTokenPattern matches month names and numeric date tokens. ISO and
// slash dates both route to events_on_date; the resolver decides whether
// they actually parse.
var dateTokenPattern = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|\d{4}-\d{1,2}-\d{1,2}|\d{1,2}/\d{1,2})\b`)

var wordPattern = regexp.MustCompile(`[a-z']+`)

// NewIntentClassifier builds the classifier with its fixed priority order.
func NewIntentClassifier() *IntentClassifier {
	c := &IntentClassifier{}
	c.rules = []intentRule{
		{matchesAny(greetingWords, greetingPhrases), entities.IntentGreeting},
		{matchesAny(confirmationWords, confirmationPhrases), entities.IntentConfirmation},
		{matchesAny(negationWords, negationPhrases), entities.IntentNegation},
		{matchesAny(gratitudeWords, nil), entities.IntentGratitude},
		{matchesAny(nil, smalltalkPhrases), entities.IntentSmalltalk},
		{matchesAny(nil, recommendPhrases), entities.IntentRecommend},
		{matchesAny(nil, myEventsPhrases), entities.IntentMyEvents},
		{matchesAny(nil, relativeDatePhrases), entities.IntentEventsOnDate},
		{dateTokenPattern.MatchString, entities.IntentEventsOnDate},
		{matchesAny(nil, CategoryVocabulary()), entities.IntentEventsByKeyword},
		{matchesAny(nil, helpPhrases), entities.IntentHelp},
	}
	return c
}

// Detect classifies a raw message. It is a pure function of the text: no
// date range or keyword extraction feeds into it. It always returns a
// value, defaulting to unknown.
func (c *IntentClassifier) Detect(message string) entities.Intent {
	t := strings.ToLower(strings.TrimSpace(message))
	if t == "" {
		recordUnknownIntent(t)
		return entities.IntentUnknown
	}
	for _, rule := range c.rules {
		if rule.matches(t) {
			return rule.intent
		}
	}
	recordUnknownIntent(t)
	return entities.IntentUnknown
}

// matchesAny builds a predicate that matches whole words from words (so
// "hi" never fires inside "this") and substrings from phrases.
func matchesAny(words, phrases []string) func(string) bool {
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}
	return func(t string) bool {
		if len(wordSet) > 0 {
			for _, token := range wordPattern.FindAllString(t, -1) {
				if _, ok := wordSet[token]; ok {
					return true
				}
			}
		}
		for _, p := range phrases {
			if strings.Contains(t, p) {
				return true
			}
		}
		return false
	}
}

var (
	unknownIntentCounterOnce sync.Once
	unknownIntentCounter     metric.Int64Counter
)

func initUnknownIntentCounter() {
	meter := otel.Meter("github.com/sejongtown/campus-assistant/intent_classifier")
	counter, err := meter.Int64Counter(
		"chat.intent_unknown.count",
		metric.WithDescription("Count of messages that matched no intent rule"),
	)
	if err == nil {
		unknownIntentCounter = counter
	}
}

func recordUnknownIntent(message string) {
	unknownIntentCounterOnce.Do(initUnknownIntentCounter)
	if unknownIntentCounter == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.Int("chat.message_length", len(message))}
	unknownIntentCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}
