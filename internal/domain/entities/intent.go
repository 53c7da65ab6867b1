package entities

// Intent represents the classified purpose of a user message.
type Intent string

const (
	IntentGreeting        Intent = "greeting"
	IntentConfirmation    Intent = "confirmation"
	IntentNegation        Intent = "negation"
	IntentGratitude       Intent = "gratitude"
	IntentSmalltalk       Intent = "smalltalk"
	IntentEventsOnDate    Intent = "events_on_date"
	IntentEventsByKeyword Intent = "events_by_category_or_keyword"
	IntentMyEvents        Intent = "my_registered_events"
	IntentRecommend       Intent = "recommend_events"
	IntentHelp            Intent = "help"
	IntentUnknown         Intent = "unknown"
)

// ValidIntents returns all defined intent values.
func ValidIntents() []Intent {
	return []Intent{
		IntentGreeting, IntentConfirmation, IntentNegation, IntentGratitude,
		IntentSmalltalk, IntentEventsOnDate, IntentEventsByKeyword,
		IntentMyEvents, IntentRecommend, IntentHelp, IntentUnknown,
	}
}

// IsValid checks if the intent value is one of the defined constants.
func (i Intent) IsValid() bool {
	for _, v := range ValidIntents() {
		if i == v {
			return true
		}
	}
	return false
}

// Conversational reports whether the intent is a courtesy intent that is
// answered without any catalog access.
func (i Intent) Conversational() bool {
	switch i {
	case IntentGreeting, IntentConfirmation, IntentNegation, IntentGratitude, IntentSmalltalk:
		return true
	}
	return false
}
