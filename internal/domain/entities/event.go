package entities

// Event represents a catalog event as served by the campus backend.
// The Date field is the stored UTC instant; the local calendar date is
// derived from it per request and never stored back.
type Event struct {
	ID          int    `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"event_date"`
	Time        string `json:"event_time,omitempty"`
	Location    string `json:"location,omitempty"`
}

// ChatReply is the outcome of one conversational turn.
type ChatReply struct {
	Reply  string  `json:"reply"`
	Events []Event `json:"events,omitempty"`
}
