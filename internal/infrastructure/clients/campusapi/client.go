package campusapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the campus backend API. ListEvents fails when the
// catalog is unreachable; the per-student listings return empty results for
// unknown students instead of erroring, mirroring the backend's behavior.
type Client interface {
	ListEvents(ctx context.Context) ([]EventRecord, error)
	ListAttendances(ctx context.Context, studentID string) ([]EventRecord, error)
	ListInterests(ctx context.Context, studentID string) ([]InterestRecord, error)
}

// EventRecord is the wire shape of an event row served by the backend.
type EventRecord struct {
	EventID     int    `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	SlotsLeft   int    `json:"slots_left"`
}

// InterestRecord is the wire shape of a declared interest.
type InterestRecord struct {
	InterestID int    `json:"interest_id"`
	Name       string `json:"name"`
}

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:5000/api".
func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListEvents fetches all catalog events.
func (c *HTTPClient) ListEvents(ctx context.Context) ([]EventRecord, error) {
	endpoint := fmt.Sprintf("%s/events", c.baseURL)
	var out []EventRecord
	if err := c.doJSON(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAttendances fetches the events a student is registered for. A
// non-200 response means the student is unknown or has none; that is an
// empty list, not an error.
func (c *HTTPClient) ListAttendances(ctx context.Context, studentID string) ([]EventRecord, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("student id is required")
	}
	endpoint := fmt.Sprintf("%s/attendance/%s/attendances", c.baseURL, url.PathEscape(studentID))
	var out []EventRecord
	if err := c.doJSONLenient(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInterests fetches a student's declared interests, with the same
// empty-on-unknown contract as ListAttendances.
func (c *HTTPClient) ListInterests(ctx context.Context, studentID string) ([]InterestRecord, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("student id is required")
	}
	endpoint := fmt.Sprintf("%s/user-interests/%s", c.baseURL, url.PathEscape(studentID))
	var out []InterestRecord
	if err := c.doJSONLenient(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, endpoint string, out interface{}) error {
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("campus api returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode campus api response: %w", err)
	}
	return nil
}

// doJSONLenient treats any non-2xx status as "nothing for this student" and
// leaves out untouched.
func (c *HTTPClient) doJSONLenient(ctx context.Context, endpoint string, out interface{}) error {
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode campus api response: %w", err)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
