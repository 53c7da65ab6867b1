package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sejongtown/campus-assistant/internal/domain/entities"
	"github.com/sejongtown/campus-assistant/internal/domain/providers"
	"github.com/sejongtown/campus-assistant/internal/infrastructure/clients/campusapi"
	"github.com/sejongtown/campus-assistant/pkg/retry"
)

// Cache TTLs (in seconds). The full event list is shared across users and
// changes slowly; per-student listings are not cached so a fresh
// registration shows up immediately.
const eventListTTL = 60

const eventListCacheKey = "catalog:events"

// APIAdapter exposes the campus backend API as the catalog, registration
// and interest repositories, with retries on the shared event list and an
// optional read-through cache.
type APIAdapter struct {
	client   campusapi.Client
	cache    providers.CacheProvider
	retryCfg retry.Config
}

// NewAPIAdapter creates the adapter. cache may be nil, in which case every
// call goes to the backend.
func NewAPIAdapter(client campusapi.Client, cache providers.CacheProvider) *APIAdapter {
	return &APIAdapter{
		client:   client,
		cache:    cache,
		retryCfg: retry.DefaultConfig(),
	}
}

// ListEvents returns all catalog events, serving from cache when possible.
func (a *APIAdapter) ListEvents(ctx context.Context) ([]entities.Event, error) {
	if a.cache != nil {
		if cached, err := a.cache.Get(ctx, eventListCacheKey); err == nil {
			var events []entities.Event
			if err := json.Unmarshal(cached, &events); err == nil {
				return events, nil
			}
			log.Warn().Err(err).Msg("discarding unreadable cached event list")
		}
	}

	var records []campusapi.EventRecord
	err := retry.DoWithLog(ctx, a.retryCfg, "event catalog", func() error {
		var fetchErr error
		records, fetchErr = a.client.ListEvents(ctx)
		return fetchErr
	}, func(attempt int, err error, nextDelay time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).
			Msg("event catalog fetch failed, retrying")
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.Event, 0, len(records))
	for _, r := range records {
		events = append(events, eventFromRecord(r))
	}

	if a.cache != nil {
		// Update the cache off the request path.
		go func(events []entities.Event) {
			if data, err := json.Marshal(events); err == nil {
				if err := a.cache.Set(context.Background(), eventListCacheKey, data, eventListTTL); err != nil {
					log.Warn().Err(err).Msg("failed to cache event list")
				}
			}
		}(events)
	}

	return events, nil
}

// ListRegistrations returns the events a student has registered for. An
// unknown student yields an empty list.
func (a *APIAdapter) ListRegistrations(ctx context.Context, studentID string) ([]entities.Event, error) {
	records, err := a.client.ListAttendances(ctx, studentID)
	if err != nil {
		return nil, err
	}
	events := make([]entities.Event, 0, len(records))
	for _, r := range records {
		events = append(events, eventFromRecord(r))
	}
	return events, nil
}

// ListInterests returns a student's declared interests, empty on unknown.
func (a *APIAdapter) ListInterests(ctx context.Context, studentID string) ([]entities.Interest, error) {
	records, err := a.client.ListInterests(ctx, studentID)
	if err != nil {
		return nil, err
	}
	interests := make([]entities.Interest, 0, len(records))
	for _, r := range records {
		interests = append(interests, entities.Interest{ID: r.InterestID, Name: r.Name})
	}
	return interests, nil
}

func eventFromRecord(r campusapi.EventRecord) entities.Event {
	return entities.Event{
		ID:          r.EventID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.EventDate,
		Time:        r.EventTime,
		Location:    r.Location,
	}
}
