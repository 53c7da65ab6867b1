package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
	"github.com/sejongtown/campus-assistant/pkg/utils"
)

// ScoredEvent pairs an event with its ephemeral recommendation score. The
// score exists for one sort and is never persisted.
type ScoredEvent struct {
	Event entities.Event
	Score int
}

// Scoring weights. A category match dominates; recency is a tie-nudge.
const (
	categoryMatchScore = 5
	upcomingSoonScore  = 1
	recencyWindowDays  = 7
)

// RankingService filters and orders candidate events. Events whose stored
// timestamp is absent or unparsable are excluded up front, never compared:
// one bad record must not abort a turn.
type RankingService struct {
	offsetHours int
	location    *time.Location
	now         func() time.Time
}

// NewRankingService creates a ranking service using the given fixed UTC
// offset for local-date derivation.
func NewRankingService(offsetHours int) *RankingService {
	return &RankingService{
		offsetHours: offsetHours,
		location:    time.FixedZone(fmt.Sprintf("UTC+%d", offsetHours), offsetHours*3600),
		now:         time.Now,
	}
}

// LocalDate derives the local calendar date of an event, with ok=false for
// events whose timestamp is absent or unparsable.
func (s *RankingService) LocalDate(e entities.Event) (time.Time, bool) {
	d, err := utils.EventLocalDate(e.Date, s.offsetHours)
	if err != nil || d.IsZero() {
		return time.Time{}, false
	}
	return d, true
}

// FilterByDate keeps events with a derivable local date, additionally
// restricted to rng when one is present. Catalog order is preserved.
func (s *RankingService) FilterByDate(events []entities.Event, rng *entities.DateRange) []entities.Event {
	var kept []entities.Event
	for _, e := range events {
		d, ok := s.LocalDate(e)
		if !ok {
			continue
		}
		if rng != nil && !rng.Contains(d) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// FilterByCategory keeps events whose category equals one of the keywords,
// compared lower-cased and exactly, not by substring. An empty keyword list
// keeps everything.
func (s *RankingService) FilterByCategory(events []entities.Event, keywords []string) []entities.Event {
	if len(keywords) == 0 {
		return events
	}
	keywordSet := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		keywordSet[strings.ToLower(k)] = struct{}{}
	}
	var kept []entities.Event
	for _, e := range events {
		if _, ok := keywordSet[strings.ToLower(e.Category)]; ok {
			kept = append(kept, e)
		}
	}
	return kept
}

// Recommend scores the events against the preference profile and orders
// them best first. Scoring: +5 when the event category appears in the
// profile, +1 when the local date falls within the next seven days
// (inclusive). The sort is stable, so equal scores keep catalog order and
// re-ranking an unchanged list yields the same order.
func (s *RankingService) Recommend(events []entities.Event, profile entities.PreferenceProfile) []ScoredEvent {
	today := utils.DateOnly(s.now().In(s.location))
	soonCutoff := today.AddDate(0, 0, recencyWindowDays)

	var scored []ScoredEvent
	for _, e := range events {
		d, ok := s.LocalDate(e)
		if !ok {
			continue
		}
		score := 0
		if profile.Matches(e.Category) {
			score += categoryMatchScore
		}
		if !d.Before(today) && !d.After(soonCutoff) {
			score += upcomingSoonScore
		}
		scored = append(scored, ScoredEvent{Event: e, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
