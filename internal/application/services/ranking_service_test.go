package services

import (
	"testing"
	"time"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
	"github.com/sejongtown/campus-assistant/pkg/utils"
)

const testOffsetHours = 9

// eventOn builds an event whose stored UTC timestamp lands on the given
// local calendar date at UTC+9.
func eventOn(id int, title, category string, localDate time.Time) entities.Event {
	return entities.Event{
		ID:       id,
		Title:    title,
		Category: category,
		Date:     utils.UTCTimestamp(localDate, testOffsetHours),
	}
}

func newTestRanking(nowUTC time.Time) *RankingService {
	s := NewRankingService(testOffsetHours)
	s.now = func() time.Time { return nowUTC }
	return s
}

func TestFilterByDate(t *testing.T) {
	s := newTestRanking(time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC))

	events := []entities.Event{
		eventOn(1, "Career Fair", "academic", day(2025, time.October, 2)),
		eventOn(2, "Autumn Festival", "cultural", day(2025, time.October, 20)),
		{ID: 3, Title: "No Date", Category: "social", Date: ""},
		{ID: 4, Title: "Bad Date", Category: "social", Date: "not-a-timestamp"},
	}

	rng := entities.NewDateRange(day(2025, time.October, 1), day(2025, time.October, 5))
	kept := s.FilterByDate(events, rng)
	if len(kept) != 1 || kept[0].ID != 1 {
		t.Fatalf("FilterByDate with range = %v, want only event 1", kept)
	}

	// A nil range only drops events without a usable date.
	kept = s.FilterByDate(events, nil)
	if len(kept) != 2 || kept[0].ID != 1 || kept[1].ID != 2 {
		t.Fatalf("FilterByDate without range = %v, want events 1 and 2", kept)
	}
}

func TestFilterByCategory(t *testing.T) {
	s := newTestRanking(time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC))

	events := []entities.Event{
		{ID: 1, Category: "Sports"},
		{ID: 2, Category: "sports"},
		{ID: 3, Category: "esports"},
		{ID: 4, Category: "music"},
	}

	// Comparison is case-insensitive but exact, never substring.
	kept := s.FilterByCategory(events, []string{"sports"})
	if len(kept) != 2 || kept[0].ID != 1 || kept[1].ID != 2 {
		t.Fatalf("FilterByCategory = %v, want events 1 and 2", kept)
	}

	if kept := s.FilterByCategory(events, nil); len(kept) != len(events) {
		t.Errorf("empty keyword list must keep all events, kept %d", len(kept))
	}
}

func TestRecommendScoring(t *testing.T) {
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	s := newTestRanking(now)

	profile := entities.NewPreferenceProfile()
	profile.Add("music")

	events := []entities.Event{
		eventOn(1, "Jazz Night", "music", day(2025, time.October, 3)),       // 5 + 1
		eventOn(2, "Soccer Match", "sports", day(2025, time.October, 4)),    // 1
		eventOn(3, "Winter Concert", "music", day(2025, time.October, 25)),  // 5
		eventOn(4, "Robotics Expo", "technology", day(2025, time.November, 2)), // 0
		{ID: 5, Title: "Broken", Category: "music", Date: "garbage"},
	}

	scored := s.Recommend(events, profile)
	if len(scored) != 4 {
		t.Fatalf("Recommend returned %d events, want 4 (broken record dropped)", len(scored))
	}

	wantOrder := []int{1, 3, 2, 4}
	wantScores := []int{6, 5, 1, 0}
	for i := range wantOrder {
		if scored[i].Event.ID != wantOrder[i] || scored[i].Score != wantScores[i] {
			t.Errorf("position %d: got event %d score %d, want event %d score %d",
				i, scored[i].Event.ID, scored[i].Score, wantOrder[i], wantScores[i])
		}
	}
}

func TestRecommendStableForEqualScores(t *testing.T) {
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	s := newTestRanking(now)

	// All three score identically; catalog order must survive, and
	// re-ranking must not shuffle it.
	events := []entities.Event{
		eventOn(1, "A", "social", day(2025, time.October, 2)),
		eventOn(2, "B", "social", day(2025, time.October, 3)),
		eventOn(3, "C", "social", day(2025, time.October, 4)),
	}

	first := s.Recommend(events, entities.NewPreferenceProfile())
	second := s.Recommend(events, entities.NewPreferenceProfile())
	for i := range first {
		if first[i].Event.ID != i+1 {
			t.Errorf("position %d: got event %d, want catalog order", i, first[i].Event.ID)
		}
		if first[i].Event.ID != second[i].Event.ID {
			t.Errorf("re-ranking changed order at position %d", i)
		}
	}
}

func TestRecencyWindowIsInclusive(t *testing.T) {
	now := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)
	s := newTestRanking(now)

	events := []entities.Event{
		eventOn(1, "Window Edge", "social", day(2025, time.October, 8)),  // today+7
		eventOn(2, "Past Window", "social", day(2025, time.October, 9)),  // today+8
		eventOn(3, "Yesterday", "social", day(2025, time.September, 30)), // before today
	}

	scored := s.Recommend(events, entities.NewPreferenceProfile())
	scores := map[int]int{}
	for _, se := range scored {
		scores[se.Event.ID] = se.Score
	}
	if scores[1] != 1 {
		t.Errorf("event on today+7 scored %d, want 1", scores[1])
	}
	if scores[2] != 0 {
		t.Errorf("event on today+8 scored %d, want 0", scores[2])
	}
	if scores[3] != 0 {
		t.Errorf("past event scored %d, want 0", scores[3])
	}
}
