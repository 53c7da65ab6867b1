package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sejongtown/campus-assistant/internal/domain/entities"
	"github.com/sejongtown/campus-assistant/internal/domain/repositories"
	apperrors "github.com/sejongtown/campus-assistant/pkg/errors"
)

const (
	replyGreeting     = "Hi! I'm the campus events assistant. Ask me what's happening today, this week, or in a category you like."
	replyConfirmation = "Great! What would you like to know about campus events?"
	replyNegation     = "No problem. I'm here whenever you want to look up campus events."
	replyGratitude    = "You're welcome! Happy to help with campus events anytime."
	replySmalltalk    = "I'm doing well, thanks for asking! I'm best at campus events though. Try 'what's on this week?'"
	replyHelp         = "I can tell you what events are happening today/tomorrow, show events by category (e.g., 'computer class this month'), list your registered events, and recommend events for you."

	replyNoDateMatch     = "I couldn't find events for that date/category. Do you want to see upcoming events?"
	replyNoKeywordMatch  = "No events matched that category/keyword. Would you like me to show upcoming events?"
	replyNeedIdentity    = "I need your student ID to fetch your registered events. Please log in first."
	replyNoRegistrations = "You don't seem to have any registered events."
	replyNoRecommend     = "I couldn't find any upcoming events to recommend right now."

	msgMessageRequired   = "Please send a question in the request body 'message'."
	msgStudentIDRequired = "Please log in first; this assistant needs your student ID."
	msgCatalogDown       = "Sorry, I couldn't reach the campus events service. Please try again shortly."
)

// ChatOptions carries the orchestrator's per-deployment knobs.
type ChatOptions struct {
	MaxResults           int
	MaxRegisteredResults int
	RequireStudentID     bool
}

// ChatService orchestrates one conversational turn: it classifies the
// message, resolves its constraints, fetches catalog data as needed and
// assembles the reply. No state survives a turn.
type ChatService struct {
	classifier    *IntentClassifier
	dates         *DateRangeResolver
	keywords      *KeywordExtractor
	ranking       *RankingService
	catalog       repositories.EventCatalog
	registrations repositories.RegistrationStore
	interests     repositories.InterestStore
	opts          ChatOptions
}

// NewChatService wires the orchestrator. The catalog base address lives in
// the injected repositories, never in a package-level variable.
func NewChatService(
	classifier *IntentClassifier,
	dates *DateRangeResolver,
	keywords *KeywordExtractor,
	ranking *RankingService,
	catalog repositories.EventCatalog,
	registrations repositories.RegistrationStore,
	interests repositories.InterestStore,
	opts ChatOptions,
) *ChatService {
	if opts.MaxResults <= 0 {
		opts.MaxResults = 5
	}
	if opts.MaxRegisteredResults <= 0 {
		opts.MaxRegisteredResults = 6
	}
	return &ChatService{
		classifier:    classifier,
		dates:         dates,
		keywords:      keywords,
		ranking:       ranking,
		catalog:       catalog,
		registrations: registrations,
		interests:     interests,
		opts:          opts,
	}
}

// HandleTurn processes one inbound message. Input errors surface as typed
// application errors before any catalog access; collaborator failures come
// back as a single external error the handler turns into a generic reply.
func (s *ChatService) HandleTurn(ctx context.Context, studentID, message string) (*entities.ChatReply, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil, apperrors.NewValidationError(msgMessageRequired)
	}
	if s.opts.RequireStudentID && studentID == "" {
		return nil, apperrors.NewUnauthorizedError(msgStudentIDRequired)
	}

	intent := s.classifier.Detect(msg)
	zerolog.Ctx(ctx).Debug().
		Str("intent", string(intent)).
		Int("message_length", len(msg)).
		Msg("classified chat message")

	switch intent {
	case entities.IntentGreeting:
		return &entities.ChatReply{Reply: replyGreeting}, nil
	case entities.IntentConfirmation:
		return &entities.ChatReply{Reply: replyConfirmation}, nil
	case entities.IntentNegation:
		return &entities.ChatReply{Reply: replyNegation}, nil
	case entities.IntentGratitude:
		return &entities.ChatReply{Reply: replyGratitude}, nil
	case entities.IntentSmalltalk:
		return &entities.ChatReply{Reply: replySmalltalk}, nil
	case entities.IntentHelp:
		return &entities.ChatReply{Reply: replyHelp}, nil
	case entities.IntentEventsOnDate:
		return s.eventsOnDate(ctx, msg)
	case entities.IntentEventsByKeyword:
		return s.eventsByKeyword(ctx, msg)
	case entities.IntentMyEvents:
		return s.registeredEvents(ctx, studentID)
	case entities.IntentRecommend:
		return s.recommendEvents(ctx, studentID)
	default:
		return s.fallbackSuggestion(ctx)
	}
}

func (s *ChatService) eventsOnDate(ctx context.Context, msg string) (*entities.ChatReply, error) {
	rng := s.dates.Resolve(msg)
	keywords := s.keywords.Extract(msg)

	events, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return nil, apperrors.NewExternalError(msgCatalogDown, err)
	}

	var matched []entities.Event
	if rng != nil {
		matched = s.ranking.FilterByDate(events, rng)
	} else {
		// The message looked date-like but nothing parsed; fall back to
		// a keyword search so e.g. a misspelled month still answers.
		matched = searchByText(events, keywords)
	}
	matched = s.ranking.FilterByCategory(matched, keywords)

	if len(matched) == 0 {
		return &entities.ChatReply{Reply: replyNoDateMatch}, nil
	}
	matched = capEvents(matched, s.opts.MaxResults)
	return &entities.ChatReply{
		Reply:  "I found these events: " + s.eventTitles(matched),
		Events: matched,
	}, nil
}

func (s *ChatService) eventsByKeyword(ctx context.Context, msg string) (*entities.ChatReply, error) {
	keywords := s.keywords.Extract(msg)

	events, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return nil, apperrors.NewExternalError(msgCatalogDown, err)
	}

	matched := searchByText(events, keywords)
	if len(matched) == 0 {
		return &entities.ChatReply{Reply: replyNoKeywordMatch}, nil
	}
	matched = capEvents(matched, s.opts.MaxResults)
	return &entities.ChatReply{
		Reply:  "Here are matching events: " + s.eventTitles(matched),
		Events: matched,
	}, nil
}

func (s *ChatService) registeredEvents(ctx context.Context, studentID string) (*entities.ChatReply, error) {
	if studentID == "" {
		// User-visible, not fatal: the turn still succeeds.
		return &entities.ChatReply{Reply: replyNeedIdentity}, nil
	}

	regs, err := s.registrations.ListRegistrations(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewExternalError(msgCatalogDown, err)
	}
	if len(regs) == 0 {
		return &entities.ChatReply{Reply: replyNoRegistrations}, nil
	}
	regs = capEvents(regs, s.opts.MaxRegisteredResults)
	return &entities.ChatReply{
		Reply:  "You're registered for: " + s.eventTitles(regs),
		Events: regs,
	}, nil
}

func (s *ChatService) recommendEvents(ctx context.Context, studentID string) (*entities.ChatReply, error) {
	events, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return nil, apperrors.NewExternalError(msgCatalogDown, err)
	}

	profile, err := s.buildPreferenceProfile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	scored := s.ranking.Recommend(events, profile)
	if len(scored) == 0 {
		return &entities.ChatReply{Reply: replyNoRecommend}, nil
	}

	picked := make([]entities.Event, 0, s.opts.MaxResults)
	for _, se := range scored {
		picked = append(picked, se.Event)
		if len(picked) == s.opts.MaxResults {
			break
		}
	}
	return &entities.ChatReply{
		Reply:  "I recommend these events for you: " + s.eventTitles(picked),
		Events: picked,
	}, nil
}

// buildPreferenceProfile derives the per-turn preference multiset from the
// student's registered-event categories and declared interests. An absent
// identity yields an empty profile and the recommendation degrades to
// recency-only scoring.
func (s *ChatService) buildPreferenceProfile(ctx context.Context, studentID string) (entities.PreferenceProfile, error) {
	profile := entities.NewPreferenceProfile()
	if studentID == "" {
		return profile, nil
	}

	regs, err := s.registrations.ListRegistrations(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewExternalError(msgCatalogDown, err)
	}
	for _, r := range regs {
		profile.Add(r.Category)
	}

	interests, err := s.interests.ListInterests(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewExternalError(msgCatalogDown, err)
	}
	for _, i := range interests {
		profile.Add(i.Name)
	}
	return profile, nil
}

func (s *ChatService) fallbackSuggestion(ctx context.Context) (*entities.ChatReply, error) {
	events, err := s.catalog.ListEvents(ctx)
	if err != nil {
		return nil, apperrors.NewExternalError(msgCatalogDown, err)
	}
	upcoming := capEvents(events, s.opts.MaxResults)
	if len(upcoming) == 0 {
		return &entities.ChatReply{Reply: "Sorry, I didn't understand that, and there are no upcoming events right now."}, nil
	}
	return &entities.ChatReply{
		Reply:  "Sorry, I didn't understand that. Here are some upcoming events: " + s.eventTitles(upcoming),
		Events: upcoming,
	}, nil
}

// searchByText matches any keyword as a substring of the event's combined
// title, description and category text.
func searchByText(events []entities.Event, keywords []string) []entities.Event {
	if len(keywords) == 0 {
		return nil
	}
	var matched []entities.Event
	for _, e := range events {
		text := strings.ToLower(e.Title + " " + e.Description + " " + e.Category)
		for _, k := range keywords {
			if strings.Contains(text, k) {
				matched = append(matched, e)
				break
			}
		}
	}
	return matched
}

func (s *ChatService) eventTitles(events []entities.Event) string {
	parts := make([]string, 0, len(events))
	for _, e := range events {
		parts = append(parts, fmt.Sprintf("%s (%s)", e.Title, s.displayDate(e)))
	}
	return strings.Join(parts, ", ")
}

// displayDate prefers the derived local calendar date and falls back to
// the stored raw value when the timestamp does not parse.
func (s *ChatService) displayDate(e entities.Event) string {
	if d, ok := s.ranking.LocalDate(e); ok {
		return d.Format("2006-01-02")
	}
	return e.Date
}

func capEvents(events []entities.Event, limit int) []entities.Event {
	if len(events) <= limit {
		return events
	}
	return events[:limit]
}
