package repositories

import (
	"context"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
)

// EventCatalog lists the events known to the campus backend. An unreachable
// catalog is an error; a catalog with no events is an empty list.
type EventCatalog interface {
	ListEvents(ctx context.Context) ([]entities.Event, error)
}

// RegistrationStore lists the events a student has registered for. An
// unknown student or a student with no registrations yields an empty list,
// not an error.
type RegistrationStore interface {
	ListRegistrations(ctx context.Context, studentID string) ([]entities.Event, error)
}

// InterestStore lists a student's declared interests, with the same
// empty-on-unknown contract as RegistrationStore.
type InterestStore interface {
	ListInterests(ctx context.Context, studentID string) ([]entities.Interest, error)
}
