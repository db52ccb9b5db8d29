package repositories

import (
	"context"

	"github.com/google/uuid"
	"venture-link.backend/internal/domain/entities"
)

// EventRepository defines event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	// GetByIDForUpdate locks the event row for the remainder of the enclosing
	// transaction so capacity checks serialize per event.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPublished(ctx context.Context, audience entities.ProfileRole, limit, offset int) ([]*entities.Event, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error)
	Count(ctx context.Context) (int64, error)
}

// EventRegistrationRepository defines event registration data operations
type EventRegistrationRepository interface {
	Create(ctx context.Context, reg *entities.EventRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.EventRegistration, error)
	GetLiveByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entities.EventRegistration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RegistrationStatus) error
	CountConfirmed(ctx context.Context, eventID uuid.UUID) (int64, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entities.EventRegistration, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.EventRegistration, error)
	Count(ctx context.Context) (int64, error)
}
