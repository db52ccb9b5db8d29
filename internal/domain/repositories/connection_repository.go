package repositories

import (
	"context"

	"github.com/google/uuid"
	"venture-link.backend/internal/domain/entities"
)

// ConnectionRepository defines connection request data operations
type ConnectionRepository interface {
	Create(ctx context.Context, conn *entities.Connection) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error)
	// GetLiveByPair returns the pending or accepted row between the two
	// profiles regardless of direction, or ErrNotFound.
	GetLiveByPair(ctx context.Context, a, b uuid.UUID) (*entities.Connection, error)
	// UpdateStatus transitions a row to the given status, stamping
	// responded_at/response_message and releasing the pair key on terminal
	// states.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error
	ListAccepted(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*entities.Connection, error)
	ListPendingIncoming(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error)
	ListPendingOutgoing(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error)
	Count(ctx context.Context) (int64, error)
}
