package repositories

import (
	"context"

	"github.com/google/uuid"
	"venture-link.backend/internal/domain/entities"
)

// NotificationRepository defines notification outbox operations
type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	// ListPendingDispatch returns up to limit notifications still awaiting
	// delivery, oldest first.
	ListPendingDispatch(ctx context.Context, limit int) ([]*entities.Notification, error)
	MarkDispatched(ctx context.Context, ids []uuid.UUID) error
}

// ActivityLogRepository defines append-only audit trail operations
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *entities.ActivityLog) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.ActivityLog, error)
	List(ctx context.Context, limit, offset int) ([]*entities.ActivityLog, int64, error)
}
