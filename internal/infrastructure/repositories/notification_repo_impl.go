package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/infrastructure/models"
	"venture-link.backend/pkg/utils"
)

// NotificationRepository implements notification outbox operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification row. Called inside the same transaction as
// the mutation it describes, so the two commit together.
func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = utils.GenerateUUIDv7()
	}
	n.CreatedAt = time.Now()
	if n.Dispatch == "" {
		n.Dispatch = entities.DispatchPending
	}

	m := &models.Notification{
		ID:          n.ID,
		UserID:      n.UserID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		ReferenceID: n.ReferenceID.Ptr(),
		IsRead:      n.IsRead,
		Dispatch:    string(n.Dispatch),
		CreatedAt:   n.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListByUser lists a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var notifModels []models.Notification
	if err := query.Find(&notifModels).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]*entities.Notification, 0, len(notifModels))
	for i := range notifModels {
		notifications = append(notifications, notificationToEntity(&notifModels[i]))
	}
	return notifications, total, nil
}

// CountUnread counts a user's unread notifications
func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks one of the user's notifications read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkAllRead marks all the user's notifications read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// ListPendingDispatch returns notifications awaiting delivery, oldest first
func (r *NotificationRepository) ListPendingDispatch(ctx context.Context, limit int) ([]*entities.Notification, error) {
	if limit <= 0 {
		limit = 100
	}

	var notifModels []models.Notification
	err := r.db.WithContext(ctx).
		Where("dispatch = ?", string(entities.DispatchPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&notifModels).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*entities.Notification, 0, len(notifModels))
	for i := range notifModels {
		notifications = append(notifications, notificationToEntity(&notifModels[i]))
	}
	return notifications, nil
}

// MarkDispatched marks the given notifications as delivered
func (r *NotificationRepository) MarkDispatched(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id IN ?", ids).
		Update("dispatch", string(entities.DispatchSent)).Error
}

func notificationToEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entities.NotificationType(m.Type),
		Title:       m.Title,
		Message:     m.Message,
		ReferenceID: null.StringFromPtr(m.ReferenceID),
		IsRead:      m.IsRead,
		Dispatch:    entities.NotificationDispatch(m.Dispatch),
		CreatedAt:   m.CreatedAt,
	}
}

// ActivityLogRepository implements append-only audit trail operations
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Append appends an audit entry
func (r *ActivityLogRepository) Append(ctx context.Context, entry *entities.ActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = utils.GenerateUUIDv7()
	}
	entry.CreatedAt = time.Now()

	m := &models.ActivityLog{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Action:    entry.Action,
		Detail:    entry.Detail.Ptr(),
		CreatedAt: entry.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListByUser lists a user's audit entries, newest first
func (r *ActivityLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}

	var logModels []models.ActivityLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&logModels).Error
	if err != nil {
		return nil, err
	}
	return activityLogsToEntities(logModels), nil
}

// List lists all audit entries (admin surface)
func (r *ActivityLogRepository) List(ctx context.Context, limit, offset int) ([]*entities.ActivityLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ActivityLog{}).Order("created_at DESC")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var logModels []models.ActivityLog
	if err := query.Find(&logModels).Error; err != nil {
		return nil, 0, err
	}
	return activityLogsToEntities(logModels), total, nil
}

func activityLogsToEntities(logModels []models.ActivityLog) []*entities.ActivityLog {
	logs := make([]*entities.ActivityLog, 0, len(logModels))
	for i := range logModels {
		m := &logModels[i]
		logs = append(logs, &entities.ActivityLog{
			ID:        m.ID,
			UserID:    m.UserID,
			Action:    m.Action,
			Detail:    null.StringFromPtr(m.Detail),
			CreatedAt: m.CreatedAt,
		})
	}
	return logs
}
