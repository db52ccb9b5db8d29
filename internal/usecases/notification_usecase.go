package usecases

import (
	"context"

	"github.com/google/uuid"
	"venture-link.backend/internal/domain/entities"
	"venture-link.backend/internal/domain/repositories"
)

// NotificationUsecase exposes a profile's notification feed
type NotificationUsecase struct {
	notifRepo repositories.NotificationRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notifRepo repositories.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notifRepo: notifRepo}
}

// NotificationFeed bundles a page of notifications with feed counters
type NotificationFeed struct {
	Notifications []*entities.Notification `json:"notifications"`
	Total         int64                    `json:"total"`
	UnreadCount   int64                    `json:"unread_count"`
}

// List returns a page of the caller's notifications, newest first
func (u *NotificationUsecase) List(ctx context.Context, userID uuid.UUID, limit, offset int) (*NotificationFeed, error) {
	notifications, total, err := u.notifRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := u.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &NotificationFeed{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks one of the caller's notifications read
func (u *NotificationUsecase) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return u.notifRepo.MarkRead(ctx, notificationID, userID)
}

// MarkAllRead marks every notification of the caller read
func (u *NotificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return u.notifRepo.MarkAllRead(ctx, userID)
}
