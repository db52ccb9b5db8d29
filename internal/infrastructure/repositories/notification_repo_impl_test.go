package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
)

func TestNotificationRepository_ReadFlow(t *testing.T) {
	db := newTestDB(t)
	createNotificationTables(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	userID, otherID := uuid.New(), uuid.New()

	first := &entities.Notification{
		UserID:      userID,
		Type:        entities.NotificationConnectionRequest,
		Title:       "New connection request",
		Message:     "Ada wants to connect",
		ReferenceID: null.StringFrom(uuid.NewString()),
	}
	require.NoError(t, repo.Create(ctx, first))
	require.Equal(t, entities.DispatchPending, first.Dispatch)

	second := &entities.Notification{
		UserID:  userID,
		Type:    entities.NotificationNewMessage,
		Title:   "New message",
		Message: "Bob sent you a message",
	}
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Create(ctx, &entities.Notification{
		UserID: otherID, Type: entities.NotificationEventUpdate, Title: "t", Message: "m",
	}))

	list, total, err := repo.ListByUser(ctx, userID, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)

	unread, err := repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	require.EqualValues(t, 2, unread)

	// a user cannot mark someone else's notification
	err = repo.MarkRead(ctx, first.ID, otherID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.MarkRead(ctx, first.ID, userID))

	unread, err = repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	require.EqualValues(t, 1, unread)

	require.NoError(t, repo.MarkAllRead(ctx, userID))

	unread, err = repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	require.EqualValues(t, 0, unread)
}

func TestNotificationRepository_DispatchOutbox(t *testing.T) {
	db := newTestDB(t)
	createNotificationTables(t, db)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		n := &entities.Notification{UserID: userID, Type: entities.NotificationEventUpdate, Title: "t", Message: "m"}
		require.NoError(t, repo.Create(ctx, n))
		ids = append(ids, n.ID)
	}

	pending, err := repo.ListPendingDispatch(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// oldest first
	require.Equal(t, ids[0], pending[0].ID)
	require.Equal(t, ids[1], pending[1].ID)

	require.NoError(t, repo.MarkDispatched(ctx, []uuid.UUID{pending[0].ID, pending[1].ID}))

	pending, err = repo.ListPendingDispatch(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, ids[2], pending[0].ID)

	// empty batch is a no-op
	require.NoError(t, repo.MarkDispatched(ctx, nil))
}

func TestActivityLogRepository_AppendAndList(t *testing.T) {
	db := newTestDB(t)
	createNotificationTables(t, db)
	repo := NewActivityLogRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	require.NoError(t, repo.Append(ctx, &entities.ActivityLog{UserID: userID, Action: "profile.updated"}))
	require.NoError(t, repo.Append(ctx, &entities.ActivityLog{
		UserID: userID,
		Action: "connection.sent",
		Detail: null.StringFrom(`{"target_id":"x"}`),
	}))
	require.NoError(t, repo.Append(ctx, &entities.ActivityLog{UserID: uuid.New(), Action: "login"}))

	mine, err := repo.ListByUser(ctx, userID, 10, 0)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "connection.sent", mine[0].Action)
	require.True(t, mine[0].Detail.Valid)

	all, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, all, 3)
}
