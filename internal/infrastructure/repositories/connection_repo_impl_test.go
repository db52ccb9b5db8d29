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

func TestConnectionRepository_SendRespondLifecycle(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	createConnectionTable(t, db)
	profileRepo := NewProfileRepository(db)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	requester := seedProfile(t, profileRepo, entities.ProfileRoleStartup)
	target := seedProfile(t, profileRepo, entities.ProfileRoleMentor)

	conn := &entities.Connection{
		RequesterID:    requester.ID,
		TargetID:       target.ID,
		ConnectionType: "network",
		Message:        null.StringFrom("hello"),
	}
	require.NoError(t, repo.Create(ctx, conn))
	require.Equal(t, entities.RequestStatusPending, conn.Status)

	byID, err := repo.GetByID(ctx, conn.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", byID.Message.String)

	// live lookup is direction independent
	live, err := repo.GetLiveByPair(ctx, target.ID, requester.ID)
	require.NoError(t, err)
	require.Equal(t, conn.ID, live.ID)

	incoming, err := repo.ListPendingIncoming(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	require.NotNil(t, incoming[0].Requester)
	require.Equal(t, requester.ID, incoming[0].Requester.ID)

	outgoing, err := repo.ListPendingOutgoing(ctx, requester.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	require.NotNil(t, outgoing[0].Target)

	require.NoError(t, repo.UpdateStatus(ctx, conn.ID, entities.RequestStatusAccepted, "welcome"))

	accepted, err := repo.GetByID(ctx, conn.ID)
	require.NoError(t, err)
	require.Equal(t, entities.RequestStatusAccepted, accepted.Status)
	require.Equal(t, "welcome", accepted.ResponseMessage.String)
	require.True(t, accepted.RespondedAt.Valid)

	list, err := repo.ListAccepted(ctx, requester.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestConnectionRepository_DuplicatePairRejected(t *testing.T) {
	db := newTestDB(t)
	createConnectionTable(t, db)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()

	first := &entities.Connection{RequesterID: a, TargetID: b}
	require.NoError(t, repo.Create(ctx, first))

	// same direction
	err := repo.Create(ctx, &entities.Connection{RequesterID: a, TargetID: b})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	// crossing request collides on the canonical pair key
	err = repo.Create(ctx, &entities.Connection{RequesterID: b, TargetID: a})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	// accepting keeps the pair occupied
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, entities.RequestStatusAccepted, ""))
	err = repo.Create(ctx, &entities.Connection{RequesterID: b, TargetID: a})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestConnectionRepository_TerminalStateReleasesPair(t *testing.T) {
	db := newTestDB(t)
	createConnectionTable(t, db)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()

	first := &entities.Connection{RequesterID: a, TargetID: b}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, entities.RequestStatusRejected, "not now"))

	_, err := repo.GetLiveByPair(ctx, a, b)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// the pair can try again after a rejection
	second := &entities.Connection{RequesterID: b, TargetID: a}
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.UpdateStatus(ctx, second.ID, entities.RequestStatusCancelled, ""))
	_, err = repo.GetLiveByPair(ctx, a, b)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestConnectionRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createConnectionTable(t, db)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetLiveByPair(ctx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateStatus(ctx, uuid.New(), entities.RequestStatusAccepted, "")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
