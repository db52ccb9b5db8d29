package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/infrastructure/models"
	"venture-link.backend/pkg/utils"
)

// ConnectionRepository implements connection request data operations
type ConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Create inserts a pending connection row. The pair key unique index turns a
// crossing duplicate into ErrAlreadyExists instead of a second live row.
func (r *ConnectionRepository) Create(ctx context.Context, conn *entities.Connection) error {
	if conn.ID == uuid.Nil {
		conn.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	conn.CreatedAt = now
	conn.UpdatedAt = now
	if conn.Status == "" {
		conn.Status = entities.RequestStatusPending
	}

	pairKey := utils.PairKey(conn.RequesterID, conn.TargetID)
	m := &models.Connection{
		ID:             conn.ID,
		RequesterID:    conn.RequesterID,
		TargetID:       conn.TargetID,
		ConnectionType: conn.ConnectionType,
		Message:        conn.Message.Ptr(),
		Status:         string(conn.Status),
		PairKey:        &pairKey,
		CreatedAt:      conn.CreatedAt,
		UpdatedAt:      conn.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a connection by ID
func (r *ConnectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error) {
	var m models.Connection
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return connectionToEntity(&m), nil
}

// GetLiveByPair returns the pending or accepted row between two profiles
func (r *ConnectionRepository) GetLiveByPair(ctx context.Context, a, b uuid.UUID) (*entities.Connection, error) {
	var m models.Connection
	pairKey := utils.PairKey(a, b)
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("pair_key = ?", pairKey).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return connectionToEntity(&m), nil
}

// UpdateStatus transitions a request, stamping the response and releasing the
// pair key on rejected/cancelled so the pair can request again later.
func (r *ConnectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":       string(status),
		"responded_at": now,
		"updated_at":   now,
	}
	if responseMessage != "" {
		updates["response_message"] = responseMessage
	}
	if status == entities.RequestStatusRejected || status == entities.RequestStatusCancelled {
		updates["pair_key"] = nil
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Connection{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListAccepted lists accepted connections involving the profile
func (r *ConnectionRepository) ListAccepted(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*entities.Connection, error) {
	query := r.db.WithContext(ctx).
		Preload("Requester").Preload("Target").
		Where("(requester_id = ? OR target_id = ?) AND status = ?", profileID, profileID, string(entities.RequestStatusAccepted)).
		Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var connModels []models.Connection
	if err := query.Find(&connModels).Error; err != nil {
		return nil, err
	}
	return connectionsToEntities(connModels), nil
}

// ListPendingIncoming lists pending requests targeting the profile
func (r *ConnectionRepository) ListPendingIncoming(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	var connModels []models.Connection
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("target_id = ? AND status = ?", profileID, string(entities.RequestStatusPending)).
		Order("created_at DESC").
		Find(&connModels).Error
	if err != nil {
		return nil, err
	}
	return connectionsToEntities(connModels), nil
}

// ListPendingOutgoing lists pending requests sent by the profile
func (r *ConnectionRepository) ListPendingOutgoing(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	var connModels []models.Connection
	err := r.db.WithContext(ctx).
		Preload("Target").
		Where("requester_id = ? AND status = ?", profileID, string(entities.RequestStatusPending)).
		Order("created_at DESC").
		Find(&connModels).Error
	if err != nil {
		return nil, err
	}
	return connectionsToEntities(connModels), nil
}

// Count returns the total number of connection rows
func (r *ConnectionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Connection{}).Count(&count).Error
	return count, err
}

func connectionsToEntities(connModels []models.Connection) []*entities.Connection {
	conns := make([]*entities.Connection, 0, len(connModels))
	for i := range connModels {
		conns = append(conns, connectionToEntity(&connModels[i]))
	}
	return conns
}

func connectionToEntity(m *models.Connection) *entities.Connection {
	e := &entities.Connection{
		ID:              m.ID,
		RequesterID:     m.RequesterID,
		TargetID:        m.TargetID,
		ConnectionType:  m.ConnectionType,
		Message:         null.StringFromPtr(m.Message),
		Status:          entities.RequestStatus(m.Status),
		ResponseMessage: null.StringFromPtr(m.ResponseMessage),
		RespondedAt:     null.TimeFromPtr(m.RespondedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Requester.ID != uuid.Nil {
		e.Requester = profileToEntity(&m.Requester)
	}
	if m.Target.ID != uuid.Nil {
		e.Target = profileToEntity(&m.Target)
	}
	return e
}
