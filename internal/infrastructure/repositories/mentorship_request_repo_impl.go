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

// MentorshipRequestRepository implements mentorship request data operations
type MentorshipRequestRepository struct {
	db *gorm.DB
}

// NewMentorshipRequestRepository creates a new mentorship request repository
func NewMentorshipRequestRepository(db *gorm.DB) *MentorshipRequestRepository {
	return &MentorshipRequestRepository{db: db}
}

// Create inserts a pending mentorship request
func (r *MentorshipRequestRepository) Create(ctx context.Context, req *entities.MentorshipRequest) error {
	if req.ID == uuid.Nil {
		req.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = entities.RequestStatusPending
	}

	pairKey := utils.PairKey(req.StartupID, req.MentorID)
	m := &models.MentorshipRequest{
		ID:        req.ID,
		StartupID: req.StartupID,
		MentorID:  req.MentorID,
		Message:   req.Message,
		FocusArea: req.FocusArea.Ptr(),
		Status:    string(req.Status),
		PairKey:   &pairKey,
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a mentorship request by ID
func (r *MentorshipRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorshipRequest, error) {
	var m models.MentorshipRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return mentorshipToEntity(&m), nil
}

// GetLiveByPair returns the pending or accepted request between the pair
func (r *MentorshipRequestRepository) GetLiveByPair(ctx context.Context, startupID, mentorID uuid.UUID) (*entities.MentorshipRequest, error) {
	var m models.MentorshipRequest
	pairKey := utils.PairKey(startupID, mentorID)
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("pair_key = ?", pairKey).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return mentorshipToEntity(&m), nil
}

// UpdateStatus transitions a request and releases the pair key on terminal states
func (r *MentorshipRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
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

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.MentorshipRequest{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByStartup lists requests sent by a startup
func (r *MentorshipRequestRepository) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	var reqModels []models.MentorshipRequest
	err := r.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	return mentorshipsToEntities(reqModels), nil
}

// ListByMentor lists requests received by a mentor
func (r *MentorshipRequestRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	var reqModels []models.MentorshipRequest
	err := r.db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	return mentorshipsToEntities(reqModels), nil
}

// Count returns the total number of mentorship requests
func (r *MentorshipRequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MentorshipRequest{}).Count(&count).Error
	return count, err
}

func mentorshipsToEntities(reqModels []models.MentorshipRequest) []*entities.MentorshipRequest {
	reqs := make([]*entities.MentorshipRequest, 0, len(reqModels))
	for i := range reqModels {
		reqs = append(reqs, mentorshipToEntity(&reqModels[i]))
	}
	return reqs
}

func mentorshipToEntity(m *models.MentorshipRequest) *entities.MentorshipRequest {
	return &entities.MentorshipRequest{
		ID:              m.ID,
		StartupID:       m.StartupID,
		MentorID:        m.MentorID,
		Message:         m.Message,
		FocusArea:       null.StringFromPtr(m.FocusArea),
		Status:          entities.RequestStatus(m.Status),
		ResponseMessage: null.StringFromPtr(m.ResponseMessage),
		RespondedAt:     null.TimeFromPtr(m.RespondedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
