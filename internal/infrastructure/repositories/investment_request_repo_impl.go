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

// InvestmentRequestRepository implements investment request data operations
type InvestmentRequestRepository struct {
	db *gorm.DB
}

// NewInvestmentRequestRepository creates a new investment request repository
func NewInvestmentRequestRepository(db *gorm.DB) *InvestmentRequestRepository {
	return &InvestmentRequestRepository{db: db}
}

// Create inserts a pending investment request
func (r *InvestmentRequestRepository) Create(ctx context.Context, req *entities.InvestmentRequest) error {
	if req.ID == uuid.Nil {
		req.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = entities.RequestStatusPending
	}

	pairKey := utils.PairKey(req.StartupID, req.InvestorID)
	m := &models.InvestmentRequest{
		ID:           req.ID,
		StartupID:    req.StartupID,
		InvestorID:   req.InvestorID,
		Message:      req.Message,
		PitchDeckURL: req.PitchDeckURL.Ptr(),
		Status:       string(req.Status),
		PairKey:      &pairKey,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets an investment request by ID
func (r *InvestmentRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestmentRequest, error) {
	var m models.InvestmentRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investmentToEntity(&m), nil
}

// GetLiveByPair returns the pending or accepted request between the pair
func (r *InvestmentRequestRepository) GetLiveByPair(ctx context.Context, startupID, investorID uuid.UUID) (*entities.InvestmentRequest, error) {
	var m models.InvestmentRequest
	pairKey := utils.PairKey(startupID, investorID)
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("pair_key = ?", pairKey).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investmentToEntity(&m), nil
}

// UpdateStatus transitions a request and releases the pair key on terminal states
func (r *InvestmentRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
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

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.InvestmentRequest{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByStartup lists requests sent by a startup
func (r *InvestmentRequestRepository) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*entities.InvestmentRequest, error) {
	var reqModels []models.InvestmentRequest
	err := r.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	return investmentsToEntities(reqModels), nil
}

// ListByInvestor lists requests received by an investor
func (r *InvestmentRequestRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.InvestmentRequest, error) {
	var reqModels []models.InvestmentRequest
	err := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}
	return investmentsToEntities(reqModels), nil
}

// Count returns the total number of investment requests
func (r *InvestmentRequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.InvestmentRequest{}).Count(&count).Error
	return count, err
}

func investmentsToEntities(reqModels []models.InvestmentRequest) []*entities.InvestmentRequest {
	reqs := make([]*entities.InvestmentRequest, 0, len(reqModels))
	for i := range reqModels {
		reqs = append(reqs, investmentToEntity(&reqModels[i]))
	}
	return reqs
}

func investmentToEntity(m *models.InvestmentRequest) *entities.InvestmentRequest {
	return &entities.InvestmentRequest{
		ID:              m.ID,
		StartupID:       m.StartupID,
		InvestorID:      m.InvestorID,
		Message:         m.Message,
		PitchDeckURL:    null.StringFromPtr(m.PitchDeckURL),
		Status:          entities.RequestStatus(m.Status),
		ResponseMessage: null.StringFromPtr(m.ResponseMessage),
		RespondedAt:     null.TimeFromPtr(m.RespondedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
