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

// StartupProfileRepository implements startup extension operations
type StartupProfileRepository struct {
	db *gorm.DB
}

// NewStartupProfileRepository creates a new startup profile repository
func NewStartupProfileRepository(db *gorm.DB) *StartupProfileRepository {
	return &StartupProfileRepository{db: db}
}

// Create creates a startup profile
func (r *StartupProfileRepository) Create(ctx context.Context, p *entities.StartupProfile) error {
	if p.ID == uuid.Nil {
		p.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	m := &models.StartupProfile{
		ID:           p.ID,
		ProfileID:    p.ProfileID,
		CompanyName:  p.CompanyName,
		Industry:     p.Industry,
		Stage:        p.Stage,
		Website:      p.Website.Ptr(),
		PitchSummary: p.PitchSummary.Ptr(),
		TeamSize:     p.TeamSize,
		FundingGoal:  p.FundingGoal.Ptr(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByProfileID gets a startup profile by its owning profile
func (r *StartupProfileRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.StartupProfile, error) {
	var m models.StartupProfile
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.StartupProfile{
		ID:           m.ID,
		ProfileID:    m.ProfileID,
		CompanyName:  m.CompanyName,
		Industry:     m.Industry,
		Stage:        m.Stage,
		Website:      null.StringFromPtr(m.Website),
		PitchSummary: null.StringFromPtr(m.PitchSummary),
		TeamSize:     m.TeamSize,
		FundingGoal:  null.StringFromPtr(m.FundingGoal),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// Update updates a startup profile
func (r *StartupProfileRepository) Update(ctx context.Context, p *entities.StartupProfile) error {
	updates := map[string]interface{}{
		"company_name": p.CompanyName,
		"industry":     p.Industry,
		"stage":        p.Stage,
		"team_size":    p.TeamSize,
		"updated_at":   time.Now(),
	}
	if p.Website.Valid {
		updates["website"] = p.Website.String
	}
	if p.PitchSummary.Valid {
		updates["pitch_summary"] = p.PitchSummary.String
	}
	if p.FundingGoal.Valid {
		updates["funding_goal"] = p.FundingGoal.String
	}

	result := r.db.WithContext(ctx).Model(&models.StartupProfile{}).Where("profile_id = ?", p.ProfileID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MentorProfileRepository implements mentor extension operations
type MentorProfileRepository struct {
	db *gorm.DB
}

// NewMentorProfileRepository creates a new mentor profile repository
func NewMentorProfileRepository(db *gorm.DB) *MentorProfileRepository {
	return &MentorProfileRepository{db: db}
}

// Create creates a mentor profile
func (r *MentorProfileRepository) Create(ctx context.Context, p *entities.MentorProfile) error {
	if p.ID == uuid.Nil {
		p.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	m := &models.MentorProfile{
		ID:              p.ID,
		ProfileID:       p.ProfileID,
		ExpertiseTags:   p.ExpertiseTags,
		YearsExperience: p.YearsExperience,
		Availability:    p.Availability,
		HourlyRate:      p.HourlyRate.Ptr(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByProfileID gets a mentor profile by its owning profile
func (r *MentorProfileRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.MentorProfile, error) {
	var m models.MentorProfile
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.MentorProfile{
		ID:              m.ID,
		ProfileID:       m.ProfileID,
		ExpertiseTags:   m.ExpertiseTags,
		YearsExperience: m.YearsExperience,
		Availability:    m.Availability,
		HourlyRate:      null.StringFromPtr(m.HourlyRate),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// Update updates a mentor profile
func (r *MentorProfileRepository) Update(ctx context.Context, p *entities.MentorProfile) error {
	updates := map[string]interface{}{
		"expertise_tags":   p.ExpertiseTags,
		"years_experience": p.YearsExperience,
		"availability":     p.Availability,
		"updated_at":       time.Now(),
	}
	if p.HourlyRate.Valid {
		updates["hourly_rate"] = p.HourlyRate.String
	}

	result := r.db.WithContext(ctx).Model(&models.MentorProfile{}).Where("profile_id = ?", p.ProfileID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// InvestorProfileRepository implements investor extension operations
type InvestorProfileRepository struct {
	db *gorm.DB
}

// NewInvestorProfileRepository creates a new investor profile repository
func NewInvestorProfileRepository(db *gorm.DB) *InvestorProfileRepository {
	return &InvestorProfileRepository{db: db}
}

// Create creates an investor profile
func (r *InvestorProfileRepository) Create(ctx context.Context, p *entities.InvestorProfile) error {
	if p.ID == uuid.Nil {
		p.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	m := &models.InvestorProfile{
		ID:               p.ID,
		ProfileID:        p.ProfileID,
		FundName:         p.FundName,
		InvestmentStages: p.InvestmentStages,
		Sectors:          p.Sectors,
		TicketMin:        p.TicketMin.Ptr(),
		TicketMax:        p.TicketMax.Ptr(),
		PortfolioSize:    p.PortfolioSize,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByProfileID gets an investor profile by its owning profile
func (r *InvestorProfileRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.InvestorProfile, error) {
	var m models.InvestorProfile
	if err := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.InvestorProfile{
		ID:               m.ID,
		ProfileID:        m.ProfileID,
		FundName:         m.FundName,
		InvestmentStages: m.InvestmentStages,
		Sectors:          m.Sectors,
		TicketMin:        null.StringFromPtr(m.TicketMin),
		TicketMax:        null.StringFromPtr(m.TicketMax),
		PortfolioSize:    m.PortfolioSize,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

// Update updates an investor profile
func (r *InvestorProfileRepository) Update(ctx context.Context, p *entities.InvestorProfile) error {
	updates := map[string]interface{}{
		"fund_name":         p.FundName,
		"investment_stages": p.InvestmentStages,
		"sectors":           p.Sectors,
		"portfolio_size":    p.PortfolioSize,
		"updated_at":        time.Now(),
	}
	if p.TicketMin.Valid {
		updates["ticket_min"] = p.TicketMin.String
	}
	if p.TicketMax.Valid {
		updates["ticket_max"] = p.TicketMax.String
	}

	result := r.db.WithContext(ctx).Model(&models.InvestorProfile{}).Where("profile_id = ?", p.ProfileID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
