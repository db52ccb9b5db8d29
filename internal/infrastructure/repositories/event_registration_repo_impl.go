package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/infrastructure/models"
	"venture-link.backend/pkg/utils"
)

// EventRegistrationRepository implements event registration data operations
type EventRegistrationRepository struct {
	db *gorm.DB
}

// NewEventRegistrationRepository creates a new event registration repository
func NewEventRegistrationRepository(db *gorm.DB) *EventRegistrationRepository {
	return &EventRegistrationRepository{db: db}
}

func regKey(eventID, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", eventID, userID)
}

// Create inserts a registration. RegKey's unique index rejects a duplicate
// live registration even when two requests race past the usecase check.
func (r *EventRegistrationRepository) Create(ctx context.Context, reg *entities.EventRegistration) error {
	if reg.ID == uuid.Nil {
		reg.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	key := regKey(reg.EventID, reg.UserID)
	m := &models.EventRegistration{
		ID:        reg.ID,
		EventID:   reg.EventID,
		UserID:    reg.UserID,
		Status:    string(reg.Status),
		RegKey:    &key,
		CreatedAt: reg.CreatedAt,
		UpdatedAt: reg.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

// GetByID gets a registration by ID, joined with its event
func (r *EventRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.EventRegistration, error) {
	var m models.EventRegistration
	if err := GetDB(ctx, r.db).WithContext(ctx).Preload("Event").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return registrationToEntity(&m), nil
}

// GetLiveByEventAndUser returns the user's non-cancelled registration
func (r *EventRegistrationRepository) GetLiveByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entities.EventRegistration, error) {
	var m models.EventRegistration
	key := regKey(eventID, userID)
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("reg_key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return registrationToEntity(&m), nil
}

// UpdateStatus transitions a registration, releasing the reg key when cancelled
func (r *EventRegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RegistrationStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.RegistrationStatusCancelled {
		updates["reg_key"] = nil
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.EventRegistration{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountConfirmed counts confirmed registrations for an event
func (r *EventRegistrationRepository) CountConfirmed(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.EventRegistration{}).
		Where("event_id = ? AND status = ?", eventID, string(entities.RegistrationStatusConfirmed)).
		Count(&count).Error
	return count, err
}

// ListByEvent lists the roster for an event
func (r *EventRegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entities.EventRegistration, error) {
	var regModels []models.EventRegistration
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&regModels).Error
	if err != nil {
		return nil, err
	}
	return registrationsToEntities(regModels), nil
}

// ListByUser lists a member's registrations with their events
func (r *EventRegistrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.EventRegistration, error) {
	var regModels []models.EventRegistration
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regModels).Error
	if err != nil {
		return nil, err
	}
	return registrationsToEntities(regModels), nil
}

// Count returns the total number of registrations
func (r *EventRegistrationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EventRegistration{}).Count(&count).Error
	return count, err
}

func registrationsToEntities(regModels []models.EventRegistration) []*entities.EventRegistration {
	regs := make([]*entities.EventRegistration, 0, len(regModels))
	for i := range regModels {
		regs = append(regs, registrationToEntity(&regModels[i]))
	}
	return regs
}

func registrationToEntity(m *models.EventRegistration) *entities.EventRegistration {
	e := &entities.EventRegistration{
		ID:        m.ID,
		EventID:   m.EventID,
		UserID:    m.UserID,
		Status:    entities.RegistrationStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Event.ID != uuid.Nil {
		e.Event = eventToEntity(&m.Event)
	}
	return e
}
