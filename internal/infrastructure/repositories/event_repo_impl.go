package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/infrastructure/models"
	"venture-link.backend/pkg/utils"
)

// EventRepository implements event data operations
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates an event
func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	if event.ID == uuid.Nil {
		event.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Status == "" {
		event.Status = entities.EventStatusDraft
	}

	m := eventToModel(event)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return eventToEntity(&m), nil
}

// GetByIDForUpdate locks the event row within the enclosing transaction so
// concurrent capacity checks for the same event serialize.
func (r *EventRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	err := GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return eventToEntity(&m), nil
}

// Update updates the mutable event fields
func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	updates := map[string]interface{}{
		"title":                 event.Title,
		"is_virtual":            event.IsVirtual,
		"start_date":            event.StartDate,
		"end_date":              event.EndDate,
		"registration_deadline": event.RegistrationDeadline,
		"max_participants":      event.MaxParticipants,
		"target_audience":       event.TargetAudience,
		"status":                string(event.Status),
		"updated_at":            time.Now(),
	}
	if event.Description.Valid {
		updates["description"] = event.Description.String
	}
	if event.Location.Valid {
		updates["location"] = event.Location.String
	}

	result := r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", event.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete soft deletes an event
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListPublished lists published events, optionally filtered by target audience
func (r *EventRepository) ListPublished(ctx context.Context, audience entities.ProfileRole, limit, offset int) ([]*entities.Event, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("status = ?", string(entities.EventStatusPublished)).
		Order("start_date ASC")

	if audience != "" {
		// target_audience is a comma list; empty means open to everyone
		query = query.Where("target_audience = '' OR target_audience LIKE ?", "%"+string(audience)+"%")
	}

	return r.listWithCount(query, limit, offset)
}

// List lists all events regardless of status (admin surface)
func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Event{}).Order("created_at DESC")
	return r.listWithCount(query, limit, offset)
}

// Count returns the total number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error
	return count, err
}

func (r *EventRepository) listWithCount(query *gorm.DB, limit, offset int) ([]*entities.Event, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var eventModels []models.Event
	if err := query.Find(&eventModels).Error; err != nil {
		return nil, 0, err
	}

	events := make([]*entities.Event, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, eventToEntity(&eventModels[i]))
	}
	return events, total, nil
}

func eventToModel(e *entities.Event) *models.Event {
	return &models.Event{
		ID:                   e.ID,
		OrganizerID:          e.OrganizerID,
		Title:                e.Title,
		Description:          e.Description.Ptr(),
		Location:             e.Location.Ptr(),
		IsVirtual:            e.IsVirtual,
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		RegistrationDeadline: e.RegistrationDeadline,
		MaxParticipants:      e.MaxParticipants,
		RequiresApproval:     e.RequiresApproval,
		TargetAudience:       e.TargetAudience,
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func eventToEntity(m *models.Event) *entities.Event {
	return &entities.Event{
		ID:                   m.ID,
		OrganizerID:          m.OrganizerID,
		Title:                m.Title,
		Description:          null.StringFromPtr(m.Description),
		Location:             null.StringFromPtr(m.Location),
		IsVirtual:            m.IsVirtual,
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		RegistrationDeadline: m.RegistrationDeadline,
		MaxParticipants:      m.MaxParticipants,
		RequiresApproval:     m.RequiresApproval,
		TargetAudience:       m.TargetAudience,
		Status:               entities.EventStatus(m.Status),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
