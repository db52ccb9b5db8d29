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

// ProfileRepository implements base profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	m := &models.Profile{
		ID:           profile.ID,
		Email:        profile.Email,
		FullName:     profile.FullName,
		PasswordHash: profile.PasswordHash,
		Role:         string(profile.Role),
		Status:       string(profile.Status),
		Bio:          profile.Bio.Ptr(),
		AvatarURL:    profile.AvatarURL.Ptr(),
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return profileToEntity(&m), nil
}

// GetByEmail gets a profile by email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	var m models.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return profileToEntity(&m), nil
}

// Update updates the mutable base profile fields
func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	updates := map[string]interface{}{
		"full_name":  profile.FullName,
		"updated_at": time.Now(),
	}
	if profile.Bio.Valid {
		updates["bio"] = profile.Bio.String
	}
	if profile.AvatarURL.Valid {
		updates["avatar_url"] = profile.AvatarURL.String
	}

	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the password hash
func (r *ProfileRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).
		Updates(map[string]interface{}{"password_hash": passwordHash, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus changes the moderation status
func (r *ProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProfileStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete soft deletes a profile; dependent rows go with the FK cascade
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists profiles filtered by role and free-text search
func (r *ProfileRepository) List(ctx context.Context, role entities.ProfileRole, search string, limit, offset int) ([]*entities.Profile, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Profile{}).Order("created_at DESC")

	if role != "" {
		query = query.Where("role = ?", string(role))
	}
	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var profileModels []models.Profile
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, 0, err
	}

	profiles := make([]*entities.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, profileToEntity(&profileModels[i]))
	}
	return profiles, total, nil
}

// ListUnconnected returns active profiles of the given role with no live
// connection to the given profile, newest first
func (r *ProfileRepository) ListUnconnected(ctx context.Context, profileID uuid.UUID, role entities.ProfileRole, limit int) ([]*entities.Profile, error) {
	if limit <= 0 {
		limit = 10
	}

	var profileModels []models.Profile
	err := r.db.WithContext(ctx).
		Where("role = ? AND status = ? AND id <> ?", string(role), string(entities.ProfileStatusActive), profileID).
		Where("id NOT IN (?)", r.db.Model(&models.Connection{}).
			Select("CASE WHEN requester_id = ? THEN target_id ELSE requester_id END", profileID).
			Where("(requester_id = ? OR target_id = ?) AND pair_key IS NOT NULL", profileID, profileID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&profileModels).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*entities.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, profileToEntity(&profileModels[i]))
	}
	return profiles, nil
}

// CountByRole returns profile counts grouped by role
func (r *ProfileRepository) CountByRole(ctx context.Context) (map[entities.ProfileRole]int64, error) {
	type roleCount struct {
		Role  string
		Count int64
	}
	var rows []roleCount
	err := r.db.WithContext(ctx).Model(&models.Profile{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.ProfileRole]int64, len(rows))
	for _, row := range rows {
		counts[entities.ProfileRole(row.Role)] = row.Count
	}
	return counts, nil
}

func profileToEntity(m *models.Profile) *entities.Profile {
	return &entities.Profile{
		ID:           m.ID,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		Role:         entities.ProfileRole(m.Role),
		Status:       entities.ProfileStatus(m.Status),
		Bio:          null.StringFromPtr(m.Bio),
		AvatarURL:    null.StringFromPtr(m.AvatarURL),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
