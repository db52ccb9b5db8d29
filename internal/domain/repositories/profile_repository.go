package repositories

import (
	"context"

	"github.com/google/uuid"
	"venture-link.backend/internal/domain/entities"
)

// ProfileRepository defines base profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProfileStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, role entities.ProfileRole, search string, limit, offset int) ([]*entities.Profile, int64, error)
	// ListUnconnected returns active profiles of the given role that have no
	// live connection row with the given profile, newest first.
	ListUnconnected(ctx context.Context, profileID uuid.UUID, role entities.ProfileRole, limit int) ([]*entities.Profile, error)
	CountByRole(ctx context.Context) (map[entities.ProfileRole]int64, error)
}

// StartupProfileRepository defines startup extension operations
type StartupProfileRepository interface {
	Create(ctx context.Context, p *entities.StartupProfile) error
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.StartupProfile, error)
	Update(ctx context.Context, p *entities.StartupProfile) error
}

// MentorProfileRepository defines mentor extension operations
type MentorProfileRepository interface {
	Create(ctx context.Context, p *entities.MentorProfile) error
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.MentorProfile, error)
	Update(ctx context.Context, p *entities.MentorProfile) error
}

// InvestorProfileRepository defines investor extension operations
type InvestorProfileRepository interface {
	Create(ctx context.Context, p *entities.InvestorProfile) error
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.InvestorProfile, error)
	Update(ctx context.Context, p *entities.InvestorProfile) error
}
