package repositories

import (
	"context"

	"github.com/google/uuid"
	"venture-link.backend/internal/domain/entities"
)

// MentorshipRequestRepository defines mentorship request data operations
type MentorshipRequestRepository interface {
	Create(ctx context.Context, req *entities.MentorshipRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorshipRequest, error)
	GetLiveByPair(ctx context.Context, startupID, mentorID uuid.UUID) (*entities.MentorshipRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error
	ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*entities.MentorshipRequest, error)
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error)
	Count(ctx context.Context) (int64, error)
}

// InvestmentRequestRepository defines investment request data operations
type InvestmentRequestRepository interface {
	Create(ctx context.Context, req *entities.InvestmentRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestmentRequest, error)
	GetLiveByPair(ctx context.Context, startupID, investorID uuid.UUID) (*entities.InvestmentRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error
	ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*entities.InvestmentRequest, error)
	ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.InvestmentRequest, error)
	Count(ctx context.Context) (int64, error)
}
