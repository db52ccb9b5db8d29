package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"venture-link.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProfileStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProfileRepository) List(ctx context.Context, role entities.ProfileRole, search string, limit, offset int) ([]*entities.Profile, int64, error) {
	args := m.Called(ctx, role, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *MockProfileRepository) ListUnconnected(ctx context.Context, profileID uuid.UUID, role entities.ProfileRole, limit int) ([]*entities.Profile, error) {
	args := m.Called(ctx, profileID, role, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) CountByRole(ctx context.Context) (map[entities.ProfileRole]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.ProfileRole]int64), args.Error(1)
}

// Mock StartupProfileRepository
type MockStartupProfileRepository struct {
	mock.Mock
}

func (m *MockStartupProfileRepository) Create(ctx context.Context, p *entities.StartupProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockStartupProfileRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.StartupProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StartupProfile), args.Error(1)
}

func (m *MockStartupProfileRepository) Update(ctx context.Context, p *entities.StartupProfile) error {
	return m.Called(ctx, p).Error(0)
}

// Mock MentorProfileRepository
type MockMentorProfileRepository struct {
	mock.Mock
}

func (m *MockMentorProfileRepository) Create(ctx context.Context, p *entities.MentorProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockMentorProfileRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.MentorProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MentorProfile), args.Error(1)
}

func (m *MockMentorProfileRepository) Update(ctx context.Context, p *entities.MentorProfile) error {
	return m.Called(ctx, p).Error(0)
}

// Mock InvestorProfileRepository
type MockInvestorProfileRepository struct {
	mock.Mock
}

func (m *MockInvestorProfileRepository) Create(ctx context.Context, p *entities.InvestorProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockInvestorProfileRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*entities.InvestorProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvestorProfile), args.Error(1)
}

func (m *MockInvestorProfileRepository) Update(ctx context.Context, p *entities.InvestorProfile) error {
	return m.Called(ctx, p).Error(0)
}

// Mock ConnectionRepository
type MockConnectionRepository struct {
	mock.Mock
}

func (m *MockConnectionRepository) Create(ctx context.Context, conn *entities.Connection) error {
	return m.Called(ctx, conn).Error(0)
}

func (m *MockConnectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Connection), args.Error(1)
}

func (m *MockConnectionRepository) GetLiveByPair(ctx context.Context, a, b uuid.UUID) (*entities.Connection, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Connection), args.Error(1)
}

func (m *MockConnectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
	return m.Called(ctx, id, status, responseMessage).Error(0)
}

func (m *MockConnectionRepository) ListAccepted(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*entities.Connection, error) {
	args := m.Called(ctx, profileID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Connection), args.Error(1)
}

func (m *MockConnectionRepository) ListPendingIncoming(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Connection), args.Error(1)
}

func (m *MockConnectionRepository) ListPendingOutgoing(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Connection), args.Error(1)
}

func (m *MockConnectionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock MentorshipRequestRepository
type MockMentorshipRequestRepository struct {
	mock.Mock
}

func (m *MockMentorshipRequestRepository) Create(ctx context.Context, req *entities.MentorshipRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockMentorshipRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRequestRepository) GetLiveByPair(ctx context.Context, startupID, mentorID uuid.UUID) (*entities.MentorshipRequest, error) {
	args := m.Called(ctx, startupID, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
	return m.Called(ctx, id, status, responseMessage).Error(0)
}

func (m *MockMentorshipRequestRepository) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	args := m.Called(ctx, startupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRequestRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRequestRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock InvestmentRequestRepository
type MockInvestmentRequestRepository struct {
	mock.Mock
}

func (m *MockInvestmentRequestRepository) Create(ctx context.Context, req *entities.InvestmentRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockInvestmentRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestmentRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvestmentRequest), args.Error(1)
}

func (m *MockInvestmentRequestRepository) GetLiveByPair(ctx context.Context, startupID, investorID uuid.UUID) (*entities.InvestmentRequest, error) {
	args := m.Called(ctx, startupID, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvestmentRequest), args.Error(1)
}

func (m *MockInvestmentRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
	return m.Called(ctx, id, status, responseMessage).Error(0)
}

func (m *MockInvestmentRequestRepository) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]*entities.InvestmentRequest, error) {
	args := m.Called(ctx, startupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InvestmentRequest), args.Error(1)
}

func (m *MockInvestmentRequestRepository) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]*entities.InvestmentRequest, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InvestmentRequest), args.Error(1)
}

func (m *MockInvestmentRequestRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entities.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *entities.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEventRepository) ListPublished(ctx context.Context, audience entities.ProfileRole, limit, offset int) ([]*entities.Event, int64, error) {
	args := m.Called(ctx, audience, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) List(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock EventRegistrationRepository
type MockEventRegistrationRepository struct {
	mock.Mock
}

func (m *MockEventRegistrationRepository) Create(ctx context.Context, reg *entities.EventRegistration) error {
	return m.Called(ctx, reg).Error(0)
}

func (m *MockEventRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.EventRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EventRegistration), args.Error(1)
}

func (m *MockEventRegistrationRepository) GetLiveByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entities.EventRegistration, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EventRegistration), args.Error(1)
}

func (m *MockEventRegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RegistrationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockEventRegistrationRepository) CountConfirmed(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRegistrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entities.EventRegistration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EventRegistration), args.Error(1)
}

func (m *MockEventRegistrationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.EventRegistration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EventRegistration), args.Error(1)
}

func (m *MockEventRegistrationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *entities.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepository) ListBetween(ctx context.Context, a, b uuid.UUID, limit, offset int) ([]*entities.Message, error) {
	args := m.Called(ctx, a, b, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *MockMessageRepository) ListConversations(ctx context.Context, profileID uuid.UUID) ([]*entities.Conversation, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Conversation), args.Error(1)
}

func (m *MockMessageRepository) MarkConversationRead(ctx context.Context, recipientID, peerID uuid.UUID) error {
	return m.Called(ctx, recipientID, peerID).Error(0)
}

// Mock NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockNotificationRepository) ListPendingDispatch(ctx context.Context, limit int) ([]*entities.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkDispatched(ctx context.Context, ids []uuid.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

// Mock ActivityLogRepository
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Append(ctx context.Context, entry *entities.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockActivityLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.ActivityLog, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) List(ctx context.Context, limit, offset int) ([]*entities.ActivityLog, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.ActivityLog), args.Get(1).(int64), args.Error(2)
}
