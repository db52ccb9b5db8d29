package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/pkg/utils"
)

// In-memory repository stubs shared by the handler tests. They implement the
// minimum each flow needs; everything else returns empty results.

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }

type profileRepoStub struct {
	profiles map[uuid.UUID]*entities.Profile
}

func newProfileRepoStub(profiles ...*entities.Profile) *profileRepoStub {
	s := &profileRepoStub{profiles: map[uuid.UUID]*entities.Profile{}}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *profileRepoStub) Create(_ context.Context, p *entities.Profile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.profiles[p.ID] = p
	return nil
}

func (s *profileRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return p, nil
}

func (s *profileRepoStub) GetByEmail(_ context.Context, email string) (*entities.Profile, error) {
	for _, p := range s.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *profileRepoStub) Update(_ context.Context, p *entities.Profile) error {
	s.profiles[p.ID] = p
	return nil
}

func (s *profileRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	p, ok := s.profiles[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	p.PasswordHash = hash
	return nil
}

func (s *profileRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ProfileStatus) error {
	p, ok := s.profiles[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	p.Status = status
	return nil
}

func (s *profileRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.profiles, id)
	return nil
}

func (s *profileRepoStub) List(context.Context, entities.ProfileRole, string, int, int) ([]*entities.Profile, int64, error) {
	out := make([]*entities.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (s *profileRepoStub) ListUnconnected(context.Context, uuid.UUID, entities.ProfileRole, int) ([]*entities.Profile, error) {
	return nil, nil
}

func (s *profileRepoStub) CountByRole(context.Context) (map[entities.ProfileRole]int64, error) {
	out := map[entities.ProfileRole]int64{}
	for _, p := range s.profiles {
		out[p.Role]++
	}
	return out, nil
}

type startupRepoStub struct {
	byProfile map[uuid.UUID]*entities.StartupProfile
}

func newStartupRepoStub() *startupRepoStub {
	return &startupRepoStub{byProfile: map[uuid.UUID]*entities.StartupProfile{}}
}

func (s *startupRepoStub) Create(_ context.Context, p *entities.StartupProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.byProfile[p.ProfileID] = p
	return nil
}

func (s *startupRepoStub) GetByProfileID(_ context.Context, profileID uuid.UUID) (*entities.StartupProfile, error) {
	p, ok := s.byProfile[profileID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return p, nil
}

func (s *startupRepoStub) Update(_ context.Context, p *entities.StartupProfile) error {
	s.byProfile[p.ProfileID] = p
	return nil
}

type mentorRepoStub struct{}

func (mentorRepoStub) Create(context.Context, *entities.MentorProfile) error { return nil }
func (mentorRepoStub) GetByProfileID(context.Context, uuid.UUID) (*entities.MentorProfile, error) {
	return nil, domainerrors.ErrNotFound
}
func (mentorRepoStub) Update(context.Context, *entities.MentorProfile) error { return nil }

type investorRepoStub struct{}

func (investorRepoStub) Create(context.Context, *entities.InvestorProfile) error { return nil }
func (investorRepoStub) GetByProfileID(context.Context, uuid.UUID) (*entities.InvestorProfile, error) {
	return nil, domainerrors.ErrNotFound
}
func (investorRepoStub) Update(context.Context, *entities.InvestorProfile) error { return nil }

type connectionRepoStub struct {
	byID map[uuid.UUID]*entities.Connection
}

func newConnectionRepoStub(conns ...*entities.Connection) *connectionRepoStub {
	s := &connectionRepoStub{byID: map[uuid.UUID]*entities.Connection{}}
	for _, conn := range conns {
		s.byID[conn.ID] = conn
	}
	return s
}

func (s *connectionRepoStub) Create(_ context.Context, conn *entities.Connection) error {
	if conn.ID == uuid.Nil {
		conn.ID = uuid.New()
	}
	if conn.Status == "" {
		conn.Status = entities.RequestStatusPending
	}
	s.byID[conn.ID] = conn
	return nil
}

func (s *connectionRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Connection, error) {
	conn, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return conn, nil
}

func (s *connectionRepoStub) GetLiveByPair(_ context.Context, a, b uuid.UUID) (*entities.Connection, error) {
	key := utils.PairKey(a, b)
	for _, conn := range s.byID {
		if conn.Status != entities.RequestStatusPending && conn.Status != entities.RequestStatusAccepted {
			continue
		}
		if utils.PairKey(conn.RequesterID, conn.TargetID) == key {
			return conn, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *connectionRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
	conn, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	conn.Status = status
	return nil
}

func (s *connectionRepoStub) ListAccepted(context.Context, uuid.UUID, int, int) ([]*entities.Connection, error) {
	return nil, nil
}

func (s *connectionRepoStub) ListPendingIncoming(_ context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	var out []*entities.Connection
	for _, conn := range s.byID {
		if conn.TargetID == profileID && conn.Status == entities.RequestStatusPending {
			out = append(out, conn)
		}
	}
	return out, nil
}

func (s *connectionRepoStub) ListPendingOutgoing(context.Context, uuid.UUID) ([]*entities.Connection, error) {
	return nil, nil
}

func (s *connectionRepoStub) Count(context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

type eventRepoStub struct {
	byID map[uuid.UUID]*entities.Event
}

func newEventRepoStub(events ...*entities.Event) *eventRepoStub {
	s := &eventRepoStub{byID: map[uuid.UUID]*entities.Event{}}
	for _, e := range events {
		s.byID[e.ID] = e
	}
	return s
}

func (s *eventRepoStub) Create(_ context.Context, e *entities.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s.byID[e.ID] = e
	return nil
}

func (s *eventRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Event, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return e, nil
}

func (s *eventRepoStub) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	return s.GetByID(ctx, id)
}

func (s *eventRepoStub) Update(_ context.Context, e *entities.Event) error {
	s.byID[e.ID] = e
	return nil
}

func (s *eventRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.byID, id)
	return nil
}

func (s *eventRepoStub) ListPublished(context.Context, entities.ProfileRole, int, int) ([]*entities.Event, int64, error) {
	var out []*entities.Event
	for _, e := range s.byID {
		if e.Status == entities.EventStatusPublished {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (s *eventRepoStub) List(context.Context, int, int) ([]*entities.Event, int64, error) {
	return nil, 0, nil
}

func (s *eventRepoStub) Count(context.Context) (int64, error) { return int64(len(s.byID)), nil }

type regRepoStub struct {
	byID      map[uuid.UUID]*entities.EventRegistration
	confirmed map[uuid.UUID]int64
}

func newRegRepoStub() *regRepoStub {
	return &regRepoStub{
		byID:      map[uuid.UUID]*entities.EventRegistration{},
		confirmed: map[uuid.UUID]int64{},
	}
}

func (s *regRepoStub) Create(_ context.Context, reg *entities.EventRegistration) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	s.byID[reg.ID] = reg
	if reg.Status == entities.RegistrationStatusConfirmed {
		s.confirmed[reg.EventID]++
	}
	return nil
}

func (s *regRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.EventRegistration, error) {
	reg, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return reg, nil
}

func (s *regRepoStub) GetLiveByEventAndUser(_ context.Context, eventID, userID uuid.UUID) (*entities.EventRegistration, error) {
	for _, reg := range s.byID {
		if reg.EventID == eventID && reg.UserID == userID && reg.Status != entities.RegistrationStatusCancelled {
			return reg, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *regRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.RegistrationStatus) error {
	reg, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	reg.Status = status
	return nil
}

func (s *regRepoStub) CountConfirmed(_ context.Context, eventID uuid.UUID) (int64, error) {
	return s.confirmed[eventID], nil
}

func (s *regRepoStub) ListByEvent(context.Context, uuid.UUID) ([]*entities.EventRegistration, error) {
	return nil, nil
}

func (s *regRepoStub) ListByUser(context.Context, uuid.UUID) ([]*entities.EventRegistration, error) {
	return nil, nil
}

func (s *regRepoStub) Count(context.Context) (int64, error) { return int64(len(s.byID)), nil }

type messageRepoStub struct {
	messages []*entities.Message
}

func (s *messageRepoStub) Create(_ context.Context, msg *entities.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	s.messages = append(s.messages, msg)
	return nil
}

func (s *messageRepoStub) ListBetween(_ context.Context, a, b uuid.UUID, limit, offset int) ([]*entities.Message, error) {
	var out []*entities.Message
	for _, msg := range s.messages {
		if (msg.SenderID == a && msg.RecipientID == b) || (msg.SenderID == b && msg.RecipientID == a) {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (s *messageRepoStub) ListConversations(context.Context, uuid.UUID) ([]*entities.Conversation, error) {
	return nil, nil
}

func (s *messageRepoStub) MarkConversationRead(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type notifRepoStub struct {
	created []*entities.Notification
}

func (s *notifRepoStub) Create(_ context.Context, n *entities.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	s.created = append(s.created, n)
	return nil
}

func (s *notifRepoStub) ListByUser(context.Context, uuid.UUID, int, int) ([]*entities.Notification, int64, error) {
	return s.created, int64(len(s.created)), nil
}

func (s *notifRepoStub) CountUnread(context.Context, uuid.UUID) (int64, error) {
	return int64(len(s.created)), nil
}

func (s *notifRepoStub) MarkRead(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (s *notifRepoStub) MarkAllRead(context.Context, uuid.UUID) error         { return nil }
func (s *notifRepoStub) ListPendingDispatch(context.Context, int) ([]*entities.Notification, error) {
	return nil, nil
}
func (s *notifRepoStub) MarkDispatched(context.Context, []uuid.UUID) error { return nil }

type activityRepoStub struct{}

func (activityRepoStub) Append(context.Context, *entities.ActivityLog) error { return nil }
func (activityRepoStub) ListByUser(context.Context, uuid.UUID, int, int) ([]*entities.ActivityLog, error) {
	return nil, nil
}
func (activityRepoStub) List(context.Context, int, int) ([]*entities.ActivityLog, int64, error) {
	return nil, 0, nil
}

type mentorshipRepoStub struct {
	byID map[uuid.UUID]*entities.MentorshipRequest
}

func newMentorshipRepoStub() *mentorshipRepoStub {
	return &mentorshipRepoStub{byID: map[uuid.UUID]*entities.MentorshipRequest{}}
}

func (s *mentorshipRepoStub) Create(_ context.Context, req *entities.MentorshipRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Status == "" {
		req.Status = entities.RequestStatusPending
	}
	s.byID[req.ID] = req
	return nil
}

func (s *mentorshipRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.MentorshipRequest, error) {
	req, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return req, nil
}

func (s *mentorshipRepoStub) GetLiveByPair(_ context.Context, startupID, mentorID uuid.UUID) (*entities.MentorshipRequest, error) {
	for _, req := range s.byID {
		if req.StartupID != startupID || req.MentorID != mentorID {
			continue
		}
		if req.Status == entities.RequestStatusPending || req.Status == entities.RequestStatusAccepted {
			return req, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *mentorshipRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
	req, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	req.Status = status
	req.ResponseMessage = null.NewString(responseMessage, responseMessage != "")
	return nil
}

func (s *mentorshipRepoStub) ListByStartup(_ context.Context, startupID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	var out []*entities.MentorshipRequest
	for _, req := range s.byID {
		if req.StartupID == startupID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *mentorshipRepoStub) ListByMentor(_ context.Context, mentorID uuid.UUID) ([]*entities.MentorshipRequest, error) {
	var out []*entities.MentorshipRequest
	for _, req := range s.byID {
		if req.MentorID == mentorID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *mentorshipRepoStub) Count(context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

type investmentRepoStub struct {
	byID map[uuid.UUID]*entities.InvestmentRequest
}

func newInvestmentRepoStub() *investmentRepoStub {
	return &investmentRepoStub{byID: map[uuid.UUID]*entities.InvestmentRequest{}}
}

func (s *investmentRepoStub) Create(_ context.Context, req *entities.InvestmentRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Status == "" {
		req.Status = entities.RequestStatusPending
	}
	s.byID[req.ID] = req
	return nil
}

func (s *investmentRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.InvestmentRequest, error) {
	req, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return req, nil
}

func (s *investmentRepoStub) GetLiveByPair(_ context.Context, startupID, investorID uuid.UUID) (*entities.InvestmentRequest, error) {
	for _, req := range s.byID {
		if req.StartupID != startupID || req.InvestorID != investorID {
			continue
		}
		if req.Status == entities.RequestStatusPending || req.Status == entities.RequestStatusAccepted {
			return req, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *investmentRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.RequestStatus, responseMessage string) error {
	req, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	req.Status = status
	req.ResponseMessage = null.NewString(responseMessage, responseMessage != "")
	return nil
}

func (s *investmentRepoStub) ListByStartup(_ context.Context, startupID uuid.UUID) ([]*entities.InvestmentRequest, error) {
	var out []*entities.InvestmentRequest
	for _, req := range s.byID {
		if req.StartupID == startupID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *investmentRepoStub) ListByInvestor(_ context.Context, investorID uuid.UUID) ([]*entities.InvestmentRequest, error) {
	var out []*entities.InvestmentRequest
	for _, req := range s.byID {
		if req.InvestorID == investorID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *investmentRepoStub) Count(context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}
