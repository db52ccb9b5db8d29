package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/domain/repositories"
)

// EventUsecase handles event management and registration
type EventUsecase struct {
	eventRepo    repositories.EventRepository
	regRepo      repositories.EventRegistrationRepository
	profileRepo  repositories.ProfileRepository
	notifRepo    repositories.NotificationRepository
	activityRepo repositories.ActivityLogRepository
	uow          repositories.UnitOfWork
}

// NewEventUsecase creates a new event usecase
func NewEventUsecase(
	eventRepo repositories.EventRepository,
	regRepo repositories.EventRegistrationRepository,
	profileRepo repositories.ProfileRepository,
	notifRepo repositories.NotificationRepository,
	activityRepo repositories.ActivityLogRepository,
	uow repositories.UnitOfWork,
) *EventUsecase {
	return &EventUsecase{
		eventRepo:    eventRepo,
		regRepo:      regRepo,
		profileRepo:  profileRepo,
		notifRepo:    notifRepo,
		activityRepo: activityRepo,
		uow:          uow,
	}
}

// Create creates a draft event owned by the organizer
func (u *EventUsecase) Create(ctx context.Context, organizerID uuid.UUID, input *entities.CreateEventInput) (*entities.Event, error) {
	if err := validateEventDates(input.StartDate, input.EndDate, input.RegistrationDeadline); err != nil {
		return nil, err
	}

	event := &entities.Event{
		OrganizerID:          organizerID,
		Title:                input.Title,
		Description:          null.NewString(input.Description, input.Description != ""),
		Location:             null.NewString(input.Location, input.Location != ""),
		IsVirtual:            input.IsVirtual,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		RegistrationDeadline: input.RegistrationDeadline,
		MaxParticipants:      input.MaxParticipants,
		RequiresApproval:     input.RequiresApproval,
		TargetAudience:       input.TargetAudience,
		Status:               entities.EventStatusDraft,
	}

	if err := u.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	_ = u.activityRepo.Append(ctx, &entities.ActivityLog{
		UserID: organizerID,
		Action: "event.created",
		Detail: null.StringFrom(event.ID.String()),
	})

	return event, nil
}

func validateEventDates(start, end, deadline time.Time) error {
	if !end.After(start) {
		return domainerrors.ErrInvalidInput
	}
	if deadline.After(start) {
		return domainerrors.ErrInvalidInput
	}
	return nil
}

// Update applies partial changes to an event. Notifies confirmed attendees
// when a published event changes.
func (u *EventUsecase) Update(ctx context.Context, actorID uuid.UUID, eventID uuid.UUID, input *entities.UpdateEventInput, isAdmin bool) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && event.OrganizerID != actorID {
		return nil, domainerrors.ErrForbidden
	}

	if input.Title != "" {
		event.Title = input.Title
	}
	if input.Description != "" {
		event.Description = null.StringFrom(input.Description)
	}
	if input.Location != "" {
		event.Location = null.StringFrom(input.Location)
	}
	if input.StartDate != nil {
		event.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		event.EndDate = *input.EndDate
	}
	if input.RegistrationDeadline != nil {
		event.RegistrationDeadline = *input.RegistrationDeadline
	}
	if input.MaxParticipants > 0 {
		event.MaxParticipants = input.MaxParticipants
	}
	if input.TargetAudience != "" {
		event.TargetAudience = input.TargetAudience
	}
	if input.Status != "" {
		switch input.Status {
		case entities.EventStatusDraft, entities.EventStatusPublished,
			entities.EventStatusCancelled, entities.EventStatusCompleted:
		default:
			return nil, domainerrors.ErrInvalidInput
		}
		event.Status = input.Status
	}

	if err := validateEventDates(event.StartDate, event.EndDate, event.RegistrationDeadline); err != nil {
		return nil, err
	}

	wasPublished := event.Status == entities.EventStatusPublished

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.eventRepo.Update(txCtx, event); err != nil {
			return err
		}
		if wasPublished {
			if err := u.notifyAttendees(txCtx, event, "Event updated", "The event \""+event.Title+"\" has been updated"); err != nil {
				return err
			}
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: actorID,
			Action: "event.updated",
			Detail: null.StringFrom(eventID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return u.Get(ctx, eventID)
}

func (u *EventUsecase) notifyAttendees(ctx context.Context, event *entities.Event, title, message string) error {
	regs, err := u.regRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return err
	}
	for _, reg := range regs {
		if reg.Status == entities.RegistrationStatusCancelled || reg.Status == entities.RegistrationStatusRejected {
			continue
		}
		if err := u.notifRepo.Create(ctx, &entities.Notification{
			UserID:      reg.UserID,
			Type:        entities.NotificationEventUpdate,
			Title:       title,
			Message:     message,
			ReferenceID: null.StringFrom(event.ID.String()),
		}); err != nil {
			return err
		}
	}
	return nil
}

// CancelEvent cancels an event and notifies everyone still registered
func (u *EventUsecase) CancelEvent(ctx context.Context, actorID, eventID uuid.UUID, isAdmin bool) error {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !isAdmin && event.OrganizerID != actorID {
		return domainerrors.ErrForbidden
	}

	event.Status = entities.EventStatusCancelled

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.eventRepo.Update(txCtx, event); err != nil {
			return err
		}
		if err := u.notifyAttendees(txCtx, event, "Event cancelled", "The event \""+event.Title+"\" has been cancelled"); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: actorID,
			Action: "event.cancelled",
			Detail: null.StringFrom(eventID.String()),
		})
	})
}

// Delete removes an event entirely (admin surface)
func (u *EventUsecase) Delete(ctx context.Context, actorID, eventID uuid.UUID) error {
	if err := u.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}
	_ = u.activityRepo.Append(ctx, &entities.ActivityLog{
		UserID: actorID,
		Action: "event.deleted",
		Detail: null.StringFrom(eventID.String()),
	})
	return nil
}

// Get returns an event with its confirmed attendance count
func (u *EventUsecase) Get(ctx context.Context, eventID uuid.UUID) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	confirmed, err := u.regRepo.CountConfirmed(ctx, eventID)
	if err != nil {
		return nil, err
	}
	event.ConfirmedCount = confirmed
	return event, nil
}

// ListPublished lists published events visible to the caller's role
func (u *EventUsecase) ListPublished(ctx context.Context, role entities.ProfileRole, limit, offset int) ([]*entities.Event, int64, error) {
	return u.eventRepo.ListPublished(ctx, role, limit, offset)
}

// Register registers the caller for a published event. The whole check runs
// under a row lock on the event so two racing registrations cannot both pass
// the capacity check.
func (u *EventUsecase) Register(ctx context.Context, userID, eventID uuid.UUID) (*entities.EventRegistration, error) {
	user, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var reg *entities.EventRegistration
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		event, err := u.eventRepo.GetByIDForUpdate(txCtx, eventID)
		if err != nil {
			return err
		}

		if event.Status != entities.EventStatusPublished {
			return domainerrors.ErrNotFound
		}
		if !audienceAllows(event.TargetAudience, user.Role) {
			return domainerrors.ErrForbidden
		}

		now := time.Now()
		if now.After(event.RegistrationDeadline) {
			return domainerrors.ErrDeadlinePassed
		}
		if now.After(event.StartDate) {
			return domainerrors.ErrEventStarted
		}

		if _, err := u.regRepo.GetLiveByEventAndUser(txCtx, eventID, userID); err == nil {
			return domainerrors.ErrAlreadyRegistered
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		status := entities.RegistrationStatusConfirmed
		if event.RequiresApproval {
			status = entities.RegistrationStatusPending
		} else {
			confirmed, err := u.regRepo.CountConfirmed(txCtx, eventID)
			if err != nil {
				return err
			}
			if confirmed >= int64(event.MaxParticipants) {
				return domainerrors.ErrEventFull
			}
		}

		reg = &entities.EventRegistration{EventID: eventID, UserID: userID, Status: status}
		if err := u.regRepo.Create(txCtx, reg); err != nil {
			return err
		}

		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      event.OrganizerID,
			Type:        entities.NotificationEventRegistration,
			Title:       "New event registration",
			Message:     user.FullName + " registered for \"" + event.Title + "\"",
			ReferenceID: null.StringFrom(reg.ID.String()),
		}); err != nil {
			return err
		}

		registrantMsg := "Your registration for \"" + event.Title + "\" is confirmed"
		if status == entities.RegistrationStatusPending {
			registrantMsg = "Your registration for \"" + event.Title + "\" is awaiting organizer approval"
		}
		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      userID,
			Type:        entities.NotificationEventRegistration,
			Title:       "Registration received",
			Message:     registrantMsg,
			ReferenceID: null.StringFrom(reg.ID.String()),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: userID,
			Action: "event.registered",
			Detail: null.StringFrom(eventID.String()),
		})
	})
	if err != nil {
		return nil, err
	}

	return reg, nil
}

func audienceAllows(audience string, role entities.ProfileRole) bool {
	if audience == "" || role == entities.ProfileRoleAdmin {
		return true
	}
	for _, part := range strings.Split(audience, ",") {
		if strings.TrimSpace(part) == string(role) {
			return true
		}
	}
	return false
}

// CancelRegistration withdraws the caller's registration before the event starts
func (u *EventUsecase) CancelRegistration(ctx context.Context, userID, registrationID uuid.UUID) error {
	reg, err := u.regRepo.GetByID(ctx, registrationID)
	if err != nil {
		return err
	}
	if reg.UserID != userID {
		return domainerrors.ErrForbidden
	}
	if reg.Status == entities.RegistrationStatusCancelled {
		return domainerrors.ErrRequestNotPending
	}
	if reg.Event != nil && time.Now().After(reg.Event.StartDate) {
		return domainerrors.ErrEventStarted
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.regRepo.UpdateStatus(txCtx, registrationID, entities.RegistrationStatusCancelled); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: userID,
			Action: "event.registration_cancelled",
			Detail: null.StringFrom(registrationID.String()),
		})
	})
}

// ReviewRegistration lets the organizer confirm or reject a pending
// registration on an approval-gated event. Confirmation re-checks capacity
// under the event row lock.
func (u *EventUsecase) ReviewRegistration(ctx context.Context, actorID, registrationID uuid.UUID, approve, isAdmin bool) error {
	reg, err := u.regRepo.GetByID(ctx, registrationID)
	if err != nil {
		return err
	}
	if reg.Status != entities.RegistrationStatusPending {
		return domainerrors.ErrRequestNotPending
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		event, err := u.eventRepo.GetByIDForUpdate(txCtx, reg.EventID)
		if err != nil {
			return err
		}
		if !isAdmin && event.OrganizerID != actorID {
			return domainerrors.ErrForbidden
		}

		status := entities.RegistrationStatusRejected
		title := "Registration rejected"
		message := "Your registration for \"" + event.Title + "\" was rejected"
		if approve {
			confirmed, err := u.regRepo.CountConfirmed(txCtx, reg.EventID)
			if err != nil {
				return err
			}
			if confirmed >= int64(event.MaxParticipants) {
				return domainerrors.ErrEventFull
			}
			status = entities.RegistrationStatusConfirmed
			title = "Registration confirmed"
			message = "Your registration for \"" + event.Title + "\" was confirmed"
		}

		if err := u.regRepo.UpdateStatus(txCtx, registrationID, status); err != nil {
			return err
		}
		if err := u.notifRepo.Create(txCtx, &entities.Notification{
			UserID:      reg.UserID,
			Type:        entities.NotificationEventRegistration,
			Title:       title,
			Message:     message,
			ReferenceID: null.StringFrom(registrationID.String()),
		}); err != nil {
			return err
		}
		return u.activityRepo.Append(txCtx, &entities.ActivityLog{
			UserID: actorID,
			Action: "event.registration_reviewed",
			Detail: null.StringFrom(registrationID.String()),
		})
	})
}

// ListMyRegistrations lists the caller's registrations with their events
func (u *EventUsecase) ListMyRegistrations(ctx context.Context, userID uuid.UUID) ([]*entities.EventRegistration, error) {
	return u.regRepo.ListByUser(ctx, userID)
}

// Roster lists an event's registrations for its organizer
func (u *EventUsecase) Roster(ctx context.Context, actorID, eventID uuid.UUID, isAdmin bool) ([]*entities.EventRegistration, error) {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && event.OrganizerID != actorID {
		return nil, domainerrors.ErrForbidden
	}
	return u.regRepo.ListByEvent(ctx, eventID)
}
