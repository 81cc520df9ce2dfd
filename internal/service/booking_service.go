package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"mentorlink/api/internal/ids"
	"mentorlink/api/internal/models"
	"mentorlink/api/internal/repository"
)

// BookingService implements the booking ledger operations. Every
// precondition is checked before the single store write and the first
// failure halts the request. Writes are insert-or-replace, so two
// concurrent mutations on the same booking land last-write-wins.
type BookingService struct {
	users    repository.UserStore
	bookings repository.BookingStore
	sessions repository.SessionStore
	strict   bool
	log      zerolog.Logger
}

func NewBookingService(
	users repository.UserStore,
	bookings repository.BookingStore,
	sessions repository.SessionStore,
	strictTransitions bool,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		users:    users,
		bookings: bookings,
		sessions: sessions,
		strict:   strictTransitions,
		log:      log,
	}
}

type CreateBookingInput struct {
	MenteeID  string
	MentorID  string
	Date      string
	StartTime string
	EndTime   string
}

// Create books a session. The mentee must hold an active session
// marker and carry the mentee role; the mentor must exist and carry
// the mentor role. Scheduling fields are recorded as-is, with no
// overlap or range checks.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (models.Booking, error) {
	mentee, err := s.sessions.Get(ctx, input.MenteeID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return models.Booking{}, ErrNotLoggedIn
		}
		return models.Booking{}, err
	}
	if mentee.Role != models.UserRoleMentee {
		return models.Booking{}, ErrUnauthorized
	}

	mentor, err := s.users.GetByID(ctx, input.MentorID)
	if err != nil {
		return models.Booking{}, err
	}
	if mentor.Role != models.UserRoleMentor {
		return models.Booking{}, ErrUnauthorized
	}

	booking := models.Booking{
		ID:        ids.New(),
		MentorID:  input.MentorID,
		MenteeID:  input.MenteeID,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    models.BookingStatusAccepted,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return models.Booking{}, err
	}

	s.log.Debug().
		Str("booking_id", booking.ID).
		Str("mentor_id", booking.MentorID).
		Str("mentee_id", booking.MenteeID).
		Msg("booking created")
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, bookingID string) (models.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

// ListForUser returns every booking where the user appears as mentor
// or mentee. The user has to exist.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.bookings.ListByParticipant(ctx, userID)
}

type RescheduleInput struct {
	UserID    string
	BookingID string
	Date      string
	StartTime string
	EndTime   string
}

// Reschedule overwrites the scheduling fields. Either participant may
// reschedule.
func (s *BookingService) Reschedule(ctx context.Context, input RescheduleInput) (models.Booking, error) {
	booking, err := s.load(ctx, input.UserID, input.BookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if input.UserID != booking.MentorID && input.UserID != booking.MenteeID {
		return models.Booking{}, ErrUnauthorized
	}
	if err := s.checkTransition(booking.Status, models.BookingStatusRescheduled); err != nil {
		return models.Booking{}, err
	}

	booking.Date = input.Date
	booking.StartTime = input.StartTime
	booking.EndTime = input.EndTime
	return s.save(ctx, booking, models.BookingStatusRescheduled)
}

// Cancel is a mentee-only transition.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) (models.Booking, error) {
	booking, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if userID != booking.MenteeID {
		return models.Booking{}, ErrUnauthorized
	}
	if err := s.checkTransition(booking.Status, models.BookingStatusCancelled); err != nil {
		return models.Booking{}, err
	}
	return s.save(ctx, booking, models.BookingStatusCancelled)
}

// Accept is a mentor-only transition.
func (s *BookingService) Accept(ctx context.Context, userID, bookingID string) (models.Booking, error) {
	booking, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if userID != booking.MentorID {
		return models.Booking{}, ErrUnauthorized
	}
	if err := s.checkTransition(booking.Status, models.BookingStatusAccepted); err != nil {
		return models.Booking{}, err
	}
	return s.save(ctx, booking, models.BookingStatusAccepted)
}

// Reject is a mentor-only transition.
func (s *BookingService) Reject(ctx context.Context, userID, bookingID string) (models.Booking, error) {
	booking, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if userID != booking.MentorID {
		return models.Booking{}, ErrUnauthorized
	}
	if err := s.checkTransition(booking.Status, models.BookingStatusRejected); err != nil {
		return models.Booking{}, err
	}
	return s.save(ctx, booking, models.BookingStatusRejected)
}

// load checks the user and booking exist, in that order.
func (s *BookingService) load(ctx context.Context, userID, bookingID string) (models.Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return models.Booking{}, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *BookingService) checkTransition(from, to models.BookingStatus) error {
	if !s.strict {
		return nil
	}
	if !models.CanTransition(from, to) {
		return ErrTransitionNotAllowed
	}
	return nil
}

func (s *BookingService) save(ctx context.Context, booking models.Booking, status models.BookingStatus) (models.Booking, error) {
	now := time.Now().UTC()
	booking.Status = status
	booking.UpdatedAt = &now

	if err := s.bookings.Update(ctx, booking); err != nil {
		return models.Booking{}, err
	}

	s.log.Debug().
		Str("booking_id", booking.ID).
		Str("status", string(status)).
		Msg("booking updated")
	return booking, nil
}
