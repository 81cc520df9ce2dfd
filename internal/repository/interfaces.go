package repository

import (
	"context"
	"errors"

	"mentorlink/api/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSessionNotFound = errors.New("session not found")
)

// UserStore is the user directory. Usernames are not unique by
// construction; FindByUsername returns the first match.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	SearchByExpertise(ctx context.Context, expertise models.Expertise) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}

// BookingStore is the booking ledger. Update is insert-or-replace
// keyed by booking id: concurrent mutations apply last-write-wins
// with no isolation.
type BookingStore interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (models.Booking, error)
	Update(ctx context.Context, booking models.Booking) error
	ListByParticipant(ctx context.Context, userID string) ([]models.Booking, error)
	Count(ctx context.Context) (int, error)
}

// SessionStore holds the "currently logged in" markers, one per user
// id. Markers carry no TTL and persist until explicit logout. Delete
// returns ErrSessionNotFound when no marker existed.
type SessionStore interface {
	Put(ctx context.Context, user models.User) error
	Get(ctx context.Context, userID string) (models.User, error)
	Delete(ctx context.Context, userID string) error
}
