package repository

import (
	"context"
	"sort"
	"sync"

	"mentorlink/api/internal/models"
)

// In-memory stores backing the "memory" storage driver and the test
// suite. Each store guards its map with a mutex; semantics otherwise
// mirror the postgres and redis implementations, including
// last-write-wins booking updates.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
	order []string
}

var _ UserStore = (*MemoryUserStore)(nil)

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Create(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.ID]; !exists {
		s.order = append(s.order, user.ID)
	}
	s.users[user.ID] = user
	return nil
}

func (s *MemoryUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *MemoryUserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if s.users[id].Username == username {
			return s.users[id], nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (s *MemoryUserStore) SearchByExpertise(_ context.Context, expertise models.Expertise) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []models.User
	for _, id := range s.order {
		user := s.users[id]
		if user.Role != models.UserRoleMentor || user.Expertise == nil {
			continue
		}
		if *user.Expertise == expertise {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *MemoryUserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

var _ BookingStore = (*MemoryBookingStore)(nil)

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{bookings: make(map[string]models.Booking)}
}

func (s *MemoryBookingStore) Create(_ context.Context, booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = booking
	return nil
}

func (s *MemoryBookingStore) GetByID(_ context.Context, id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	booking, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, ErrBookingNotFound
	}
	return booking, nil
}

func (s *MemoryBookingStore) Update(_ context.Context, booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = booking
	return nil
}

func (s *MemoryBookingStore) ListByParticipant(_ context.Context, userID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bookings []models.Booking
	for _, booking := range s.bookings {
		if booking.MentorID == userID || booking.MenteeID == userID {
			bookings = append(bookings, booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (s *MemoryBookingStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings), nil
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.User
}

var _ SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.User)}
}

func (s *MemorySessionStore) Put(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[user.ID] = user
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, userID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[userID]
	if !ok {
		return models.User{}, ErrSessionNotFound
	}
	return user, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[userID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, userID)
	return nil
}
