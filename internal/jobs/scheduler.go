package jobs

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"mentorlink/api/internal/repository"
)

// Scheduler takes a periodic usage snapshot: it counts users and
// bookings through the stores, logs the totals and mirrors them into
// redis counters for external dashboards.
type Scheduler struct {
	cron     *cron.Cron
	users    repository.UserStore
	bookings repository.BookingStore
	cache    *redis.Client
	schedule string
	log      zerolog.Logger
}

func NewScheduler(
	users repository.UserStore,
	bookings repository.BookingStore,
	cache *redis.Client,
	schedule string,
	log zerolog.Logger,
) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:     c,
		users:    users,
		bookings: bookings,
		cache:    cache,
		schedule: schedule,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.snapshot); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running snapshot to
// finish, up to a short grace period.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) snapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userCount, err := s.users.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count users failed")
		return
	}

	bookingCount, err := s.bookings.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count bookings failed")
		return
	}

	if s.cache != nil {
		if err := s.cache.MSet(ctx, "stats:users", userCount, "stats:bookings", bookingCount).Err(); err != nil {
			s.log.Warn().Err(err).Msg("write stats counters failed")
		}
	}

	s.log.Info().
		Int("users", userCount).
		Int("bookings", bookingCount).
		Msg("usage snapshot")
}
