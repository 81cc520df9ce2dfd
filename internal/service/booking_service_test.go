package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorlink/api/internal/ids"
	"mentorlink/api/internal/models"
	"mentorlink/api/internal/repository"
)

type bookingFixture struct {
	svc      *BookingService
	users    *repository.MemoryUserStore
	bookings *repository.MemoryBookingStore
	sessions *repository.MemorySessionStore
}

func newBookingFixture(strict bool) bookingFixture {
	users := repository.NewMemoryUserStore()
	bookings := repository.NewMemoryBookingStore()
	sessions := repository.NewMemorySessionStore()
	svc := NewBookingService(users, bookings, sessions, strict, zerolog.Nop())
	return bookingFixture{svc: svc, users: users, bookings: bookings, sessions: sessions}
}

func (f bookingFixture) addUser(t *testing.T, username string, role models.UserRole) models.User {
	t.Helper()
	user := models.User{ID: ids.New(), Username: username, Role: role}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f bookingFixture) login(t *testing.T, user models.User) {
	t.Helper()
	require.NoError(t, f.sessions.Put(context.Background(), user))
}

func (f bookingFixture) book(t *testing.T, mentor, mentee models.User) models.Booking {
	t.Helper()
	f.login(t, mentee)
	booking, err := f.svc.Create(context.Background(), CreateBookingInput{
		MenteeID:  mentee.ID,
		MentorID:  mentor.ID,
		Date:      "2024-05-01",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)
	return booking
}

func TestCreateBookingRequiresMenteeSession(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)

	_, err := f.svc.Create(context.Background(), CreateBookingInput{
		MenteeID: mentee.ID,
		MentorID: mentor.ID,
	})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCreateBookingRejectsMentorSession(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	other := f.addUser(t, "jack", models.UserRoleMentor)
	f.login(t, other)

	_, err := f.svc.Create(context.Background(), CreateBookingInput{
		MenteeID: other.ID,
		MentorID: mentor.ID,
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateBookingValidatesMentor(t *testing.T) {
	f := newBookingFixture(false)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	f.login(t, mentee)

	_, err := f.svc.Create(context.Background(), CreateBookingInput{
		MenteeID: mentee.ID,
		MentorID: "missing",
	})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	otherMentee := f.addUser(t, "jill", models.UserRoleMentee)
	_, err = f.svc.Create(context.Background(), CreateBookingInput{
		MenteeID: mentee.ID,
		MentorID: otherMentee.ID,
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateBookingStartsAccepted(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)

	booking := f.book(t, mentor, mentee)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingStatusAccepted, booking.Status)
	assert.Equal(t, mentor.ID, booking.MentorID)
	assert.Equal(t, mentee.ID, booking.MenteeID)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Nil(t, booking.UpdatedAt)
}

func TestListForUserReturnsExactlyParticipantBookings(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	otherMentee := f.addUser(t, "jill", models.UserRoleMentee)
	bystander := f.addUser(t, "bob", models.UserRoleMentee)

	first := f.book(t, mentor, mentee)
	second := f.book(t, mentor, otherMentee)

	ctx := context.Background()

	mentorList, err := f.svc.ListForUser(ctx, mentor.ID)
	require.NoError(t, err)
	require.Len(t, mentorList, 2)

	menteeList, err := f.svc.ListForUser(ctx, mentee.ID)
	require.NoError(t, err)
	require.Len(t, menteeList, 1)
	assert.Equal(t, first.ID, menteeList[0].ID)

	otherList, err := f.svc.ListForUser(ctx, otherMentee.ID)
	require.NoError(t, err)
	require.Len(t, otherList, 1)
	assert.Equal(t, second.ID, otherList[0].ID)

	emptyList, err := f.svc.ListForUser(ctx, bystander.ID)
	require.NoError(t, err)
	assert.Empty(t, emptyList)

	_, err = f.svc.ListForUser(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestRescheduleAuthorization(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	stranger := f.addUser(t, "bob", models.UserRoleMentee)
	booking := f.book(t, mentor, mentee)

	ctx := context.Background()

	_, err := f.svc.Reschedule(ctx, RescheduleInput{
		UserID: stranger.ID, BookingID: booking.ID,
		Date: "2024-05-02", StartTime: "12:00", EndTime: "13:00",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	for _, participant := range []models.User{mentor, mentee} {
		updated, err := f.svc.Reschedule(ctx, RescheduleInput{
			UserID: participant.ID, BookingID: booking.ID,
			Date: "2024-05-02", StartTime: "12:00", EndTime: "13:00",
		})
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusRescheduled, updated.Status)
		assert.Equal(t, "2024-05-02", updated.Date)
		assert.Equal(t, "12:00", updated.StartTime)
		assert.Equal(t, "13:00", updated.EndTime)
		require.NotNil(t, updated.UpdatedAt)
	}
}

func TestRescheduleMissingEntities(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	booking := f.book(t, mentor, mentee)

	ctx := context.Background()

	_, err := f.svc.Reschedule(ctx, RescheduleInput{UserID: "missing", BookingID: booking.ID})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = f.svc.Reschedule(ctx, RescheduleInput{UserID: mentee.ID, BookingID: "missing"})
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestCancelIsMenteeOnly(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	booking := f.book(t, mentor, mentee)

	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, mentor.ID, booking.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	cancelled, err := f.svc.Cancel(ctx, mentee.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.UpdatedAt)
}

func TestAcceptAndRejectAreMentorOnly(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	booking := f.book(t, mentor, mentee)

	ctx := context.Background()

	_, err := f.svc.Accept(ctx, mentee.ID, booking.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.svc.Reject(ctx, mentee.ID, booking.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	accepted, err := f.svc.Accept(ctx, mentor.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, accepted.Status)

	rejected, err := f.svc.Reject(ctx, mentor.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRejected, rejected.Status)
	assert.Equal(t, mentor.ID, rejected.MentorID)
	assert.Equal(t, mentee.ID, rejected.MenteeID)
}

func TestPermissiveModeAllowsAnyTransition(t *testing.T) {
	f := newBookingFixture(false)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	booking := f.book(t, mentor, mentee)

	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, mentee.ID, booking.ID)
	require.NoError(t, err)

	// Cancelled bookings can still be re-accepted in permissive mode.
	accepted, err := f.svc.Accept(ctx, mentor.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, accepted.Status)
}

func TestStrictModeBlocksTerminalTransitions(t *testing.T) {
	f := newBookingFixture(true)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	booking := f.book(t, mentor, mentee)

	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, mentee.ID, booking.ID)
	require.NoError(t, err)

	_, err = f.svc.Accept(ctx, mentor.ID, booking.ID)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	_, err = f.svc.Reschedule(ctx, RescheduleInput{
		UserID: mentee.ID, BookingID: booking.ID,
		Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00",
	})
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}

func TestStrictModeAllowsActiveTransitions(t *testing.T) {
	f := newBookingFixture(true)
	mentor := f.addUser(t, "john", models.UserRoleMentor)
	mentee := f.addUser(t, "jane", models.UserRoleMentee)
	booking := f.book(t, mentor, mentee)

	ctx := context.Background()

	rescheduled, err := f.svc.Reschedule(ctx, RescheduleInput{
		UserID: mentee.ID, BookingID: booking.ID,
		Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRescheduled, rescheduled.Status)

	accepted, err := f.svc.Accept(ctx, mentor.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, accepted.Status)
}
