package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorlink/api/internal/models"
)

func TestMemoryUserStoreFindByUsernameFirstMatch(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, models.User{ID: "u1", Username: "dup"}))
	require.NoError(t, store.Create(ctx, models.User{ID: "u2", Username: "dup"}))

	found, err := store.FindByUsername(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)

	_, err = store.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserStoreSearchSkipsUntagged(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	icp := models.ExpertiseICP
	require.NoError(t, store.Create(ctx, models.User{ID: "m1", Role: models.UserRoleMentor, Expertise: &icp}))
	require.NoError(t, store.Create(ctx, models.User{ID: "m2", Role: models.UserRoleMentor}))
	require.NoError(t, store.Create(ctx, models.User{ID: "e1", Role: models.UserRoleMentee, Expertise: &icp}))

	users, err := store.SearchByExpertise(ctx, models.ExpertiseICP)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "m1", users[0].ID)
}

func TestMemoryBookingStoreLastWriteWins(t *testing.T) {
	store := NewMemoryBookingStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, models.Booking{ID: "b1", Status: models.BookingStatusAccepted}))
	require.NoError(t, store.Update(ctx, models.Booking{ID: "b1", Status: models.BookingStatusCancelled}))
	require.NoError(t, store.Update(ctx, models.Booking{ID: "b1", Status: models.BookingStatusRejected}))

	booking, err := store.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRejected, booking.Status)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemorySessionStoreDeleteReportsMissing(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	user := models.User{ID: "u1", Role: models.UserRoleMentee}
	require.NoError(t, store.Put(ctx, user))
	require.NoError(t, store.Put(ctx, user)) // overwrite, not an error

	marker, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleMentee, marker.Role)

	require.NoError(t, store.Delete(ctx, "u1"))
	assert.ErrorIs(t, store.Delete(ctx, "u1"), ErrSessionNotFound)
	_, err = store.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
