package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusAccepted, BookingStatusRescheduled, true},
		{BookingStatusAccepted, BookingStatusCancelled, true},
		{BookingStatusAccepted, BookingStatusRejected, true},
		{BookingStatusAccepted, BookingStatusAccepted, true},
		{BookingStatusRescheduled, BookingStatusAccepted, true},
		{BookingStatusRescheduled, BookingStatusCancelled, true},
		{BookingStatusCancelled, BookingStatusAccepted, false},
		{BookingStatusCancelled, BookingStatusRescheduled, false},
		{BookingStatusRejected, BookingStatusAccepted, false},
		{BookingStatusRejected, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestParseExpertise(t *testing.T) {
	tag, ok := ParseExpertise("icp")
	assert.True(t, ok)
	assert.Equal(t, ExpertiseICP, tag)

	tag, ok = ParseExpertise("  Solana ")
	assert.True(t, ok)
	assert.Equal(t, ExpertiseSolana, tag)

	_, ok = ParseExpertise("COBOL")
	assert.False(t, ok)

	_, ok = ParseExpertise("")
	assert.False(t, ok)
}
