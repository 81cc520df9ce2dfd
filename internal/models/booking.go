package models

import "time"

type BookingStatus string

const (
	BookingStatusAccepted    BookingStatus = "accepted"
	BookingStatusRescheduled BookingStatus = "rescheduled"
	BookingStatusCancelled   BookingStatus = "cancelled"
	BookingStatusRejected    BookingStatus = "rejected"
)

// Booking is a scheduled session between a mentor and a mentee.
// Date, StartTime and EndTime are free-form: the ledger records what
// the mentee asked for and never checks ranges or overlaps. Status
// starts as accepted, which doubles as the confirmed state when a
// mentor accepts. Bookings are never deleted.
type Booking struct {
	ID        string        `json:"id"`
	MentorID  string        `json:"mentorId"`
	MenteeID  string        `json:"menteeId"`
	Date      string        `json:"date"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

// Transitions allowed when strict transition checking is enabled.
// Cancelled and rejected are terminal; the permissive default mode
// ignores this table entirely.
var strictTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusAccepted: {
		BookingStatusAccepted:    true,
		BookingStatusRescheduled: true,
		BookingStatusCancelled:   true,
		BookingStatusRejected:    true,
	},
	BookingStatusRescheduled: {
		BookingStatusAccepted:    true,
		BookingStatusRescheduled: true,
		BookingStatusCancelled:   true,
		BookingStatusRejected:    true,
	},
	BookingStatusCancelled: {},
	BookingStatusRejected:  {},
}

// CanTransition reports whether a booking may move from one status to
// the next under the strict transition table.
func CanTransition(from, to BookingStatus) bool {
	return strictTransitions[from][to]
}
