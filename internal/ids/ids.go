package ids

import "github.com/segmentio/ksuid"

// New returns a fresh sortable identifier for users and bookings.
func New() string {
	return ksuid.New().String()
}
