package usecase

import "time"

// utcNow is the default clock. Timestamps are kept in UTC without a monotonic
// reading so they compare equal after a storage round trip.
func utcNow() time.Time {
	return time.Now().UTC()
}
