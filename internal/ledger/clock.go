package ledger

import "time"

// Clock supplies the creation instant for new commitments.
//
// The instant feeds both the fingerprint (nanosecond resolution) and
// the stored created_at (seconds). Injected so tests can pin instants
// and exercise the collision-retry path deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
//
// Stateless and safe for concurrent use.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
