package ledger

import "context"

// Status is the completion state of a commitment.
//
// The state machine has exactly one edge: StatusPending -> StatusCompleted.
// There is no cancellation, expiry, or reverse transition.
type Status string

const (
	// StatusPending is the initial state, assigned at record time.
	StatusPending Status = "PENDING"

	// StatusCompleted is the terminal state, reached only via Complete.
	StatusCompleted Status = "COMPLETED"
)

// Commitment is a single recorded obligation.
//
// The store owns the durable copy; values returned from queries are
// read-only snapshots and mutating them has no effect on stored state.
type Commitment struct {
	// ID is the store-assigned surrogate key. Never set by callers.
	ID int64

	// User is the display name of the committing party.
	// Not unique, not verified, case-sensitive.
	User string

	// Message is the free-text description of the obligation.
	Message string

	// Amount is a non-negative quantity (monetary or abstract unit).
	Amount float64

	// DueDate is caller-supplied calendar-date text, stored opaque.
	DueDate string

	// CreatedAt is the Unix timestamp (seconds) sampled at record time.
	CreatedAt int64

	// Status is the current completion state.
	Status Status

	// Fingerprint is the content hash computed at creation.
	// It is the reference token for status transitions.
	Fingerprint string
}

// Completed reports whether the commitment has reached its terminal state.
func (c Commitment) Completed() bool {
	return c.Status == StatusCompleted
}

// Store is the persistence boundary the ledger service writes through.
// Implemented by *store.Store; tests may substitute fakes.
type Store interface {
	// InsertCommitment appends a row and returns the assigned id.
	// Returns an error wrapping ErrDuplicateFingerprint if the
	// fingerprint already exists.
	InsertCommitment(ctx context.Context, c Commitment) (int64, error)

	// UpdateStatus sets the status of the row matching fingerprint and
	// returns the number of affected rows. Zero matches is not an error
	// at this layer.
	UpdateStatus(ctx context.Context, fingerprint string, status Status) (int64, error)

	// QueryByUser returns all commitments for user, most recent first.
	QueryByUser(ctx context.Context, user string) ([]Commitment, error)
}
