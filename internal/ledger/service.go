package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Service enforces business rules and coordinates hashing with storage.
//
// Thread-safety: Service holds no mutable state of its own; concurrent
// calls are safe as long as the injected Store is (the SQLite store
// serializes writes through a single connection).
type Service struct {
	store Store
	clock Clock
}

// NewService creates a ledger service over the given store.
// A nil clock defaults to the system clock.
func NewService(store Store, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{store: store, clock: clock}
}

// Record validates and persists a new commitment, returning its fingerprint.
//
// Validation failures (empty user or message, negative amount) are
// reported before anything is written. The fingerprint is computed from
// the current clock instant; on the practically-impossible event of a
// fingerprint collision in the store, Record retries exactly once with
// a freshly sampled instant, then gives up with a storage error.
func (s *Service) Record(ctx context.Context, user, message string, amount float64, dueDate string) (string, error) {
	if user == "" {
		return "", newValidationError("user must not be empty")
	}
	if message == "" {
		return "", newValidationError("message must not be empty")
	}
	if amount < 0 {
		return "", newValidationError("amount must not be negative")
	}

	const attempts = 2
	var lastErr error
	for i := 0; i < attempts; i++ {
		now := s.clock.Now()
		fingerprint := Fingerprint(user, message, amount, dueDate, now)

		_, err := s.store.InsertCommitment(ctx, Commitment{
			User:        user,
			Message:     message,
			Amount:      amount,
			DueDate:     dueDate,
			CreatedAt:   now.Unix(),
			Status:      StatusPending,
			Fingerprint: fingerprint,
		})
		if err == nil {
			slog.Debug("commitment recorded",
				"user", user,
				"fingerprint", fingerprint,
			)
			return fingerprint, nil
		}
		if !errors.Is(err, ErrDuplicateFingerprint) {
			return "", newStorageError("insert commitment", err)
		}

		slog.Warn("fingerprint collision, resampling instant",
			"user", user,
			"fingerprint", fingerprint,
		)
		lastErr = err
	}

	return "", newStorageError(
		fmt.Sprintf("fingerprint collision survived %d attempts", attempts),
		lastErr,
	)
}

// Complete transitions the commitment matching fingerprint to COMPLETED.
//
// Completing an already-completed commitment succeeds: the transition is
// idempotent at the service boundary. An unknown fingerprint is reported
// as a not-found error, never silently ignored.
func (s *Service) Complete(ctx context.Context, fingerprint string) error {
	affected, err := s.store.UpdateStatus(ctx, fingerprint, StatusCompleted)
	if err != nil {
		return newStorageError("update status", err)
	}
	if affected == 0 {
		return newNotFoundError(fingerprint)
	}

	slog.Debug("commitment completed", "fingerprint", fingerprint)
	return nil
}

// ListFor returns all commitments for user, most recent first.
//
// The sequence is never capped here; display limits belong to the
// presentation layer.
func (s *Service) ListFor(ctx context.Context, user string) ([]Commitment, error) {
	commitments, err := s.store.QueryByUser(ctx, user)
	if err != nil {
		return nil, newStorageError("query by user", err)
	}
	return commitments, nil
}
