package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/dotcomlabs/trustledger/internal/ledger"
)

// InsertCommitment appends a commitment row and returns the assigned id.
//
// The id comes from the AUTOINCREMENT primary key and is never reused.
// A UNIQUE violation on fingerprint is reported as an error wrapping
// ledger.ErrDuplicateFingerprint so the service can apply its
// single-retry policy; every other failure is returned as-is.
//
// The insert is a single statement and therefore atomic: a concurrent
// query never observes a partially written row.
func (s *Store) InsertCommitment(ctx context.Context, c ledger.Commitment) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO commitments
		(user, message, amount, due_date, created_at, status, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		c.User,
		c.Message,
		c.Amount,
		c.DueDate,
		c.CreatedAt,
		string(c.Status),
		c.Fingerprint,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert commitment: %w", ledger.ErrDuplicateFingerprint)
		}
		return 0, fmt.Errorf("insert commitment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert commitment: last insert id: %w", err)
	}

	return id, nil
}

// UpdateStatus sets the status of the row matching fingerprint and
// returns the number of affected rows.
//
// Zero matches is not an error here - the service decides whether that
// means not-found for its caller. SQLite counts a row as changed even
// when the new status equals the old one, so re-completing an already
// COMPLETED row reports one affected row (idempotent at the service
// boundary).
func (s *Store) UpdateStatus(ctx context.Context, fingerprint string, status ledger.Status) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE commitments SET status = ? WHERE fingerprint = ?
	`, string(status), fingerprint)
	if err != nil {
		return 0, fmt.Errorf("update status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update status: rows affected: %w", err)
	}

	return affected, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
