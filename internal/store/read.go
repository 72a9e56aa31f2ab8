package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dotcomlabs/trustledger/internal/ledger"
)

// QueryByUser returns all commitments for user, ordered by created_at
// descending - most recent first. This ordering is a user-facing
// contract, not incidental. The id tie-break keeps rows created within
// the same second in deterministic, latest-insert-first order.
//
// Returns an empty slice (not nil) if no records exist for the user.
func (s *Store) QueryByUser(ctx context.Context, user string) ([]ledger.Commitment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user, message, amount, due_date, created_at, status, fingerprint
		FROM commitments
		WHERE user = ?
		ORDER BY created_at DESC, id DESC
	`, user)
	if err != nil {
		return nil, fmt.Errorf("query by user: %w", err)
	}
	defer rows.Close()

	return collectCommitments(rows)
}

// QueryAll returns every commitment in insertion order (id ascending).
// Used by the export projector.
//
// Returns an empty slice (not nil) if the store is empty.
func (s *Store) QueryAll(ctx context.Context) ([]ledger.Commitment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user, message, amount, due_date, created_at, status, fingerprint
		FROM commitments
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query all: %w", err)
	}
	defer rows.Close()

	return collectCommitments(rows)
}

// collectCommitments scans all rows into a slice and checks the
// iteration error. Callers own closing the rows.
func collectCommitments(rows *sql.Rows) ([]ledger.Commitment, error) {
	var commitments []ledger.Commitment
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, err
		}
		commitments = append(commitments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commitments: %w", err)
	}

	// Return empty slice instead of nil
	if commitments == nil {
		commitments = []ledger.Commitment{}
	}

	return commitments, nil
}

// scanCommitment reads one row into a Commitment.
func scanCommitment(rows *sql.Rows) (ledger.Commitment, error) {
	var c ledger.Commitment
	var status string
	err := rows.Scan(
		&c.ID,
		&c.User,
		&c.Message,
		&c.Amount,
		&c.DueDate,
		&c.CreatedAt,
		&status,
		&c.Fingerprint,
	)
	if err != nil {
		return ledger.Commitment{}, fmt.Errorf("scan commitment: %w", err)
	}
	c.Status = ledger.Status(status)
	return c, nil
}
