// Package export materializes the full ledger into a portable,
// order-stable JSON representation.
//
// The record shape and field order - user, message, amount, due_date,
// status, hash - are a compatibility contract with existing consumers
// of prior exports. Internal fields (id, created_at) are omitted.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dotcomlabs/trustledger/internal/ledger"
)

// Source is the read-only store view the projector needs.
// Implemented by *store.Store.
type Source interface {
	QueryAll(ctx context.Context) ([]ledger.Commitment, error)
}

// Record is the public-facing projection of a commitment.
type Record struct {
	User    string  `json:"user"`
	Message string  `json:"message"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"due_date"`
	Status  string  `json:"status"`
	Hash    string  `json:"hash"`
}

// Projector produces ledger snapshots. It only ever reads.
type Projector struct {
	source Source
}

// NewProjector creates a projector over the given source.
func NewProjector(source Source) *Projector {
	return &Projector{source: source}
}

// Snapshot returns every commitment as a public record, preserving
// insertion order.
func (p *Projector) Snapshot(ctx context.Context) ([]Record, error) {
	commitments, err := p.source.QueryAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	records := make([]Record, len(commitments))
	for i, c := range commitments {
		records[i] = Record{
			User:    c.User,
			Message: c.Message,
			Amount:  c.Amount,
			DueDate: c.DueDate,
			Status:  string(c.Status),
			Hash:    c.Fingerprint,
		}
	}

	return records, nil
}

// WriteJSON serializes the current snapshot to w as a 2-space-indented
// JSON array, matching the layout of prior exports.
func (p *Projector) WriteJSON(ctx context.Context, w io.Writer) error {
	records, err := p.Snapshot(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return nil
}

// ReadSnapshot parses a prior export back into records. Together with
// WriteJSON this forms the round-trip law: export then re-import yields
// the same set of records.
func ReadSnapshot(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return records, nil
}
