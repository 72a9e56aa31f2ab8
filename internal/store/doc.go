// Package store provides SQLite-backed durable storage for the
// commitment ledger.
//
// The store holds a single table, commitments, and exposes exactly the
// operations the core needs:
//
//   - InsertCommitment: append a row, assign the id
//   - UpdateStatus: transition a row by fingerprint
//   - QueryByUser: per-user listing, most recent first
//   - QueryAll: full table in insertion order, for export
//
// No business logic lives here beyond the schema constraints. The
// UNIQUE constraint on fingerprint is the one invariant the store
// enforces itself; violations surface as ledger.ErrDuplicateFingerprint
// so the service layer can retry.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Each write is a single autocommitted statement, so readers never
// observe partially written rows.
package store
