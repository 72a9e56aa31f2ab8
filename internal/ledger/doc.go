// Package ledger holds the commitment data model and the service that
// enforces its rules.
//
// A commitment is recorded once, mutated exactly once (PENDING ->
// COMPLETED), and never deleted. Its fingerprint - SHA-256 over the
// commitment fields plus the creation instant - is the reference token
// for all later operations.
//
// # Critical invariants
//
//   - Fingerprints are unique across the store. Collisions are
//     cryptographically negligible; the service still retries once on a
//     store-reported duplicate before failing hard.
//   - Status has exactly one transition edge, PENDING -> COMPLETED.
//     Complete is idempotent at the service boundary.
//   - Validation happens before any write: a rejected Record leaves no
//     row behind.
//
// Persistence is abstracted behind the Store interface, implemented by
// the SQLite store in internal/store.
package ledger
