package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// fieldSeparator joins the fingerprint input fields. User content may
// legitimately contain it; the trailing nanosecond instant still keeps
// back-to-back inputs distinct.
const fieldSeparator = "|"

// Fingerprint computes the content hash for a new commitment.
//
// The digest is SHA-256 over the separator-joined fields
// (user, message, amount, due date, instant). Given identical inputs
// including instant, the output is identical - the fingerprint is an
// opaque reference token, not a deduplication key.
//
// User and message are NFC-normalized before hashing so that visually
// identical input produces identical digests regardless of the Unicode
// composition the transport delivered.
//
// The instant is encoded with nanosecond resolution so that two
// commitments with the same text issued back-to-back diverge. If a
// clock without sub-second resolution feeds identical instants, the
// store's uniqueness constraint catches the collision and the service
// retries with a fresh sample.
func Fingerprint(user, message string, amount float64, dueDate string, instant time.Time) string {
	parts := []string{
		norm.NFC.String(user),
		norm.NFC.String(message),
		strconv.FormatFloat(amount, 'g', -1, 64),
		dueDate,
		strconv.FormatInt(instant.UnixNano(), 10),
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, fieldSeparator)))
	return hex.EncodeToString(sum[:])
}
