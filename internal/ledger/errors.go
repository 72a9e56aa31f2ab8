package ledger

import (
	"errors"
	"fmt"
)

// ErrDuplicateFingerprint is returned (wrapped) by Store.InsertCommitment
// when the fingerprint already exists. The service retries once on it;
// a second occurrence is surfaced as a storage error.
var ErrDuplicateFingerprint = errors.New("duplicate fingerprint")

// Code categorizes ledger errors for the presentation boundary.
type Code string

const (
	// CodeValidation indicates caller-supplied input was rejected
	// before any write happened. Recoverable: report a hint, retry.
	CodeValidation Code = "VALIDATION"

	// CodeNotFound indicates a fingerprint with no matching row.
	CodeNotFound Code = "NOT_FOUND"

	// CodeStorage indicates the persistence medium failed or violated
	// an invariant unexpectedly. Fatal to the operation, never to the
	// process.
	CodeStorage Code = "STORAGE"
)

// Error is a typed ledger failure.
//
// The core never formats user-facing text; callers translate Code and
// Message into replies at the presentation boundary.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Message is a short description for operators and logs.
	Message string

	// Fingerprint identifies the affected commitment, when known.
	Fingerprint string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Fingerprint != "" {
		return fmt.Sprintf("%s: %s (fingerprint=%s)", e.Code, e.Message, e.Fingerprint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a validation failure.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var le *Error
	return errors.As(err, &le) && le.Code == CodeValidation
}

// IsNotFound reports whether err is a missing-fingerprint failure.
func IsNotFound(err error) bool {
	var le *Error
	return errors.As(err, &le) && le.Code == CodeNotFound
}

// IsStorage reports whether err is a storage failure.
func IsStorage(err error) bool {
	var le *Error
	return errors.As(err, &le) && le.Code == CodeStorage
}

func newValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func newNotFoundError(fingerprint string) *Error {
	return &Error{
		Code:        CodeNotFound,
		Message:     "no commitment with this fingerprint",
		Fingerprint: fingerprint,
	}
}

func newStorageError(message string, err error) *Error {
	return &Error{Code: CodeStorage, Message: message, Err: err}
}
