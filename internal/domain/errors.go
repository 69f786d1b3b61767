package domain

import "errors"

// Sentinel errors forming the lorebook error taxonomy. Services wrap these
// with context using fmt.Errorf("%w: ...") so callers can classify failures
// with errors.Is while still seeing what went wrong.
var (
	// ErrUnauthorized indicates a caller identity mismatch or a missing
	// operator privilege.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotRegistered indicates the required role row (author or editor
	// grant) is absent.
	ErrNotRegistered = errors.New("not registered")

	// ErrNotFound indicates a referenced document, category or role row
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey indicates a uniqueness violation on insert.
	ErrDuplicateKey = errors.New("already exists")

	// ErrForbidden indicates the caller is authenticated but not permitted
	// to act on this specific row (e.g. deleting someone else's candidate).
	ErrForbidden = errors.New("forbidden")

	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("validation failed")
)
