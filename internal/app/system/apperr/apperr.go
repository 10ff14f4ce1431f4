// internal/app/system/apperr/apperr.go

// Package apperr defines the error taxonomy shared by stores and
// handlers. Stores return these sentinels (usually wrapped with
// context via fmt.Errorf %w); webjson maps them to HTTP statuses.
//
// The read/write asymmetry is deliberate: list and populate paths
// swallow sub-query failures into empty results, while create/update/
// delete propagate errors to the caller.
package apperr

import "errors"

var (
	// ErrNotFound means the requested entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the caller does not own the record it is
	// trying to mutate. Distinct from ErrNotFound: the record exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation means input failed schema constraints before
	// reaching storage.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream means the document store or an external API was
	// unavailable.
	ErrUpstream = errors.New("upstream unavailable")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnauthorized reports whether err wraps ErrUnauthorized.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// Validation wraps ErrValidation with a human-readable reason.
func Validation(reason string) error {
	return &reasonError{sentinel: ErrValidation, reason: reason}
}

// NotFound wraps ErrNotFound with the entity kind for log context.
func NotFound(kind string) error {
	return &reasonError{sentinel: ErrNotFound, reason: kind}
}

type reasonError struct {
	sentinel error
	reason   string
}

func (e *reasonError) Error() string {
	if e.reason == "" {
		return e.sentinel.Error()
	}
	return e.sentinel.Error() + ": " + e.reason
}

func (e *reasonError) Unwrap() error { return e.sentinel }

// Reason returns the human-readable reason attached to a taxonomy
// error, or "" when the error carries none.
func Reason(err error) string {
	var re *reasonError
	if errors.As(err, &re) {
		return re.reason
	}
	return ""
}
