package usecase

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput marks caller-correctable validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks lookups for records that do not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrStoreUnavailable marks record-store failures. Store writes are
	// one-shot; callers see the failure and nothing is retried.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// markStore wraps a repository failure so errors.Is(err,
// ErrStoreUnavailable) holds without losing the original chain.
func markStore(err error) error {
	return errors.Mark(err, ErrStoreUnavailable)
}
