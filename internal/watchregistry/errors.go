package watchregistry

import "errors"

var (
	// ErrUnauthorized is returned when the owner is not on the allow-list.
	ErrUnauthorized = errors.New("owner is not allowed")

	// ErrQuotaExceeded is returned when the owner already holds the maximum
	// number of watches, counting adds still in flight.
	ErrQuotaExceeded = errors.New("watch quota exceeded")

	// ErrInvalidAddress is returned for a malformed or zero address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrAlreadyWatching is returned when the owner already watches the same
	// token and destination pair.
	ErrAlreadyWatching = errors.New("already watching")

	// ErrNotWatching is returned when removing a pair the owner does not watch.
	ErrNotWatching = errors.New("not watching")

	// ErrWatchSetupFailed wraps the cause of a failed subscription.
	ErrWatchSetupFailed = errors.New("watch setup failed")

	// ErrUnsupportedToken is wrapped by LedgerWatcher implementations when the
	// token contract cannot be watched at all. Restoration does not retry it.
	ErrUnsupportedToken = errors.New("unsupported token")

	// ErrAdminNotRemovable is returned when disallowing the administrator.
	ErrAdminNotRemovable = errors.New("administrator cannot be removed from the allow-list")

	// ErrAlreadyAllowed is returned when allowing an owner already on the list.
	ErrAlreadyAllowed = errors.New("owner already allowed")

	// ErrNotAllowed is returned when disallowing an owner not on the list.
	ErrNotAllowed = errors.New("owner not allowed")

	// ErrAlreadyRestored is returned when Restore runs more than once.
	ErrAlreadyRestored = errors.New("registry already restored")
)
