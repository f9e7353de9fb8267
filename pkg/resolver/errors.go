package resolver

import "errors"

// Errors surfaced to resolution callers.
var (
	// ErrNotFound means the web server answered but has no DID Log at the
	// location the identifier maps to
	ErrNotFound = errors.New("resolver: DID Log not found")
	// ErrNetwork marks transport-level failures reaching the host
	ErrNetwork = errors.New("resolver: network failure")
	// ErrVersionNotFound means the requested version is not in the
	// verified history
	ErrVersionNotFound = errors.New("resolver: requested version not found")
	// ErrInvalidQuery marks contradictory resolution options
	ErrInvalidQuery = errors.New("resolver: invalid resolution query")
)
