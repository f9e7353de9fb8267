package resolver

import (
	"fmt"
	"time"

	"github.com/yourusername/did-tdw/pkg/verify"
)

// Query selects one version out of a verified history. The zero value
// selects the latest version. VersionID and VersionTime are mutually
// exclusive.
type Query struct {
	// VersionID selects the exact version with this versionId
	VersionID string
	// VersionTime selects the latest version whose versionTime is at or
	// before this instant
	VersionTime time.Time
}

func (q Query) isLatest() bool {
	return q.VersionID == "" && q.VersionTime.IsZero()
}

// Select picks the requested version from a history.
//
// A history with a verification failure can still serve versions from its
// verified prefix when the query names one explicitly; only the default
// latest query refuses, since "latest" cannot be answered for a log whose
// tail is unverifiable.
func Select(h *verify.History, q Query) (*verify.Version, error) {
	if q.VersionID != "" && !q.VersionTime.IsZero() {
		return nil, fmt.Errorf("%w: version id and version time are mutually exclusive", ErrInvalidQuery)
	}

	if q.isLatest() {
		if h.Err != nil {
			return nil, h.Err
		}
		latest := h.Latest()
		if latest == nil {
			return nil, fmt.Errorf("%w: history is empty", ErrVersionNotFound)
		}
		return latest, nil
	}

	if q.VersionID != "" {
		for i := range h.Versions {
			if h.Versions[i].Entry.VersionID == q.VersionID {
				return &h.Versions[i], nil
			}
		}
		// The version might be past the point verification halted, so the
		// verification failure takes precedence over "not found".
		if h.Err != nil {
			return nil, h.Err
		}
		return nil, fmt.Errorf("%w: version %s", ErrVersionNotFound, q.VersionID)
	}

	var match *verify.Version
	for i := range h.Versions {
		if h.Versions[i].Entry.VersionTime.After(q.VersionTime) {
			break
		}
		match = &h.Versions[i]
	}
	if match == nil {
		if h.Err != nil {
			return nil, h.Err
		}
		return nil, fmt.Errorf("%w: no version at or before %s", ErrVersionNotFound,
			q.VersionTime.Format(time.RFC3339))
	}
	// A time past the verified prefix may belong to an unverifiable entry.
	if h.Err != nil && match == h.Latest() {
		return nil, h.Err
	}
	return match, nil
}
