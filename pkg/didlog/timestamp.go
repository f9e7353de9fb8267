package didlog

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is a UTC, second-precision RFC 3339 instant — the wire form for
// versionTime and proof creation times. Keeping a fixed precision makes the
// canonical form stable across marshal/unmarshal round trips.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to wire precision
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Second)}
}

// MarshalJSON encodes the timestamp as an RFC 3339 string
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// UnmarshalJSON decodes an RFC 3339 string
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: versionTime must be a string: %v", ErrMalformedEntry, err)
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("%w: invalid timestamp %q: %v", ErrMalformedEntry, s, err)
	}
	t.Time = parsed.UTC().Truncate(time.Second)
	return nil
}
