package didlog

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// DocState is the document state carried by an entry: either the full
// document or an RFC 6902 patch against the previous version. The raw wire
// bytes are preserved so hashing stays faithful to what was served.
type DocState struct {
	raw json.RawMessage
}

// NewFullState wraps a full document as a DocState
func NewFullState(doc json.RawMessage) DocState {
	return DocState{raw: doc}
}

// NewPatchState wraps an RFC 6902 patch as a DocState. The patch bytes must
// be valid JSON; whether it applies is checked at Resolve time.
func NewPatchState(patch json.RawMessage) (DocState, error) {
	raw, err := json.Marshal(map[string]json.RawMessage{"patch": patch})
	if err != nil {
		return DocState{}, fmt.Errorf("%w: patch is not valid JSON: %v", ErrMalformedEntry, err)
	}
	return DocState{raw: raw}, nil
}

// MarshalJSON returns the state exactly as it appeared on the wire
func (s DocState) MarshalJSON() ([]byte, error) {
	if s.raw == nil {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// UnmarshalJSON keeps the raw bytes for later hashing and resolution
func (s *DocState) UnmarshalJSON(data []byte) error {
	s.raw = append(json.RawMessage(nil), data...)
	return nil
}

// stateWrapper matches the compact forms {"value": ...} and {"patch": [...]}
type stateWrapper struct {
	Value json.RawMessage `json:"value,omitempty"`
	Patch json.RawMessage `json:"patch,omitempty"`
}

// IsPatch reports whether this state is a patch against the previous version
func (s DocState) IsPatch() bool {
	var w stateWrapper
	if err := json.Unmarshal(s.raw, &w); err != nil {
		return false
	}
	return len(w.Patch) > 0
}

// Resolve produces the document for this version. Full states are returned
// as-is; patch states are applied to prev.
func (s DocState) Resolve(prev json.RawMessage) (json.RawMessage, error) {
	if len(s.raw) == 0 || bytes.Equal(s.raw, []byte("null")) {
		return nil, fmt.Errorf("%w: entry has no document state", ErrMalformedEntry)
	}

	var w stateWrapper
	if err := json.Unmarshal(s.raw, &w); err != nil {
		return nil, fmt.Errorf("%w: state is not a JSON object: %v", ErrMalformedEntry, err)
	}

	switch {
	case len(w.Patch) > 0:
		if len(prev) == 0 {
			return nil, fmt.Errorf("%w: patch state with no previous document", ErrPatchApplicationFailure)
		}
		patch, err := jsonpatch.DecodePatch(w.Patch)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPatchApplicationFailure, err)
		}
		doc, err := patch.Apply(prev)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPatchApplicationFailure, err)
		}
		return doc, nil

	case len(w.Value) > 0:
		return w.Value, nil

	default:
		// A plain object is the full document itself
		return s.raw, nil
	}
}
