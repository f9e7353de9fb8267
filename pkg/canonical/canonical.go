// Package canonical provides RFC 8785 (JSON Canonicalization Scheme)
// serialization. DID Log entry hashes and Data Integrity proofs are both
// computed over the canonical form, so hashing and signature checks share
// this single code path.
package canonical

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Marshal returns the RFC 8785 canonical JSON form of v.
// Values that cannot be represented as canonical JSON (channels, NaN and
// friends) are rejected.
func Marshal(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonical: marshal: %w", err)
	}
	return Transform(raw)
}

// Transform canonicalizes an already-encoded JSON document.
func Transform(raw []byte) ([]byte, error) {
	out, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonical: transform: %w", err)
	}
	return out, nil
}
