// Package didlog models the on-the-wire DID Log: newline-delimited JSON
// entries, each carrying a versionId, a timestamp, partial method parameters,
// a document state and one or more Data Integrity proofs. Entries are
// immutable once parsed; all verification lives in pkg/verify.
package didlog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors raised while parsing log records.
var (
	// ErrMalformedEntry marks input that cannot be parsed as a log entry
	ErrMalformedEntry = errors.New("didlog: malformed entry")
	// ErrPatchApplicationFailure marks a patch state that cannot be applied
	// to the previous document
	ErrPatchApplicationFailure = errors.New("didlog: patch application failure")
)

// Entry is one record of a DID Log
type Entry struct {
	// VersionID is "<ordinal>-<entryHash>"
	VersionID string `json:"versionId"`
	// VersionTime is when this version took effect
	VersionTime Timestamp `json:"versionTime"`
	// Parameters carries the method parameters that changed at this version.
	// Only the genesis entry is required to be complete.
	Parameters Parameters `json:"parameters"`
	// State is the document at this version, full or as a patch
	State DocState `json:"state"`
	// Proof authorizes the transition to this version
	Proof []Proof `json:"proof,omitempty"`
}

// Parameters are the evolving method parameters. All fields are optional on
// the wire; absent fields inherit from the prior entry.
type Parameters struct {
	Method        *string  `json:"method,omitempty"`
	SCID          *string  `json:"scid,omitempty"`
	UpdateKeys    []string `json:"updateKeys,omitempty"`
	NextKeyHashes []string `json:"nextKeyHashes,omitempty"`
	Prerotation   *bool    `json:"prerotation,omitempty"`
	Portable      *bool    `json:"portable,omitempty"`
	Deactivated   *bool    `json:"deactivated,omitempty"`
	TTL           *uint64  `json:"ttl,omitempty"`
}

// Proof is a Data Integrity proof embedded in a log entry
type Proof struct {
	Type               string     `json:"type"`
	Cryptosuite        string     `json:"cryptosuite,omitempty"`
	Created            *Timestamp `json:"created,omitempty"`
	VerificationMethod string     `json:"verificationMethod"`
	ProofPurpose       string     `json:"proofPurpose,omitempty"`
	Challenge          string     `json:"challenge,omitempty"`
	ProofValue         string     `json:"proofValue,omitempty"`
}

// ParseVersionID splits a "<ordinal>-<hash>" version identifier
func ParseVersionID(versionID string) (ordinal uint64, hash string, err error) {
	num, hash, found := strings.Cut(versionID, "-")
	if !found || num == "" || hash == "" {
		return 0, "", fmt.Errorf("%w: invalid versionId %q", ErrMalformedEntry, versionID)
	}
	ordinal, err = strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: invalid version number in %q", ErrMalformedEntry, versionID)
	}
	if ordinal == 0 {
		return 0, "", fmt.Errorf("%w: version numbers start at 1, got %q", ErrMalformedEntry, versionID)
	}
	return ordinal, hash, nil
}
