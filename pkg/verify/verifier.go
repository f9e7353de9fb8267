package verify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yourusername/did-tdw/pkg/did"
	"github.com/yourusername/did-tdw/pkg/didlog"
)

// Options configure log verification
type Options struct {
	// Proof is the proof threshold policy
	Proof Policy
	// Now supplies the clock for future-timestamp checks; nil means time.Now
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Version is one verified log entry together with its fully-resolved
// document and the parameter state as of that version
type Version struct {
	Entry    didlog.Entry
	Document json.RawMessage
	Params   State
}

// History is the verified prefix of a DID Log. When Err is non-nil,
// verification halted at entry len(Versions)+1 and only the versions before
// it are trustworthy; the failure must still be surfaced to the caller.
type History struct {
	Versions []Version
	Err      error
}

// Latest returns the most recent verified version, or nil for an empty history
func (h *History) Latest() *Version {
	if len(h.Versions) == 0 {
		return nil
	}
	return &h.Versions[len(h.Versions)-1]
}

// VerifyLog folds log entries in order, checking for each one the hash-chain
// link, the SCID binding (genesis only), the parameter transition and the
// proofs against the pre-transition key set. Processing halts at the first
// failure; the verified prefix is returned either way.
//
// Verification is a pure sequential computation: each entry's authorized key
// set depends on the previous entry's outcome, so entries are never checked
// in parallel.
func VerifyLog(scid string, entries []didlog.Entry, opts Options) *History {
	h := &History{}
	if len(entries) == 0 {
		h.Err = fmt.Errorf("%w: log has no entries", didlog.ErrMalformedEntry)
		return h
	}

	var state State
	var prevDoc json.RawMessage
	now := opts.now()

	for i := range entries {
		entry := entries[i]
		genesis := i == 0

		prevVersionID := scid
		var prevTime time.Time
		if !genesis {
			prevVersionID = entries[i-1].VersionID
			prevTime = entries[i-1].VersionTime.Time
		}

		// The SCID binding is checked before the genesis link so that a
		// self-consistent log for a different identifier fails as an
		// identifier mismatch, not as chain corruption.
		if genesis {
			if entry.Parameters.SCID == nil || *entry.Parameters.SCID != scid {
				h.Err = fmt.Errorf("%w: genesis entry does not declare scid %s", ErrIdentifierMismatch, scid)
				return h
			}
			if err := VerifySCID(scid, &entry); err != nil {
				h.Err = err
				return h
			}
		}

		if err := VerifyLink(&entry, uint64(i+1), prevVersionID); err != nil {
			h.Err = err
			return h
		}

		if !genesis && !entry.VersionTime.After(prevTime) {
			h.Err = fmt.Errorf("%w: entry %s: %s is not after %s", ErrOutOfOrderTimestamp,
				entry.VersionID, entry.VersionTime.Format(time.RFC3339), prevTime.Format(time.RFC3339))
			return h
		}
		if entry.VersionTime.After(now) {
			h.Err = fmt.Errorf("%w: entry %s claims a future time %s", ErrOutOfOrderTimestamp,
				entry.VersionID, entry.VersionTime.Format(time.RFC3339))
			return h
		}

		// A deactivated DID is terminated; nothing may follow.
		if state.Deactivated {
			h.Err = fmt.Errorf("%w: entry %s follows deactivation", ErrUnsupportedParameterChange, entry.VersionID)
			return h
		}

		// Proofs authorize the transition, so they verify against the key
		// set in force before this entry. The genesis entry is
		// self-authorizing; the SCID check above keeps that sound.
		preFoldKeys := state.UpdateKeys
		if genesis {
			preFoldKeys = entry.Parameters.UpdateKeys
		}

		newState, err := state.Apply(entry.Parameters, genesis)
		if err != nil {
			h.Err = err
			return h
		}

		if err := VerifyEntryProofs(&entry, preFoldKeys, opts.Proof); err != nil {
			h.Err = err
			return h
		}

		doc, err := entry.State.Resolve(prevDoc)
		if err != nil {
			h.Err = err
			return h
		}
		if _, err := did.ParseDocument(doc); err != nil {
			h.Err = fmt.Errorf("%w: entry %s: %v", didlog.ErrMalformedEntry, entry.VersionID, err)
			return h
		}

		state = newState
		prevDoc = doc
		h.Versions = append(h.Versions, Version{
			Entry:    entry,
			Document: doc,
			Params:   state,
		})
	}

	return h
}
