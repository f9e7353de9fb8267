// Package verify implements the DID Log verification engine: hash chain,
// SCID derivation, parameter evolution with pre-rotation, proof checking
// and the entry-by-entry fold that ties them together.
package verify

import (
	"fmt"

	"github.com/yourusername/did-tdw/pkg/canonical"
	"github.com/yourusername/did-tdw/pkg/crypto"
	"github.com/yourusername/did-tdw/pkg/didlog"
)

// EntryHash computes the hash component of an entry's versionId. The hash
// covers the entry with its proof removed and its versionId replaced by the
// predecessor's versionId (the SCID for the genesis entry).
func EntryHash(entry *didlog.Entry, prevVersionID string) (string, error) {
	hashable := *entry
	hashable.VersionID = prevVersionID
	hashable.Proof = nil

	b, err := canonical.Marshal(&hashable)
	if err != nil {
		return "", fmt.Errorf("%w: %v", didlog.ErrMalformedEntry, err)
	}
	return crypto.HashToMultihash(b), nil
}

// VerifyLink checks one chain link: the entry's version number must be
// expectedOrdinal and its embedded hash must equal the hash recomputed over
// the predecessor's versionId.
func VerifyLink(entry *didlog.Entry, expectedOrdinal uint64, prevVersionID string) error {
	ordinal, embedded, err := didlog.ParseVersionID(entry.VersionID)
	if err != nil {
		return err
	}
	if ordinal != expectedOrdinal {
		return fmt.Errorf("%w: entry %s: expected version %d", ErrOrdinalGap, entry.VersionID, expectedOrdinal)
	}

	code, _, err := crypto.DecodeMultihash(embedded)
	if err != nil {
		return fmt.Errorf("%w: entry %s: %v", didlog.ErrMalformedEntry, entry.VersionID, err)
	}
	if code != crypto.MultihashSHA256 {
		return fmt.Errorf("%w: entry %s uses multihash code 0x%02x", ErrUnsupportedHashAlgorithm, entry.VersionID, code)
	}

	computed, err := EntryHash(entry, prevVersionID)
	if err != nil {
		return err
	}
	if computed != embedded {
		return fmt.Errorf("%w: entry %s: computed %s", ErrHashMismatch, entry.VersionID, computed)
	}
	return nil
}
