package verify

import (
	"bytes"
	"fmt"

	"github.com/yourusername/did-tdw/pkg/canonical"
	"github.com/yourusername/did-tdw/pkg/crypto"
	"github.com/yourusername/did-tdw/pkg/didlog"
)

// SCIDPlaceholder stands in for the SCID when deriving it from the genesis
// entry, since the SCID cannot appear in the content it is derived from.
const SCIDPlaceholder = "{SCID}"

// DeriveSCID recomputes the self-certifying identifier from a genesis entry.
// Every occurrence of scid in the canonical form (versionId, parameters.scid,
// the document id, key controller references) is replaced by the placeholder
// before hashing.
func DeriveSCID(genesis *didlog.Entry, scid string) (string, error) {
	if scid == "" {
		return "", fmt.Errorf("%w: empty SCID", ErrIdentifierMismatch)
	}

	hashable := *genesis
	hashable.VersionID = SCIDPlaceholder
	hashable.Proof = nil

	b, err := canonical.Marshal(&hashable)
	if err != nil {
		return "", fmt.Errorf("%w: %v", didlog.ErrMalformedEntry, err)
	}
	b = bytes.ReplaceAll(b, []byte(scid), []byte(SCIDPlaceholder))

	return crypto.HashToMultihash(b), nil
}

// VerifySCID checks that the SCID embedded in the DID string is the one the
// genesis entry derives to. This binds the identifier to the genesis content:
// a different genesis served for the same DID cannot pass.
func VerifySCID(scid string, genesis *didlog.Entry) error {
	derived, err := DeriveSCID(genesis, scid)
	if err != nil {
		return err
	}
	if derived != scid {
		return fmt.Errorf("%w: derived %s, identifier carries %s", ErrIdentifierMismatch, derived, scid)
	}
	return nil
}
