package resolver

import (
	"encoding/json"
	"fmt"

	"github.com/yourusername/did-tdw/pkg/didlog"
	"github.com/yourusername/did-tdw/pkg/verify"
)

// verifyWhois checks the Data Integrity proof on a whois verifiable
// presentation against the DID's current update keys. The presentation is
// returned as-is; callers that want the VP contents parse it themselves.
func verifyWhois(raw []byte, authorized []string, policy verify.Policy) error {
	var vp map[string]json.RawMessage
	if err := json.Unmarshal(raw, &vp); err != nil {
		return fmt.Errorf("%w: whois presentation: %v", didlog.ErrMalformedEntry, err)
	}

	proofRaw, ok := vp["proof"]
	if !ok {
		return fmt.Errorf("%w: whois presentation has no proof", verify.ErrInvalidProof)
	}
	delete(vp, "proof")

	proofs, err := decodeProofs(proofRaw)
	if err != nil {
		return err
	}

	return verify.VerifyProofSet(vp, proofs, authorized, policy)
}

// decodeProofs accepts both a single proof object and an array of proofs
func decodeProofs(raw json.RawMessage) ([]didlog.Proof, error) {
	var many []didlog.Proof
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	var one didlog.Proof
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("%w: whois proof: %v", didlog.ErrMalformedEntry, err)
	}
	return []didlog.Proof{one}, nil
}
