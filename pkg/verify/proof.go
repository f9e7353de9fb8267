package verify

import (
	"fmt"
	"slices"
	"strings"

	"github.com/multiformats/go-multibase"

	"github.com/yourusername/did-tdw/pkg/canonical"
	"github.com/yourusername/did-tdw/pkg/crypto"
	"github.com/yourusername/did-tdw/pkg/didlog"
	"github.com/yourusername/did-tdw/pkg/keys"
	"github.com/yourusername/did-tdw/pkg/signing"
)

// proofTypeDataIntegrity is the only proof type the method admits
const proofTypeDataIntegrity = "DataIntegrityProof"

// Policy controls how many valid proofs an entry must carry.
// The zero value requires one valid proof from any authorized key.
type Policy struct {
	// MinProofs is the number of distinct authorized keys that must have
	// produced a valid proof. Values below 1 are treated as 1.
	MinProofs int
}

func (p Policy) required() int {
	if p.MinProofs < 1 {
		return 1
	}
	return p.MinProofs
}

// SigningInput builds the Data Integrity hash data for a payload and a proof:
// sha256(jcs(proof options)) || sha256(jcs(payload)). The proof options are
// the proof with its proofValue removed; the payload must not contain the
// proof itself.
func SigningInput(payload interface{}, proof didlog.Proof) ([]byte, error) {
	options := proof
	options.ProofValue = ""

	optBytes, err := canonical.Marshal(&options)
	if err != nil {
		return nil, fmt.Errorf("%w: proof options: %v", didlog.ErrMalformedEntry, err)
	}
	payloadBytes, err := canonical.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: proof payload: %v", didlog.ErrMalformedEntry, err)
	}

	input := make([]byte, 0, 64)
	input = append(input, crypto.SHA256(optBytes)...)
	input = append(input, crypto.SHA256(payloadBytes)...)
	return input, nil
}

// VerifyEntryProofs checks an entry's proofs against the key set that was in
// force before the entry took effect (proofs authorize transitions; the
// genesis entry is checked against its own declared keys).
func VerifyEntryProofs(entry *didlog.Entry, authorized []string, policy Policy) error {
	payload := *entry
	payload.Proof = nil
	return VerifyProofSet(&payload, entry.Proof, authorized, policy)
}

// VerifyProofSet checks a set of Data Integrity proofs over an arbitrary
// proof-less payload. Used for log entries and for the whois presentation.
func VerifyProofSet(payload interface{}, proofs []didlog.Proof, authorized []string, policy Policy) error {
	if len(proofs) == 0 {
		return fmt.Errorf("%w: no proof present", ErrInvalidProof)
	}

	valid := 0
	sawUnauthorized := false
	var firstErr error

	seen := map[string]bool{}
	for i := range proofs {
		proof := proofs[i]

		key, err := proofKey(proof)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if !slices.Contains(authorized, key) {
			sawUnauthorized = true
			continue
		}

		if err := verifyOneProof(payload, proof, key); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if !seen[key] {
			seen[key] = true
			valid++
		}
	}

	if valid >= policy.required() {
		return nil
	}
	if firstErr != nil {
		return firstErr
	}
	if sawUnauthorized {
		return fmt.Errorf("%w: no proof from an authorized key", ErrUnauthorizedSigner)
	}
	return fmt.Errorf("%w: %d valid proofs, %d required", ErrInvalidProof, valid, policy.required())
}

// verifyOneProof checks a single proof's suite, signature encoding and
// signature validity.
func verifyOneProof(payload interface{}, proof didlog.Proof, key string) error {
	if proof.Type != proofTypeDataIntegrity {
		return fmt.Errorf("%w: proof type %q", ErrUnsupportedProofSuite, proof.Type)
	}

	pub, keyType, err := keys.Parse(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedProofSuite, err)
	}

	suite := signing.Cryptosuite(proof.Cryptosuite)
	if proof.Cryptosuite == "" {
		// Older logs omit the cryptosuite; infer it from the key type.
		suite, err = signing.SuiteForKeyType(keyType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedProofSuite, err)
		}
	}

	verifier, err := signing.NewVerifier(suite, pub)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedProofSuite, err)
	}

	if proof.ProofValue == "" {
		return fmt.Errorf("%w: empty proofValue", ErrInvalidProof)
	}
	enc, sig, err := multibase.Decode(proof.ProofValue)
	if err != nil || enc != multibase.Base58BTC {
		return fmt.Errorf("%w: proofValue must be base58btc multibase", ErrInvalidProof)
	}

	input, err := SigningInput(payload, proof)
	if err != nil {
		return err
	}
	if err := verifier.Verify(input, sig); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	return nil
}

// proofKey extracts the signing key from a proof's verificationMethod.
// Supported forms are "did:key:<multikey>#<multikey>" and a bare multikey.
func proofKey(proof didlog.Proof) (string, error) {
	vm := proof.VerificationMethod
	if vm == "" {
		return "", fmt.Errorf("%w: proof has no verificationMethod", ErrInvalidProof)
	}
	if i := strings.LastIndex(vm, "#"); i >= 0 {
		vm = vm[i+1:]
	}
	if vm == "" {
		return "", fmt.Errorf("%w: empty verification method fragment", ErrInvalidProof)
	}
	return vm, nil
}
