// Package signing verifies Data Integrity signatures over canonicalized
// payloads. Resolution never signs anything; only verifiers live here.
package signing

import (
	"crypto"
	"fmt"

	"github.com/yourusername/did-tdw/pkg/keys"
)

// Cryptosuite identifies a supported Data Integrity cryptosuite
type Cryptosuite string

const (
	// SuiteEdDSAJCS2022 is EdDSA over JCS-canonicalized payloads
	SuiteEdDSAJCS2022 Cryptosuite = "eddsa-jcs-2022"
	// SuiteECDSAJCS2019 is ECDSA P-256/SHA-256 over JCS-canonicalized payloads
	SuiteECDSAJCS2019 Cryptosuite = "ecdsa-jcs-2019"
)

// Verifier verifies raw Data Integrity signatures
type Verifier interface {
	// Verify checks signature over message (the cryptosuite hash data)
	Verify(message, signature []byte) error
	// Suite returns the cryptosuite this verifier implements
	Suite() Cryptosuite
}

// NewVerifier creates a verifier for the given cryptosuite and public key.
// The key type must match the suite.
func NewVerifier(suite Cryptosuite, publicKey crypto.PublicKey) (Verifier, error) {
	switch suite {
	case SuiteEdDSAJCS2022:
		return NewEdDSAVerifier(publicKey)
	case SuiteECDSAJCS2019:
		return NewES256Verifier(publicKey)
	default:
		return nil, fmt.Errorf("unsupported cryptosuite: %s", suite)
	}
}

// SuiteForKeyType returns the cryptosuite a key type verifies under
func SuiteForKeyType(kt keys.KeyType) (Cryptosuite, error) {
	switch kt {
	case keys.TypeEd25519:
		return SuiteEdDSAJCS2022, nil
	case keys.TypeP256:
		return SuiteECDSAJCS2019, nil
	default:
		return "", fmt.Errorf("no cryptosuite for key type %s", kt)
	}
}
