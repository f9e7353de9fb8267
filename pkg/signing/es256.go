package signing

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"fmt"
	"math/big"
)

// ES256Verifier implements Verifier for ecdsa-jcs-2019 (P-256, SHA-256)
type ES256Verifier struct {
	publicKey *ecdsa.PublicKey
}

// NewES256Verifier creates a new ES256 verifier from a P-256 public key
func NewES256Verifier(key crypto.PublicKey) (*ES256Verifier, error) {
	publicKey, ok := key.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("expected *ecdsa.PublicKey, got %T", key)
	}
	if publicKey.Curve != elliptic.P256() {
		return nil, fmt.Errorf("expected P-256 curve, got %s", publicKey.Curve.Params().Name)
	}
	return &ES256Verifier{publicKey: publicKey}, nil
}

// Verify checks a raw r||s ECDSA signature over SHA-256 of the hash data
func (v *ES256Verifier) Verify(message, signature []byte) error {
	if len(signature) != 64 {
		return fmt.Errorf("invalid ES256 signature size: %d", len(signature))
	}

	r := new(big.Int).SetBytes(signature[:32])
	s := new(big.Int).SetBytes(signature[32:])

	digest := sha256.Sum256(message)
	if !ecdsa.Verify(v.publicKey, digest[:], r, s) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

// Suite returns the cryptosuite
func (v *ES256Verifier) Suite() Cryptosuite {
	return SuiteECDSAJCS2019
}
