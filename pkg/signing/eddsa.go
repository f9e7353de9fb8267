package signing

import (
	"crypto"
	"crypto/ed25519"
	"fmt"
)

// EdDSAVerifier implements Verifier for eddsa-jcs-2022
type EdDSAVerifier struct {
	publicKey ed25519.PublicKey
}

// NewEdDSAVerifier creates a new EdDSA verifier from an Ed25519 public key
func NewEdDSAVerifier(key crypto.PublicKey) (*EdDSAVerifier, error) {
	publicKey, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("expected ed25519.PublicKey, got %T", key)
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid Ed25519 public key size: %d", len(publicKey))
	}
	return &EdDSAVerifier{publicKey: publicKey}, nil
}

// Verify checks an Ed25519 signature over the cryptosuite hash data
func (v *EdDSAVerifier) Verify(message, signature []byte) error {
	if len(signature) != ed25519.SignatureSize {
		return fmt.Errorf("invalid Ed25519 signature size: %d", len(signature))
	}
	if !ed25519.Verify(v.publicKey, message, signature) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

// Suite returns the cryptosuite
func (v *EdDSAVerifier) Suite() Cryptosuite {
	return SuiteEdDSAJCS2022
}
