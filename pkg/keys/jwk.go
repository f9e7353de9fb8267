package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v4"
)

// DecodeJWK parses a JSON Web Key document into a public key.
// Only the public part is accepted; logs never carry private material.
func DecodeJWK(raw []byte) (crypto.PublicKey, KeyType, error) {
	var jwk jose.JSONWebKey
	if err := jwk.UnmarshalJSON(raw); err != nil {
		return nil, "", fmt.Errorf("failed to parse JWK: %w", err)
	}
	if !jwk.IsPublic() {
		return nil, "", fmt.Errorf("JWK contains private key material")
	}

	switch k := jwk.Key.(type) {
	case ed25519.PublicKey:
		return k, TypeEd25519, nil
	case *ecdsa.PublicKey:
		if k.Curve != elliptic.P256() {
			return nil, "", fmt.Errorf("unsupported JWK curve %s", k.Curve.Params().Name)
		}
		return k, TypeP256, nil
	default:
		return nil, "", fmt.Errorf("unsupported JWK key type %T", jwk.Key)
	}
}

// Parse decodes an authorized update key in either supported form: a
// multikey string or an inline JWK object.
func Parse(key string) (crypto.PublicKey, KeyType, error) {
	if strings.HasPrefix(strings.TrimSpace(key), "{") {
		return DecodeJWK([]byte(key))
	}
	return DecodeMultikey(key)
}
