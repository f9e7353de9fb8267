// Package keys decodes the public key material a DID Log authorizes updates
// with: multikey strings (multibase + multicodec) and JSON Web Keys.
package keys

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"fmt"

	"github.com/multiformats/go-multibase"
)

// Multicodec varint prefixes for the supported public key types.
var (
	prefixEd25519 = []byte{0xed, 0x01}
	prefixP256    = []byte{0x80, 0x24}
)

// KeyType identifies the kind of public key carried by a multikey or JWK.
type KeyType string

const (
	// TypeEd25519 is an Ed25519 public key
	TypeEd25519 KeyType = "Ed25519"
	// TypeP256 is an ECDSA P-256 public key
	TypeP256 KeyType = "P-256"
)

// DecodeMultikey decodes a multibase-encoded, multicodec-prefixed public key
// string (e.g. "z6Mk..."), returning the key and its type.
func DecodeMultikey(key string) (crypto.PublicKey, KeyType, error) {
	enc, data, err := multibase.Decode(key)
	if err != nil {
		return nil, "", fmt.Errorf("invalid multikey encoding: %w", err)
	}
	if enc != multibase.Base58BTC {
		return nil, "", fmt.Errorf("multikey must be base58btc, got encoding %q", string(rune(enc)))
	}

	switch {
	case bytes.HasPrefix(data, prefixEd25519):
		raw := data[len(prefixEd25519):]
		if len(raw) != ed25519.PublicKeySize {
			return nil, "", fmt.Errorf("invalid Ed25519 public key size: %d", len(raw))
		}
		return ed25519.PublicKey(raw), TypeEd25519, nil

	case bytes.HasPrefix(data, prefixP256):
		raw := data[len(prefixP256):]
		x, y := elliptic.UnmarshalCompressed(elliptic.P256(), raw)
		if x == nil {
			return nil, "", fmt.Errorf("invalid compressed P-256 point (%d bytes)", len(raw))
		}
		return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, TypeP256, nil

	default:
		return nil, "", fmt.Errorf("unsupported multicodec prefix 0x%02x", data[0])
	}
}

// EncodeMultikey encodes a public key as a base58btc multikey string.
// The inverse of DecodeMultikey, used by tests and tooling that build logs.
func EncodeMultikey(pub crypto.PublicKey) (string, error) {
	var data []byte
	switch k := pub.(type) {
	case ed25519.PublicKey:
		data = append(append([]byte{}, prefixEd25519...), k...)
	case *ecdsa.PublicKey:
		if k.Curve != elliptic.P256() {
			return "", fmt.Errorf("unsupported curve %s", k.Curve.Params().Name)
		}
		compressed := elliptic.MarshalCompressed(k.Curve, k.X, k.Y)
		data = append(append([]byte{}, prefixP256...), compressed...)
	default:
		return "", fmt.Errorf("unsupported public key type %T", pub)
	}
	return multibase.Encode(multibase.Base58BTC, data)
}
