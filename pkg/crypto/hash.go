package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// MultihashSHA256 is the multicodec code for SHA2-256
const MultihashSHA256 = 0x12

// SHA256 computes SHA-256 hash of data
func SHA256(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}

// EncodeMultihash wraps a SHA-256 digest in a multihash header and encodes
// the result as base58btc, the form DID Logs use for entry hashes and SCIDs
func EncodeMultihash(digest []byte) string {
	buf := make([]byte, 0, len(digest)+2)
	buf = append(buf, MultihashSHA256, byte(len(digest)))
	buf = append(buf, digest...)
	return base58.Encode(buf)
}

// DecodeMultihash decodes a base58btc multihash string into its hash-function
// code and digest
func DecodeMultihash(encoded string) (code byte, digest []byte, err error) {
	raw, err := base58.Decode(encoded)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid base58 multihash: %w", err)
	}
	if len(raw) < 2 {
		return 0, nil, fmt.Errorf("multihash too short: %d bytes", len(raw))
	}
	code = raw[0]
	digest = raw[2:]
	if len(digest) != int(raw[1]) {
		return 0, nil, fmt.Errorf("multihash length mismatch: header says %d, got %d", raw[1], len(digest))
	}
	return code, digest, nil
}

// HashToMultihash computes SHA-256 over data and returns the base58btc multihash
func HashToMultihash(data []byte) string {
	return EncodeMultihash(SHA256(data))
}

// KeyHash hashes an update key string for pre-rotation commitment checks.
// The result must match a nextKeyHashes value published by an earlier entry.
func KeyHash(key string) string {
	return HashToMultihash([]byte(key))
}
