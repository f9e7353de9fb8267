package verify

import "errors"

// Verification failure taxonomy. The log verifier halts at the first entry
// that raises any of these; entries after the failure are never trusted.
var (
	// ErrHashMismatch means an entry's recomputed hash does not match the
	// hash embedded in its versionId (tampering or corruption)
	ErrHashMismatch = errors.New("verify: entry hash mismatch")
	// ErrOrdinalGap means version numbers are missing, duplicated or reordered
	ErrOrdinalGap = errors.New("verify: version number out of sequence")
	// ErrUnsupportedHashAlgorithm means the log declares or embeds a hash
	// algorithm this resolver does not implement
	ErrUnsupportedHashAlgorithm = errors.New("verify: unsupported hash algorithm")
	// ErrIdentifierMismatch means the SCID recomputed from the genesis entry
	// does not match the identifier being resolved; fatal and non-retryable
	ErrIdentifierMismatch = errors.New("verify: SCID does not match genesis entry")
	// ErrInvalidProof means an entry lacks the required number of valid proofs
	ErrInvalidProof = errors.New("verify: invalid proof")
	// ErrUnauthorizedSigner means a proof was made by a key outside the
	// authorized set (or a rotation violated a pre-rotation commitment)
	ErrUnauthorizedSigner = errors.New("verify: signer not authorized")
	// ErrUnsupportedProofSuite means a proof uses an unknown type or cryptosuite
	ErrUnsupportedProofSuite = errors.New("verify: unsupported proof suite")
	// ErrUnsupportedParameterChange means an entry attempts a parameter
	// transition the method forbids
	ErrUnsupportedParameterChange = errors.New("verify: unsupported parameter change")
	// ErrOutOfOrderTimestamp means version timestamps are not strictly
	// increasing, or an entry claims a time in the future
	ErrOutOfOrderTimestamp = errors.New("verify: version timestamp out of order")
)
