package verify

import (
	"fmt"
	"slices"

	"github.com/yourusername/did-tdw/pkg/crypto"
	"github.com/yourusername/did-tdw/pkg/didlog"
)

// supportedMethods are the method versions this resolver implements. The
// method string also pins the hash algorithm and proof suites in force.
var supportedMethods = map[string]bool{
	"did:tdw:0.3": true,
	"did:tdw:0.4": true,
}

// State is the accumulated parameter state after folding entries
// left-to-right. Fields absent from an entry inherit the prior value.
type State struct {
	Method        string
	SCID          string
	UpdateKeys    []string
	NextKeyHashes []string
	Prerotation   bool
	Portable      bool
	Deactivated   bool
	// TTL is the declared validity window in seconds; 0 means none
	TTL uint64
}

// Apply folds one entry's partial parameters into the prior state and
// returns the new state. genesis marks the first entry, which must declare
// the full parameter set and is exempt from pre-rotation checks.
func (s State) Apply(p didlog.Parameters, genesis bool) (State, error) {
	next := s
	next.UpdateKeys = slices.Clone(s.UpdateKeys)
	next.NextKeyHashes = slices.Clone(s.NextKeyHashes)

	if genesis {
		if p.Method == nil || p.SCID == nil || len(p.UpdateKeys) == 0 {
			return s, fmt.Errorf("%w: genesis entry must declare method, scid and updateKeys", didlog.ErrMalformedEntry)
		}
		if !supportedMethods[*p.Method] {
			return s, fmt.Errorf("%w: method %q", ErrUnsupportedHashAlgorithm, *p.Method)
		}
		next.Method = *p.Method
		next.SCID = *p.SCID
	} else {
		// The method pins hash and proof algorithms; changing it mid-log
		// would let an attacker pick a weaker scheme.
		if p.Method != nil && *p.Method != s.Method {
			return s, fmt.Errorf("%w: method cannot change from %q to %q", ErrUnsupportedParameterChange, s.Method, *p.Method)
		}
		if p.SCID != nil && *p.SCID != s.SCID {
			return s, fmt.Errorf("%w: scid cannot change", ErrUnsupportedParameterChange)
		}
	}

	if p.Prerotation != nil {
		if s.Prerotation && !*p.Prerotation {
			return s, fmt.Errorf("%w: prerotation cannot be disabled", ErrUnsupportedParameterChange)
		}
		next.Prerotation = *p.Prerotation
	}

	if p.Portable != nil {
		if !genesis {
			return s, fmt.Errorf("%w: portability can only be set at creation", ErrUnsupportedParameterChange)
		}
		next.Portable = *p.Portable
	}

	if len(p.UpdateKeys) > 0 {
		// Pre-rotation: a new key set must have been committed to by the
		// previous entry's nextKeyHashes before it may take effect.
		if s.Prerotation && !genesis {
			for _, key := range p.UpdateKeys {
				if !slices.Contains(s.NextKeyHashes, crypto.KeyHash(key)) {
					return s, fmt.Errorf("%w: update key %s was not pre-rotated", ErrUnauthorizedSigner, key)
				}
			}
			if len(p.NextKeyHashes) == 0 {
				return s, fmt.Errorf("%w: key rotation must publish new nextKeyHashes", ErrUnsupportedParameterChange)
			}
		}
		next.UpdateKeys = slices.Clone(p.UpdateKeys)
	}

	if len(p.NextKeyHashes) > 0 {
		next.NextKeyHashes = slices.Clone(p.NextKeyHashes)
	}

	if p.Deactivated != nil {
		if s.Deactivated && !*p.Deactivated {
			return s, fmt.Errorf("%w: deactivation cannot be reversed", ErrUnsupportedParameterChange)
		}
		next.Deactivated = *p.Deactivated
	}

	if p.TTL != nil {
		next.TTL = *p.TTL
	}

	if next.Prerotation && len(next.NextKeyHashes) == 0 {
		return s, fmt.Errorf("%w: prerotation requires nextKeyHashes", ErrUnsupportedParameterChange)
	}

	return next, nil
}
