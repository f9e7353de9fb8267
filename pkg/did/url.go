package did

import (
	"fmt"
	"strings"
)

// DerefKind identifies what a DID URL asks for
type DerefKind int

const (
	// DerefDocument requests the plain DID Document
	DerefDocument DerefKind = iota
	// DerefWhois requests the whois verifiable presentation
	DerefWhois
)

// DerefTarget is a parsed DID URL: the base identifier plus the resource it
// dereferences to. New suffix kinds become new DerefKind values.
type DerefTarget struct {
	DID  *TdwDid
	Kind DerefKind
}

// ParseDIDURL splits a DID URL into its base DID and dereference target.
// Query strings, fragments and unrecognized path suffixes are rejected with
// ErrUnsupportedDIDURLConstruct.
func ParseDIDURL(didURL string) (*DerefTarget, error) {
	if i := strings.IndexAny(didURL, "?#;"); i >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDIDURLConstruct, didURL[i:])
	}

	kind := DerefDocument
	base := didURL
	if rest, found := strings.CutSuffix(didURL, "/whois"); found {
		kind = DerefWhois
		base = rest
	}

	d, err := Parse(base)
	if err != nil {
		return nil, err
	}
	return &DerefTarget{DID: d, Kind: kind}, nil
}
