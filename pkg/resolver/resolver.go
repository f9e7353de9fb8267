// Package resolver fetches did:tdw DID Logs over the web, verifies them and
// assembles resolution results.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/yourusername/did-tdw/pkg/did"
	"github.com/yourusername/did-tdw/pkg/verify"
)

// ContentTypeVP is the media type of the whois verifiable presentation
const ContentTypeVP = "application/vp+json"

// Options configure a Resolver
type Options struct {
	// HTTPClient overrides the default HTTP client
	HTTPClient *http.Client
	// AllowInsecure downgrades fetches to plain HTTP, for local development
	AllowInsecure bool
	// Proof is the proof threshold policy applied to every log entry
	Proof verify.Policy
	// Now supplies the clock for future-timestamp checks; nil means time.Now
	Now func() time.Time
}

// Resolver resolves did:tdw identifiers and dereferences DID URLs
type Resolver struct {
	client *Client
	opts   Options
}

// New creates a Resolver
func New(opts Options) *Resolver {
	return &Resolver{
		client: NewClient(opts.HTTPClient, opts.AllowInsecure),
		opts:   opts,
	}
}

// Resolve fetches and verifies the DID Log for didStr and selects the
// version the query names. The returned Result is non-nil even on failure
// so callers always get resolution metadata; the error mirrors
// Result.ResolutionMetadata.Error.
func (r *Resolver) Resolve(ctx context.Context, didStr string, q Query) (*Result, error) {
	started := time.Now()

	d, err := did.Parse(didStr)
	if err != nil {
		return assembleError(err, started), err
	}

	_, res, err := r.resolveDID(ctx, d, q, started)
	return res, err
}

// Dereferenced is the outcome of DID URL dereferencing. Content holds the
// resource the URL names; for plain DIDs it equals Resolution.DIDDocument.
type Dereferenced struct {
	Content     json.RawMessage
	ContentType string
	Resolution  *Result
}

// Dereference resolves a DID URL: the bare DID yields the DID Document, a
// "/whois" suffix yields the verified whois presentation. Other DID URL
// constructs are rejected.
func (r *Resolver) Dereference(ctx context.Context, didURL string, q Query) (*Dereferenced, error) {
	started := time.Now()

	target, err := did.ParseDIDURL(didURL)
	if err != nil {
		return nil, err
	}

	h, res, err := r.resolveDID(ctx, target.DID, q, started)
	if err != nil {
		return nil, err
	}

	switch target.Kind {
	case did.DerefWhois:
		vp, err := r.client.FetchWhois(ctx, target.DID)
		if err != nil {
			return nil, err
		}
		// The presentation attests the identifier as it is now, so its
		// proof verifies against the latest verified key set even when the
		// query selected an older version. A rotated-out key must never
		// authenticate the whois resource.
		current := h.Latest().Params.UpdateKeys
		if err := verifyWhois(vp, current, r.opts.Proof); err != nil {
			return nil, err
		}
		return &Dereferenced{Content: vp, ContentType: ContentTypeVP, Resolution: res}, nil
	default:
		return &Dereferenced{Content: res.DIDDocument, ContentType: ContentTypeDIDJSON, Resolution: res}, nil
	}
}

func (r *Resolver) resolveDID(ctx context.Context, d *did.TdwDid, q Query, started time.Time) (*verify.History, *Result, error) {
	entries, err := r.client.FetchLog(ctx, d)
	if err != nil {
		return nil, assembleError(err, started), err
	}
	retrieved := time.Now()

	h := verify.VerifyLog(d.SCID, entries, verify.Options{Proof: r.opts.Proof, Now: r.opts.Now})

	version, err := Select(h, q)
	if err != nil {
		return nil, assembleError(err, started), err
	}

	// The log names the identifier's own document; a document claiming a
	// different id would let one DID impersonate another.
	if doc, err := did.ParseDocument(version.Document); err == nil && doc.ID != d.String() {
		err = fmt.Errorf("%w: document id %s does not match %s", verify.ErrIdentifierMismatch, doc.ID, d.String())
		return nil, assembleError(err, started), err
	}

	return h, assemble(h, version, retrieved, started), nil
}
