package resolver

import (
	"encoding/json"
	"time"

	"github.com/yourusername/did-tdw/pkg/verify"
)

// ContentTypeDIDJSON is the media type of resolved DID Documents
const ContentTypeDIDJSON = "application/did+json"

// DocumentMetadata describes the resolved version
type DocumentMetadata struct {
	Created     string `json:"created,omitempty"`
	Updated     string `json:"updated,omitempty"`
	VersionID   string `json:"versionId,omitempty"`
	NextUpdate  string `json:"nextUpdate,omitempty"`
	Deactivated bool   `json:"deactivated,omitempty"`
}

// ResolutionMetadata describes the resolution process itself
type ResolutionMetadata struct {
	ContentType string   `json:"contentType,omitempty"`
	Retrieved   string   `json:"retrieved,omitempty"`
	DurationMS  int64    `json:"durationMs"`
	Versions    int      `json:"versions,omitempty"`
	Error       string   `json:"error,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Result is a full resolution result. DIDDocument carries the exact bytes
// the log resolves to, so resolving twice yields byte-identical documents.
type Result struct {
	DIDDocument        json.RawMessage    `json:"didDocument,omitempty"`
	DocumentMetadata   DocumentMetadata   `json:"didDocumentMetadata"`
	ResolutionMetadata ResolutionMetadata `json:"didResolutionMetadata"`
}

// assemble builds a successful Result from a selected version
func assemble(h *verify.History, version *verify.Version, retrieved time.Time, started time.Time) *Result {
	res := &Result{
		DIDDocument: version.Document,
		DocumentMetadata: DocumentMetadata{
			Created:     h.Versions[0].Entry.VersionTime.UTC().Format(time.RFC3339),
			Updated:     version.Entry.VersionTime.UTC().Format(time.RFC3339),
			VersionID:   version.Entry.VersionID,
			Deactivated: version.Params.Deactivated,
		},
		ResolutionMetadata: ResolutionMetadata{
			ContentType: ContentTypeDIDJSON,
			Retrieved:   retrieved.UTC().Format(time.RFC3339),
			DurationMS:  time.Since(started).Milliseconds(),
			Versions:    len(h.Versions),
		},
	}

	if ttl := version.Params.TTL; ttl > 0 {
		next := version.Entry.VersionTime.Add(time.Duration(ttl) * time.Second)
		res.DocumentMetadata.NextUpdate = next.UTC().Format(time.RFC3339)
	}

	// A version served out of a partially verified log carries the
	// verification failure as a warning.
	if h.Err != nil {
		res.ResolutionMetadata.Warnings = append(res.ResolutionMetadata.Warnings,
			"log verification halted: "+h.Err.Error())
	}

	return res
}

// assembleError builds a failed Result that still reports process metadata
func assembleError(err error, started time.Time) *Result {
	return &Result{
		ResolutionMetadata: ResolutionMetadata{
			DurationMS: time.Since(started).Milliseconds(),
			Error:      err.Error(),
		},
	}
}
