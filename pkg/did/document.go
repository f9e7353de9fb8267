package did

import (
	"encoding/json"
	"fmt"
)

// Document represents a DID Document
type Document struct {
	Context            []string             `json:"@context"`
	ID                 string               `json:"id"`
	AlsoKnownAs        []string             `json:"alsoKnownAs,omitempty"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication     []string             `json:"authentication,omitempty"`
	AssertionMethod    []string             `json:"assertionMethod,omitempty"`
	Service            []Service            `json:"service,omitempty"`
	Deactivated        *bool                `json:"deactivated,omitempty"`
}

// VerificationMethod represents a verification method in a DID document
type VerificationMethod struct {
	ID                 string         `json:"id"`
	Type               string         `json:"type"`
	Controller         string         `json:"controller,omitempty"`
	PublicKeyMultibase string         `json:"publicKeyMultibase,omitempty"`
	PublicKeyJwk       map[string]any `json:"publicKeyJwk,omitempty"`
}

// Service represents a service endpoint in a DID document
type Service struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	ServiceEndpoint json.RawMessage `json:"serviceEndpoint"`
}

// ParseDocument decodes and sanity-checks a resolved document state
func ParseDocument(raw json.RawMessage) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid DID document: %w", err)
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("DID document has no id")
	}
	return &doc, nil
}

// FindService returns the service with the given type, if present
func (d *Document) FindService(serviceType string) *Service {
	for i := range d.Service {
		if d.Service[i].Type == serviceType {
			return &d.Service[i]
		}
	}
	return nil
}
