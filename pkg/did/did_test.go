package did

import (
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		scid   string
		domain string
		port   int
		path   string
	}{
		{"did:tdw:abc123:example.com:8080/path/to/resource", "abc123", "example.com", 8080, "path/to/resource"},
		{"did:tdw:abc123:example.com/path/to/resource", "abc123", "example.com", 0, "path/to/resource"},
		{"did:tdw:abc123:example.com", "abc123", "example.com", 0, ""},
		{"did:tdw:abc123:example.com:8080", "abc123", "example.com", 8080, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if d.SCID != tt.scid || d.Domain != tt.domain || d.Port != tt.port || d.Path != tt.path {
				t.Errorf("got %+v", d)
			}
			if d.String() != tt.input {
				t.Errorf("String() = %s, want %s", d.String(), tt.input)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{
		"did:web:example.com",
		"did:tdw:example.com",
		"did:tdw:abc123",
		"tdw:abc123:example.com",
		"did:tdw:abc123:example.com:notaport",
		"did:tdw:abc123::8080",
		"",
	}

	for _, input := range invalid {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidDID) {
			t.Errorf("Parse(%q) = %v, want ErrInvalidDID", input, err)
		}
	}
}

func TestParseRandomDomains(t *testing.T) {
	gofakeit.Seed(11)

	for i := 0; i < 20; i++ {
		domain := gofakeit.DomainName()
		scid := gofakeit.LetterN(28)
		input := fmt.Sprintf("did:tdw:%s:%s", scid, domain)

		d, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if d.SCID != scid || d.Domain != domain {
			t.Errorf("Parse(%q) = %+v", input, d)
		}
	}
}

func TestLogURL(t *testing.T) {
	tests := []struct {
		did      TdwDid
		expected string
	}{
		{TdwDid{SCID: "abc", Domain: "example.com", Port: 8080, Path: "path/to/resource"}, "https://example.com:8080/path/to/resource/did.jsonl"},
		{TdwDid{SCID: "abc", Domain: "example.com"}, "https://example.com/.well-known/did.jsonl"},
	}

	for _, tt := range tests {
		u, err := tt.did.LogURL()
		if err != nil {
			t.Fatalf("LogURL failed: %v", err)
		}
		if u.String() != tt.expected {
			t.Errorf("LogURL = %s, want %s", u, tt.expected)
		}
	}
}

func TestPathURL(t *testing.T) {
	tests := []struct {
		did      TdwDid
		path     string
		expected string
	}{
		{TdwDid{SCID: "abc", Domain: "example.com", Path: "users"}, "whois", "https://example.com/users/whois"},
		{TdwDid{SCID: "abc", Domain: "example.com"}, "whois", "https://example.com/whois"},
	}

	for _, tt := range tests {
		u, err := tt.did.PathURL(tt.path)
		if err != nil {
			t.Fatalf("PathURL failed: %v", err)
		}
		if u.String() != tt.expected {
			t.Errorf("PathURL = %s, want %s", u, tt.expected)
		}
	}
}

func TestParseDIDURL(t *testing.T) {
	tests := []struct {
		input string
		kind  DerefKind
		did   string
	}{
		{"did:tdw:abc:example.com", DerefDocument, "did:tdw:abc:example.com"},
		{"did:tdw:abc:example.com/whois", DerefWhois, "did:tdw:abc:example.com"},
		{"did:tdw:abc:example.com/users/whois", DerefWhois, "did:tdw:abc:example.com/users"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			target, err := ParseDIDURL(tt.input)
			if err != nil {
				t.Fatalf("ParseDIDURL failed: %v", err)
			}
			if target.Kind != tt.kind {
				t.Errorf("kind = %d, want %d", target.Kind, tt.kind)
			}
			if target.DID.String() != tt.did {
				t.Errorf("did = %s, want %s", target.DID, tt.did)
			}
		})
	}
}

func TestParseDIDURLUnsupported(t *testing.T) {
	unsupported := []string{
		"did:tdw:abc:example.com?versionId=1-x",
		"did:tdw:abc:example.com#key-1",
		"did:tdw:abc:example.com;service=files",
	}

	for _, input := range unsupported {
		if _, err := ParseDIDURL(input); !errors.Is(err, ErrUnsupportedDIDURLConstruct) {
			t.Errorf("ParseDIDURL(%q) = %v, want ErrUnsupportedDIDURLConstruct", input, err)
		}
	}
}

func TestParseDocument(t *testing.T) {
	raw := []byte(`{
		"@context": ["https://www.w3.org/ns/did/v1"],
		"id": "did:tdw:abc:example.com",
		"service": [{"id": "#files", "type": "Files", "serviceEndpoint": "https://example.com/files"}]
	}`)

	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if doc.ID != "did:tdw:abc:example.com" {
		t.Errorf("id = %s", doc.ID)
	}
	if svc := doc.FindService("Files"); svc == nil {
		t.Error("Files service not found")
	}
	if svc := doc.FindService("Missing"); svc != nil {
		t.Error("unexpected service match")
	}
}

func TestParseDocumentInvalid(t *testing.T) {
	for _, raw := range []string{`{"service": []}`, `[]`, `not json`} {
		if _, err := ParseDocument([]byte(raw)); err == nil {
			t.Errorf("ParseDocument(%q): expected error", raw)
		}
	}
}
