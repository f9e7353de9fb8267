// Package did parses did:tdw identifiers and DID URLs and defines the
// DID Document model returned to callers.
package did

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MethodPrefix is the prefix for all did:tdw DIDs
const MethodPrefix = "did:tdw:"

// Errors raised while parsing identifiers.
var (
	// ErrInvalidDID marks a string that is not a well-formed did:tdw identifier
	ErrInvalidDID = errors.New("did: invalid did:tdw identifier")
	// ErrUnsupportedDIDURLConstruct marks a DID URL suffix the resolver
	// does not understand (rather than silently ignoring it)
	ErrUnsupportedDIDURLConstruct = errors.New("did: unsupported DID URL construct")
)

// TdwDid is a parsed did:tdw identifier:
// did:tdw:<scid>:<domain>[:port][/path...]
type TdwDid struct {
	// SCID is the self-certifying identifier fragment
	SCID string
	// Domain hosts the DID Log
	Domain string
	// Port is optional (0 means default)
	Port int
	// Path is the optional hosting path, without leading slash
	Path string
}

// Parse validates and splits a did:tdw string
func Parse(did string) (*TdwDid, error) {
	if !strings.HasPrefix(did, MethodPrefix) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDID, did)
	}

	rest := did[len(MethodPrefix):]
	scid, locator, found := strings.Cut(rest, ":")
	if !found || scid == "" || locator == "" {
		return nil, fmt.Errorf("%w: missing SCID or domain: %s", ErrInvalidDID, did)
	}

	hostPart, path, _ := strings.Cut(locator, "/")

	domain := hostPart
	port := 0
	if host, portStr, found := strings.Cut(hostPart, ":"); found {
		p, err := strconv.Atoi(portStr)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("%w: invalid port %q", ErrInvalidDID, portStr)
		}
		domain, port = host, p
	}
	if domain == "" {
		return nil, fmt.Errorf("%w: empty domain: %s", ErrInvalidDID, did)
	}

	return &TdwDid{SCID: scid, Domain: domain, Port: port, Path: path}, nil
}

// String reassembles the DID
func (d *TdwDid) String() string {
	var b strings.Builder
	b.WriteString(MethodPrefix)
	b.WriteString(d.SCID)
	b.WriteByte(':')
	b.WriteString(d.Domain)
	if d.Port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(d.Port))
	}
	if d.Path != "" {
		b.WriteByte('/')
		b.WriteString(d.Path)
	}
	return b.String()
}

// LogURL is the HTTPS location of the DID Log. DIDs without a path use the
// well-known location.
func (d *TdwDid) LogURL() (*url.URL, error) {
	raw := "https://" + d.hostPort()
	if d.Path != "" {
		raw += "/" + d.Path
	} else {
		raw += "/.well-known"
	}
	raw += "/did.jsonl"
	return url.Parse(raw)
}

// PathURL is the HTTPS location of a sibling resource (e.g. "whois")
func (d *TdwDid) PathURL(path string) (*url.URL, error) {
	raw := "https://" + d.hostPort()
	if d.Path != "" {
		raw += "/" + d.Path
	}
	raw += "/" + path
	return url.Parse(raw)
}

func (d *TdwDid) hostPort() string {
	if d.Port != 0 {
		return d.Domain + ":" + strconv.Itoa(d.Port)
	}
	return d.Domain
}
