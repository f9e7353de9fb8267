package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yourusername/did-tdw/pkg/did"
	"github.com/yourusername/did-tdw/pkg/didlog"
)

// maxWhoisBytes caps the whois presentation size
const maxWhoisBytes = 1 << 20

// Client fetches DID Logs and companion resources over HTTPS
type Client struct {
	http          *http.Client
	allowInsecure bool
}

// NewClient creates a fetch client. A nil httpClient gets a 30 second
// default timeout. allowInsecure downgrades URLs to plain HTTP, intended
// for local development hosts only.
func NewClient(httpClient *http.Client, allowInsecure bool) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{http: httpClient, allowInsecure: allowInsecure}
}

// FetchLog retrieves and parses the DID Log for an identifier
func (c *Client) FetchLog(ctx context.Context, d *did.TdwDid) ([]didlog.Entry, error) {
	u, err := d.LogURL()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", did.ErrInvalidDID, err)
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	entries, err := didlog.ParseLog(body)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchWhois retrieves the whois verifiable presentation published next to
// the DID Log. A missing presentation is ErrNotFound.
func (c *Client) FetchWhois(ctx context.Context, d *did.TdwDid) ([]byte, error) {
	u, err := d.PathURL("whois")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", did.ErrInvalidDID, err)
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	raw, err := io.ReadAll(io.LimitReader(body, maxWhoisBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading whois body: %v", ErrNetwork, err)
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if c.allowInsecure {
		u.Scheme = "http"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %s", ErrNetwork, u, resp.Status)
	}
}
