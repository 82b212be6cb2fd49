// Package profiles talks to an external player profile directory to look up
// the UUID currently owning a username.
package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/permlog/internal/core/identity"
	"github.com/example/permlog/internal/ports/secondary"
)

// Ensure Client implements ProfileLookup at compile time.
var _ secondary.ProfileLookup = (*Client)(nil)

const (
	// DefaultBaseURL is the public Mojang API.
	DefaultBaseURL   = "https://api.mojang.com"
	defaultUserAgent = "permlog/0.1"
	defaultTimeout   = 5 * time.Second
	profilePath      = "/users/profiles/minecraft/"
)

// Client talks to the profile directory HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// Profile is the directory's answer for a username.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewClient builds a Client for baseURL. A zero timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// LookupUUID asks the directory which UUID currently owns name.
// Unknown names are reported as not found, not as an error.
func (c *Client) LookupUUID(ctx context.Context, name string) (uuid.UUID, bool, error) {
	if c == nil {
		return uuid.Nil, false, fmt.Errorf("client is nil")
	}

	profile, found, err := c.FetchProfile(ctx, name)
	if err != nil || !found {
		return uuid.Nil, false, err
	}

	id, ok := identity.ParseIdentifier(profile.ID)
	if !ok {
		return uuid.Nil, false, fmt.Errorf("directory returned invalid uuid %q for %s", profile.ID, name)
	}
	return id, true, nil
}

// FetchProfile retrieves the directory profile for name.
func (c *Client) FetchProfile(ctx context.Context, name string) (*Profile, bool, error) {
	rel := &url.URL{Path: profilePath + url.PathEscape(name)}
	reqURL := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
		return nil, false, nil
	case resp.StatusCode >= 400:
		return nil, false, fmt.Errorf("profile api returned status %d for %s", resp.StatusCode, name)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, false, fmt.Errorf("decode response: %w", err)
	}
	if profile.ID == "" {
		return nil, false, nil
	}
	return &profile, true, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse lookup base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
