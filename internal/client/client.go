package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"wedding-site/internal/middleware"
	"wedding-site/internal/models"

	"github.com/rs/zerolog"
)

// Client talks to the wedding API. Before any mutating call it must be
// bootstrapped once per process via InitializeSecurity; until then every
// mutating call fails fast with ErrNotBootstrapped.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger

	mu           sync.RWMutex
	csrfToken    string
	bearerToken  string
	bootstrapped bool
}

// New builds a client for the given base URL (e.g.
// "http://localhost:8000"). The cookie jar keeps the csrftoken cookie
// travelling alongside the header the server compares it to.
func New(baseURL string, logger zerolog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		log:     logger,
	}, nil
}

// BaseURL returns the server address this client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken installs a previously issued session token (e.g. restored
// from the session flag store between CLI invocations).
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.bearerToken = token
	c.mu.Unlock()
}

// ClearToken forgets the session token after an auth failure
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Bootstrapped reports whether a CSRF token is currently held
func (c *Client) Bootstrapped() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bootstrapped
}

// InitializeSecurity fetches a CSRF token from the backend. Sourcing
// order is fixed: csrftoken cookie first, response body second, fail
// otherwise. Safe to call repeatedly; a fresh token replaces the prior
// one without disturbing requests that already captured it.
func (c *Client) InitializeSecurity(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/csrf_cookie/", nil)
	if err != nil {
		return &TransportError{Op: "csrf bootstrap", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "csrf bootstrap", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: "csrf bootstrap", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	token := c.cookieToken()
	if token == "" {
		var body models.CSRFResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			token = body.CSRFToken
		}
	}
	if token == "" {
		return &TransportError{Op: "csrf bootstrap", Err: fmt.Errorf("no token in cookie or response body")}
	}

	c.mu.Lock()
	c.csrfToken = token
	c.bootstrapped = true
	c.mu.Unlock()

	c.log.Debug().Msg("CSRF bootstrap complete")
	return nil
}

// cookieToken reads the csrftoken cookie back out of the jar
func (c *Client) cookieToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == middleware.CSRFCookieName {
			return cookie.Value
		}
	}
	return ""
}

// EnterPassword submits the shared passphrase. A wrong passphrase is not
// an error; the response simply carries is_authenticated=false. On
// success any issued token is installed for subsequent calls.
func (c *Client) EnterPassword(ctx context.Context, password string) (*models.EnterPasswordResponse, error) {
	var out models.EnterPasswordResponse
	if err := c.postJSON(ctx, "/api/enter_password/", models.EnterPasswordRequest{Password: password}, &out); err != nil {
		return nil, err
	}

	if out.IsAuthenticated && out.Token != "" {
		c.SetToken(out.Token)
	}
	return &out, nil
}

// AuthStatus reports whether the held session token is still valid
func (c *Client) AuthStatus(ctx context.Context) (bool, error) {
	var out models.AuthStatusResponse
	if err := c.getJSON(ctx, "/api/auth_status/", &out); err != nil {
		return false, err
	}
	return out.IsAuthenticated, nil
}

// CreateGuest registers a single guest
func (c *Client) CreateGuest(ctx context.Context, req *models.CreateGuestRequest) (*models.Guest, error) {
	var out models.Guest
	if err := c.postJSON(ctx, "/api/guests/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGuests fetches the roster for the name pickers
func (c *Client) ListGuests(ctx context.Context) ([]models.GuestSummary, error) {
	var out []models.GuestSummary
	if err := c.getJSON(ctx, "/api/guests/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitRSVP creates one RSVP
func (c *Client) SubmitRSVP(ctx context.Context, req *models.CreateRSVPRequest) (*models.RSVP, error) {
	var out models.RSVP
	if err := c.postJSON(ctx, "/api/rsvp/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitSongRequest creates one song request
func (c *Client) SubmitSongRequest(ctx context.Context, req *models.CreateSongRequestRequest) (*models.SongRequest, error) {
	var out models.SongRequest
	if err := c.postJSON(ctx, "/api/songrequests/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSongRequests fetches every requested song
func (c *Client) ListSongRequests(ctx context.Context) ([]models.SongRequest, error) {
	var out []models.SongRequest
	if err := c.getJSON(ctx, "/api/songrequests/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShareMemory creates one memory
func (c *Client) ShareMemory(ctx context.Context, req *models.CreateMemoryRequest) (*models.Memory, error) {
	var out models.Memory
	if err := c.postJSON(ctx, "/api/memories/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMemories fetches every shared memory
func (c *Client) ListMemories(ctx context.Context) ([]models.Memory, error) {
	var out []models.Memory
	if err := c.getJSON(ctx, "/api/memories/all/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// postJSON issues a mutating request with the CSRF header attached.
// The token is captured once up front so a concurrent re-bootstrap never
// splits a request across two token generations.
func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	c.mu.RLock()
	bootstrapped := c.bootstrapped
	csrfToken := c.csrfToken
	bearer := c.bearerToken
	c.mu.RUnlock()

	if !bootstrapped {
		return ErrNotBootstrapped
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return &TransportError{Op: "POST " + path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Op: "POST " + path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.CSRFHeaderName, csrfToken)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.do(req, "POST "+path, out)
}

// getJSON issues a read-only request; no CSRF header is needed but the
// session token still travels along when held
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	c.mu.RLock()
	bearer := c.bearerToken
	c.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &TransportError{Op: "GET " + path, Err: err}
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.do(req, "GET "+path, out)
}

// do executes the request and translates the response into the error
// taxonomy: 400 → ValidationError, 401/403 → AuthError, anything else
// unexpected → TransportError.
func (c *Client) do(req *http.Request, op string, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("malformed response: %w", err)}
		}
		return nil

	case resp.StatusCode == http.StatusBadRequest:
		var fields FieldErrors
		if err := json.NewDecoder(resp.Body).Decode(&fields); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("malformed error payload: %w", err)}
		}
		return &ValidationError{Fields: fields}

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return &AuthError{StatusCode: resp.StatusCode}

	default:
		io.Copy(io.Discard, resp.Body)
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
}
