// Package client is the API client behind halcyonctl. It carries the
// pieces the browser frontend owns in the hosted product: per-realm
// credential storage, the admin authentication gate with mandatory
// password rotation, and the article search controller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// APIError is any non-2xx reply, carrying the server-provided message
// when one was present in the body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}

type Client struct {
	baseURL string
	http    *http.Client
	user    *SessionStore
	admin   *SessionStore
	logger  *slog.Logger
}

// New builds a client for baseURL (the host, without the /api suffix)
// with realm sessions stored under stateDir.
func New(baseURL, stateDir string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		user:    NewSessionStore(stateDir, RealmUser),
		admin:   NewSessionStore(stateDir, RealmAdmin),
		logger:  logger,
	}
}

func (c *Client) UserSession() *SessionStore  { return c.user }
func (c *Client) AdminSession() *SessionStore { return c.admin }

func (c *Client) session(realm string) *SessionStore {
	if realm == RealmAdmin {
		return c.admin
	}
	return c.user
}

// do issues one JSON request. A non-empty realm attaches that realm's
// bearer token; a 401 reply then clears the realm's credential before
// the error is returned, so every follow-up gate check lands on login.
func (c *Client) do(ctx context.Context, method, path, realm string, query url.Values, body, out any) error {
	target := c.baseURL + "/api" + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if realm != "" {
		if tok := c.session(realm).Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusUnauthorized && realm != "" {
			c.session(realm).Clear()
		}
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage pulls the message out of an error body; the API uses
// "error" and the original upstream service used "detail".
func errorMessage(body io.Reader) string {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Detail
}
