// Package supabase is a small PostgREST and GoTrue client for the parts of
// Supabase the mood tracker uses: table reads and writes, and token checks.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUnauthorized is returned by VerifyToken when Supabase rejects the token
var ErrUnauthorized = errors.New("supabase: token rejected")

// Client represents a Supabase client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		URL:        baseURL,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Error is a non-2xx response from Supabase
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Body)
}

// User represents a Supabase auth user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Query selects rows from a table. Filters use PostgREST syntax,
// e.g. {"user_id": "eq.42", "order": "created_at.asc"}.
func (c *Client) Query(ctx context.Context, table string, filters url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.restURL(table, filters), nil, "")
}

// Insert inserts one record (or a slice of records) and returns the representation
func (c *Client) Insert(ctx context.Context, table string, data any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, c.restURL(table, nil), data, "return=representation")
}

// Update patches the rows matching filters and returns the representation
func (c *Client) Update(ctx context.Context, table string, filters url.Values, data any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, c.restURL(table, filters), data, "return=representation")
}

// Delete removes the rows matching filters and returns the deleted representation
func (c *Client) Delete(ctx context.Context, table string, filters url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, c.restURL(table, filters), nil, "return=representation")
}

// VerifyToken resolves a user JWT into the Supabase user it belongs to
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.send(req)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

func (c *Client) restURL(table string, filters url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
	if len(filters) > 0 {
		u += "?" + filters.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, target string, data any, prefer string) ([]byte, error) {
	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
