// Package brvmapi is the HTTP client for the BRVMWatch backend. One method
// per endpoint; every failure, transport or protocol, collapses into a
// single human-readable error suitable for inline display next to the
// affected view.
package brvmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	brvmwatch "github.com/esmelobi/brvm-watch"
)

// DefaultTimeout bounds every request. The backend parses PDF bulletins on
// some endpoints, so a few seconds is not enough.
const DefaultTimeout = 15 * time.Second

// Client speaks to one BRVMWatch backend. The base URL is injected
// explicitly at construction; no leaf function reads ambient configuration.
type Client struct {
	base string
	http *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8000".
// A zero timeout means DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

// Health probes the backend. A nil error means it is reachable.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// Seances returns the last 'limit' séances, chronological.
func (c *Client) Seances(ctx context.Context, limit int) ([]brvmwatch.Seance, error) {
	seances := make([]brvmwatch.Seance, 0, limit)
	path := "/api/seances?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &seances); err != nil {
		return nil, err
	}
	return seances, nil
}

// LastSeance returns the most recent séance.
func (c *Client) LastSeance(ctx context.Context) (*brvmwatch.Seance, error) {
	var s brvmwatch.Seance
	if err := c.do(ctx, http.MethodGet, "/api/seances/derniere", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Securities returns all security records in their latest known state.
func (c *Client) Securities(ctx context.Context) ([]brvmwatch.Security, error) {
	var list []brvmwatch.Security
	if err := c.do(ctx, http.MethodGet, "/api/actions", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Security returns one security with its full price history.
func (c *Client) Security(ctx context.Context, symbol string) (*brvmwatch.SecurityDetail, error) {
	var d brvmwatch.SecurityDetail
	path := "/api/actions/" + url.PathEscape(symbol)
	if err := c.do(ctx, http.MethodGet, path, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Pepites returns the backend-computed performance ranking over a trailing
// window of 'days' days.
func (c *Client) Pepites(ctx context.Context, days int) (*brvmwatch.Pepites, error) {
	days, err := brvmwatch.ParseRankingDays(days)
	if err != nil {
		return nil, err
	}
	var p brvmwatch.Pepites
	path := "/api/pepite?jours=" + strconv.Itoa(days)
	if err := c.do(ctx, http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Conseils returns all open advice records.
func (c *Client) Conseils(ctx context.Context) ([]brvmwatch.Conseil, error) {
	var list []brvmwatch.Conseil
	if err := c.do(ctx, http.MethodGet, "/api/conseils", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateConseil submits a new advice record and returns it as stored.
func (c *Client) CreateConseil(ctx context.Context, n brvmwatch.NewConseil) (*brvmwatch.Conseil, error) {
	if err := n.Validate(); err != nil {
		// validation failures never reach the network layer
		return nil, err
	}
	var created brvmwatch.Conseil
	if err := c.do(ctx, http.MethodPost, "/api/conseils", n, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CloseConseil closes (soft-deletes) an advice record. The record stays open
// client-side until this call returns without error.
func (c *Client) CloseConseil(ctx context.Context, id int64) error {
	path := "/api/conseils/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Refresh triggers a backend-side data collection.
func (c *Client) Refresh(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/refresh", nil, nil)
}

// do performs one request. A non-nil 'in' is sent as a JSON body, a non-nil
// 'out' receives the parsed JSON response.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach the backend: %v", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read %s response: %v", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: %s", method, path, errorDetail(resp.Status, content))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("cannot parse %s response: %v", path, err)
	}
	return nil
}

// errorDetail prefers the backend's own {"detail": "..."} message over the
// bare status line.
func errorDetail(status string, content []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(content, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return status
}
