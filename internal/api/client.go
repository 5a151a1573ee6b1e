// Package api is the client for the wind farm portfolio API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrUnauthorized is returned for 401 responses.
var ErrUnauthorized = errors.New("api: unauthorized")

// StatusError is returned for any other non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// NotFound reports whether the resource does not exist.
func (e *StatusError) NotFound() bool {
	return e.Code == http.StatusNotFound
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client talks to the portfolio API.
type Client struct {
	base   *url.URL
	token  string
	http   *http.Client
	logger *log.Logger
}

// NewClient returns a client for opts.BaseURL.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{base: base, token: opts.Token, http: hc, logger: logger}, nil
}

// HasToken reports whether requests carry credentials.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// PortfolioSummary fetches the portfolio totals.
func (c *Client) PortfolioSummary(ctx context.Context) (PortfolioSummary, error) {
	var out PortfolioSummary
	err := c.get(ctx, "/portfolio/summary", nil, &out)
	return out, err
}

// RecentWindfarms fetches the most recently updated wind farms.
func (c *Client) RecentWindfarms(ctx context.Context, limit int) ([]Windfarm, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []Windfarm
	err := c.get(ctx, "/windfarms/recent", q, &out)
	return out, err
}

// WindfarmWithOwners fetches one wind farm and its owners.
func (c *Client) WindfarmWithOwners(ctx context.Context, id int64) (WindfarmWithOwners, error) {
	var out WindfarmWithOwners
	err := c.get(ctx, fmt.Sprintf("/windfarms/%d/owners", id), nil, &out)
	return out, err
}

// CurrentUser fetches the account the token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var out User
	err := c.get(ctx, "/auth/me", nil, &out)
	return out, err
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("api request", "path", path, "status", resp.StatusCode, "duration", time.Since(start).Round(time.Millisecond))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("GET %s: %w", path, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: http.MethodGet, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
