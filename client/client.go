// Package client is a small Go client for the Bonds API consumed by the web
// frontend: bond search, bond details, the SNB reference curve, and aggregated
// trading volumes.
//
// The server owns the response schema; every payload is returned as raw JSON
// after a parse check and nothing else is validated locally. The package keeps
// no state between calls, performs no retries, and imposes no timeout of its
// own (configure the underlying *http.Client for that).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	searchPath  = "/api/bonds/search"
	detailsPath = "/api/bonds/"
	curvePath   = "/api/snb/curve"
	volumesPath = "/api/bonds/volumes"
)

// emptyVolumes is returned by BondVolumes when no identifiers are given;
// no request is made in that case.
var emptyVolumes = json.RawMessage(`{"items":{}}`)

// RequestError reports a non-2xx response from the Bonds API. Label names the
// operation that failed (Search, Details, Curve, or Volumes) and Status is the
// HTTP status code of the response.
type RequestError struct {
	Label  string
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s failed (%d)", e.Label, e.Status)
}

// SearchQuery holds the bond search filters. All fields are sent as-is; the
// server is authoritative for validation and defaults.
type SearchQuery struct {
	MaturityBucket string // lt1, 1-2, 2-3, 3-5, 5-10, 10+
	Currency       string
	Country        string
	Page           int
	PageSize       int
}

// Client calls the Bonds API. It is stateless and safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport used for requests. Useful for tests
// or for callers that need timeouts and connection tuning.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New returns a Client for the Bonds API rooted at baseURL
// (e.g. "http://localhost:8080"). A trailing slash is stripped.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchBonds runs a filtered bond search and returns the response body.
func (c *Client) SearchBonds(ctx context.Context, q SearchQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("maturity_bucket", q.MaturityBucket)
	params.Set("currency", q.Currency)
	params.Set("country", q.Country)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("page_size", strconv.Itoa(q.PageSize))
	return c.get(ctx, "Search", searchPath, params)
}

// BondDetails fetches the detail payload for a single bond identified by its
// Valor ID. The identifier is percent-encoded into the request path.
func (c *Client) BondDetails(ctx context.Context, valorID string) (json.RawMessage, error) {
	return c.get(ctx, "Details", detailsPath+url.PathEscape(valorID), nil)
}

// ReferenceCurve fetches the SNB government reference curve.
func (c *Client) ReferenceCurve(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "Curve", curvePath, nil)
}

// BondVolumes fetches aggregated trading volumes for the given Valor IDs.
// With no identifiers there is nothing to ask the server, so the empty result
// {"items":{}} is returned without a network call.
func (c *Client) BondVolumes(ctx context.Context, ids []string) (json.RawMessage, error) {
	if len(ids) == 0 {
		return emptyVolumes, nil
	}
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	return c.get(ctx, "Volumes", volumesPath, params)
}

// get issues one GET request and returns the parsed JSON body, or a
// *RequestError carrying label and status when the response is not 2xx.
func (c *Client) get(ctx context.Context, label, path string, params url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", strings.ToLower(label), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RequestError{Label: label, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", strings.ToLower(label), err)
	}
	var parsed json.RawMessage
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", strings.ToLower(label), err)
	}
	return parsed, nil
}
