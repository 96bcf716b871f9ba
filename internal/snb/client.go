// Package snb fetches the Swiss government bond yield curve from the SNB data
// portal (cube rendeiduebm) and condenses it to the latest observation per
// tenor.
package snb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/versified/bondsapi/config"
	"github.com/versified/bondsapi/internal/cache"
	"github.com/versified/bondsapi/internal/domain/models"
)

// tenors is the D1 dimension selection requested from the cube (years, German
// "J" suffix as coded by the SNB).
const tenors = "1J,2J,3J,4J,5J,6J,7J,8J,9J,10J,20J,30J"

const curveCacheKey = "curve"

// nowFunc is an indirection for the clock; tests can override it.
var nowFunc = time.Now

// StatusError reports a non-200 response from the SNB portal.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("snb request failed (%d)", e.Status)
}

// ErrNoData is returned when no candidate URL produced a usable curve and no
// transport or status error occurred either.
var ErrNoData = errors.New("no snb data available")

// Client fetches and caches the SNB yield curve. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	curveCache *cache.TTLCache[*models.Curve]
}

// NewClient builds an SNB client from configuration; curve snapshots are
// cached for ttl.
func NewClient(cfg config.SNBConfig, ttl time.Duration) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		curveCache: cache.New[*models.Curve](ttl),
	}
}

// CloseIdleConnections drops keep-alive connections to the SNB cube.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// urls returns the candidate cube queries: first a two-year window ending at
// the current month, then the same selection without a date window. The
// second form is a fallback for when the windowed query returns nothing.
func (c *Client) urls() []string {
	today := nowFunc()
	fromDate := time.Date(today.Year()-2, today.Month(), 1, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	windowed := fmt.Sprintf(
		"%s?dimSel=D0(CHF),D1(%s)&fromDate=%s&toDate=%s",
		c.baseURL, tenors, fromDate.Format("2006-01"), toDate.Format("2006-01"),
	)
	unwindowed := fmt.Sprintf("%s?dimSel=D0(CHF),D1(%s)", c.baseURL, tenors)
	return []string{windowed, unwindowed}
}

// FetchCurve returns the latest curve snapshot, from cache when fresh.
// Candidate URLs are tried in order until one yields a parseable curve with
// at least one point.
func (c *Client) FetchCurve(ctx context.Context) (*models.Curve, error) {
	if cached, ok := c.curveCache.Get(curveCacheKey); ok {
		return cached, nil
	}

	var lastErr error
	for _, url := range c.urls() {
		payload, err := c.fetchJSON(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		curve := parseCurve(payload)
		if curve == nil || len(curve.Points) == 0 {
			continue
		}
		curve.SourceURL = url
		curve.FetchedAt = nowFunc().UTC().Format(time.RFC3339)
		c.curveCache.Set(curveCacheKey, curve)
		return curve, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoData
}

func (c *Client) fetchJSON(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build snb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snb request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode snb response: %w", err)
	}
	return data, nil
}
