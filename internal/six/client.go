// Package six is the upstream client for the SIX exchange bond APIs: the FQS
// query service (bond lists and market data) and the Sheldon detail service
// (overview, details, liquidity). Responses are cached in memory keyed by the
// full request URL.
package six

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/versified/bondsapi/config"
	"github.com/versified/bondsapi/internal/cache"
)

// StatusError reports a non-200 response from a SIX endpoint.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("six request failed (%d)", e.Status)
}

// SearchParams filter a bond list query. Zero values mean "no filter";
// MaturityFrom/MaturityTo are yyyymmdd bounds as produced by MaturityRange.
type SearchParams struct {
	Country        string
	Currency       string
	IndustrySector string
	IssuerName     string
	MaturityFrom   int
	MaturityTo     int
	OrderBy        string
	Page           int
	PageSize       int
}

// BondList is one page of search results. Items hold the upstream columns as
// key/value pairs.
type BondList struct {
	Total    int
	Page     int
	PageSize int
	Items    []map[string]any
}

// Client talks to the SIX FQS and Sheldon services. Safe for concurrent use.
type Client struct {
	fqsBaseURL     string
	sheldonBaseURL string
	httpClient     *http.Client

	listCache   *cache.TTLCache[map[string]any]
	detailCache *cache.TTLCache[map[string]any]
}

// NewClient builds a SIX client from configuration. List responses are cached
// for listTTL, detail and market-data responses for detailTTL.
func NewClient(cfg config.SixConfig, listTTL, detailTTL time.Duration) *Client {
	return &Client{
		fqsBaseURL:     cfg.FQSBaseURL,
		sheldonBaseURL: cfg.SheldonBaseURL,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		listCache:      cache.New[map[string]any](listTTL),
		detailCache:    cache.New[map[string]any](detailTTL),
	}
}

// FetchBonds runs a bond search and returns one page of results with paging
// metadata taken from the upstream response.
func (c *Client) FetchBonds(ctx context.Context, p SearchParams) (*BondList, error) {
	data, err := c.fetchJSON(ctx, c.listURL(p), c.listCache)
	if err != nil {
		return nil, err
	}
	list := &BondList{
		Total:    intField(data, "totalRows", 0),
		Page:     intField(data, "pageNumber", p.Page),
		PageSize: intField(data, "pageSize", p.PageSize),
		Items:    Rows(data),
	}
	return list, nil
}

// FetchMarketData returns the market-data row for one bond, or an empty map
// when the bond is unknown.
func (c *Client) FetchMarketData(ctx context.Context, valorID string) (map[string]any, error) {
	data, err := c.fetchJSON(ctx, c.marketDataURL(valorID), c.detailCache)
	if err != nil {
		return nil, err
	}
	rows := Rows(data)
	if len(rows) == 0 {
		return map[string]any{}, nil
	}
	return rows[0], nil
}

// FetchOverview returns the overview section of a bond's detail payload.
func (c *Client) FetchOverview(ctx context.Context, valorID string) (map[string]any, error) {
	return c.fetchItem(ctx, c.sheldonURL(valorID, "overview/info.json"))
}

// FetchDetails returns the details section of a bond's detail payload.
func (c *Client) FetchDetails(ctx context.Context, valorID string) (map[string]any, error) {
	return c.fetchItem(ctx, c.sheldonURL(valorID, "details/info.json"))
}

// FetchLiquidity returns the liquidity measures of a bond.
func (c *Client) FetchLiquidity(ctx context.Context, valorID string) ([]map[string]any, error) {
	data, err := c.fetchJSON(ctx, c.sheldonURL(valorID, "liquidity/measures.json"), c.detailCache)
	if err != nil {
		return nil, err
	}
	return itemList(data), nil
}

// CloseIdleConnections drops keep-alive connections to the SIX endpoints.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// fetchItem fetches a Sheldon payload and unwraps the first itemList entry,
// or an empty map when the list is absent or empty.
func (c *Client) fetchItem(ctx context.Context, url string) (map[string]any, error) {
	data, err := c.fetchJSON(ctx, url, c.detailCache)
	if err != nil {
		return nil, err
	}
	items := itemList(data)
	if len(items) == 0 {
		return map[string]any{}, nil
	}
	return items[0], nil
}

// fetchJSON performs one GET, decoding the body into a generic map. Cached
// responses short-circuit the request entirely.
func (c *Client) fetchJSON(ctx context.Context, url string, store *cache.TTLCache[map[string]any]) (map[string]any, error) {
	if cached, ok := store.Get(url); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build six request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("six request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode six response: %w", err)
	}
	store.Set(url, data)
	return data, nil
}

func intField(data map[string]any, key string, def int) int {
	if v, ok := data[key].(float64); ok {
		return int(v)
	}
	return def
}

func itemList(data map[string]any) []map[string]any {
	raw, ok := data["itemList"].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}
