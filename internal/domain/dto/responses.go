package dto

import "github.com/versified/bondsapi/internal/domain/models"

// SearchResponse is the JSON structure returned by GET /api/bonds/search.
//
// Items carry the upstream column/value pairs verbatim, enriched with the
// computed GovSpreadBps and GovSpreadMeta keys.
type SearchResponse struct {
	Total    int              `json:"total" example:"120"`
	Page     int              `json:"page" example:"1"`
	PageSize int              `json:"page_size" example:"50"`
	Items    []map[string]any `json:"items"`
}

// CurveResponse is the JSON structure returned by GET /api/snb/curve.
type CurveResponse struct {
	LatestDate string              `json:"latest_date"`
	Points     []models.CurvePoint `json:"points"`
}

// VolumesResponse is the JSON structure returned by GET /api/bonds/volumes.
// Items maps Valor ID to its volume info; it is empty (not null) when no ids
// were requested.
type VolumesResponse struct {
	Items map[string]models.VolumeInfo `json:"items"`
}

// DetailsResponse is the JSON structure returned by GET /api/bonds/{valor_id}.
// Overview, Details, Market, and Liquidity are upstream payloads passed
// through as-is.
type DetailsResponse struct {
	ValorID       string            `json:"valor_id"`
	Overview      map[string]any    `json:"overview"`
	Details       map[string]any    `json:"details"`
	Market        map[string]any    `json:"market"`
	Liquidity     []map[string]any  `json:"liquidity"`
	GovSpreadBps  *float64          `json:"gov_spread_bps"`
	GovSpreadMeta models.SpreadMeta `json:"gov_spread_meta"`
}
