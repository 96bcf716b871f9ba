package models

// CurvePoint is one tenor of the government reference curve.
type CurvePoint struct {
	Years float64 `json:"years" example:"10"`   // Remaining time to maturity in years
	Yield float64 `json:"yield" example:"0.45"` // Annual yield in percent
}

// Curve is the latest SNB government bond yield curve snapshot.
//
// Points are sorted by ascending tenor and all belong to LatestDate, the most
// recent observation date present in the upstream cube.
type Curve struct {
	LatestDate string       `json:"latest_date" example:"2026-07-01"`
	Points     []CurvePoint `json:"points"`
	SourceURL  string       `json:"source_url,omitempty"`
	FetchedAt  string       `json:"fetched_at,omitempty"`
}
