package models

// SpreadMeta documents the inputs behind a computed government spread:
// which price was used, the curve yield at the bond's tenor, and the curve
// observation date. Nil fields mean the value was unavailable.
type SpreadMeta struct {
	Price     *float64 `json:"price"`
	Source    *string  `json:"source"` // mid, close, or ask
	Ask       *float64 `json:"ask"`
	Bid       *float64 `json:"bid"`
	Close     *float64 `json:"close"`
	GovYield  *float64 `json:"gov_yield"`
	CurveDate *string  `json:"curve_date"`
	Years     *float64 `json:"years"`
}
