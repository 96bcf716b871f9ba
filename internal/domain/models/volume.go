package models

// VolumeInfo is the aggregated trading volume for one bond.
//
// Volume is nil when the upstream reports no usable figure. Source names the
// field the figure was derived from:
//   - "total_volume":        TotalVolume as reported
//   - "on_off_volume":       OnMarketVolume + OffBookVolume
//   - "latest_trade_volume": volume of the most recent trade
type VolumeInfo struct {
	Volume    *float64 `json:"volume"`
	Date      *string  `json:"date"`
	Source    *string  `json:"source"`
	OnVolume  *float64 `json:"on_volume"`
	OffVolume *float64 `json:"off_volume"`
}
