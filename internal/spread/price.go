package spread

// PriceMeta records which price was chosen for spread computation and the
// candidates it was chosen from.
type PriceMeta struct {
	Price  *float64
	Source *string // mid, close, or ask
	Ask    *float64
	Bid    *float64
	Close  *float64
}

// BuildPriceMeta picks the price to discount against.
//
// Preference order:
//   - mid of ask/bid when a positive bid exists,
//   - otherwise the closing price,
//   - otherwise the ask.
//
// Price stays nil when neither an ask nor a close is available.
func BuildPriceMeta(ask, bid, close any) PriceMeta {
	meta := PriceMeta{
		Ask:   ParseNumber(ask),
		Bid:   ParseNumber(bid),
		Close: ParseNumber(close),
	}

	if meta.Ask == nil && meta.Close == nil {
		return meta
	}

	if meta.Bid == nil || *meta.Bid <= 0 {
		if meta.Close != nil {
			meta.Price = meta.Close
			meta.Source = sourcePtr("close")
			return meta
		}
		meta.Price = meta.Ask
		meta.Source = sourcePtr("ask")
		return meta
	}

	mid := *meta.Bid
	if meta.Ask != nil {
		mid = (*meta.Ask + *meta.Bid) / 2
	}
	meta.Price = &mid
	meta.Source = sourcePtr("mid")
	return meta
}

func sourcePtr(s string) *string { return &s }
