package six

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Column sets requested from the FQS query service. The list fields drive the
// search table; the market fields feed detail pages and volume aggregation.
var (
	listFields = []string{
		"ShortName",
		"ValorId",
		"TradingBaseCurrency",
		"CouponRate",
		"MaturityDate",
		"ClosingPrice",
		"BidPrice",
		"AskPrice",
		"MarketDate",
		"MarketTime",
		"TotalVolume",
		"IssuerNameFull",
		"ProductLine",
		"IndustrySectorCode",
		"IndustrySectorDesc",
		"SecTypeCode",
		"ISIN",
		"AmountInIssue",
		"YieldToWorst",
	}

	detailMarketFields = []string{
		"ClosingPrice",
		"ClosingDelta",
		"ClosingPerformance",
		"LatestTradeDate",
		"LatestTradeTime",
		"AskPrice",
		"AskVolume",
		"BidPrice",
		"BidVolume",
		"DailyHighPrice",
		"DailyHighTime",
		"DailyLowPrice",
		"DailyLowTime",
		"PreviousClosingPrice",
		"AccruedInterestCalcDesc",
		"MidSpread",
		"OpeningPrice",
		"YearAgoPerformance",
		"YearToDatePerformance",
		"YieldToWorst",
		"TotalVolume",
		"LatestTradeVolume",
		"MarketDate",
		"MarketTime",
		"OnMarketVolume",
		"OffBookVolume",
		"OnMarketTrades",
		"OffBookTrades",
		"OnMarketTurnover",
		"OffBookTurnover",
	}
)

// MaturityRange translates a maturity bucket label into a pair of yyyymmdd
// bounds relative to today. A zero bound is open. Unknown buckets return two
// open bounds (no maturity filter).
//
// Buckets: lt1, 1-2, 2-3, 3-5, 5-10, 10+.
func MaturityRange(bucket string, today time.Time) (from, to int) {
	switch bucket {
	case "lt1":
		return dateInt(today), dateInt(addYears(today, 1))
	case "1-2":
		return dateInt(addYears(today, 1)), dateInt(addYears(today, 2))
	case "2-3":
		return dateInt(addYears(today, 2)), dateInt(addYears(today, 3))
	case "3-5":
		return dateInt(addYears(today, 3)), dateInt(addYears(today, 5))
	case "5-10":
		return dateInt(addYears(today, 5)), dateInt(addYears(today, 10))
	case "10+":
		return dateInt(addYears(today, 10)), 0
	default:
		return 0, 0
	}
}

// addYears shifts a date by whole years, pinning Feb 29 to Feb 28 when the
// target year is not a leap year.
func addYears(d time.Time, years int) time.Time {
	y, m, day := d.Date()
	if m == time.February && day == 29 {
		day = 28
	}
	return time.Date(y+years, m, day, 0, 0, 0, 0, time.UTC)
}

func dateInt(d time.Time) int {
	y, m, day := d.Date()
	return y*10000 + int(m)*100 + day
}

// whereClause assembles the FQS where expression. Conditions are joined with
// "*" (FQS conjunction) and always start with the bond portal segment.
func whereClause(p SearchParams) string {
	parts := []string{"PortalSegment=BO"}
	if p.Country != "" {
		parts = append(parts, "GeographicalAreaCode="+p.Country)
	}
	if p.Currency != "" {
		parts = append(parts, "TradingBaseCurrency="+p.Currency)
	}
	if p.IndustrySector != "" {
		parts = append(parts, "IndustrySectorCode="+p.IndustrySector)
	}
	if p.MaturityFrom != 0 {
		parts = append(parts, fmt.Sprintf("MaturityDate>%d", p.MaturityFrom))
	}
	if p.MaturityTo != 0 {
		parts = append(parts, fmt.Sprintf("MaturityDate<%d", p.MaturityTo))
	}
	if p.IssuerName != "" {
		parts = append(parts, "IssuerNameFull="+url.QueryEscape(p.IssuerName))
	}
	return strings.Join(parts, "*")
}

// listURL builds the ref.json query for a bond list page. FQS expects its
// operators ("=", ">", "*") raw in the query string, so the URL is assembled
// by hand rather than through url.Values.
func (c *Client) listURL(p SearchParams) string {
	return fmt.Sprintf(
		"%s/ref.json?select=%s&where=%s&orderby=%s&page=%d&pagesize=%d",
		c.fqsBaseURL,
		strings.Join(listFields, ","),
		whereClause(p),
		p.OrderBy,
		p.Page,
		p.PageSize,
	)
}

// marketDataURL builds the movie.json command query keyed by Valor ID.
func (c *Client) marketDataURL(valorID string) string {
	return fmt.Sprintf(
		"%s/movie.json?select=%s&where=ValorId=%s",
		c.fqsBaseURL,
		strings.Join(detailMarketFields, ","),
		url.QueryEscape(valorID),
	)
}

// sheldonURL builds a bond_details v3 resource path.
func (c *Client) sheldonURL(valorID, resource string) string {
	return fmt.Sprintf(
		"%s/bond_details/v3/%s/%s",
		c.sheldonBaseURL,
		url.PathEscape(valorID),
		resource,
	)
}
