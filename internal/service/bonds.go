// Package service holds the business logic behind the Bonds API endpoints:
// combining SIX search results with the SNB curve into spread-enriched
// payloads, merging bond detail sections, and aggregating trading volumes.
package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/versified/bondsapi/internal/cache"
	"github.com/versified/bondsapi/internal/domain/dto"
	"github.com/versified/bondsapi/internal/domain/models"
	"github.com/versified/bondsapi/internal/logger"
	"github.com/versified/bondsapi/internal/six"
	"github.com/versified/bondsapi/internal/snb"
	"github.com/versified/bondsapi/internal/spread"
)

const (
	// maxVolumeIDs caps one volumes request; extra ids are dropped.
	maxVolumeIDs = 200
	// maxVolumeFetches bounds the upstream fan-out for volume aggregation.
	maxVolumeFetches = 5
)

// SearchQuery carries the validated bond search parameters.
type SearchQuery struct {
	MaturityBucket string
	Currency       string
	Country        string
	OrderBy        string
	Page           int
	PageSize       int
}

// SixAPI is the slice of the SIX client the service depends on.
type SixAPI interface {
	FetchBonds(ctx context.Context, p six.SearchParams) (*six.BondList, error)
	FetchOverview(ctx context.Context, valorID string) (map[string]any, error)
	FetchDetails(ctx context.Context, valorID string) (map[string]any, error)
	FetchLiquidity(ctx context.Context, valorID string) ([]map[string]any, error)
	FetchMarketData(ctx context.Context, valorID string) (map[string]any, error)
}

// SNBAPI is the slice of the SNB client the service depends on.
type SNBAPI interface {
	FetchCurve(ctx context.Context) (*models.Curve, error)
}

// BondService defines the business operations behind the API endpoints.
// Details returns (nil, nil) when the bond does not exist upstream.
type BondService interface {
	Search(ctx context.Context, q SearchQuery) (*dto.SearchResponse, error)
	Details(ctx context.Context, valorID string) (*dto.DetailsResponse, error)
	Curve(ctx context.Context) (*dto.CurveResponse, error)
	Volumes(ctx context.Context, ids []string) (*dto.VolumesResponse, error)
}

type bondService struct {
	six         SixAPI
	snb         SNBAPI
	volumeCache *cache.TTLCache[models.VolumeInfo]
}

// NewBondService wires the upstream clients into a BondService. Volume
// aggregates are cached per Valor ID for volumeTTL.
func NewBondService(sixClient SixAPI, snbClient SNBAPI, volumeTTL time.Duration) BondService {
	return &bondService{
		six:         sixClient,
		snb:         snbClient,
		volumeCache: cache.New[models.VolumeInfo](volumeTTL),
	}
}

// IsUpstream reports whether err is a non-success status from one of the data
// providers, as opposed to a local or transport failure.
func IsUpstream(err error) bool {
	var sixErr *six.StatusError
	var snbErr *snb.StatusError
	return errors.As(err, &sixErr) || errors.As(err, &snbErr)
}

// Search runs the SIX bond search and enriches every row with its government
// spread. The curve is best-effort: when it is unavailable the rows still go
// out, with nil spread fields.
func (s *bondService) Search(ctx context.Context, q SearchQuery) (*dto.SearchResponse, error) {
	from, to := six.MaturityRange(q.MaturityBucket, time.Now())
	list, err := s.six.FetchBonds(ctx, six.SearchParams{
		Country:      q.Country,
		Currency:     q.Currency,
		MaturityFrom: from,
		MaturityTo:   to,
		OrderBy:      q.OrderBy,
		Page:         q.Page,
		PageSize:     q.PageSize,
	})
	if err != nil {
		return nil, err
	}

	var curveDate *string
	var points []models.CurvePoint
	if curve, err := s.snb.FetchCurve(ctx); err == nil {
		points = curve.Points
		curveDate = &curve.LatestDate
	} else {
		logger.L().Warn().Err(err).Msg("curve unavailable, search rows go out unenriched")
	}

	for _, item := range list.Items {
		years := spread.MaturityYears(item["MaturityDate"])
		meta := spread.BuildPriceMeta(item["AskPrice"], item["BidPrice"], item["ClosingPrice"])
		item["GovSpreadBps"] = spread.GovSpreadBps(meta.Price, item["CouponRate"], years, 1, points)
		item["GovSpreadMeta"] = spreadMeta(meta, points, years, curveDate)
	}

	return &dto.SearchResponse{
		Total:    list.Total,
		Page:     list.Page,
		PageSize: list.PageSize,
		Items:    list.Items,
	}, nil
}

// Details merges the overview, details, liquidity, and market sections of one
// bond and computes its government spread. A bond with no overview, details,
// and market data is treated as not found.
func (s *bondService) Details(ctx context.Context, valorID string) (*dto.DetailsResponse, error) {
	overview, err := s.six.FetchOverview(ctx, valorID)
	if err != nil {
		return nil, err
	}
	details, err := s.six.FetchDetails(ctx, valorID)
	if err != nil {
		return nil, err
	}
	liquidity, err := s.six.FetchLiquidity(ctx, valorID)
	if err != nil {
		return nil, err
	}
	market, err := s.six.FetchMarketData(ctx, valorID)
	if err != nil {
		return nil, err
	}

	if len(overview) == 0 && len(details) == 0 && len(market) == 0 {
		return nil, nil
	}

	var curveDate *string
	var points []models.CurvePoint
	if curve, err := s.snb.FetchCurve(ctx); err == nil {
		points = curve.Points
		curveDate = &curve.LatestDate
	}

	couponInfo, _ := details["couponInfo"].(map[string]any)
	years := spread.ParseNumber(couponInfo["remainingLifeInYear"])
	if years == nil {
		maturity := details["maturity"]
		if maturity == nil {
			maturity = overview["maturityDate"]
		}
		years = spread.MaturityYears(maturity)
	}
	frequency := 1.0
	if freq := spread.ParseNumber(couponInfo["interestFrequency"]); freq != nil && *freq > 0 {
		frequency = *freq
	}

	meta := spread.BuildPriceMeta(market["AskPrice"], market["BidPrice"], market["PreviousClosingPrice"])

	return &dto.DetailsResponse{
		ValorID:       valorID,
		Overview:      overview,
		Details:       details,
		Market:        market,
		Liquidity:     liquidity,
		GovSpreadBps:  spread.GovSpreadBps(meta.Price, couponInfo["couponRate"], years, frequency, points),
		GovSpreadMeta: spreadMeta(meta, points, years, curveDate),
	}, nil
}

// Curve returns the latest SNB reference curve.
func (s *bondService) Curve(ctx context.Context) (*dto.CurveResponse, error) {
	curve, err := s.snb.FetchCurve(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CurveResponse{
		LatestDate: curve.LatestDate,
		Points:     curve.Points,
	}, nil
}

// Volumes aggregates trading volumes for the requested Valor IDs. Cached
// entries are reused; the rest are fetched concurrently with bounded
// parallelism. A failed upstream fetch degrades that id to an empty volume
// entry instead of failing the request.
func (s *bondService) Volumes(ctx context.Context, ids []string) (*dto.VolumesResponse, error) {
	if len(ids) > maxVolumeIDs {
		ids = ids[:maxVolumeIDs]
	}

	items := make(map[string]models.VolumeInfo, len(ids))
	var mu sync.Mutex

	var missing []string
	for _, id := range ids {
		if _, seen := items[id]; seen {
			continue
		}
		if info, ok := s.volumeCache.Get(id); ok {
			items[id] = info
		} else {
			items[id] = models.VolumeInfo{} // placeholder, overwritten below
			missing = append(missing, id)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxVolumeFetches)
	for _, id := range missing {
		valorID := id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			market, err := s.six.FetchMarketData(gctx, valorID)
			if err != nil {
				logger.L().Warn().Str("valor_id", valorID).Err(err).Msg("market data fetch failed")
				market = map[string]any{}
			}
			info := volumeInfo(market)
			s.volumeCache.Set(valorID, info)
			mu.Lock()
			items[valorID] = info
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.VolumesResponse{Items: items}, nil
}

// volumeInfo derives the volume aggregate from one market-data row.
func volumeInfo(market map[string]any) models.VolumeInfo {
	total := spread.ParseNumber(market["TotalVolume"])
	on := spread.ParseNumber(market["OnMarketVolume"])
	off := spread.ParseNumber(market["OffBookVolume"])
	latestTrade := spread.ParseNumber(market["LatestTradeVolume"])

	info := models.VolumeInfo{OnVolume: on, OffVolume: off}
	switch {
	case total != nil:
		info.Volume = total
		info.Source = strPtr("total_volume")
	case on != nil || off != nil:
		sum := value(on) + value(off)
		info.Volume = &sum
		info.Source = strPtr("on_off_volume")
	case latestTrade != nil:
		info.Volume = latestTrade
		info.Source = strPtr("latest_trade_volume")
	}

	date := market["LatestTradeDate"]
	if date == nil {
		date = market["MarketDate"]
	}
	if date != nil {
		if s, ok := date.(string); ok {
			info.Date = &s
		} else if n := spread.ParseNumber(date); n != nil {
			text := formatDateNumber(*n)
			info.Date = &text
		}
	}
	return info
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func strPtr(s string) *string { return &s }

// formatDateNumber renders a numeric date value (yyyymmdd) without an
// exponent.
func formatDateNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// spreadMeta assembles the GovSpreadMeta block shared by search and details.
func spreadMeta(meta spread.PriceMeta, points []models.CurvePoint, years *float64, curveDate *string) models.SpreadMeta {
	m := models.SpreadMeta{
		Price:    meta.Price,
		Source:   meta.Source,
		Ask:      meta.Ask,
		Bid:      meta.Bid,
		Close:    meta.Close,
		GovYield: spread.InterpolateYield(points, years),
		Years:    years,
	}
	if len(points) > 0 {
		m.CurveDate = curveDate
	}
	return m
}
