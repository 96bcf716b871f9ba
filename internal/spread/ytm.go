package spread

import (
	"math"

	"github.com/versified/bondsapi/internal/domain/models"
)

const (
	bisectionSteps     = 80
	bisectionTolerance = 1e-6
)

// EstimatePeriods returns the number of coupon periods until maturity, at
// least 1. A zero result means the inputs cannot support a schedule.
func EstimatePeriods(years, frequency float64) int {
	if years <= 0 {
		return 0
	}
	freq := frequency
	if freq <= 0 {
		freq = 1
	}
	periods := int(math.Round(years * freq))
	if periods < 1 {
		periods = 1
	}
	return periods
}

// YieldToMaturity solves (by bisection) for the flat annual yield, in
// percent, at which the bond's cashflows discount to the given price.
// Notional and price share the same unit. Nil when no root is bracketed.
func YieldToMaturity(price, couponRate, years, frequency, notional float64) *float64 {
	if price <= 0 || years <= 0 || notional <= 0 {
		return nil
	}
	freq := frequency
	if freq <= 0 {
		freq = 1
	}
	periods := EstimatePeriods(years, freq)
	if periods == 0 {
		return nil
	}
	coupon := (couponRate / 100.0) * notional / freq

	pv := func(rate float64) float64 {
		perRate := rate / freq
		total := 0.0
		for i := 1; i <= periods; i++ {
			total += coupon / math.Pow(1+perRate, float64(i))
		}
		total += notional / math.Pow(1+perRate, float64(periods))
		return total
	}

	low, high := -0.99, 2.0
	fLow := pv(low) - price
	fHigh := pv(high) - price
	if fLow*fHigh > 0 {
		return nil
	}
	for i := 0; i < bisectionSteps; i++ {
		mid := (low + high) / 2
		fMid := pv(mid) - price
		if math.Abs(fMid) < bisectionTolerance {
			y := mid * 100.0
			return &y
		}
		if fLow*fMid <= 0 {
			high = mid
			fHigh = fMid
		} else {
			low = mid
			fLow = fMid
		}
	}
	y := ((low + high) / 2) * 100.0
	return &y
}

// GovSpreadBps solves for the constant spread, in basis points, that must be
// added to the government curve so the bond's cashflows discount to its
// traded price. The curve pair bracketing the bond's tenor anchors the
// discount rates; the upper bisection bound widens when the initial bracket
// misses.
func GovSpreadBps(price *float64, couponRate any, years *float64, frequency float64, points []models.CurvePoint) *float64 {
	if price == nil || *price <= 0 || years == nil {
		return nil
	}
	freq := frequency
	if freq <= 0 {
		freq = 1
	}
	periods := EstimatePeriods(*years, freq)
	if periods == 0 {
		return nil
	}
	low, high, ok := selectPoints(points, *years)
	if !ok {
		return nil
	}

	const notional = 100.0
	tradeValue := (*price / 100.0) * notional
	couponPerPeriod := 0.0
	if c := ParseNumber(couponRate); c != nil {
		couponPerPeriod = (*c / 100.0) * notional / freq
	}

	type cashflow struct {
		t      float64
		amount float64
	}
	cashflows := make([]cashflow, 0, periods)
	for i := 1; i <= periods; i++ {
		amount := couponPerPeriod
		if i == periods {
			amount += notional
		}
		cashflows = append(cashflows, cashflow{t: float64(i) / freq, amount: amount})
	}

	baseYield := func(t float64) float64 {
		if high.Years == low.Years {
			return low.Yield
		}
		weight := (t - low.Years) / (high.Years - low.Years)
		return low.Yield + weight*(high.Yield-low.Yield)
	}
	pvWithSpread := func(s float64) float64 {
		total := 0.0
		for _, cf := range cashflows {
			rate := (baseYield(cf.t) + s) / 100.0
			total += cf.amount / math.Pow(1+rate, cf.t)
		}
		return total
	}

	lo, hi := -5.0, 10.0
	fLo := pvWithSpread(lo) - tradeValue
	fHi := pvWithSpread(hi) - tradeValue
	for attempts := 0; fLo*fHi > 0 && attempts < 6; attempts++ {
		hi += 10.0
		fHi = pvWithSpread(hi) - tradeValue
	}
	if fLo*fHi > 0 {
		return nil
	}

	for i := 0; i < bisectionSteps; i++ {
		mid := (lo + hi) / 2
		fMid := pvWithSpread(mid) - tradeValue
		if math.Abs(fMid) < bisectionTolerance {
			bps := mid * 100.0
			return &bps
		}
		if fLo*fMid <= 0 {
			hi = mid
			fHi = fMid
		} else {
			lo = mid
			fLo = fMid
		}
	}
	bps := ((lo + hi) / 2) * 100.0
	return &bps
}
