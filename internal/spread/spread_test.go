package spread

import (
	"math"
	"testing"
	"time"

	"github.com/versified/bondsapi/internal/domain/models"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want *float64
	}{
		{"nil", nil, nil},
		{"float", 1.5, f(1.5)},
		{"int", 42, f(42)},
		{"string", "101.25", f(101.25)},
		{"thousands comma", "1,234.5", f(1234.5)},
		{"swiss apostrophe", "1'234.5", f(1234.5)},
		{"garbage", "n/a", nil},
		{"bool", true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseNumber(tc.in)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("got %v, want %v", *got, *tc.want)
			}
		})
	}
}

func TestBuildPriceMeta(t *testing.T) {
	cases := []struct {
		name       string
		ask, bid   any
		close      any
		wantPrice  *float64
		wantSource string
	}{
		{"no inputs", nil, nil, nil, nil, ""},
		{"mid of ask and bid", 102.0, 100.0, 99.0, f(101), "mid"},
		{"zero bid falls back to close", 102.0, 0.0, 99.0, f(99), "close"},
		{"no bid no close uses ask", 102.0, nil, nil, f(102), "ask"},
		{"bid only", nil, 100.0, 99.0, f(99), "close"},
		{"positive bid without ask", nil, 100.0, nil, nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := BuildPriceMeta(tc.ask, tc.bid, tc.close)
			if (meta.Price == nil) != (tc.wantPrice == nil) {
				t.Fatalf("price %v, want %v", meta.Price, tc.wantPrice)
			}
			if meta.Price != nil && *meta.Price != *tc.wantPrice {
				t.Fatalf("price %v, want %v", *meta.Price, *tc.wantPrice)
			}
			if tc.wantSource == "" && meta.Source != nil {
				t.Fatalf("source %q, want nil", *meta.Source)
			}
			if tc.wantSource != "" && (meta.Source == nil || *meta.Source != tc.wantSource) {
				t.Fatalf("source %v, want %q", meta.Source, tc.wantSource)
			}
		})
	}
}

func TestMaturityYears(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	cases := []struct {
		name string
		in   any
		want *float64 // approximate
	}{
		{"yyyymmdd text", "20280801", f(2)},
		{"yyyymmdd number", float64(20280801), f(2)},
		{"iso date", "2027-08-01", f(1)},
		{"past date", "20200101", nil},
		{"garbage", "soon", nil},
		{"nil", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MaturityYears(tc.in)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got != nil && math.Abs(*got-*tc.want) > 0.01 {
				t.Fatalf("got %v, want ~%v", *got, *tc.want)
			}
		})
	}
}

func TestInterpolateYield(t *testing.T) {
	points := []models.CurvePoint{
		{Years: 1, Yield: 0.5},
		{Years: 5, Yield: 1.0},
		{Years: 10, Yield: 1.5},
	}
	cases := []struct {
		name  string
		years *float64
		want  *float64
	}{
		{"nil target", nil, nil},
		{"exact point", f(5), f(1.0)},
		{"between points", f(3), f(0.75)},
		{"below range extrapolates", f(0.5), f(0.4375)},
		{"above range extrapolates", f(12), f(1.7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := InterpolateYield(points, tc.years)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got != nil && math.Abs(*got-*tc.want) > 1e-9 {
				t.Fatalf("got %v, want %v", *got, *tc.want)
			}
		})
	}

	if got := InterpolateYield(points[:1], f(2)); got != nil {
		t.Fatalf("single point should not interpolate, got %v", *got)
	}
}

func TestEstimatePeriods(t *testing.T) {
	if got := EstimatePeriods(0, 1); got != 0 {
		t.Fatalf("zero years -> %d, want 0", got)
	}
	if got := EstimatePeriods(0.2, 1); got != 1 {
		t.Fatalf("short maturity -> %d, want 1", got)
	}
	if got := EstimatePeriods(5, 2); got != 10 {
		t.Fatalf("5y semiannual -> %d, want 10", got)
	}
	if got := EstimatePeriods(3, 0); got != 3 {
		t.Fatalf("zero frequency defaults to annual -> %d, want 3", got)
	}
}

func TestYieldToMaturity(t *testing.T) {
	// Par bond: price equals notional, so yield equals the coupon rate.
	got := YieldToMaturity(100, 2, 5, 1, 100)
	if got == nil {
		t.Fatalf("expected a yield")
	}
	if math.Abs(*got-2.0) > 0.05 {
		t.Fatalf("par bond yield %v, want ~2.0", *got)
	}

	// Discount bond yields above coupon.
	got = YieldToMaturity(95, 2, 5, 1, 100)
	if got == nil || *got <= 2.0 {
		t.Fatalf("discount bond yield %v, want > 2.0", got)
	}

	if got := YieldToMaturity(0, 2, 5, 1, 100); got != nil {
		t.Fatalf("zero price should not solve, got %v", *got)
	}
}

func TestGovSpreadBps(t *testing.T) {
	flat := []models.CurvePoint{{Years: 1, Yield: 1.0}, {Years: 30, Yield: 1.0}}

	// Par bond with 2% coupon over a flat 1% curve trades ~100bps wide.
	got := GovSpreadBps(f(100), 2.0, f(5), 1, flat)
	if got == nil {
		t.Fatalf("expected a spread")
	}
	if math.Abs(*got-100) > 5 {
		t.Fatalf("spread %v bps, want ~100", *got)
	}

	// Par bond with coupon equal to the curve trades flat.
	got = GovSpreadBps(f(100), 1.0, f(5), 1, flat)
	if got == nil || math.Abs(*got) > 5 {
		t.Fatalf("spread %v, want ~0", got)
	}

	if got := GovSpreadBps(nil, 2.0, f(5), 1, flat); got != nil {
		t.Fatalf("nil price should not solve")
	}
	if got := GovSpreadBps(f(100), 2.0, nil, 1, flat); got != nil {
		t.Fatalf("nil years should not solve")
	}
	if got := GovSpreadBps(f(100), 2.0, f(5), 1, flat[:1]); got != nil {
		t.Fatalf("single curve point should not solve")
	}
}

func f(v float64) *float64 { return &v }
