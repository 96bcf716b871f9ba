package spread

import (
	"time"

	"github.com/versified/bondsapi/internal/domain/models"
)

// nowFunc is an indirection for the clock; tests can override it.
var nowFunc = time.Now

// MaturityYears converts a maturity date value into remaining years from
// today. Accepted forms are yyyymmdd (as number or text) and ISO dates
// ("2028-09-30"). Past or unparseable dates yield nil.
func MaturityYears(v any) *float64 {
	if v == nil {
		return nil
	}
	text := numberText(v)

	var year, month, day int
	switch {
	case len(text) == 8 && isDigits(text):
		year = atoi(text[0:4])
		month = atoi(text[4:6])
		day = atoi(text[6:8])
	case len(text) >= 10 && text[4] == '-' && text[7] == '-':
		year = atoi(text[0:4])
		month = atoi(text[5:7])
		day = atoi(text[8:10])
	default:
		return nil
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	maturity := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	today := nowFunc().UTC().Truncate(24 * time.Hour)
	days := maturity.Sub(today).Hours() / 24
	if days <= 0 {
		return nil
	}
	years := days / 365.25
	return &years
}

// InterpolateYield returns the curve yield at the target tenor, linearly
// interpolated between the bracketing points (or extrapolated from the two
// nearest points beyond either end). Needs at least two points.
func InterpolateYield(points []models.CurvePoint, years *float64) *float64 {
	if years == nil {
		return nil
	}
	low, high, ok := selectPoints(points, *years)
	if !ok {
		return nil
	}
	if high.Years == low.Years {
		y := low.Yield
		return &y
	}
	weight := (*years - low.Years) / (high.Years - low.Years)
	y := low.Yield + weight*(high.Yield-low.Yield)
	return &y
}

// selectPoints picks the pair of curve points bracketing the target tenor,
// falling back to the outermost pair when the target lies outside the curve.
func selectPoints(points []models.CurvePoint, target float64) (models.CurvePoint, models.CurvePoint, bool) {
	if len(points) < 2 {
		return models.CurvePoint{}, models.CurvePoint{}, false
	}
	if target <= points[0].Years {
		return points[0], points[1], true
	}
	if target >= points[len(points)-1].Years {
		return points[len(points)-2], points[len(points)-1], true
	}
	for i := 1; i < len(points); i++ {
		if points[i].Years >= target {
			return points[i-1], points[i], true
		}
	}
	return models.CurvePoint{}, models.CurvePoint{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
