package snb

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/versified/bondsapi/internal/domain/models"
	"github.com/versified/bondsapi/internal/spread"
)

// parseCurve extracts the latest observation per tenor from the cube's
// timeseries payload and keeps only the tenors observed on the overall latest
// date, so the result is one coherent curve snapshot. Nil when nothing
// usable is present.
func parseCurve(payload map[string]any) *models.Curve {
	series, ok := payload["timeseries"].([]any)
	if !ok {
		return nil
	}

	type observation struct {
		date  time.Time
		yield float64
	}
	byTenor := make(map[float64]observation)

	for _, raw := range series {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		tenor := headerTenor(entry)
		if tenor == nil {
			continue
		}

		values, _ := entry["values"].([]any)
		var latest *observation
		for _, v := range values {
			item, ok := v.(map[string]any)
			if !ok {
				continue
			}
			date, ok := parseDate(item["date"])
			if !ok {
				continue
			}
			yield := spread.ParseNumber(item["value"])
			if yield == nil {
				continue
			}
			if latest == nil || date.After(latest.date) {
				latest = &observation{date: date, yield: *yield}
			}
		}
		if latest != nil {
			byTenor[*tenor] = *latest
		}
	}
	if len(byTenor) == 0 {
		return nil
	}

	var latestDate time.Time
	for _, obs := range byTenor {
		if obs.date.After(latestDate) {
			latestDate = obs.date
		}
	}

	points := make([]models.CurvePoint, 0, len(byTenor))
	for years, obs := range byTenor {
		if obs.date.Equal(latestDate) {
			points = append(points, models.CurvePoint{Years: years, Yield: obs.yield})
		}
	}
	if len(points) == 0 {
		return nil
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Years < points[j].Years })

	return &models.Curve{
		LatestDate: latestDate.Format("2006-01-02"),
		Points:     points,
	}
}

// headerTenor finds the maturity dimension in a timeseries header and
// converts it to years.
func headerTenor(entry map[string]any) *float64 {
	header, _ := entry["header"].([]any)
	for _, h := range header {
		item, ok := h.(map[string]any)
		if !ok {
			continue
		}
		dim, _ := item["dim"].(string)
		if strings.EqualFold(dim, "maturity") {
			return tenorYears(item["dimItem"])
		}
	}
	return nil
}

// tenorYears converts a tenor label into years. The cube codes tenors with a
// German "J" suffix ("10J"); spelled-out and English forms as well as month
// and day units are accepted too.
func tenorYears(v any) *float64 {
	if v == nil {
		return nil
	}
	text := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", v)))
	if text == "" {
		return nil
	}

	for _, unit := range []string{"jahr", "year", "yr"} {
		if strings.Contains(text, unit) {
			return digitsNumber(text)
		}
	}
	for _, unit := range []string{"monat", "month", "mth", "mo"} {
		if strings.Contains(text, unit) {
			return scale(digitsNumber(text), 1.0/12)
		}
	}
	for _, unit := range []string{"tag", "day"} {
		if strings.Contains(text, unit) {
			return scale(digitsNumber(text), 1.0/365)
		}
	}

	switch {
	case strings.HasSuffix(text, "j"), strings.HasSuffix(text, "y"):
		return spread.ParseNumber(text[:len(text)-1])
	case strings.HasSuffix(text, "m"):
		return scale(spread.ParseNumber(text[:len(text)-1]), 1.0/12)
	case strings.HasSuffix(text, "d"):
		return scale(spread.ParseNumber(text[:len(text)-1]), 1.0/365)
	}
	return spread.ParseNumber(text)
}

// digitsNumber parses the numeric part of a mixed label like "10 Jahre".
func digitsNumber(text string) *float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return spread.ParseNumber(b.String())
}

func scale(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * factor
	return &scaled
}

// parseDate accepts the date forms the cube emits: full ISO dates, year-month
// (mapped to the first of the month), and compact yyyymmdd.
func parseDate(v any) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}
	text := strings.TrimSpace(fmt.Sprintf("%v", v))
	for _, layout := range []string{"2006-01-02", "2006-01", "20060102"} {
		if d, err := time.Parse(layout, text); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
