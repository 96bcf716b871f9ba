// Package spread computes government-spread figures for bonds: price
// selection, curve interpolation, and bisection solvers for yield and spread.
//
// Upstream payloads are loosely typed (numbers arrive as JSON numbers or as
// formatted strings with thousands separators), so the entry points accept
// `any` and parse defensively. A nil result always means "not computable from
// the given inputs", never an error.
package spread

import (
	"strconv"
	"strings"
)

// ParseNumber extracts a float from an upstream value. Accepted inputs are
// numeric JSON values and strings such as "1'234.5" or "1,234.5" (separators
// stripped). Anything else yields nil.
func ParseNumber(v any) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case string:
		s := strings.ReplaceAll(n, ",", "")
		s = strings.ReplaceAll(s, "'", "")
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// numberText renders an upstream value as the text a date parser can read:
// whole floats print without an exponent ("20280930"), everything else via
// its string form.
func numberText(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return ""
	}
}
