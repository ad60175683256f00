// Package normalize provides stateless date and value coercion helpers shared
// by the source adapters.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel is the literal some sources publish for "no data".
const Sentinel = "."

// PeriodCodeToMonth maps a BLS-style period code to a calendar month.
// "M01".."M12" -> January..December. Any other code (annual "A01",
// quarterly "Q01", malformed input) falls back to January. The fallback
// matches the stored history; it is deliberate, not an error.
func PeriodCodeToMonth(code string) time.Month {
	if len(code) != 3 || code[0] != 'M' {
		return time.January
	}
	n, err := strconv.Atoi(code[1:])
	if err != nil || n < 1 || n > 12 {
		return time.January
	}
	return time.Month(n)
}

// IsBlankOrSentinel reports whether a raw value string carries no reading:
// empty, whitespace-only, or the literal "." sentinel.
func IsBlankOrSentinel(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || trimmed == Sentinel
}

// ParseDecimal parses a raw value string into a decimal.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse value %q: %w", raw, err)
	}
	return d, nil
}

// MonthStart returns UTC midnight on the first day of the given month.
func MonthStart(year string, month time.Month) (time.Time, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse year %q: %w", year, err)
	}
	return time.Date(y, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// DateOnly truncates a source timestamp to its calendar date at UTC midnight.
// Accepts RFC 3339, RFC 3339 without zone, and plain dates.
func DateOnly(ts string) (time.Time, error) {
	ts = strings.TrimSpace(ts)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
		t, err := time.Parse(layout, ts)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q", ts)
}
