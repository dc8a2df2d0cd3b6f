// Package format converts raw service values into display strings.
// Everything here is a pure function of its input.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Date renders an ISO date ("2006-01-02" or RFC 3339) as a human date like
// "14 May 2023". Unparseable input is returned as-is rather than dropped.
func Date(iso string) string {
	trimmed := strings.TrimSpace(iso)
	if trimmed == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return trimmed
}

// Days renders a day count with its unit, e.g. "1 day", "347 days".
func Days(n int) string {
	return fmt.Sprintf("%d %s", n, plural(n, "day", "days"))
}

// YearsMonths renders an elapsed span like "1 year, 3 months". A zero span
// comes out as "0 months".
func YearsMonths(years, months int) string {
	if years <= 0 {
		return fmt.Sprintf("%d %s", months, plural(months, "month", "months"))
	}
	if months <= 0 {
		return fmt.Sprintf("%d %s", years, plural(years, "year", "years"))
	}
	return fmt.Sprintf("%d %s, %d %s",
		years, plural(years, "year", "years"),
		months, plural(months, "month", "months"))
}

// Years renders a year count with its unit.
func Years(n int) string {
	return fmt.Sprintf("%d %s", n, plural(n, "year", "years"))
}

// Ago renders a relative stamp for status lines: "now", "12s ago",
// "5m ago", "3h ago"; anything older falls back to the clock time.
func Ago(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < 2*time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("15:04:05")
	}
}

func plural(n int, one, many string) string {
	if n == 1 || n == -1 {
		return one
	}
	return many
}
