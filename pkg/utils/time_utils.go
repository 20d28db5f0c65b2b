package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateRange returns every date from start to end inclusive, formatted
// YYYY-MM-DD. Returns nil if end is before start.
func DateRange(start, end time.Time) []string {
	if end.Before(start) {
		return nil
	}
	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(DateLayout))
	}
	return out
}
