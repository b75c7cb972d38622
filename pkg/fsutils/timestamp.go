package fsutils

import "time"

// TimestampLayout renders day-month-year and a 24-hour clock, e.g. "07-03-2024 09:05".
const TimestampLayout = "02-01-2006 15:04"

// FormatTimestamp formats t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
