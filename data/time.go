package data

import "time"

// FormatTime encodes t for storage. The text form keeps the full instant,
// including the zero time and years outside the range of UnixNano.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime decodes a timestamp written by FormatTime.
func ParseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
