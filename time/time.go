// Package time converts between epoch-second counts and calendar time.
package time

import (
	"time"
)

// dateTimeFormat is a date-time defined by RFC3339 section 5.6 with no UTC offset.
const dateTimeFormat = "2006-01-02T15:04:05.99Z"

// FromEpochSeconds returns the UTC calendar time value seconds after the
// Unix epoch, 1970-01-01T00:00:00Z. Total over int32: the full input range
// spans 1901-12-13 through 2038-01-19, comfortably inside representable
// calendar bounds, so no validation applies.
func FromEpochSeconds(value int32) time.Time {
	return time.Unix(int64(value), 0).UTC()
}

// EpochSeconds returns value as whole seconds since the Unix epoch.
func EpochSeconds(value time.Time) int64 {
	return value.Unix()
}

// FormatDateTime format value as a date-time
func FormatDateTime(value time.Time) string {
	return value.Format(dateTimeFormat)
}

// ParseDateTime parse a string as a date-time
func ParseDateTime(value string) (time.Time, error) {
	return time.Parse(dateTimeFormat, value)
}
