package dto

import (
	"shareit/shared/constant"
	"shareit/shared/timezone"
	"time"
)

// FormatTime renders t in the application timezone, or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}

// ParseTime accepts RFC 3339 or a zone-less local timestamp, which is read as UTC.
func ParseTime(value string) (time.Time, error) {
	if t, err := time.Parse(constant.DateFormat, value); err == nil {
		return t, nil
	}

	return time.ParseInLocation(constant.LocalDateFormat, value, time.UTC) //nolint:wrapcheck
}
