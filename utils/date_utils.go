package utils

import (
	"time"
)

var acceptedDateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	time.RFC3339,
}

func IsValidDate(dateStr string) bool {
	if dateStr == "" {
		return false
	}

	for _, format := range acceptedDateFormats {
		if _, err := time.Parse(format, dateStr); err == nil {
			return true
		}
	}

	return false
}

// ParseDate aceita os mesmos formatos de IsValidDate e devolve o instante em UTC.
func ParseDate(dateStr string) (time.Time, bool) {
	for _, format := range acceptedDateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
