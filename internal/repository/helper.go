package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// parseDateTime parses the "2006-01-02 15:04:05" format sqlite uses for
// CURRENT_TIMESTAMP columns.
func parseDateTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02 15:04:05", str)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse datetime: %w", err)
	}
	return returnTime.UTC(), nil
}
