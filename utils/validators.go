// File: /utils/validators.go
package utils

import (
	"regexp"
	"time"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsValidDateRange checks both dates parse as YYYY-MM-DD and the end does not
// precede the start.
func IsValidDateRange(start, end string) bool {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return false
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return false
	}
	return !endDate.Before(startDate)
}
