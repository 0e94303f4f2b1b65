package utils

import (
	"regexp"
	"strings"
)

// Korean mobile number, hyphens optional (e.g. 010-1234-5678 or 01012345678).
var phonePattern = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

// IsValidPhone reports whether s is a valid Korean mobile number.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// NormalizePhone strips hyphens for provider APIs that expect bare digits.
func NormalizePhone(s string) string {
	return strings.ReplaceAll(s, "-", "")
}
