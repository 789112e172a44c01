package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// Matches a normalized Brazilian number: 2-digit area code plus an
	// 8 or 9 digit subscriber number.
	phoneRegex = regexp.MustCompile(`^[1-9][0-9][0-9]{8,9}$`)
	// Regex to remove non-digit characters
	digitsOnlyRegex = regexp.MustCompile(`[^0-9]`)
)

// NormalizePhoneNumber normalizes a phone number to E.164 (+55...) form.
// Accepts local formats like "(11) 99930-0861" as well as numbers already
// carrying the country code.
func NormalizePhoneNumber(phone string) (string, error) {
	if phone == "" {
		return "", errors.New("phone number cannot be empty")
	}

	// Remove all non-digit characters (hyphens, spaces, parentheses, etc.)
	normalized := digitsOnlyRegex.ReplaceAllString(phone, "")

	// Strip the country code if present
	if strings.HasPrefix(normalized, "55") && len(normalized) >= 12 {
		normalized = normalized[2:]
	}

	if !phoneRegex.MatchString(normalized) {
		return "", errors.New("invalid Brazilian phone number format")
	}

	return "+55" + normalized, nil
}

// FormatPhoneNumberForDisplay formats a normalized number for display.
// Example: "+5511999300861" -> "(11) 99930-0861"
func FormatPhoneNumberForDisplay(phone string) string {
	digits := strings.TrimPrefix(phone, "+55")
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return phone // Return as-is if not a recognizable number
	}
}

// ValidateMobileNumber reports whether the phone is a valid Brazilian
// mobile number (9-digit subscriber starting with 9).
func ValidateMobileNumber(phone string) bool {
	normalized, err := NormalizePhoneNumber(phone)
	if err != nil {
		return false
	}

	digits := strings.TrimPrefix(normalized, "+55")
	return len(digits) == 11 && digits[2] == '9'
}
