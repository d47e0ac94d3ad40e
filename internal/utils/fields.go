package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire form for all inventory dates.
const DateLayout = "01/02/06"

var (
	specialCharPattern = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	emailPattern       = regexp.MustCompile(`^[a-z0-9]+[._]?[a-z0-9]+@\w+\.\w+$`)
)

// NormalizeDate strips "-" and "/" separators and reformats six digit
// input as MM/DD/YY. Empty input passes through untouched. Anything else
// is returned as-is with ok=false so the caller can keep the raw text.
func NormalizeDate(raw string) (string, bool) {
	if raw == "" {
		return "", true
	}

	clean := strings.ReplaceAll(raw, "-", "")
	clean = strings.ReplaceAll(clean, "/", "")

	if len(clean) != 6 || !isDigits(clean) {
		return raw, false
	}

	return clean[:2] + "/" + clean[2:4] + "/" + clean[4:], true
}

// ParseDate normalizes raw and parses it into a calendar date. Dates are
// kept structured internally and only formatted as MM/DD/YY at the edges.
func ParseDate(raw string) (time.Time, bool) {
	normalized, ok := NormalizeDate(raw)
	if !ok || normalized == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(DateLayout, normalized)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date in the MM/DD/YY wire form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateQuantity reports whether raw is all digits with a value
// strictly greater than zero.
func ValidateQuantity(raw string) bool {
	if raw == "" || !isDigits(raw) {
		return false
	}

	qty, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return qty > 0
}

// HasSpecialChars reports whether raw contains anything that is not a
// letter, digit or space.
func HasSpecialChars(raw string) bool {
	return specialCharPattern.MatchString(raw)
}

// ValidEmail checks raw against the registration email pattern.
func ValidEmail(raw string) bool {
	return emailPattern.MatchString(raw)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
