// Package dateutils parses and formats the ledger's day/month/year dates, whose
// delimiter is a user setting, and renders localized month labels.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// CanonicalDelimiter is the delimiter layouts are written with before substitution.
const CanonicalDelimiter = "."

// Delimiters a user may choose for ledger dates.
var Delimiters = []string{".", "-", "/"}

const formatLayout = "02.01.2006"

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString trims the string and collapses internal whitespace runs.
func CleanDateString(s string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// IsValidDelimiter reports whether d is one of Delimiters.
func IsValidDelimiter(d string) bool {
	for _, allowed := range Delimiters {
		if d == allowed {
			return true
		}
	}
	return false
}

// DetectDelimiter returns the third character of a dd?mm?yyyy date. ok is false
// when the string is too short or that character is a letter or digit, which
// means the date is not laid out as day, delimiter, month.
func DetectDelimiter(date string) (string, bool) {
	runes := []rune(CleanDateString(date))
	if len(runes) < 3 {
		return "", false
	}
	d := runes[2]
	if unicode.IsLetter(d) || unicode.IsDigit(d) || unicode.IsSpace(d) {
		return "", false
	}
	return string(d), true
}

// ParseDate parses a day/month/year date whose parts are separated by delim.
// Single-digit day and month are accepted. The result is UTC midnight.
func ParseDate(date, delim string) (time.Time, error) {
	clean := CleanDateString(date)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if delim == "" {
		return time.Time{}, fmt.Errorf("no delimiter given for date '%s'", date)
	}

	parts := strings.Split(clean, delim)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date '%s' is not day%smonth%syear", date, delim, delim)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("invalid date part '%s' in '%s'", p, date)
		}
		nums[i] = n
	}
	d, m, y := nums[0], nums[1], nums[2]
	if y < 1 || y > 9999 {
		return time.Time{}, fmt.Errorf("year out of range in '%s'", date)
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != m {
		return time.Time{}, fmt.Errorf("no such day '%s'", date)
	}
	return t, nil
}

// ParseDetected parses a date using the delimiter found by DetectDelimiter.
func ParseDetected(date string) (time.Time, error) {
	delim, ok := DetectDelimiter(date)
	if !ok {
		return time.Time{}, fmt.Errorf("no delimiter found in date '%s'", date)
	}
	return ParseDate(date, delim)
}

// FormatDate renders t as dd?mm?yyyy with delim between the parts.
func FormatDate(t time.Time, delim string) string {
	return strings.ReplaceAll(t.Format(formatLayout), CanonicalDelimiter, delim)
}

// ReplaceDelimiter swaps every occurrence of from with to. It does not parse.
func ReplaceDelimiter(date, from, to string) string {
	if from == "" || from == to {
		return date
	}
	return strings.ReplaceAll(date, from, to)
}
