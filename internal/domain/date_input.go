package domain

import (
	"strings"
	"time"
)

// Date input constants for the MM/DD/YYYY text field.
const (
	DisplayDateLayout = "01/02/2006"
	LongDateLayout    = "January 2, 2006"
	MaxDisplayLength  = len(DisplayDateLayout)
	maxInputDigits    = 8
	// ParseThreshold is the display length from which typed input is parsed.
	ParseThreshold = 8
)

// FormatInputDate keeps the digits of raw, truncated to eight, and inserts
// "/" after the month and day groups: "ab12cd34ef5678gh" -> "12/34/5678".
// It does not check numeric ranges.
func FormatInputDate(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == maxInputDigits {
				break
			}
		}
	}
	d := digits.String()
	switch {
	case len(d) > 4:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	case len(d) > 2:
		return d[:2] + "/" + d[2:]
	default:
		return d
	}
}

// FormatDisplayDate renders t as MM/DD/YYYY.
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// TryParseDisplayDate parses a strict MM/DD/YYYY string into local midnight of
// today's location. It reports false for incomplete or non-numeric text,
// impossible calendar dates such as 02/30/2020, and dates outside
// [01/01/1900, today].
func TryParseDisplayDate(text string, today time.Time) (time.Time, bool) {
	if !isCanonicalShape(text) {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(DisplayDateLayout, text, today.Location())
	if err != nil {
		return time.Time{}, false
	}
	if !InGreenCardRange(parsed, today) {
		return time.Time{}, false
	}
	return parsed, true
}

// isCanonicalShape checks for exactly DD/DD/DDDD. time.Parse alone would
// accept single-digit fields for "01" and "02".
func isCanonicalShape(text string) bool {
	if len(text) != MaxDisplayLength {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if i == 2 || i == 5 {
			if c != '/' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
