// Package parse holds the lenient parsers used for form and query input:
// leading-integer parsing and calendar-date parsing.
package parse

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DateLayout renders a calendar date without a time-of-day component,
// e.g. "Thu Jan 05 2023".
const DateLayout = "Mon Jan 02 2006"

// dateLayouts are tried in order by Date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	DateLayout,
	"Mon Jan 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.RFC1123,
	time.RFC1123Z,
	"2006-01",
	"2006",
}

// LeadingInt parses the integer prefix of s. Leading whitespace and a sign
// are accepted, a 0x/0X prefix switches to hexadecimal, and anything after
// the digits is ignored: "5abc" is 5, "3.9" is 3, "0x1A" is 26.
// ok is false when s has no leading digits. Values outside the int range
// saturate.
func LeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		// only ErrRange is possible here: the prefix is all digits
		if neg {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	if neg {
		v = -v
	}
	return int(v), true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// Date parses s as a calendar date and returns UTC midnight of that day.
// Inputs carrying an offset are converted to UTC before truncation.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), true
		}
	}
	return time.Time{}, false
}

// Day truncates t to UTC midnight of its calendar day in UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t with DateLayout in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
