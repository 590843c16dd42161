package trip

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinYear is the earliest accepted year.
const MinYear = 1900

// ParseDate parses a DD/MM/YYYY date. Day and month take one or two digits,
// the year exactly four. Dates that do not exist on the calendar, such as
// 31/02/2024, are rejected instead of rolling over. The result is midnight
// UTC so dates compare without time-of-day or zone drift.
func ParseDate(text string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, ok := number(parts[0], 1, 2)
	if !ok {
		return time.Time{}, false
	}
	month, ok := number(parts[1], 1, 2)
	if !ok {
		return time.Time{}, false
	}
	year, ok := number(parts[2], 4, 4)
	if !ok {
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || year < MinYear {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// number parses s as a non-negative decimal made of minLen..maxLen ASCII
// digits.
func number(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen || !isDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
