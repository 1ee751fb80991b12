package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// encodeDateFormat is the notation the encoder always emits.
const encodeDateFormat = "20060102"

// yearPivot disambiguates two-digit years: values up to the pivot fall in
// the 2000s, everything above in the 1900s.
const yearPivot = 30

// ParseDate parses the date notations accepted by ledger back-ends:
// YYYYMMDD, DD.MM.YYYY, DDMMYY and DD.MM.YY. Two-digit years pivot at 30.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch {
	case len(s) == 8 && !strings.Contains(s, "."):
		return time.Parse(encodeDateFormat, s)
	case len(s) == 10:
		return time.Parse("02.01.2006", s)
	case len(s) == 6:
		return shortDate(s[0:2], s[2:4], s[4:6])
	case len(s) == 8:
		parts := strings.Split(s, ".")
		if len(parts) == 3 {
			return shortDate(parts[0], parts[1], parts[2])
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date notation %q", s)
}

func shortDate(dayStr, monthStr, yearStr string) (time.Time, error) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q", dayStr)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q", monthStr)
	}
	yy, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q", yearStr)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %s.%s.%s", dayStr, monthStr, yearStr)
	}
	year := 1900 + yy
	if yy <= yearPivot {
		year = 2000 + yy
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid date %s.%s.%s", dayStr, monthStr, yearStr)
	}
	return t, nil
}
