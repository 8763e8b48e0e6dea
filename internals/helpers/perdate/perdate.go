// Package perdate normalizes user-entered dates. The admin UI sends
// purchase dates either in the Jalali calendar ("1403/05/15",
// "1403-05-15") or as Gregorian ISO-8601; both end up as a plain UTC
// calendar day.
package perdate

import (
	"strconv"
	"strings"
	"time"

	jalaali "github.com/jalaali/go-jalaali"
)

// Jalali years are nowhere near Gregorian ones, so the year alone is
// enough to tell the calendars apart.
const (
	jalaliYearMin = 1200
	jalaliYearMax = 1500
)

var gregorianLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// Parse normalizes raw into a UTC calendar day. ok is false when no
// known layout matched; the caller keeps the field empty in that case
// rather than failing the whole request (lenient on purpose).
func Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if t, ok := parseJalali(s); ok {
		return t, true
	}

	for _, layout := range gregorianLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return toDay(t), true
		}
	}

	return time.Time{}, false
}

func parseJalali(s string) (time.Time, bool) {
	sep := "/"
	if !strings.Contains(s, "/") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	y, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	d, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if y < jalaliYearMin || y > jalaliYearMax || m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}

	// the library rejects days that do not exist in the Jalali month
	// (e.g. 30 Esfand in a common year)
	gy, gm, gd, err := jalaali.ToGregorian(y, jalaali.Month(m), d)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(gy, gm, gd, 0, 0, 0, 0, time.UTC), true
}

// YearMonth returns the Jalali jYYYYMM token of t, e.g. "140305" for a
// day in Mordad 1403. Barcode series are keyed on this.
func YearMonth(t time.Time) string {
	jy, jm, _, err := jalaali.ToJalaali(t.Year(), t.Month(), t.Day())
	if err != nil {
		return t.Format("200601")
	}
	return pad4(jy) + pad2(int(jm))
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func pad4(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
