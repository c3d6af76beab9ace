// Package gamedate turns wall-clock time into the calendar-day keys and
// cache-busting tokens used to request scoreboard data.
package gamedate

import (
	"regexp"
	"strconv"
	"time"
)

// cacheEpochMillis is subtracted from the current time to form cache tokens.
const cacheEpochMillis int64 = 1515000000000

var datePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

// Date is a validated month/day/year triple, kept as the digits that were
// matched so "1/5/2024" and "01/05/2024" both survive unchanged.
type Date struct {
	Month string
	Day   string
	Year  string
}

// Today is the resolved current day plus the token to send with its request.
type Today struct {
	Formatted  string
	CacheToken int64
	Date
}

// ValidateDate extracts month, day and year from text of the form MM/DD/YYYY
// (one or two digit month and day). It reports false instead of failing when
// the text does not match.
func ValidateDate(text string) (Date, bool) {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return Date{}, false
	}
	return Date{Month: m[1], Day: m[2], Year: m[3]}, true
}

// CacheToken derives a per-call token from now. It changes every
// millisecond, which is enough to defeat intermediary HTTP caches.
func CacheToken(now time.Time) int64 {
	return now.UnixMilli() - cacheEpochMillis
}

// ResolveToday returns the calendar day containing now in loc.
// A nil loc means time.Local.
func ResolveToday(now time.Time, loc *time.Location) Today {
	if loc == nil {
		loc = time.Local
	}
	formatted := now.In(loc).Format("01/02/2006")
	date, _ := ValidateDate(formatted)
	return Today{
		Formatted:  formatted,
		CacheToken: CacheToken(now),
		Date:       date,
	}
}

// DayKey returns YYYYMMDD with month and day padded to two digits.
func (d Date) DayKey() string {
	return d.Year + pad2(d.Month) + pad2(d.Day)
}

// String returns the date as MM/DD/YYYY.
func (d Date) String() string {
	return pad2(d.Month) + "/" + pad2(d.Day) + "/" + d.Year
}

// RequestKey is the day key followed by the cache token.
func RequestKey(d Date, token int64) string {
	return d.DayKey() + strconv.FormatInt(token, 10)
}

// LoadLocation resolves a timezone name; "" and "Local" map to time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func pad2(s string) string {
	if len(s) > 1 {
		return s
	}
	return "0" + s
}
