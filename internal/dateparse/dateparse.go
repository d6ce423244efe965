// Package dateparse turns user-supplied text into dates: month and weekday
// names by unique prefix, Y/M/D strings, Unix timestamps, and the relative
// phrases date tools conventionally accept.
package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Davoodeh/jcal/internal/date"
)

// prefixIndex finds the name key is a unique case-insensitive prefix of.
// It returns -1 for no match or an ambiguous one; an exact match always wins.
func prefixIndex(names []string, key string) int {
	if key == "" {
		return -1
	}
	k := strings.ToLower(key)
	match := -1
	for i, name := range names {
		name = strings.ToLower(name)
		if name == k {
			return i
		}
		if strings.HasPrefix(name, k) {
			if match >= 0 {
				return -1
			}
			match = i
		}
	}
	return match
}

// Month parses a month given as a 1..12 number or a unique prefix of a month
// name in the given calendar.
func Month(s string, sys date.System) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range", n)
		}
		return n, nil
	}
	names := date.MonthNames(sys)
	if i := prefixIndex(names[:], s); i >= 0 {
		return i + 1, nil
	}
	return 0, fmt.Errorf("unknown %s month %q", sys, s)
}

// Weekday parses a weekday given as a 0..6 number (Sunday first) or a unique
// prefix of its English name.
func Weekday(s string) (date.Weekday, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday %d out of range", n)
		}
		return date.Weekday(n), nil
	}
	if i := prefixIndex(date.Weekdays[:], s); i >= 0 {
		return date.Weekday(i), nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// YMD parses a "year/month/day" string, also accepting '-' and '.' as
// separators, and rejects components that do not name an existing day.
func YMD(s string, sys date.System) (date.Date, error) {
	norm := strings.NewReplacer("-", "/", ".", "/").Replace(s)
	parts := strings.Split(norm, "/")
	if len(parts) != 3 {
		return date.Date{}, fmt.Errorf("date %q is not in year/month/day form", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return date.Date{}, fmt.Errorf("date %q has a non-numeric component", s)
		}
		v[i] = n
	}
	d := date.New(sys, v[0], v[1], v[2])
	if y, m, dd := d.YMD(); y != v[0] || m != v[1] || dd != v[2] {
		return date.Date{}, fmt.Errorf("%q is not a valid %s date", s, sys)
	}
	return d, nil
}

var relativeRe = regexp.MustCompile(`^([+-]?\d+)\s*(day|week|month|year)s?(\s+ago)?$`)

// absoluteLayouts are tried in order against non-relative inputs.
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// Time parses the date strings jdate-style tools accept: @ timestamps,
// RFC 3339 and common Y-M-D layouts, and relative phrases such as
// "yesterday" or "2 weeks ago". Plain layouts are read in now's location.
func Time(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "@"); ok {
		secs, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("bad timestamp %q", s)
		}
		return time.Unix(secs, 0).In(now.Location()), nil
	}

	for _, l := range absoluteLayouts {
		if t, err := time.ParseInLocation(l, s, now.Location()); err == nil {
			return t, nil
		}
	}

	switch strings.ToLower(s) {
	case "now", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}

	if m := relativeRe.FindStringSubmatch(strings.ToLower(s)); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("bad offset in %q", s)
		}
		if m[3] != "" {
			n = -n
		}
		switch m[2] {
		case "day":
			return now.AddDate(0, 0, n), nil
		case "week":
			return now.AddDate(0, 0, 7*n), nil
		case "month":
			return now.AddDate(0, n, 0), nil
		case "year":
			return now.AddDate(n, 0, 0), nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}
