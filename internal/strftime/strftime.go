// Package strftime formats instants with POSIX date(1) directives, swapping
// the date-dependent directives for Jalali values when the date calls for it.
// Time-of-day and timezone directives always come from the underlying instant.
package strftime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gostrftime "github.com/ncruces/go-strftime"

	"github.com/Davoodeh/jcal/internal/date"
)

// Directive is one %-escape of a format string: a '%', optional flag
// characters, and a terminating ASCII letter.
type Directive struct {
	Start int
	Text  string
}

// Directives scans format for %-escapes. "%%" is skipped, the E and O
// modifiers do not terminate a directive, and a '%' inside a pending escape
// restarts it.
func Directives(format string) []Directive {
	var out []Directive
	start := -1
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch == '%' {
			if i+1 < len(format) && format[i+1] == '%' {
				i++
				start = -1
				continue
			}
			if i+1 < len(format) {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}
		if isLetter(ch) && ch != 'E' && ch != 'O' {
			out = append(out, Directive{start, format[start : i+1]})
			start = -1
		}
	}
	return out
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// Expand rewrites format, replacing each directive resolve accepts and
// keeping the rest verbatim.
func Expand(format string, resolve func(string) (string, bool)) string {
	dirs := Directives(format)
	if len(dirs) == 0 {
		return format
	}
	var b strings.Builder
	prev := 0
	for _, d := range dirs {
		b.WriteString(format[prev:d.Start])
		if s, ok := resolve(d.Text); ok {
			b.WriteString(s)
		} else {
			b.WriteString(d.Text)
		}
		prev = d.Start + len(d.Text)
	}
	b.WriteString(format[prev:])
	return b.String()
}

// Format renders the format string for the instant t. When d is a Jalali
// date, the date-dependent directives are substituted with Jalali values
// first; everything else is delegated to the Gregorian formatter.
func Format(format string, t time.Time, d date.Date) string {
	if d.System() == date.Jalali {
		format = Expand(format, jalaliResolver(d))
	}
	return gostrftime.Format(format, t)
}

// jalaliResolver substitutes the directives whose value depends on the
// calendar. Unknown directives are declined and fall through to the
// Gregorian formatter.
func jalaliResolver(d date.Date) func(string) (string, bool) {
	y, m, day := d.YMD()
	return func(dir string) (string, bool) {
		verb := dir[len(dir)-1]
		upper := strings.ContainsRune(dir[1:len(dir)-1], '^')
		switch verb {
		case 'B':
			return maybeUpper(d.MonthName(), upper), true
		case 'b', 'h':
			return maybeUpper(date.Abbrev(d.MonthName()), upper), true
		case 'Y':
			return strconv.Itoa(y), true
		case 'y':
			return fmt.Sprintf("%02d", mod100(y)), true
		case 'C':
			return strconv.Itoa(y / 100), true
		case 'm':
			return fmt.Sprintf("%02d", m), true
		case 'd':
			return fmt.Sprintf("%02d", day), true
		case 'e':
			return fmt.Sprintf("%2d", day), true
		case 'j':
			return fmt.Sprintf("%03d", d.Ordinal()), true
		case 'F':
			return fmt.Sprintf("%04d-%02d-%02d", y, m, day), true
		case 'D':
			return fmt.Sprintf("%02d/%02d/%02d", m, day, mod100(y)), true
		case 'x':
			return fmt.Sprintf("%04d/%02d/%02d", y, m, day), true
		case 'V':
			return fmt.Sprintf("%02d", isoWeek(d)), true
		case 'G':
			return strconv.Itoa(isoYear(d)), true
		case 'g':
			return fmt.Sprintf("%02d", mod100(isoYear(d))), true
		case 'U':
			return fmt.Sprintf("%02d", d.Weeknum(date.Sunday)), true
		case 'W':
			return fmt.Sprintf("%02d", d.Weeknum(date.Monday)), true
		}
		return "", false
	}
}

func maybeUpper(s string, up bool) string {
	if up {
		return strings.ToUpper(s)
	}
	return s
}

func mod100(v int) int {
	return (v%100 + 100) % 100
}

// isoWeeksInYear returns 52 or 53 for the date's year: 53 when the year
// starts on the week's fourth day, or on its third day in a long year.
func isoWeeksInYear(d date.Date) int {
	dow := int(d.WithOrdinal(1).Weekday())
	if dow == 0 {
		dow = 7
	}
	if dow == 4 || (d.YearEndOrdinal() == 366 && dow == 3) {
		return 53
	}
	return 52
}

// isoWeek resolves the ISO week: 0 counts as the last week of the previous
// year, and a week past the year's last belongs to week 1 of the next.
func isoWeek(d date.Date) int {
	w := d.ISOWeeknum()
	switch {
	case w == 0:
		prev := d.WithYear(d.Year() - 1)
		return isoWeeksInYear(prev)
	case w > isoWeeksInYear(d):
		return 1
	}
	return w
}

// isoYear is the year the ISO week belongs to.
func isoYear(d date.Date) int {
	w := d.ISOWeeknum()
	switch {
	case w == 0:
		return d.Year() - 1
	case w > isoWeeksInYear(d):
		return d.Year() + 1
	}
	return d.Year()
}
