// Package date provides a civil date abstraction spanning the proleptic
// Gregorian and Jalali calendars. A Date is a plain value; deriving methods
// return new values and never fail, saturating out-of-range components to the
// nearest valid date instead.
package date

import (
	"fmt"
	"time"

	"github.com/Davoodeh/jcal/internal/jalali"
)

// System tags the calendar a Date belongs to.
type System int

const (
	Gregorian System = iota
	Jalali
)

func (s System) String() string {
	if s == Jalali {
		return "jalali"
	}
	return "gregorian"
}

// Gregorian year bounds. Kept symmetric with the Jalali table's reach so
// every representable date converts cleanly.
const (
	gregorianMinYear = 1
	gregorianMaxYear = 9999
)

var (
	gregorianMinDays = gregorianDays(gregorianMinYear, 1, 1)
	gregorianMaxDays = gregorianDays(gregorianMaxYear, 12, 31)
)

// gregorianDays converts a Gregorian date to Unix epoch days, normalizing
// out-of-range components the way time.Date does.
func gregorianDays(y, m, d int) int {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return int(t.Unix() / 86400) // midnight UTC is an exact multiple
}

func daysGregorian(days int) (y, m, d int) {
	t := time.Unix(int64(days)*86400, 0).UTC()
	ty, tm, td := t.Date()
	return ty, int(tm), td
}

func (s System) minYear() int {
	if s == Jalali {
		return jalali.MinYear
	}
	return gregorianMinYear
}

func (s System) maxYear() int {
	if s == Jalali {
		return jalali.MaxYear
	}
	return gregorianMaxYear
}

func (s System) minDays() int {
	if s == Jalali {
		return jalali.MinDays
	}
	return gregorianMinDays
}

func (s System) maxDays() int {
	if s == Jalali {
		return jalali.MaxDays
	}
	return gregorianMaxDays
}

func (s System) monthLen(y, m int) int {
	if s == Jalali {
		return jalali.MonthLen(y, m)
	}
	return gregorianDays(y, m+1, 1) - gregorianDays(y, m, 1)
}

func (s System) yearLen(y int) int {
	if s == Jalali {
		return jalali.YearLen(y)
	}
	return gregorianDays(y+1, 1, 1) - gregorianDays(y, 1, 1)
}

// fromYMD converts valid calendar components to epoch days.
func (s System) fromYMD(y, m, d int) int {
	if s == Jalali {
		return jalali.ToEpochDays(y, m, d)
	}
	return gregorianDays(y, m, d)
}

// ymd breaks epoch days into calendar components. days must be within the
// system's range.
func (s System) ymd(days int) (y, m, d int) {
	if s == Jalali {
		return jalali.FromEpochDays(days)
	}
	return daysGregorian(days)
}

// Date is a day in one of the supported calendars. The zero value is the
// Gregorian 1970-01-01.
type Date struct {
	sys  System
	days int // days since the Unix epoch
}

// New returns the given calendar day, clamping each component into range:
// first the year to the calendar's span, then the month to 1..12, then the
// day to the resulting month's length.
func New(sys System, y, m, d int) Date {
	y = clamp(y, sys.minYear(), sys.maxYear())
	m = clamp(m, 1, 12)
	d = clamp(d, 1, sys.monthLen(y, m))
	return Date{sys, sys.fromYMD(y, m, d)}
}

// FromTime returns the Gregorian date of t in its own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return New(Gregorian, y, int(m), d)
}

// System returns the calendar the date is expressed in.
func (d Date) System() System { return d.sys }

// EpochDays returns the days since 1970-01-01.
func (d Date) EpochDays() int { return d.days }

// YMD returns the calendar components of the date.
func (d Date) YMD() (year, month, day int) { return d.sys.ymd(d.days) }

func (d Date) Year() int  { y, _, _ := d.YMD(); return y }
func (d Date) Month() int { _, m, _ := d.YMD(); return m }
func (d Date) Day() int   { _, _, dd := d.YMD(); return dd }

// Ordinal returns the 1-based day of the year.
func (d Date) Ordinal() int {
	y, _, _ := d.YMD()
	return d.days - d.sys.fromYMD(y, 1, 1) + 1
}

// Weekday returns the day of the week. The epoch fell on a Thursday.
func (d Date) Weekday() Weekday {
	return Weekday(((d.days+4)%7 + 7) % 7)
}

// MonthEndDay returns the number of days in the date's month.
func (d Date) MonthEndDay() int {
	y, m, _ := d.YMD()
	return d.sys.monthLen(y, m)
}

// YearEndOrdinal returns the number of days in the date's year.
func (d Date) YearEndOrdinal() int {
	y, _, _ := d.YMD()
	return d.sys.yearLen(y)
}

// WithYear replaces the year, saturating the other components as needed.
func (d Date) WithYear(y int) Date {
	_, m, dd := d.YMD()
	return New(d.sys, y, m, dd)
}

// WithMonth replaces the month, clamping it to 1..12 and the day to the new
// month's length.
func (d Date) WithMonth(m int) Date {
	y, _, dd := d.YMD()
	return New(d.sys, y, m, dd)
}

// WithDay replaces the day of the month, clamping it to the month's length.
func (d Date) WithDay(dd int) Date {
	y, m, _ := d.YMD()
	return New(d.sys, y, m, dd)
}

// WithOrdinal moves the date to the given 1-based day of its year, clamping
// to the year's length.
func (d Date) WithOrdinal(o int) Date {
	y, _, _ := d.YMD()
	o = clamp(o, 1, d.sys.yearLen(y))
	return Date{d.sys, d.sys.fromYMD(y, 1, 1) + o - 1}
}

// AddMonths moves n months forward (or backward when negative) and lands on
// the first day of the resulting month. The year saturates at the calendar's
// bounds.
func (d Date) AddMonths(n int) Date {
	y, m, _ := d.YMD()
	total := y*12 + (m - 1) + n
	ny := floorDiv(total, 12)
	nm := floorMod(total, 12) + 1
	switch {
	case ny < d.sys.minYear():
		ny, nm = d.sys.minYear(), 1
	case ny > d.sys.maxYear():
		ny, nm = d.sys.maxYear(), 12
	}
	return New(d.sys, ny, nm, 1)
}

// Weeknum returns the week number of the date under the base-weekday rule:
// week 1 is the first week of the year that starts on base, and days before
// it belong to week 0.
func (d Date) Weeknum(base Weekday) int {
	jan1 := d.WithOrdinal(1)
	firstBase := 1 + jan1.Weekday().StepsTo(base)
	ord := d.Ordinal()
	if ord < firstBase {
		return 0
	}
	return (ord-firstBase)/7 + 1
}

// ISOWeeknum returns the ISO 8601 week number, or 0 when the date belongs to
// the last week of the previous year.
func (d Date) ISOWeeknum() int {
	dow := int(d.Weekday())
	if dow == 0 {
		dow = 7
	}
	week := (d.Ordinal() - dow + 10) / 7
	if week < 1 {
		return 0
	}
	return week
}

// WithWeeknum moves the date to the first day of the given 0-based week
// index of its year under the base-weekday rule. The index is clamped to
// 0..53 and the resulting ordinal to the year.
func (d Date) WithWeeknum(week int, base Weekday) Date {
	week = clamp(week, 0, 53)
	jan1 := d.WithOrdinal(1)
	off := jan1.Weekday().StepsTo(base)
	return d.WithOrdinal(week*7 + off + 1)
}

// Convert re-expresses the date in the target calendar. The absolute day is
// preserved except at the target's range extremes, where it saturates.
func (d Date) Convert(sys System) Date {
	if d.sys == sys {
		return d
	}
	return Date{sys, clamp(d.days, sys.minDays(), sys.maxDays())}
}

// Equal reports whether two dates denote the same absolute day, regardless
// of the calendars they are expressed in.
func (d Date) Equal(o Date) bool { return d.days == o.days }

// MonthName returns the date's month name in its calendar.
func (d Date) MonthName() string {
	names := MonthNames(d.sys)
	return names[d.Month()-1]
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Unix(int64(d.days)*86400, 0).UTC()
}

func (d Date) String() string {
	y, m, dd := d.YMD()
	return fmt.Sprintf("%04d/%02d/%02d", y, m, dd)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
