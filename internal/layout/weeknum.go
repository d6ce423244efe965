package layout

import (
	"strconv"

	"github.com/Davoodeh/jcal/internal/date"
	"github.com/Davoodeh/jcal/internal/textutil"
)

// WeekNumRule selects how week numbers are counted.
type WeekNumRule int

const (
	// WeekNumNone disables the week-number lane.
	WeekNumNone WeekNumRule = iota
	// WeekNumBased numbers weeks from the first one starting on the base
	// weekday.
	WeekNumBased
	// WeekNumISO numbers ISO 8601 weeks.
	WeekNumISO
)

// weekNumWidth is the cell width of the week-number lane.
const weekNumWidth = 2

// weekNumEmpty fills the lane where a grid row holds no days.
const weekNumEmpty = "  "

func (r WeekNumRule) of(d date.Date, base date.Weekday) int {
	if r == WeekNumISO {
		return d.ISOWeeknum()
	}
	return d.Weeknum(base)
}

// Weeknums returns the week numbers of the six grid weeks of the date's
// month. A 0 means the week counts as the last week of the previous year.
func Weeknums(r WeekNumRule, d date.Date, base date.Weekday) [WeekCount]int {
	start := r.of(d.WithDay(1), base)
	var v [WeekCount]int
	for i := range v {
		v[i] = start + i
	}
	return v
}

// FormatWeeknums renders the week-number lane of the date's month. A leading
// 0 resolves to the last week of the previous year under the same rule, and
// a cell matching the highlighted week is reversed.
func FormatWeeknums(d date.Date, base date.Weekday, r WeekNumRule, h Highlight) [WeekCount]string {
	nums := Weeknums(r, d, base)
	hl, hasWeek := h.Week()
	var out [WeekCount]string
	for i, n := range nums {
		if n == 0 {
			prev := d.WithYear(d.Year() - 1)
			n = r.of(prev.WithOrdinal(prev.YearEndOrdinal()), base)
		}
		s := textutil.Space.Right(strconv.Itoa(n), weekNumWidth)
		if hasWeek && n == hl {
			s = textutil.Reverse(s)
		}
		out[i] = s
	}
	return out
}

// WeekdayNames returns the full weekday names in grid order, starting from
// base. Callers cut them to the cell width they render in.
func WeekdayNames(base date.Weekday) [WeekDays]string {
	var v [WeekDays]string
	for i := range v {
		v[i] = base.Forward(i).String()
	}
	return v
}
