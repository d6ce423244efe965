package layout

import "github.com/Davoodeh/jcal/internal/date"

// Highlight selects at most one day or one week of the rendered calendar to
// draw in reverse video. The zero value highlights nothing.
type Highlight struct {
	day  *date.Date
	week int // 1-based, 0 means none
}

// HighlightDay highlights the cell equal to d. Calendar tags are ignored;
// the match is on the absolute day.
func HighlightDay(d date.Date) Highlight {
	return Highlight{day: &d}
}

// HighlightWeek highlights the week-number cells showing the 1-based week n.
func HighlightWeek(n int) Highlight {
	return Highlight{week: n}
}

// Day returns the highlighted day, if any.
func (h Highlight) Day() (date.Date, bool) {
	if h.day == nil {
		return date.Date{}, false
	}
	return *h.day, true
}

// Week returns the highlighted week number, if any.
func (h Highlight) Week() (int, bool) {
	return h.week, h.week > 0
}
