// Package layout renders one or more calendar months as aligned lines of
// text. A Grid generates the day numbers of one month, ColumnContent
// decorates it with week-number and weekday lanes, Column adds the month
// header and optional transposition, Row chains columns horizontally, and
// Layout splits a span of months into rows.
package layout

import (
	"strconv"

	"github.com/Davoodeh/jcal/internal/date"
	"github.com/Davoodeh/jcal/internal/textutil"
)

const (
	// WeekCount is the number of week rows in a month grid.
	WeekCount = 6
	// WeekDays is the number of days in a week.
	WeekDays = 7
	// DefaultDelimiter separates cells within a column.
	DefaultDelimiter = " "
)

// Grid generates the day-number matrix of one month.
type Grid struct {
	// Date selects the month; only its year and month matter.
	Date date.Date
	// OrdinalMode numbers cells by day of the year instead of day of the
	// month.
	OrdinalMode bool
	// BaseWeekday is the weekday of the first grid column.
	BaseWeekday date.Weekday
}

// DayCellWidth is the character width of one day cell. Ordinal numbers need
// three digits.
func (g Grid) DayCellWidth() int {
	if g.OrdinalMode {
		return 3
	}
	return 2
}

// PadCell fits s into a day cell, right-aligned.
func (g Grid) PadCell(s string) string {
	return textutil.Space.Right(s, g.DayCellWidth())
}

// Cells returns the 6x7 matrix of day numbers, 0 marking a blank cell. The
// month always occupies six rows so columns of different months align.
func (g Grid) Cells() [WeekCount][WeekDays]int {
	first := g.Date.WithDay(1)
	end := g.Date.MonthEndDay()
	offset := 0
	if g.OrdinalMode {
		offset = first.Ordinal() - 1
	}
	var cells [WeekCount][WeekDays]int
	row, col := 0, g.BaseWeekday.StepsTo(first.Weekday())
	for v := 1; v <= end; v++ {
		cells[row][col] = v + offset
		col++
		if col == WeekDays {
			col, row = 0, row+1
		}
	}
	return cells
}

// cellDate reconstructs the date a cell value denotes.
func (g Grid) cellDate(v int) date.Date {
	if g.OrdinalMode {
		return g.Date.WithOrdinal(v)
	}
	return g.Date.WithDay(v)
}

// Format renders the cells right-aligned, reversing the one that equals the
// highlighted day.
func (g Grid) Format(h Highlight) [WeekCount][WeekDays]string {
	day, hasDay := h.Day()
	cells := g.Cells()
	var out [WeekCount][WeekDays]string
	for i, row := range cells {
		for j, v := range row {
			if v == 0 {
				out[i][j] = g.PadCell("")
				continue
			}
			s := g.PadCell(strconv.Itoa(v))
			if hasDay && g.cellDate(v).Equal(day) {
				s = textutil.Reverse(s)
			}
			out[i][j] = s
		}
	}
	return out
}
