// Package cli wires the command-line surface of the jcal and jdate tools to
// the date and layout engines.
package cli

import (
	"strings"

	"github.com/Davoodeh/jcal/internal/date"
	"github.com/Davoodeh/jcal/internal/layout"
)

// Config is a fully resolved calendar request, built from flags and
// positional arguments.
type Config struct {
	// Now anchors the view; its calendar decides the one displayed.
	Now date.Date
	// Months is how many months the view spans, at least 1.
	Months int
	// Span centers the span around Now instead of starting there.
	Span bool
	// YearMode prints Now's whole year instead of a span from Now.
	YearMode bool
	// BaseWeekday is the first weekday of the grids.
	BaseWeekday date.Weekday
	// OrdinalMode numbers days by day of the year.
	OrdinalMode bool
	// WeekNums enables and selects the week-number lane.
	WeekNums layout.WeekNumRule
	// Vertical transposes the month grids.
	Vertical bool
	// Columns caps the months printed side by side. With AutoColumns it is
	// the upper bound of the fit; otherwise it is used as given.
	Columns int
	// AutoColumns fits the column count to WidthChars.
	AutoColumns bool
	// WidthChars is the terminal width used by AutoColumns.
	WidthChars int
	// YearInHeader forces years into month headers even within one year.
	YearInHeader bool
	// Highlight is the day or week drawn in reverse video.
	Highlight layout.Highlight
}

// StartMonth is the first month the layout prints.
func (c Config) StartMonth() date.Date {
	if c.YearMode {
		return c.Now.WithMonth(1).WithDay(1)
	}
	start := c.Now.WithDay(1)
	if !c.Span || c.Months <= 1 {
		return start
	}
	before := (c.Months-1)/2 + (c.Months-1)%2
	return start.AddMonths(-before)
}

// Layout assembles the layout for the request.
func (c Config) Layout() layout.Layout {
	months := max(c.Months, 1)
	if c.YearMode {
		months = 12
	}
	l := layout.Layout{
		Row: layout.Row{
			MoreColumns: months - 1,
			Delimiter:   strings.Repeat(layout.DefaultDelimiter, 3),
			Column: layout.Column{
				Content: layout.ColumnContent{
					WeekNums:           c.WeekNums,
					WeekNumsBeforeGrid: true,
					Weekdays:           true,
					WeekdaysBeforeGrid: true,
					Grid: layout.Grid{
						Date:        c.StartMonth(),
						OrdinalMode: c.OrdinalMode,
						BaseWeekday: c.BaseWeekday,
					},
				},
				Delimiter:    layout.DefaultDelimiter,
				YearInHeader: c.YearInHeader,
				Vertical:     c.Vertical,
			},
		},
		Highlight: c.Highlight,
	}
	if c.Vertical {
		// the shared weekday lane replaces the per-grid one, and week
		// numbers read better trailing the transposed weeks
		l.Row.Column.Content.WeekNumsBeforeGrid = false
		common := true
		l.CommonWeekday = &common
	}
	l.RowColumns = c.suggestedColumns(l, months)
	return l
}

// suggestedColumns picks the columns per row: the configured count, or the
// widest fit capped by it, never below one.
func (c Config) suggestedColumns(l layout.Layout, months int) int {
	limit := c.Columns
	if limit < 1 {
		limit = months
	}
	if !c.AutoColumns {
		return limit
	}
	fit := l.ColumnsInWidth(c.WidthChars)
	return max(min(fit, limit), 1)
}
