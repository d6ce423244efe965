package layout

import "github.com/Davoodeh/jcal/internal/textutil"

// Layout renders a whole calendar: a span of months cut into rows.
type Layout struct {
	// Row describes the column format and, through MoreColumns, the total
	// number of months in the span.
	Row Row
	// RowColumns caps how many columns go on one printed row. Values below 1
	// behave like 1.
	RowColumns int
	// CommonWeekday shares a single weekday lane across the layout instead
	// of one per column. When nil, vertical mode decides.
	CommonWeekday *bool
	// Highlight is the day or week highlighted across the layout.
	Highlight Highlight
}

func (l Layout) commonWeekdays() bool {
	if l.CommonWeekday != nil {
		return *l.CommonWeekday
	}
	return l.Row.Column.Vertical
}

// rowsLeftOffset is the width the shared vertical weekday prefix shifts the
// rows by.
func (l Layout) rowsLeftOffset() int {
	if l.Row.Column.Vertical && l.commonWeekdays() {
		return l.Row.Column.Content.Grid.DayCellWidth() + textutil.Width(l.Row.Column.Delimiter)
	}
	return 0
}

// ColumnsInWidth returns how many columns of this layout fit in width,
// accounting for the shared prefix.
func (l Layout) ColumnsInWidth(width int) int {
	width -= l.rowsLeftOffset()
	if width < 0 {
		return 0
	}
	return l.Row.ColumnsInWidth(width)
}

// Lines renders the layout.
func (l Layout) Lines() []string {
	row := l.Row
	months := row.MoreColumns + 1
	start := row.Column.Content.Grid.Date

	// a span that leaves the start year needs years in the headers
	if start.AddMonths(months-1).Year() != start.Year() {
		row.Column.YearInHeader = true
	}

	var out []string
	var prefixes []string
	if l.commonWeekdays() {
		cells := append([]string{""}, row.Column.Content.FormatWeekdaysRow()...)
		if row.Column.Vertical {
			// one prefix cell per line, cycled: blank for the header, then
			// the weekday of each transposed line
			for _, cell := range cells {
				prefixes = append(prefixes, row.Column.Content.Grid.PadCell(cell)+row.Column.Delimiter)
			}
		} else {
			out = append(out, row.Column.JoinCells(cells[1:]))
		}
		row.Column.Content.Weekdays = false
	}

	perRow := max(l.RowColumns, 1)
	next := start
	for printed := 0; printed < months; {
		n := min(months-printed, perRow)
		row.Column.Content.Grid.Date = next
		row.MoreColumns = n - 1
		var lines []string
		lines, next = row.Format(l.Highlight)
		for i, line := range lines {
			if len(prefixes) > 0 {
				line = prefixes[i%len(prefixes)] + line
			}
			out = append(out, line)
		}
		printed += n
	}
	return out
}
