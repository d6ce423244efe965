package layout

import (
	"github.com/Davoodeh/jcal/internal/date"
	"github.com/Davoodeh/jcal/internal/textutil"
)

// Row is a horizontal run of consecutive months sharing one column format.
type Row struct {
	// MoreColumns is how many months follow the first one.
	MoreColumns int
	// Delimiter separates the columns of the row.
	Delimiter string
	// Column holds the first month and the per-column formatting.
	Column Column
}

// Width is the printed width of the full row.
func (r Row) Width() int {
	cw := r.Column.Width()
	return cw*(r.MoreColumns+1) + textutil.Width(r.Delimiter)*r.MoreColumns
}

// ColumnsInWidth returns how many columns of this row's format fit in
// maxWidth, 0 when not even one does.
func (r Row) ColumnsInWidth(maxWidth int) int {
	cw := r.Column.Width()
	if maxWidth < cw {
		return 0
	}
	return 1 + (maxWidth-cw)/(cw+textutil.Width(r.Delimiter))
}

// Format renders the row's lines and returns the month following its last
// column. The row itself is not mutated.
func (r Row) Format(h Highlight) (lines []string, next date.Date) {
	col := r.Column
	lines = col.Format(h)
	next = col.Content.Grid.Date.AddMonths(1)
	for n := r.MoreColumns; n > 0; n-- {
		col.Content.Grid.Date = next
		for i, line := range col.Format(h) {
			lines[i] += r.Delimiter + line
		}
		next = col.Content.Grid.Date.AddMonths(1)
	}
	return lines, next
}
