package layout

import (
	"strconv"
	"strings"

	"github.com/Davoodeh/jcal/internal/textutil"
)

// ColumnContent is a month grid decorated with optional week-number and
// weekday lanes. Each lane can sit before or after the grid independently.
type ColumnContent struct {
	// WeekNums enables the week-number lane when not WeekNumNone.
	WeekNums WeekNumRule
	// WeekNumsBeforeGrid puts the lane left of the day cells.
	WeekNumsBeforeGrid bool
	// Weekdays enables the weekday-name lane.
	Weekdays bool
	// WeekdaysBeforeGrid puts the lane above the week rows.
	WeekdaysBeforeGrid bool
	Grid               Grid
}

// RowCols returns the dimensions of the formatted matrix, lanes included.
func (c ColumnContent) RowCols() (rows, cols int) {
	rows, cols = WeekCount, WeekDays
	if c.Weekdays {
		rows++
	}
	if c.WeekNums != WeekNumNone {
		cols++
	}
	return rows, cols
}

// RowStrWidth is the printed width of one row joined without delimiters.
func (c ColumnContent) RowStrWidth() int {
	w := WeekDays * c.Grid.DayCellWidth()
	if c.WeekNums != WeekNumNone {
		w += textutil.Width(weekNumEmpty)
	}
	return w
}

// FormatWeekdaysRow renders the weekday lane regardless of the Weekdays
// flag. When a week-number lane exists, a blank shim cell keeps the names
// over their day columns.
func (c ColumnContent) FormatWeekdaysRow() []string {
	names := WeekdayNames(c.Grid.BaseWeekday)
	row := make([]string, 0, WeekDays+1)
	for _, n := range names {
		row = append(row, c.Grid.PadCell(n))
	}
	if c.WeekNums != WeekNumNone {
		if c.WeekNumsBeforeGrid {
			row = append([]string{weekNumEmpty}, row...)
		} else {
			row = append(row, weekNumEmpty)
		}
	}
	return row
}

// Format returns the rectangular matrix of cell strings.
func (c ColumnContent) Format(h Highlight) [][]string {
	grid := c.Grid.Format(h)
	rows := make([][]string, 0, WeekCount+1)
	for i := range grid {
		rows = append(rows, append([]string(nil), grid[i][:]...))
	}

	if c.WeekNums != WeekNumNone {
		nums := FormatWeeknums(c.Grid.Date, c.Grid.BaseWeekday, c.WeekNums, h)
		for i := range rows {
			cell := weekNumEmpty
			if !blankRow(rows[i]) {
				cell = nums[i]
			}
			if c.WeekNumsBeforeGrid {
				rows[i] = append([]string{cell}, rows[i]...)
			} else {
				rows[i] = append(rows[i], cell)
			}
		}
	}

	if c.Weekdays {
		lane := c.FormatWeekdaysRow()
		if c.WeekdaysBeforeGrid {
			rows = append([][]string{lane}, rows...)
		} else {
			rows = append(rows, lane)
		}
	}
	return rows
}

func blankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Column is one month's printable unit: a centered header line over the
// content rows, optionally transposed so weeks run vertically.
type Column struct {
	Content ColumnContent
	// Delimiter separates cells within a line.
	Delimiter string
	// YearInHeader appends the year to the month header.
	YearInHeader bool
	// Vertical transposes the content.
	Vertical bool
}

// FormatYear zero-pads a year to at least four digits so headers keep their
// width across year boundaries.
func FormatYear(year int) string {
	s := strconv.Itoa(year)
	if textutil.Width(s) < 4 {
		return textutil.Zero.Right(s, 4)
	}
	return s
}

// JoinCells joins cells with the column's delimiter.
func (c Column) JoinCells(cells []string) string {
	return strings.Join(cells, c.Delimiter)
}

// Width is the printed width of every line of the column.
func (c Column) Width() int {
	dw := textutil.Width(c.Delimiter)
	if c.Vertical {
		rows, _ := c.Content.RowCols()
		return rows*c.Content.Grid.DayCellWidth() + (rows-1)*dw
	}
	_, cols := c.Content.RowCols()
	return c.Content.RowStrWidth() + (cols-1)*dw
}

func (c Column) header() string {
	d := c.Content.Grid.Date
	title := d.MonthName()
	if c.YearInHeader {
		title += " " + FormatYear(d.Year())
	}
	return textutil.Space.Center(title, c.Width())
}

// Format renders the header and content lines. In vertical mode the content
// is transposed and every cell refitted to the day-cell width, since lane
// cells have a different natural width.
func (c Column) Format(h Highlight) []string {
	content := c.Content.Format(h)
	rows, cols := c.Content.RowCols()
	if c.Vertical {
		rows, cols = cols, rows
	}
	lines := make([]string, 0, rows+1)
	lines = append(lines, c.header())
	for i := 0; i < rows; i++ {
		cells := make([]string, cols)
		for j := 0; j < cols; j++ {
			if c.Vertical {
				cells[j] = c.Content.Grid.PadCell(content[j][i])
			} else {
				cells[j] = content[i][j]
			}
		}
		lines = append(lines, c.JoinCells(cells))
	}
	return lines
}
