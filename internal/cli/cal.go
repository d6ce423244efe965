package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Davoodeh/jcal/internal/date"
	"github.com/Davoodeh/jcal/internal/dateparse"
	"github.com/Davoodeh/jcal/internal/holidays"
	"github.com/Davoodeh/jcal/internal/layout"
)

// fallbackWidth is assumed when the output is not a terminal.
const fallbackWidth = 80

type calOptions struct {
	one      bool
	three    bool
	twelve   bool
	months   int
	span     bool
	sunday   bool
	monday   bool
	weekday  string
	julian   bool
	reform   string
	iso      bool
	yearMode bool
	week     string
	vertical bool
	columns  string
	color    string
	jalali   bool
	holidays bool
}

// NewCalCommand builds the jcal command.
func NewCalCommand() *cobra.Command {
	o := &calOptions{}
	cmd := &cobra.Command{
		Use:           "jcal [[[day] month] year | month | @timestamp]",
		Short:         "display a Jalali or Gregorian calendar",
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCal(cmd, o, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&o.one, "one", "1", false, "show only the current month")
	f.BoolVarP(&o.three, "three", "3", false, "show the previous, current and next month")
	f.BoolVarP(&o.twelve, "twelve", "Y", false, "show the next twelve months")
	f.IntVarP(&o.months, "months", "n", 0, "show this many months")
	f.BoolVarP(&o.span, "span", "S", false, "center the months around the current one")
	f.BoolVarP(&o.sunday, "sunday", "s", false, "start weeks on Sunday")
	f.BoolVarP(&o.monday, "monday", "m", false, "start weeks on Monday")
	f.StringVar(&o.weekday, "weekday", "", "start weeks on this weekday (name or 0..6, Sunday first)")
	f.BoolVarP(&o.julian, "julian", "j", false, "number days by day of the year")
	f.StringVar(&o.reform, "reform", "gregorian", "Gregorian reform to assume (only the proleptic one is supported)")
	f.BoolVar(&o.iso, "iso", false, "count weeks per ISO 8601 (implies --week)")
	f.BoolVarP(&o.yearMode, "year", "y", false, "show the whole year")
	f.StringVarP(&o.week, "week", "w", "", "show week numbers, optionally jumping to week N")
	f.Lookup("week").NoOptDefVal = "show"
	f.BoolVarP(&o.vertical, "vertical", "v", false, "run weeks vertically")
	f.StringVarP(&o.columns, "columns", "c", "", "months per row: a number, or \"auto\" to fit the terminal (default at most 3)")
	f.StringVar(&o.color, "color", "auto", "colorize the output: auto, always or never")
	f.Lookup("color").NoOptDefVal = "always"
	f.BoolVarP(&o.jalali, "jalali", "J", false, "use the Jalali calendar")
	f.BoolVar(&o.holidays, "holidays", false, "list the holidays of the shown months")

	cmd.AddCommand(newConvertCommand())
	return cmd
}

func runCal(cmd *cobra.Command, o *calOptions, args []string) error {
	sys := date.Gregorian
	base := date.Sunday
	if o.jalali {
		sys = date.Jalali
		base = date.Saturday
	}

	switch o.weekday {
	case "":
		if o.monday {
			base = date.Monday
		} else if o.sunday {
			base = date.Sunday
		}
	default:
		w, err := dateparse.Weekday(o.weekday)
		if err != nil {
			return err
		}
		base = w
	}

	if err := checkReform(o.reform); err != nil {
		return err
	}

	cfg := Config{
		Now:         date.FromTime(time.Now()).Convert(sys),
		Months:      1,
		Span:        o.span,
		BaseWeekday: base,
		OrdinalMode: o.julian,
		Vertical:    o.vertical,
		YearMode:    o.yearMode,
	}

	switch {
	case o.months != 0:
		if o.months < 1 {
			return fmt.Errorf("-n wants a positive month count, got %d", o.months)
		}
		cfg.Months = o.months
	case o.twelve:
		cfg.Months = 12
	case o.three:
		cfg.Months = 3
		cfg.Span = true
	}

	if err := applyPositionals(args, sys, &cfg); err != nil {
		return err
	}

	if cmd.Flags().Changed("week") || o.iso {
		cfg.WeekNums = layout.WeekNumBased
		if o.iso {
			cfg.WeekNums = layout.WeekNumISO
		}
	}
	var weekJump int
	if o.week != "" && o.week != "show" {
		n, err := strconv.Atoi(o.week)
		if err != nil || n < 1 || n > 54 {
			return fmt.Errorf("-w wants a week number in 1..54, got %q", o.week)
		}
		cfg.Now = cfg.Now.WithWeeknum(n-1, base)
		weekJump = n
	}

	if err := applyColumns(o.columns, &cfg); err != nil {
		return err
	}
	cfg.WidthChars = terminalWidth()

	if colorOn, err := colorEnabled(o.color); err != nil {
		return err
	} else if colorOn {
		if weekJump > 0 {
			cfg.Highlight = layout.HighlightWeek(weekJump)
		} else {
			// positional and @timestamp edits move the highlighted day too
			cfg.Highlight = layout.HighlightDay(cfg.Now)
		}
	}

	out := cmd.OutOrStdout()
	for _, line := range cfg.Layout().Lines() {
		fmt.Fprintln(out, line)
	}

	if o.holidays {
		return printHolidays(cmd, cfg)
	}
	return nil
}

// applyPositionals reads the trailing [[[day] month] year], a lone month
// name, or an @timestamp into the configuration.
func applyPositionals(args []string, sys date.System, cfg *Config) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		if ts, ok := strings.CutPrefix(args[0], "@"); ok {
			secs, err := strconv.ParseInt(ts, 10, 64)
			if err != nil {
				return fmt.Errorf("bad timestamp %q", args[0])
			}
			cfg.Now = date.FromTime(time.Unix(secs, 0)).Convert(sys)
			return nil
		}
		if y, err := strconv.Atoi(args[0]); err == nil {
			// a lone year means the year view
			cfg.Now = cfg.Now.WithYear(y)
			cfg.YearMode = true
			cfg.YearInHeader = true
			return nil
		}
		m, err := dateparse.Month(args[0], sys)
		if err != nil {
			return err
		}
		cfg.Now = cfg.Now.WithMonth(m)
		return nil
	case 2:
		m, err := dateparse.Month(args[0], sys)
		if err != nil {
			return err
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad year %q", args[1])
		}
		cfg.Now = cfg.Now.WithYear(y).WithMonth(m)
		cfg.YearInHeader = true
		return nil
	default:
		m, err := dateparse.Month(args[1], sys)
		if err != nil {
			return err
		}
		y, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad year %q", args[2])
		}
		d, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad day %q", args[0])
		}
		cfg.Now = date.New(sys, y, m, d)
		cfg.YearInHeader = true
		return nil
	}
}

func applyColumns(value string, cfg *Config) error {
	switch value {
	case "":
		// the classic three months per row unless the terminal is narrower
		cfg.AutoColumns = true
		cfg.Columns = 3
		return nil
	case "auto":
		cfg.AutoColumns = true
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("-c wants a positive number or \"auto\", got %q", value)
	}
	cfg.Columns = n
	return nil
}

func checkReform(value string) error {
	switch strings.ToLower(value) {
	case "", "gregorian", "iso":
		return nil
	}
	return fmt.Errorf("unsupported reform %q: dates are proleptic Gregorian", value)
}

func colorEnabled(mode string) (bool, error) {
	switch mode {
	case "never":
		return false, nil
	case "always":
		return true, nil
	case "", "auto":
		return term.IsTerminal(int(os.Stdout.Fd())) && termenv.ColorProfile() != termenv.Ascii, nil
	}
	return false, fmt.Errorf("bad --color mode %q", mode)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// printHolidays lists the holidays falling in the printed span.
func printHolidays(cmd *cobra.Command, cfg Config) error {
	months := max(cfg.Months, 1)
	if cfg.YearMode {
		months = 12
	}
	start := cfg.StartMonth()
	end := start.AddMonths(months - 1)
	end = end.WithDay(end.MonthEndDay())

	cals := make(map[int]holidays.Calendar)
	for y := start.Convert(date.Jalali).Year(); y <= end.Convert(date.Jalali).Year(); y++ {
		cal, err := holidays.Fetch(y)
		if err != nil {
			return err
		}
		cals[y] = cal
	}

	out := cmd.OutOrStdout()
	for m := 0; m < months; m++ {
		month := start.AddMonths(m)
		for day := 1; day <= month.MonthEndDay(); day++ {
			d := month.WithDay(day)
			jy := d.Convert(date.Jalali).Year()
			if event, ok := cals[jy].Lookup(d); ok {
				fmt.Fprintf(out, "%s  %s\n", d, event)
			}
		}
	}
	return nil
}
