package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Davoodeh/jcal/internal/date"
	"github.com/Davoodeh/jcal/internal/dateparse"
	"github.com/Davoodeh/jcal/internal/strftime"
)

// Default and mail-header output formats of date(1).
const (
	defaultDateFormat  = "%a %b %e %H:%M:%S %Z %Y"
	rfcEmailDateFormat = "%a, %d %b %Y %H:%M:%S %z"
)

type dateOptions struct {
	dateStr   string
	file      string
	reference string
	utc       bool
	debug     bool
	jalali    bool
	gregorian bool
	rfcEmail  bool
	rfc3339   string
	iso8601   string
}

// NewDateCommand builds the jdate command, a date(1) that speaks Jalali by
// default.
func NewDateCommand() *cobra.Command {
	o := &dateOptions{}
	cmd := &cobra.Command{
		Use:           "jdate [flags] [+FORMAT]",
		Short:         "print the date in the Jalali or Gregorian calendar",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDate(cmd, o, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.dateStr, "date", "d", "", "print this date instead of now")
	f.StringVarP(&o.file, "file", "f", "", "print each date read from this file, - for stdin")
	f.StringVarP(&o.reference, "reference", "r", "", "print the last modification time of this file")
	f.BoolVarP(&o.utc, "utc", "u", false, "print in Coordinated Universal Time")
	f.BoolVar(&o.debug, "debug", false, "annotate parsing on stderr")
	f.BoolVarP(&o.jalali, "jalali", "J", true, "print Jalali dates (the default)")
	f.BoolVarP(&o.gregorian, "gregorian", "g", false, "print Gregorian dates")
	f.BoolVarP(&o.rfcEmail, "rfc-email", "R", false, "print an RFC 5322 mail-header date")
	f.StringVar(&o.rfc3339, "rfc-3339", "", "print an RFC 3339 date: date or seconds")
	f.StringVarP(&o.iso8601, "iso-8601", "I", "", "print an ISO 8601 date: date, hours, minutes or seconds")
	f.Lookup("iso-8601").NoOptDefVal = "date"

	return cmd
}

func runDate(cmd *cobra.Command, o *dateOptions, args []string) error {
	format := defaultDateFormat
	switch {
	case len(args) == 1:
		custom, ok := strings.CutPrefix(args[0], "+")
		if !ok {
			return fmt.Errorf("format %q must start with '+'", args[0])
		}
		format = custom
	case o.rfcEmail:
		format = rfcEmailDateFormat
	case o.rfc3339 != "":
		f, err := rfc3339Format(o.rfc3339)
		if err != nil {
			return err
		}
		format = f
	case o.iso8601 != "":
		f, err := iso8601Format(o.iso8601)
		if err != nil {
			return err
		}
		format = f
	}

	sys := date.Jalali
	if o.gregorian || !o.jalali {
		sys = date.Gregorian
	}

	now := time.Now()
	if o.utc {
		now = now.UTC()
	}

	out := cmd.OutOrStdout()
	if o.file != "" {
		return formatLines(cmd, o, out, now, sys, format)
	}

	t, err := resolveTime(o, now)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render(format, t, sys))
	return nil
}

// resolveTime picks the instant to print: a parsed --date, a file's
// modification time, or now.
func resolveTime(o *dateOptions, now time.Time) (time.Time, error) {
	switch {
	case o.dateStr != "":
		t, err := dateparse.Time(o.dateStr, now)
		if err != nil {
			return time.Time{}, err
		}
		if o.debug {
			fmt.Fprintf(os.Stderr, "jdate: parsed %q as %s\n", o.dateStr, t.Format(time.RFC3339))
		}
		return t, nil
	case o.reference != "":
		info, err := os.Stat(o.reference)
		if err != nil {
			return time.Time{}, err
		}
		t := info.ModTime()
		if o.utc {
			t = t.UTC()
		}
		return t, nil
	}
	return now, nil
}

// formatLines prints one rendered date per input line.
func formatLines(cmd *cobra.Command, o *dateOptions, out io.Writer, now time.Time, sys date.System, format string) error {
	var r io.Reader
	if o.file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(o.file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := dateparse.Time(line, now)
		if err != nil {
			return err
		}
		if o.debug {
			fmt.Fprintf(os.Stderr, "jdate: parsed %q as %s\n", line, t.Format(time.RFC3339))
		}
		fmt.Fprintln(out, render(format, t, sys))
	}
	return sc.Err()
}

func render(format string, t time.Time, sys date.System) string {
	d := date.FromTime(t).Convert(sys)
	return strftime.Format(format, t, d)
}

func rfc3339Format(precision string) (string, error) {
	switch precision {
	case "date":
		return "%Y-%m-%d", nil
	case "seconds":
		return "%Y-%m-%d %H:%M:%S%z", nil
	}
	return "", fmt.Errorf("bad --rfc-3339 precision %q: want date or seconds", precision)
}

func iso8601Format(precision string) (string, error) {
	switch precision {
	case "date":
		return "%Y-%m-%d", nil
	case "hours":
		return "%Y-%m-%dT%H%z", nil
	case "minutes":
		return "%Y-%m-%dT%H:%M%z", nil
	case "seconds":
		return "%Y-%m-%dT%H:%M:%S%z", nil
	}
	return "", fmt.Errorf("bad --iso-8601 precision %q: want date, hours, minutes or seconds", precision)
}
