package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davoodeh/jcal/internal/date"
	"github.com/Davoodeh/jcal/internal/dateparse"
)

// newConvertCommand builds the date conversion subcommand. Dates are read as
// Jalali by default; --gregorian reverses the direction.
func newConvertCommand() *cobra.Command {
	var fromGregorian bool
	cmd := &cobra.Command{
		Use:   "convert [flags] YEAR/MONTH/DAY",
		Short: "convert a date between the Jalali and Gregorian calendars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := date.Jalali, date.Gregorian
			if fromGregorian {
				from, to = to, from
			}
			d, err := dateparse.YMD(args[0], from)
			if err != nil {
				return err
			}
			c := d.Convert(to)
			fmt.Fprintf(cmd.OutOrStdout(), "%s, %s %d %d (%s) is %s %d %d (%s)\n",
				d.Weekday(), d.MonthName(), d.Day(), d.Year(), d.System(),
				c.MonthName(), c.Day(), c.Year(), c.System())
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", d, c)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&fromGregorian, "gregorian", "g", false,
		"read the date as Gregorian and convert it to Jalali")
	return cmd
}
