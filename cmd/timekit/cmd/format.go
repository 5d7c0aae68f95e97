package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/TimeKit/foundation/core/config"
	"github.com/ersinkoc/TimeKit/foundation/utils/timex"
	"github.com/ersinkoc/TimeKit/internal/tui"
)

var (
	formatPattern string
	formatKind    string
	formatZone    string
	formatUTC     bool
)

var formatCmd = &cobra.Command{
	Use:   "format [date]",
	Short: "Format a date",
	Long: `Formats a date with a token pattern or one of the configured defaults.

Examples:
  timekit format                                # now, default date-time format
  timekit format 2021-06-15T14:05:09Z -p "dddd, MMMM Do YYYY"
  timekit format now --kind date --locale tr
  timekit format now --in Asia/Tokyo -p LLLL`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

var parseCmd = &cobra.Command{
	Use:   "parse <date>",
	Short: "Show what a date resolves to",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(parseCmd)

	formatCmd.Flags().StringVarP(&formatPattern, "pattern", "p", "", "format pattern (overrides --kind)")
	formatCmd.Flags().StringVar(&formatKind, "kind", "datetime", "default format to use: date, time or datetime")
	formatCmd.Flags().StringVar(&formatZone, "in", "", "IANA zone to view the date in")
	formatCmd.Flags().BoolVar(&formatUTC, "utc", false, "view the date in UTC")
}

func dateOrNow(args []string) (timex.Instant, error) {
	if len(args) == 0 {
		return current.env.Now(), nil
	}
	return instantArg(args[0])
}

func runFormat(cmd *cobra.Command, args []string) error {
	t, err := dateOrNow(args)
	if err != nil {
		return err
	}
	switch {
	case formatZone != "":
		if t, err = t.Tz(formatZone); err != nil {
			return err
		}
	case formatUTC:
		t = t.UTC()
	}

	if formatPattern != "" {
		fmt.Fprintln(cmd.OutOrStdout(), t.Format(formatPattern))
		return nil
	}
	kind, err := parseKind(formatKind)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.FormatAs(kind))
	return nil
}

func parseKind(s string) (timex.FormatKind, error) {
	switch s {
	case "date":
		return config.FormatDate, nil
	case "time":
		return config.FormatTime, nil
	case "datetime", "":
		return config.FormatDateTime, nil
	}
	return config.FormatDateTime, fmt.Errorf("unknown format kind %q", s)
}

func runParse(cmd *cobra.Command, args []string) error {
	t, err := instantArg(args[0])
	if err != nil {
		return err
	}

	fields := []tui.Field{
		{Label: "ISO", Value: t.ISOString()},
		{Label: "Local", Value: t.FormatAs(config.FormatDateTime)},
		{Label: "Long", Value: t.Format("LLLL")},
		{Label: "Zone", Value: t.Timezone()},
		{Label: "Unix", Value: strconv.FormatInt(t.Unix(), 10)},
		{Label: "Milliseconds", Value: strconv.FormatInt(t.ValueOf(), 10)},
		{Label: "Day of year", Value: strconv.Itoa(t.DayOfYear())},
		{Label: "Week of year", Value: fmt.Sprintf("%d of %d", t.WeekOfYear(), t.WeeksInYear())},
		{Label: "Quarter", Value: strconv.Itoa(t.Quarter())},
		{Label: "Leap year", Value: strconv.FormatBool(t.IsLeapYear())},
		{Label: "DST", Value: strconv.FormatBool(t.IsDST())},
		{Label: "Relative", Value: t.FromNow(false)},
	}
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFields(fields))
	return nil
}
