package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/TimeKit/foundation/utils/timex"
)

var (
	arithPattern  string
	arithCalendar bool
	diffUnit      string
	diffPrecise   bool
)

var addCmd = &cobra.Command{
	Use:   "add <date> <amount> <unit>",
	Short: "Add an amount of a unit to a date",
	Long: `Adds an amount of a unit to a date. Units: y, M, w, d, h, m, s, ms
or their long names. Months are 30.44 days and years 365.25 days unless
--calendar is set, which keeps the day of month (clamped) and time of day.

Examples:
  timekit add 2024-01-31 1 M --calendar    # 2024-02-29
  timekit add now 90 minutes -p HH:mm`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error { return runArith(cmd, args, 1) },
}

var subtractCmd = &cobra.Command{
	Use:   "subtract <date> <amount> <unit>",
	Short: "Subtract an amount of a unit from a date",
	Args:  cobra.ExactArgs(3),
	RunE:  func(cmd *cobra.Command, args []string) error { return runArith(cmd, args, -1) },
}

var diffCmd = &cobra.Command{
	Use:   "diff <date> <other>",
	Short: "Difference between two dates",
	Long: `Prints date minus other in the given unit, truncated toward zero
unless --precise is set.

Examples:
  timekit diff 2024-03-01 2024-02-01 --unit d   # 29
  timekit diff now 2000-01-01 --unit y --precise`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

var startOfCmd = &cobra.Command{
	Use:   "startof <date> <unit>",
	Short: "Start of the unit containing a date",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runBoundary(cmd, args, timex.Instant.StartOf) },
}

var endOfCmd = &cobra.Command{
	Use:   "endof <date> <unit>",
	Short: "End of the unit containing a date",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runBoundary(cmd, args, timex.Instant.EndOf) },
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subtractCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(startOfCmd)
	rootCmd.AddCommand(endOfCmd)

	for _, c := range []*cobra.Command{addCmd, subtractCmd, startOfCmd, endOfCmd} {
		c.Flags().StringVarP(&arithPattern, "pattern", "p", "", "output pattern (default: ISO 8601 in UTC)")
	}
	addCmd.Flags().BoolVar(&arithCalendar, "calendar", false, "calendar months and years")
	subtractCmd.Flags().BoolVar(&arithCalendar, "calendar", false, "calendar months and years")
	diffCmd.Flags().StringVarP(&diffUnit, "unit", "u", "ms", "unit of the result")
	diffCmd.Flags().BoolVar(&diffPrecise, "precise", false, "do not truncate the result")
}

func render(t timex.Instant) string {
	if arithPattern != "" {
		return t.Format(arithPattern)
	}
	return t.ISOString()
}

func runArith(cmd *cobra.Command, args []string, sign float64) error {
	t, err := instantArg(args[0])
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}
	unit, err := unitArg(args[2])
	if err != nil {
		return err
	}

	var result timex.Instant
	if arithCalendar {
		if amount != math.Trunc(amount) {
			return fmt.Errorf("calendar amounts must be whole numbers, got %q", args[1])
		}
		result = t.AddCalendar(int(sign*amount), unit)
	} else {
		result = t.Add(sign*amount, unit)
	}
	if !result.IsValid() {
		return fmt.Errorf("result is out of range")
	}
	fmt.Fprintln(cmd.OutOrStdout(), render(result))
	return nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := instantArg(args[0])
	if err != nil {
		return err
	}
	b, err := instantArg(args[1])
	if err != nil {
		return err
	}
	unit, err := unitArg(diffUnit)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(a.Diff(b, unit, diffPrecise)))
	return nil
}

func runBoundary(cmd *cobra.Command, args []string, bound func(timex.Instant, timex.Unit) timex.Instant) error {
	t, err := instantArg(args[0])
	if err != nil {
		return err
	}
	unit, err := unitArg(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render(bound(t, unit)))
	return nil
}
