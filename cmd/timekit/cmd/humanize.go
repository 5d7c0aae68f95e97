package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/TimeKit/foundation/utils/timex"
	"github.com/ersinkoc/TimeKit/internal/tui"
)

var (
	humanizeFrom     string
	humanizeNoSuffix bool
)

var humanizeCmd = &cobra.Command{
	Use:   "humanize <date>",
	Short: "Describe a date relative to now",
	Long: `Describes a date relative to now, or to --from, in words.

Examples:
  timekit humanize 2024-03-15T12:05:00Z --now 2024-03-15T12:00:00Z   # in 5 minutes
  timekit humanize 2020-01-01 --locale tr`,
	Args: cobra.ExactArgs(1),
	RunE: runHumanize,
}

var durationFormat string
var durationLargest int
var durationDigital bool

var durationCmd = &cobra.Command{
	Use:   "duration <span>",
	Short: "Inspect a duration",
	Long: `Shows a duration given as an ISO 8601 string or in milliseconds.

Examples:
  timekit duration P1DT2H3M4S
  timekit duration 5400000 --format HH:mm
  timekit duration PT90M --largest 1`,
	Args: cobra.ExactArgs(1),
	RunE: runDuration,
}

func init() {
	rootCmd.AddCommand(humanizeCmd)
	rootCmd.AddCommand(durationCmd)

	humanizeCmd.Flags().StringVar(&humanizeFrom, "from", "", "reference date (default: now)")
	humanizeCmd.Flags().BoolVar(&humanizeNoSuffix, "no-suffix", false, `omit "in" and "ago"`)

	durationCmd.Flags().StringVarP(&durationFormat, "format", "f", "", "print only the span rendered with this template")
	durationCmd.Flags().IntVar(&durationLargest, "largest", 0, "number of units in the long form")
	durationCmd.Flags().BoolVar(&durationDigital, "digital", false, "print only the H:mm:ss form")
}

func runHumanize(cmd *cobra.Command, args []string) error {
	t, err := instantArg(args[0])
	if err != nil {
		return err
	}
	from := current.env.Now()
	if humanizeFrom != "" {
		if from, err = instantArg(humanizeFrom); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.From(from, humanizeNoSuffix))
	return nil
}

func durationArg(arg string) timex.Duration {
	if ms, err := strconv.ParseFloat(arg, 64); err == nil {
		return current.env.Duration(timex.Millis(ms))
	}
	return current.env.Duration(timex.ISODuration(arg))
}

func runDuration(cmd *cobra.Command, args []string) error {
	d := durationArg(args[0])
	if !d.IsValid() {
		return fmt.Errorf("invalid duration %q", args[0])
	}
	out := cmd.OutOrStdout()
	ms := d.AsMilliseconds()

	switch {
	case durationFormat != "":
		fmt.Fprintln(out, d.Format(durationFormat))
		return nil
	case durationDigital:
		fmt.Fprintln(out, current.env.FormatDuration(ms, timex.DurationFormatOptions{Style: timex.DurationDigital}))
		return nil
	}

	fields := []tui.Field{
		{Label: "ISO", Value: d.ISOString()},
		{Label: "Milliseconds", Value: formatFloat(ms)},
		{Label: "Long", Value: current.env.FormatDuration(ms, timex.DurationFormatOptions{Largest: durationLargest})},
		{Label: "Clock", Value: d.Format(timex.DigitalClock)},
		{Label: "Hours", Value: formatFloat(d.AsHours())},
		{Label: "Humanized", Value: d.Humanize(false)},
	}
	fmt.Fprintln(out, tui.RenderFields(fields))
	return nil
}
