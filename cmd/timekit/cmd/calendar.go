package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/TimeKit/foundation/utils/calendar"
	"github.com/ersinkoc/TimeKit/internal/tui"
)

var (
	calWeekStart   int
	calWeekNumbers bool
	calSelect      string
)

var calendarCmd = &cobra.Command{
	Use:     "calendar [year] [month]",
	Aliases: []string{"cal"},
	Short:   "Show a month calendar",
	Long: `Shows a month calendar. Without arguments the current month is shown;
with only a year, January of that year.

Examples:
  timekit calendar
  timekit calendar 2024 2 --week-start 0
  timekit cal 2021 1 --week-numbers --select 2021-01-15`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().IntVar(&calWeekStart, "week-start", calendar.DefaultWeekStart, "first day of the week, 0 = Sunday (default: configured)")
	calendarCmd.Flags().BoolVarP(&calWeekNumbers, "week-numbers", "w", false, "show week numbers")
	calendarCmd.Flags().StringVar(&calSelect, "select", "", "date to highlight")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := current.env.Now()
	year, month := now.Year(), now.Month()
	if len(args) > 0 {
		month = 1
		var err error
		if year, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
	}
	if len(args) > 1 {
		m, err := strconv.Atoi(args[1])
		if err != nil || m < 1 || m > 12 {
			return fmt.Errorf("invalid month %q", args[1])
		}
		month = m
	}

	options := calendar.Options{WeekStart: &calWeekStart}
	if calSelect != "" {
		selected, err := instantArg(calSelect)
		if err != nil {
			return err
		}
		options.Selected = &selected
	}

	view := tui.MonthView{
		Title:       current.calendar.FirstDayOfMonth(year, month).Format("MMMM YYYY"),
		Header:      current.calendar.Header(calWeekStart),
		WeekNumbers: calWeekNumbers,
	}
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMonth(current.calendar.Month(year, month, options), view))
	return nil
}
