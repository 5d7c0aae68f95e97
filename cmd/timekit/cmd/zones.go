package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/TimeKit/foundation/utils/slicex"
	"github.com/ersinkoc/TimeKit/foundation/utils/timex"
)

var zonesAt string

var zonesCmd = &cobra.Command{
	Use:   "zones [filter]",
	Short: "List common time zones with their current offset",
	Long: `Lists common IANA zones with the UTC offset and local time observed
there. The optional filter matches zone names case-insensitively.

Examples:
  timekit zones
  timekit zones europe
  timekit zones america --at 2024-07-01T12:00:00Z`,
	Args: cobra.MaximumNArgs(1),
	RunE: runZones,
}

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the available locales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active := current.store.DefaultLocale()
		for _, name := range current.registry.Names() {
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(localesCmd)

	zonesCmd.Flags().StringVar(&zonesAt, "at", "now", "instant at which offsets are evaluated")
}

func runZones(cmd *cobra.Command, args []string) error {
	at, err := instantArg(zonesAt)
	if err != nil {
		return err
	}

	zones := timex.Timezones()
	if len(args) == 1 {
		filter := strings.ToLower(args[0])
		zones = slicex.Filter(zones, func(zone string) bool {
			return strings.Contains(strings.ToLower(zone), filter)
		})
	}
	if len(zones) == 0 {
		return fmt.Errorf("no zone matches %q", args[0])
	}

	out := cmd.OutOrStdout()
	for _, zone := range zones {
		local, err := at.Tz(zone)
		if err != nil {
			current.logger.WarnWithErr("zone not available", err)
			continue
		}
		fmt.Fprintf(out, "%-22s %s  %s\n", zone, timex.FormatOffset(local.UTCOffset(), true), local.Format("YYYY-MM-DD HH:mm"))
	}
	return nil
}
