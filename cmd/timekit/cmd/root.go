package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersinkoc/TimeKit/foundation/core/config"
	"github.com/ersinkoc/TimeKit/foundation/core/i18n"
	tklog "github.com/ersinkoc/TimeKit/foundation/core/log"
	"github.com/ersinkoc/TimeKit/foundation/utils/calendar"
	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
	"github.com/ersinkoc/TimeKit/foundation/utils/timex"
	"github.com/ersinkoc/TimeKit/internal/tui"
)

var (
	cfgFile   string
	localeDir string
	locale    string
	tzName    string
	nowFlag   string
	logLevel  string
	logFormat string
	verbose   bool
)

// session is the environment shared by all subcommands of one invocation
type session struct {
	logger   *tklog.Logger
	store    *config.Store
	registry *i18n.Registry
	env      *timex.Env
	calendar *calendar.Builder
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "timekit",
	Short: "TimeKit - dates, durations and calendars",
	Long: `timekit parses, formats and manipulates dates from the command line.

Settings are read from timekit.toml or timekit.yaml in the current
directory, the user config directory or /etc/timekit, and can be
overridden with TIMEKIT_* environment variables.

Dates may be ISO 8601 strings, D/M/YYYY, "Month D, YYYY", millisecond
timestamps or "now".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), tui.RenderError(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered timekit.toml/.yaml)")
	rootCmd.PersistentFlags().StringVar(&localeDir, "locales", "", "directory of additional locale files")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale for names and relative time")
	rootCmd.PersistentFlags().StringVar(&tzName, "tz", "", "IANA zone used as the local zone")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "reference time instead of the system clock")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: trace, debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, console, json or logfmt")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")
}

func setup(cmd *cobra.Command, args []string) error {
	level, err := tklog.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = tklog.LevelDebug
	}
	format, err := tklog.ParseFormat(logFormat)
	if err != nil {
		return err
	}
	logger := tklog.NewWithConfig(tklog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "timekit",
	})

	store, err := openStore()
	if err != nil {
		return err
	}
	store.WithLogger(logger)
	if locale != "" {
		if err := store.SetLocale(locale); err != nil {
			return err
		}
	}

	registry := i18n.NewRegistry().WithLogger(logger)
	if localeDir != "" {
		loaded, err := registry.LoadDir(localeDir)
		if err != nil {
			return err
		}
		logger.Debug("locales loaded", tklog.Int("count", loaded), tklog.String("directory", localeDir))
	}

	zones := timex.NewHostZones()
	host := time.Local
	if zone := stringx.FirstNonBlank(tzName, store.Timezone()); zone != "" {
		if host, err = zones.Location(zone); err != nil {
			return err
		}
	}

	options := []timex.Option{
		timex.WithSettings(store),
		timex.WithLocales(registry),
		timex.WithZones(zones),
		timex.WithHostLocation(host),
	}
	if nowFlag != "" {
		probe := timex.NewEnv(timex.WithZones(zones), timex.WithHostLocation(host))
		now := probe.New(dateInput(nowFlag))
		if !now.IsValid() {
			return fmt.Errorf("invalid --now value %q", nowFlag)
		}
		fixed := now.ToTime()
		options = append(options, timex.WithClock(func() time.Time { return fixed }))
	}

	env := timex.NewEnv(options...)
	current = &session{
		logger:   logger,
		store:    store,
		registry: registry,
		env:      env,
		calendar: calendar.New(env),
	}
	logger.Debug("environment ready",
		tklog.String("locale", store.DefaultLocale()),
		tklog.String("zone", host.String()),
		tklog.String("config", store.FilePath()))
	return nil
}

func openStore() (*config.Store, error) {
	if cfgFile != "" {
		return config.Open(cfgFile, config.LoadOptions{EnvPrefix: config.DefaultEnvPrefix})
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// dateInput maps a command line argument to a factory input: "now", a
// millisecond timestamp or a date string.
func dateInput(arg string) timex.Input {
	arg = strings.TrimSpace(arg)
	if strings.EqualFold(arg, "now") {
		return timex.Now{}
	}
	if ms, err := strconv.ParseInt(arg, 10, 64); err == nil && len(arg) > 8 {
		return timex.Timestamp(ms)
	}
	return timex.String(arg)
}

// instantArg resolves a date argument and rejects invalid dates
func instantArg(arg string) (timex.Instant, error) {
	t := current.env.New(dateInput(arg))
	if !t.IsValid() {
		return t, fmt.Errorf("invalid date %q", arg)
	}
	return t, nil
}

func unitArg(arg string) (timex.Unit, error) {
	unit, ok := timex.ParseUnit(arg)
	if !ok {
		return unit, fmt.Errorf("unknown unit %q", arg)
	}
	return unit, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
