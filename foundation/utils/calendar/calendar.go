// File: calendar.go
// Title: Calendar Grid Builder
// Description: Month grids, decorated month and week views and month/week
//              boundary helpers built on timex instants.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package calendar

import (
	"github.com/ersinkoc/TimeKit/foundation/utils/mathx"
	"github.com/ersinkoc/TimeKit/foundation/utils/slicex"
	"github.com/ersinkoc/TimeKit/foundation/utils/timex"
)

// DefaultWeekStart selects the configured week start in Grid, Week,
// FirstDayOfWeek and Header. Any value outside 0-6 does the same.
const DefaultWeekStart = -1

// Day is one cell of a calendar view. Padding cells have Date 0, a zero
// Time and are disabled.
type Day struct {
	Date           int           `json:"date"`
	Time           timex.Instant `json:"time"`
	IsCurrentMonth bool          `json:"isCurrentMonth"`
	IsToday        bool          `json:"isToday"`
	IsWeekend      bool          `json:"isWeekend"`
	IsSelected     bool          `json:"isSelected"`
	IsDisabled     bool          `json:"isDisabled"`
}

// Week is one row of a month view
type Week struct {
	Number int    `json:"weekNumber"`
	Days   [7]Day `json:"days"`
}

// Month is a decorated month view
type Month struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Weeks []Week `json:"weeks"`
}

// Options decorates a month view. Nil fields are ignored.
type Options struct {
	WeekStart *int
	Selected  *timex.Instant
	Min       *timex.Instant
	Max       *timex.Instant
	Disabled  []timex.Instant
}

// disables reports whether t falls outside [Min, Max] or on a disabled day
func (o Options) disables(t timex.Instant) bool {
	if o.Min != nil && t.IsBefore(*o.Min, timex.Day) {
		return true
	}
	if o.Max != nil && t.IsAfter(*o.Max, timex.Day) {
		return true
	}
	return slicex.Some(o.Disabled, func(d timex.Instant) bool { return t.IsSame(d, timex.Day) })
}

// Builder lays out calendars using the settings, locales and clock of an Env
type Builder struct {
	env *timex.Env
}

// New returns a Builder over env, or over a default Env when env is nil
func New(env *timex.Env) *Builder {
	if env == nil {
		env = timex.NewEnv()
	}
	return &Builder{env: env}
}

// Env returns the environment the Builder reads from
func (b *Builder) Env() *timex.Env {
	return b.env
}

func (b *Builder) weekStart(weekStart int) int {
	if timex.IsValidWeekStart(weekStart) {
		return weekStart
	}
	if configured := b.env.Settings().WeekStart(); timex.IsValidWeekStart(configured) {
		return configured
	}
	return 1
}

// date returns local midnight of a civil date
func (b *Builder) date(year, month, day int) timex.Instant {
	return b.env.New(timex.Components{timex.Year: year, timex.Month: month, timex.Day: day})
}

// ===============================
// Grids
// ===============================

// Grid returns the weeks of month (1-12) as rows of seven day numbers; nil
// cells pad the first and last week. An invalid month yields nil.
func (b *Builder) Grid(year, month, weekStart int) [][]*int {
	if month < 1 || month > 12 {
		return nil
	}
	ws := b.weekStart(weekStart)
	days := timex.DaysInMonth(year, month)
	lead := mathx.FloorMod(timex.Civil{Year: year, Month: month, Day: 1}.Weekday()-ws, 7)
	rows := (lead + days + 6) / 7

	cells := slicex.Fill(rows*7, func(i int) *int {
		day := i - lead + 1
		if day < 1 || day > days {
			return nil
		}
		return &day
	})
	return slicex.Chunk(cells, 7)
}

// Month returns the decorated view of month. Week numbers start at the week
// of the first of the month under the configured first-week rule and
// restart at 1 when the week year rolls over.
func (b *Builder) Month(year, month int, opts Options) Month {
	ws := DefaultWeekStart
	if opts.WeekStart != nil {
		ws = *opts.WeekStart
	}
	grid := b.Grid(year, month, ws)
	result := Month{Year: year, Month: month, Weeks: make([]Week, 0, len(grid))}
	if grid == nil {
		return result
	}

	number, limit := b.firstWeek(year, month)
	for _, row := range grid {
		week := Week{Number: number}
		for col, cell := range row {
			if cell == nil {
				week.Days[col] = Day{IsDisabled: true}
				continue
			}
			week.Days[col] = b.day(b.date(year, month, *cell), true, opts)
		}
		result.Weeks = append(result.Weeks, week)

		number++
		if number > limit {
			number = 1
		}
	}
	return result
}

// firstWeek returns the week number of the first of month and the number
// of weeks in its week year.
func (b *Builder) firstWeek(year, month int) (number, limit int) {
	rule := b.env.Settings().FirstWeekContainsDate()
	number = timex.WeekNumber(year, month, 1, rule)
	weekYear := year
	if month == 1 && number > 26 {
		weekYear--
	}
	return number, timex.WeeksInYearWith(weekYear, rule)
}

func (b *Builder) day(t timex.Instant, currentMonth bool, opts Options) Day {
	d := Day{
		Date:           t.Date(),
		Time:           t,
		IsCurrentMonth: currentMonth,
		IsToday:        t.IsToday(),
		IsWeekend:      t.IsWeekend(),
		IsDisabled:     opts.disables(t),
	}
	if opts.Selected != nil {
		d.IsSelected = t.IsSame(*opts.Selected, timex.Day)
	}
	return d
}

// Week returns the seven days of the week containing date. Days outside
// the month of date are marked as not current. An invalid date yields nil.
func (b *Builder) Week(date timex.Input, weekStart int) []Day {
	base := b.env.New(date)
	if !base.IsValid() {
		return nil
	}
	start := b.FirstDayOfWeek(base, weekStart)
	month := base.Month()
	return slicex.Fill(7, func(i int) Day {
		t := start.Add(float64(i), timex.Day)
		return b.day(t, t.Month() == month, Options{})
	})
}

// Header returns the two-letter weekday names in grid order for the
// default locale.
func (b *Builder) Header(weekStart int) []string {
	locale := b.env.Settings().DefaultLocale()
	order := slicex.Rotate(slicex.Range(0, 7), b.weekStart(weekStart))
	return slicex.Map(order, func(weekday int) string {
		return b.env.Locales().WeekdayNameMin(locale, weekday)
	})
}

// ===============================
// Boundaries
// ===============================

// FirstDayOfMonth returns local midnight of the first of month. An invalid
// month yields the zero Instant.
func (b *Builder) FirstDayOfMonth(year, month int) timex.Instant {
	if month < 1 || month > 12 {
		return timex.Instant{}
	}
	return b.date(year, month, 1)
}

// LastDayOfMonth returns local midnight of the last day of month
func (b *Builder) LastDayOfMonth(year, month int) timex.Instant {
	if month < 1 || month > 12 {
		return timex.Instant{}
	}
	return b.date(year, month, timex.DaysInMonth(year, month))
}

// FirstDayOfWeek steps date back by whole days to the first day of its
// week. The time of day and the offset of date are kept.
func (b *Builder) FirstDayOfWeek(date timex.Input, weekStart int) timex.Instant {
	base := b.env.New(date)
	if !base.IsValid() {
		return base
	}
	back := mathx.FloorMod(base.Day()-b.weekStart(weekStart), 7)
	return base.Subtract(float64(back), timex.Day)
}
