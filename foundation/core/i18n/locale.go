// File: locale.go
// Title: Locale Tables
// Description: The Locale type and the built-in English and Turkish tables.
//              Month indices run 0-11 and weekday indices 0-6 starting on
//              Sunday.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package i18n

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
)

// Long-date format aliases
const (
	FormatLT   = "LT"
	FormatLTS  = "LTS"
	FormatL    = "L"
	FormatLL   = "LL"
	FormatLLL  = "LLL"
	FormatLLLL = "LLLL"
)

// LongDateKeys lists the alias keys, longest first so prefix matching works.
var LongDateKeys = []string{FormatLLLL, FormatLLL, FormatLTS, FormatLL, FormatLT, FormatL}

// Locale describes the calendar vocabulary of one language
type Locale struct {
	Name          string
	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string
	WeekdaysShort [7]string
	WeekdaysMin   [7]string
	Relative      *RelativeLabels
	Ordinal       func(n int) string
	Formats       map[string]string
}

// Validate checks the locale name and that every table entry is filled
func (l *Locale) Validate() error {
	if err := ValidateLocale(l.Name); err != nil {
		return err
	}
	fail := func(table string, index int) error {
		return tkerror.New("locale table has an empty entry").
			WithCode(tkerror.CodeInvalidLocale).
			WithOperation("i18n.Locale.Validate").
			WithDetail("locale", l.Name).
			WithDetail("table", table).
			WithDetail("index", index)
	}
	for i := range l.Months {
		if stringx.IsBlank(l.Months[i]) {
			return fail("months", i)
		}
		if stringx.IsBlank(l.MonthsShort[i]) {
			return fail("months_short", i)
		}
	}
	for i := range l.Weekdays {
		if stringx.IsBlank(l.Weekdays[i]) {
			return fail("weekdays", i)
		}
		if stringx.IsBlank(l.WeekdaysShort[i]) {
			return fail("weekdays_short", i)
		}
		if stringx.IsBlank(l.WeekdaysMin[i]) {
			return fail("weekdays_min", i)
		}
	}
	if l.Relative == nil {
		return tkerror.New("locale has no relative labels").
			WithCode(tkerror.CodeInvalidLocale).
			WithOperation("i18n.Locale.Validate").
			WithDetail("locale", l.Name)
	}
	return l.Relative.Validate()
}

// EnglishOrdinal renders 1st, 2nd, 3rd, 4th, 11th, 21st, 112th ...
func EnglishOrdinal(n int) string {
	suffix := "th"
	v := n % 100
	if v < 0 {
		v = -v
	}
	if v < 11 || v > 13 {
		switch v % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// TemplateOrdinal returns an ordinal rule substituting n for %d in tmpl
func TemplateOrdinal(tmpl string) func(int) string {
	return func(n int) string {
		return strings.Replace(tmpl, "%d", strconv.Itoa(n), 1)
	}
}

// English returns the built-in English locale
func English() *Locale {
	return &Locale{
		Name:          "en",
		Months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		MonthsShort:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		WeekdaysMin:   [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		Relative:      EnglishLabels(),
		Ordinal:       EnglishOrdinal,
		Formats: map[string]string{
			FormatLT:   "h:mm A",
			FormatLTS:  "h:mm:ss A",
			FormatL:    "MM/DD/YYYY",
			FormatLL:   "MMMM D, YYYY",
			FormatLLL:  "MMMM D, YYYY h:mm A",
			FormatLLLL: "dddd, MMMM D, YYYY h:mm A",
		},
	}
}

// EnglishLabels returns the default English relative-time labels
func EnglishLabels() *RelativeLabels {
	return &RelativeLabels{
		Future: Text("in %s"),
		Past:   Text("%s ago"),
		Units: map[string]Label{
			"s":  Text("a few seconds"),
			"ss": Text("%d seconds"),
			"m":  Text("a minute"),
			"mm": Text("%d minutes"),
			"h":  Text("an hour"),
			"hh": Text("%d hours"),
			"d":  Text("a day"),
			"dd": Text("%d days"),
			"w":  Text("a week"),
			"ww": Text("%d weeks"),
			"M":  Text("a month"),
			"MM": Text("%d months"),
			"y":  Text("a year"),
			"yy": Text("%d years"),
		},
	}
}

// Turkish returns the built-in Turkish locale
func Turkish() *Locale {
	return &Locale{
		Name:          "tr",
		Months:        [12]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
		MonthsShort:   [12]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"},
		Weekdays:      [7]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"},
		WeekdaysShort: [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"},
		WeekdaysMin:   [7]string{"Pz", "Pt", "Sa", "Ça", "Pe", "Cu", "Ct"},
		Relative: &RelativeLabels{
			Future: Text("%s sonra"),
			Past:   Text("%s önce"),
			Units: map[string]Label{
				"s":  Text("birkaç saniye"),
				"ss": Text("%d saniye"),
				"m":  Text("bir dakika"),
				"mm": Text("%d dakika"),
				"h":  Text("bir saat"),
				"hh": Text("%d saat"),
				"d":  Text("bir gün"),
				"dd": Text("%d gün"),
				"w":  Text("bir hafta"),
				"ww": Text("%d hafta"),
				"M":  Text("bir ay"),
				"MM": Text("%d ay"),
				"y":  Text("bir yıl"),
				"yy": Text("%d yıl"),
			},
		},
		Ordinal: TemplateOrdinal("%d."),
		Formats: map[string]string{
			FormatLT:   "HH:mm",
			FormatLTS:  "HH:mm:ss",
			FormatL:    "DD.MM.YYYY",
			FormatLL:   "D MMMM YYYY",
			FormatLLL:  "D MMMM YYYY HH:mm",
			FormatLLLL: "dddd, D MMMM YYYY HH:mm",
		},
	}
}

// NormalizeLocale returns the canonical BCP 47 form of locale ("tr_tr" ->
// "tr-TR"), or "" when it cannot be parsed.
func NormalizeLocale(locale string) string {
	if stringx.IsBlank(locale) {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}

// BaseLanguage returns the language subtag of locale ("tr-TR" -> "tr")
func BaseLanguage(locale string) string {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return ""
	}
	base, _ := language.MustParse(normalized).Base()
	return base.String()
}

// ValidateLocale validates that locale is a well-formed language tag
func ValidateLocale(locale string) error {
	if stringx.IsBlank(locale) {
		return tkerror.New("locale cannot be empty").
			WithCode(tkerror.CodeInvalidLocale).
			WithOperation("i18n.ValidateLocale")
	}
	if NormalizeLocale(locale) == "" {
		return tkerror.New("invalid locale format").
			WithCode(tkerror.CodeInvalidLocale).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'tr-TR'")
	}
	return nil
}
