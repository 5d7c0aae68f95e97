// Package i18n provides the locale tables used by TimeKit's formatter and
// relative-time engine.
//
// Package: i18n
// Title: TimeKit Locale Registry
// Description: Month and weekday names, ordinal rules, long-date format
//              aliases and relative-time labels per locale. English and
//              Turkish are built in; further locales can be registered in code
//              or loaded from TOML/YAML files. Lookups are lenient: an unknown
//              locale falls back to English and an out-of-range index yields
//              an empty string.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Replaced the message catalog with calendar locale tables
//
// Usage:
//
//	reg := i18n.NewRegistry()
//	reg.MonthName("tr", 7)          // "Ağustos"
//	reg.Ordinal("en", 22)           // "22nd"
//	reg.MonthName("tr-TR", 0)       // "Ocak", region tags match their base language
//	reg.Detect("de-DE,tr;q=0.8")    // "tr"
//
//	n, err := reg.LoadDir("./locales")
//
// Locale file layout (TOML):
//
//	name = "de"
//	months = ["Januar", "Februar", ...]
//	months_short = ["Jan.", "Feb.", ...]
//	weekdays = ["Sonntag", ...]
//	weekdays_short = ["So.", ...]
//	weekdays_min = ["So", ...]
//	ordinal = "%d."
//
//	[relative]
//	future = "in %s"
//	past = "vor %s"
//	s = "ein paar Sekunden"
//	ss = "%d Sekunden"
//
//	[formats]
//	L = "DD.MM.YYYY"
package i18n
