// Package config provides the settings store read by the TimeKit engine.
//
// Package: config
// Title: TimeKit Configuration
// Description: Settings for locale, default time zone, week start, first-week
//              rule, default format patterns and relative-time thresholds and
//              labels. Settings load from TOML or YAML files, accept
//              environment overrides and live in a Store that the engine
//              consults on every call, so setters and file reloads take effect
//              without rebuilding values.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Typed settings and Store replacing the generic key/value map
//
// File layout (TOML):
//
//	locale = "tr"
//	timezone = "Europe/Istanbul"
//	week_start = 1
//	first_week_contains_date = 4
//
//	[formats]
//	date = "DD.MM.YYYY"
//	time = "HH:mm"
//	datetime = "DD.MM.YYYY HH:mm"
//
//	[thresholds]
//	second = 45
//	minute = 45
//	hour = 22
//	day = 26
//	month = 11
//
//	[labels]
//	future = "in %s"
//	mm = "%d mins"
//
// Usage:
//
//	store, err := config.Open("timekit.toml", config.LoadOptions{EnvPrefix: "TIMEKIT"})
//	if err != nil {
//		return err
//	}
//	go store.Watch(ctx)
//
//	store.SetWeekStart(0)
//	store.OnChange(func(old, new config.Settings) { ... })
package config
