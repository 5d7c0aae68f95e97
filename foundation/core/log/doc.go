// Package log provides structured logging for TimeKit.
//
// Package: log
// Title: TimeKit Structured Logging
// Description: Leveled, structured logging with JSON, text and logfmt output.
//              The temporal engine never logs; the configuration watcher, the
//              locale loader and the timekit command do.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Dropped audit level, async buffering and request tracing
//
// Usage:
//
//	import tklog "github.com/ersinkoc/TimeKit/foundation/core/log"
//
//	logger := tklog.NewWithConfig(tklog.Config{
//		Level:  tklog.LevelDebug,
//		Format: tklog.FormatText,
//		Output: os.Stderr,
//		Name:   "config",
//	})
//	logger.Info("settings reloaded", tklog.String("path", path))
//
//	timer := logger.StartTimer("locale load")
//	// ... read locale files
//	timer.Stop()
package log
