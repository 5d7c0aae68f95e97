// File: doc.go
// Title: Package Documentation for filex
// Description: Package documentation for the file system helpers.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reduced to the lookups used by config discovery and
//   locale loading

// Package filex provides small file system lookups.
//
//	if filex.IsFile("timekit.toml") { ... }
//	names, err := filex.ListFiles("locales", ".toml", ".yaml", ".yml")
package filex
