// File: discovery_test.go
// Title: Configuration Discovery Tests
// Description: Tests for candidate listing and file discovery.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
)

func TestListPossibleConfigFiles(t *testing.T) {
	got := ListPossibleConfigFiles(DiscoveryOptions{
		Paths:      []string{"a", "b"},
		Filenames:  []string{"timekit"},
		Extensions: []string{".toml", ".yaml"},
	})
	want := []string{
		filepath.Join("a", "timekit.toml"),
		filepath.Join("a", "timekit.yaml"),
		filepath.Join("b", "timekit.toml"),
		filepath.Join("b", "timekit.yaml"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListPossibleConfigFiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(second, "timekit.yaml"), []byte("locale: tr\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	options := DiscoveryOptions{
		Paths:      []string{first, second},
		Filenames:  []string{"timekit"},
		Extensions: []string{".toml", ".yaml"},
	}

	s, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if s.DefaultLocale() != "tr" {
		t.Errorf("DefaultLocale() = %q, want tr", s.DefaultLocale())
	}
	if s.FilePath() != filepath.Join(second, "timekit.yaml") {
		t.Errorf("FilePath() = %q", s.FilePath())
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	options := DiscoveryOptions{
		Paths:      []string{t.TempDir()},
		Filenames:  []string{"timekit"},
		Extensions: []string{".toml"},
		EnvPrefix:  "TKTEST",
	}
	t.Setenv("TKTEST_WEEK_START", "0")

	s, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if s.WeekStart() != 0 || s.FilePath() != "" {
		t.Errorf("unexpected store: week start %d, path %q", s.WeekStart(), s.FilePath())
	}

	options.Required = true
	if _, err := Discover(options); !tkerror.HasCode(err, tkerror.CodeConfigNotFound) {
		t.Errorf("Discover(required) error = %v, want CodeConfigNotFound", err)
	}
}
