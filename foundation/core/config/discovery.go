// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds timekit.toml / timekit.yaml in the working directory,
//              the user configuration directory and /etc.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
	"github.com/ersinkoc/TimeKit/foundation/utils/filex"
)

// DiscoveryOptions defines where to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string // directories, searched in order
	Filenames  []string // base names without extension
	Extensions []string // extensions to try, in order
	EnvPrefix  string   // environment override prefix
	Required   bool     // fail when no file is found
}

// DefaultDiscoveryOptions searches ., $XDG_CONFIG_HOME/timekit and
// /etc/timekit for timekit.toml, timekit.yaml and timekit.yml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "timekit"))
	}
	paths = append(paths, "/etc/timekit")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"timekit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that exists
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if filex.IsFile(candidate) {
			return candidate, nil
		}
	}
	return "", tkerror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(candidates, ", "))).
		WithCode(tkerror.CodeConfigNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// Discover opens the first configuration file found. Without a file it
// returns a store holding the defaults plus environment overrides, unless
// options.Required is set.
func Discover(options DiscoveryOptions) (*Store, error) {
	path, err := FindConfigFile(options)
	if err == nil {
		store, openErr := Open(path, LoadOptions{EnvPrefix: options.EnvPrefix})
		if openErr != nil {
			return nil, tkerror.Wrap(openErr, fmt.Sprintf("found config file %s but failed to load", path)).
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
		return store, nil
	}
	if options.Required {
		return nil, err
	}

	settings := Defaults()
	if options.EnvPrefix != "" {
		if envErr := applyEnv(&settings, options.EnvPrefix, os.LookupEnv); envErr != nil {
			return nil, envErr
		}
	}
	return NewStoreWith(settings)
}
