// File: config.go
// Title: Settings Loading
// Description: Loads settings from TOML or YAML files and strings. Values
//              absent from the input keep their defaults, unknown keys are
//              rejected and environment variables override the file.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Decode into typed Settings instead of a generic map

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
	"github.com/ersinkoc/TimeKit/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultEnvPrefix is the prefix of environment overrides
const DefaultEnvPrefix = "TIMEKIT"

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format // default: detect from extension
	EnvPrefix string // default: no environment overrides
	Defaults  *Settings
}

// Load loads settings from a file with format detection and no
// environment overrides
func Load(filePath string) (Settings, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads settings from a file
func LoadWithOptions(filePath string, options LoadOptions) (Settings, error) {
	if stringx.IsBlank(filePath) {
		return Settings{}, tkerror.New("config file path cannot be empty").
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := tkerror.CodeInternal
		if os.IsNotExist(err) {
			code = tkerror.CodeConfigNotFound
		}
		return Settings{}, tkerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	settings, err := decode(content, format, options.Defaults)
	if err != nil {
		return Settings{}, tkerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	return finish(settings, options.EnvPrefix)
}

// LoadFromString loads settings from content in the given format
func LoadFromString(content string, format Format) (Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	settings, err := decode([]byte(content), format, nil)
	if err != nil {
		return Settings{}, tkerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return finish(settings, "")
}

func finish(settings Settings, envPrefix string) (Settings, error) {
	if envPrefix != "" {
		if err := applyEnv(&settings, envPrefix, os.LookupEnv); err != nil {
			return Settings{}, err
		}
	}
	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode parses content over a copy of defaults
func decode(content []byte, format Format, defaults *Settings) (Settings, error) {
	settings := Defaults()
	if defaults != nil {
		settings = defaults.Clone()
	}

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), &settings)
		if err != nil {
			return Settings{}, tkerror.Wrap(err, "TOML parse error").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return Settings{}, tkerror.New(fmt.Sprintf("unknown config keys: %s", strings.Join(keys, ", "))).
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.decode").
				WithDetail("keys", keys)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, tkerror.Wrap(err, "YAML parse error").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
	default:
		return Settings{}, tkerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(tkerror.CodeInvalidFormat).
			WithOperation("config.decode").
			WithDetail("format", format.String())
	}
	return settings, nil
}

// applyEnv overrides settings from PREFIX_LOCALE, PREFIX_TIMEZONE,
// PREFIX_WEEK_START and PREFIX_FIRST_WEEK_CONTAINS_DATE.
func applyEnv(settings *Settings, prefix string, lookup func(string) (string, bool)) error {
	key := func(name string) string {
		return strings.ToUpper(prefix) + "_" + name
	}

	if v, ok := lookup(key("LOCALE")); ok && !stringx.IsBlank(v) {
		settings.Locale = strings.TrimSpace(v)
	}
	if v, ok := lookup(key("TIMEZONE")); ok && !stringx.IsBlank(v) {
		settings.Timezone = strings.TrimSpace(v)
	}

	ints := []struct {
		name   string
		target *int
	}{
		{"WEEK_START", &settings.WeekStart},
		{"FIRST_WEEK_CONTAINS_DATE", &settings.FirstWeekContainsDate},
	}
	for _, item := range ints {
		v, ok := lookup(key(item.name))
		if !ok || stringx.IsBlank(v) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return tkerror.Wrap(err, "environment override is not an integer").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.applyEnv").
				WithDetail("variable", key(item.name))
		}
		*item.target = n
	}
	return nil
}
