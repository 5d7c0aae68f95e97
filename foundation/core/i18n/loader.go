// File: loader.go
// Title: Locale File Loader
// Description: Reads locale definitions from TOML or YAML files. Missing
//              relative labels and long-date formats are filled from English.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package i18n

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
	tklog "github.com/ersinkoc/TimeKit/foundation/core/log"
	"github.com/ersinkoc/TimeKit/foundation/utils/filex"
)

// localeFile is the on-disk shape of a locale
type localeFile struct {
	Name          string            `toml:"name" yaml:"name"`
	Months        []string          `toml:"months" yaml:"months"`
	MonthsShort   []string          `toml:"months_short" yaml:"months_short"`
	Weekdays      []string          `toml:"weekdays" yaml:"weekdays"`
	WeekdaysShort []string          `toml:"weekdays_short" yaml:"weekdays_short"`
	WeekdaysMin   []string          `toml:"weekdays_min" yaml:"weekdays_min"`
	Ordinal       string            `toml:"ordinal" yaml:"ordinal"`
	Relative      map[string]string `toml:"relative" yaml:"relative"`
	Formats       map[string]string `toml:"formats" yaml:"formats"`
}

// ParseLocale decodes a locale definition. format is "toml" or "yaml".
func ParseLocale(content []byte, format string) (*Locale, error) {
	file, err := decodeLocale(content, format)
	if err != nil {
		return nil, err
	}
	return file.toLocale()
}

func decodeLocale(content []byte, format string) (*localeFile, error) {
	var file localeFile
	switch strings.ToLower(format) {
	case "toml":
		meta, err := toml.Decode(string(content), &file)
		if err != nil {
			return nil, tkerror.Wrap(err, "TOML parse error").
				WithCode(tkerror.CodeInvalidLocale).
				WithOperation("i18n.ParseLocale")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, tkerror.New(fmt.Sprintf("unknown locale key %q", undecoded[0].String())).
				WithCode(tkerror.CodeInvalidLocale).
				WithOperation("i18n.ParseLocale")
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, tkerror.Wrap(err, "YAML parse error").
				WithCode(tkerror.CodeInvalidLocale).
				WithOperation("i18n.ParseLocale")
		}
	default:
		return nil, tkerror.New(fmt.Sprintf("unsupported locale format: %s", format)).
			WithCode(tkerror.CodeInvalidFormat).
			WithOperation("i18n.ParseLocale")
	}
	return &file, nil
}

func (f *localeFile) toLocale() (*Locale, error) {
	loc := &Locale{Name: f.Name, Formats: make(map[string]string)}

	tables := []struct {
		name string
		src  []string
		dst  []string
	}{
		{"months", f.Months, loc.Months[:]},
		{"months_short", f.MonthsShort, loc.MonthsShort[:]},
		{"weekdays", f.Weekdays, loc.Weekdays[:]},
		{"weekdays_short", f.WeekdaysShort, loc.WeekdaysShort[:]},
		{"weekdays_min", f.WeekdaysMin, loc.WeekdaysMin[:]},
	}
	for _, table := range tables {
		if len(table.src) != len(table.dst) {
			return nil, tkerror.New(fmt.Sprintf("%s needs %d entries, got %d", table.name, len(table.dst), len(table.src))).
				WithCode(tkerror.CodeInvalidLocale).
				WithOperation("i18n.ParseLocale").
				WithDetail("locale", f.Name)
		}
		copy(table.dst, table.src)
	}

	labels, err := LabelsFromMap(f.Relative, EnglishLabels())
	if err != nil {
		return nil, err
	}
	loc.Relative = labels

	if f.Ordinal == "" {
		loc.Ordinal = EnglishOrdinal
	} else {
		loc.Ordinal = TemplateOrdinal(f.Ordinal)
	}

	for key, pattern := range English().Formats {
		loc.Formats[key] = pattern
	}
	for key, pattern := range f.Formats {
		loc.Formats[key] = pattern
	}

	if err := loc.Validate(); err != nil {
		return nil, err
	}
	return loc, nil
}

// LoadFile reads a locale file; the format follows the extension and the
// name defaults to the file's base name.
func LoadFile(path string) (*Locale, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to read locale file").
			WithCode(tkerror.CodeLocaleNotFound).
			WithOperation("i18n.LoadFile").
			WithDetail("path", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	format := strings.TrimPrefix(ext, ".")
	if format == "" {
		format = "toml"
	}

	file, err := decodeLocale(content, format)
	if err == nil {
		if file.Name == "" {
			file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		var loc *Locale
		if loc, err = file.toLocale(); err == nil {
			return loc, nil
		}
	}
	return nil, tkerror.Wrap(err, "failed to load locale file").
		WithOperation("i18n.LoadFile").
		WithDetail("path", path)
}

// LoadDir registers every *.toml, *.yaml and *.yml locale in dir. Files that
// fail to parse are logged and skipped. It returns the number registered.
func (r *Registry) LoadDir(dir string) (int, error) {
	names, err := filex.ListFiles(dir, ".toml", ".yaml", ".yml")
	if err != nil {
		return 0, tkerror.Wrap(err, "locales directory not readable").
			WithCode(tkerror.CodeLocaleNotFound).
			WithOperation("i18n.LoadDir").
			WithDetail("directory", dir)
	}

	r.mu.RLock()
	logger := r.logger
	r.mu.RUnlock()

	loaded := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		loc, err := LoadFile(path)
		if err == nil {
			err = r.Register(loc)
		}
		if err != nil {
			logger.WarnWithErr("skipping locale file", err, tklog.String("path", path))
			continue
		}
		logger.Debug("locale registered", tklog.String("locale", loc.Name), tklog.String("path", path))
		loaded++
	}
	return loaded, nil
}
