// File: labels.go
// Title: Relative-Time Labels
// Description: Label templates for "in 5 minutes" / "a day ago" style output.
//              A label is either a template with a %d placeholder or a
//              function for languages whose grammar needs more than a
//              substitution.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package i18n

import (
	"fmt"
	"strconv"
	"strings"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
)

// LabelFunc renders a label for value. key is the unit key ("mm", "d", ...)
// and isFuture reports the direction of the span.
type LabelFunc func(value int, withoutSuffix bool, key string, isFuture bool) string

// Label is a relative-time template. Func takes precedence over Text.
type Label struct {
	Text string
	Func LabelFunc
}

// Text returns a template label
func Text(s string) Label {
	return Label{Text: s}
}

// Render produces the label for value, substituting the first %d.
func (l Label) Render(value int, withoutSuffix bool, key string, isFuture bool) string {
	if l.Func != nil {
		return l.Func(value, withoutSuffix, key, isFuture)
	}
	return strings.Replace(l.Text, "%d", strconv.Itoa(value), 1)
}

// IsZero reports whether the label has neither text nor function
func (l Label) IsZero() bool {
	return l.Text == "" && l.Func == nil
}

// UnitKeys lists the unit keys in ascending order, singular before plural.
var UnitKeys = []string{"s", "ss", "m", "mm", "h", "hh", "d", "dd", "w", "ww", "M", "MM", "y", "yy"}

// RelativeLabels holds the wrapping templates and one label per unit key.
// Future and Past contain a %s placeholder for the rendered unit label.
type RelativeLabels struct {
	Future Label
	Past   Label
	Units  map[string]Label
}

// Unit returns the label for key
func (r *RelativeLabels) Unit(key string) Label {
	if r == nil {
		return Label{}
	}
	return r.Units[key]
}

// Clone returns a deep copy
func (r *RelativeLabels) Clone() *RelativeLabels {
	if r == nil {
		return nil
	}
	units := make(map[string]Label, len(r.Units))
	for k, v := range r.Units {
		units[k] = v
	}
	return &RelativeLabels{Future: r.Future, Past: r.Past, Units: units}
}

// Validate checks that every wrapping template and unit key is present
func (r *RelativeLabels) Validate() error {
	missing := make([]string, 0)
	if r.Future.IsZero() {
		missing = append(missing, "future")
	}
	if r.Past.IsZero() {
		missing = append(missing, "past")
	}
	for _, key := range UnitKeys {
		if r.Units[key].IsZero() {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return tkerror.New(fmt.Sprintf("relative labels missing keys: %s", strings.Join(missing, ", "))).
			WithCode(tkerror.CodeInvalidLocale).
			WithOperation("i18n.RelativeLabels.Validate").
			WithDetail("missing", missing)
	}
	return nil
}

// LabelsFromMap builds labels from plain templates keyed by "future",
// "past" and the unit keys. Keys absent from values are taken from base,
// which may be nil. Unknown keys are rejected.
func LabelsFromMap(values map[string]string, base *RelativeLabels) (*RelativeLabels, error) {
	result := base.Clone()
	if result == nil {
		result = &RelativeLabels{Units: make(map[string]Label, len(UnitKeys))}
	}

	known := make(map[string]bool, len(UnitKeys))
	for _, key := range UnitKeys {
		known[key] = true
	}

	for key, value := range values {
		switch {
		case key == "future":
			result.Future = Text(value)
		case key == "past":
			result.Past = Text(value)
		case known[key]:
			result.Units[key] = Text(value)
		default:
			return nil, tkerror.New(fmt.Sprintf("unknown relative label key %q", key)).
				WithCode(tkerror.CodeInvalidLocale).
				WithOperation("i18n.LabelsFromMap").
				WithDetail("key", key)
		}
	}
	return result, nil
}
