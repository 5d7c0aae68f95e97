// File: labels_test.go
// Title: Relative Label Tests
// Description: Tests for label rendering, validation and map conversion.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package i18n

import (
	"fmt"
	"testing"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
)

func TestLabelRender(t *testing.T) {
	if got := Text("%d minutes").Render(5, false, "mm", true); got != "5 minutes" {
		t.Errorf("Render() = %q", got)
	}
	if got := Text("a minute").Render(1, false, "m", true); got != "a minute" {
		t.Errorf("Render() = %q", got)
	}

	fn := Label{Func: func(value int, withoutSuffix bool, key string, isFuture bool) string {
		return fmt.Sprintf("%s:%d:%v:%v", key, value, withoutSuffix, isFuture)
	}}
	if got := fn.Render(3, true, "dd", false); got != "dd:3:true:false" {
		t.Errorf("Func Render() = %q", got)
	}
}

func TestValidateLabels(t *testing.T) {
	if err := EnglishLabels().Validate(); err != nil {
		t.Errorf("EnglishLabels().Validate() error = %v", err)
	}

	partial := EnglishLabels()
	delete(partial.Units, "ww")
	partial.Past = Label{}
	err := partial.Validate()
	if !tkerror.HasCode(err, tkerror.CodeInvalidLocale) {
		t.Fatalf("Validate() error = %v, want CodeInvalidLocale", err)
	}
}

func TestLabelsFromMap(t *testing.T) {
	labels, err := LabelsFromMap(map[string]string{"future": "dans %s", "mm": "%d min"}, EnglishLabels())
	if err != nil {
		t.Fatalf("LabelsFromMap() error = %v", err)
	}
	if labels.Future.Text != "dans %s" {
		t.Errorf("Future = %q", labels.Future.Text)
	}
	if labels.Unit("mm").Text != "%d min" {
		t.Errorf("mm = %q", labels.Unit("mm").Text)
	}
	if labels.Unit("hh").Text != "%d hours" {
		t.Errorf("hh should come from base, got %q", labels.Unit("hh").Text)
	}

	if _, err := LabelsFromMap(map[string]string{"fortnight": "x"}, nil); err == nil {
		t.Error("unknown key should be rejected")
	}

	base := EnglishLabels()
	_, _ = LabelsFromMap(map[string]string{"s": "changed"}, base)
	if base.Unit("s").Text != "a few seconds" {
		t.Error("LabelsFromMap() mutated base")
	}
}
