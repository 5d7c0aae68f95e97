// File: duration_test.go
// Title: Duration Tests
// Description: Creation, ISO 8601 parsing and rendering, component getters,
//              formatting and humanization of durations.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleSpan = 93784005 // 1d 2h 3m 4.005s

func TestDurationFromInputs(t *testing.T) {
	env, _ := newTestEnv(t)

	tests := []struct {
		name      string
		input     DurationInput
		wantValid bool
		wantMs    float64
	}{
		{"millis", Millis(1500), true, 1500},
		{"fields", DurationFields{Hour: 1, Minute: 30}, true, 5400000},
		{"full ISO", ISODuration("P1Y2M3DT4H5M6S"), true, 37091106000},
		{"fractional seconds", ISODuration("PT1.5S"), true, 1500},
		{"lowercase weeks", ISODuration("p2w"), true, 1209600000},
		{"negative", ISODuration("-PT1M"), true, -60000},
		{"explicit plus", ISODuration("+PT2H"), true, 7200000},
		{"empty period", ISODuration("P"), true, 0},
		{"dangling T", ISODuration("PT"), false, 0},
		{"dangling T after days", ISODuration("P1DT"), false, 0},
		{"missing P", ISODuration("1D"), false, 0},
		{"garbage", ISODuration("soon"), false, 0},
		{"out of range", Millis(float64(MaxMillis)), false, 0},
		{"copy", env.Duration(Millis(42)), true, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := env.Duration(tt.input)
			if d.IsValid() != tt.wantValid {
				t.Fatalf("IsValid() = %v, want %v", d.IsValid(), tt.wantValid)
			}
			if tt.wantValid && d.AsMilliseconds() != tt.wantMs {
				t.Errorf("AsMilliseconds() = %v, want %v", d.AsMilliseconds(), tt.wantMs)
			}
		})
	}
}

func TestDurationComponents(t *testing.T) {
	env, _ := newTestEnv(t)

	tests := []struct {
		name string
		ms   float64
		want DurationObject
	}{
		{"positive", sampleSpan, DurationObject{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Milliseconds: 5}},
		{"negative", -sampleSpan, DurationObject{Days: -1, Hours: -2, Minutes: -3, Seconds: -4, Milliseconds: -5}},
		{"long", 400 * 86400000, DurationObject{Years: 1, Months: 13, Weeks: 57, Days: 400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := env.Duration(Millis(tt.ms)).ToObject()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToObject() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	invalid := env.Duration(ISODuration("soon"))
	if invalid.Days() != InvalidNumber || !math.IsNaN(invalid.AsHours()) {
		t.Errorf("invalid Duration: Days() = %d, AsHours() = %v", invalid.Days(), invalid.AsHours())
	}
}

func TestDurationTotals(t *testing.T) {
	env, _ := newTestEnv(t)
	d := env.Duration(Millis(90 * 60000))

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"AsHours", d.AsHours(), 1.5},
		{"AsMinutes", d.AsMinutes(), 90},
		{"AsSeconds", d.AsSeconds(), 5400},
		{"As(Day)", d.As(Day), 0.0625},
		{"Add", d.Add(30, Minute).AsHours(), 2},
		{"Subtract", d.Subtract(1, Hour).AsMinutes(), 30},
		{"Plus", d.Plus(ISODuration("PT30M")).AsHours(), 2},
		{"Minus", d.Minus(Millis(5400000)).AsMilliseconds(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestDurationISOString(t *testing.T) {
	env, _ := newTestEnv(t)

	tests := []struct {
		ms   float64
		want string
	}{
		{sampleSpan, "P1DT2H3M4.005S"},
		{2678400000, "P1MT13H30M"},
		{37091106000, "P1Y2M3DT4H5M6S"},
		{-1500, "-PT1.5S"},
		{-60000, "-PT1M"},
		{86400000, "P1D"},
		{0, "PT0S"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := env.Duration(Millis(tt.ms)).ISOString(); got != tt.want {
				t.Errorf("ISOString() of %v = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}

	if got := env.Duration(ISODuration("nope")).String(); got != InvalidDurationText {
		t.Errorf("String() of invalid = %q, want %q", got, InvalidDurationText)
	}
}

func TestDurationISORoundTrip(t *testing.T) {
	env, _ := newTestEnv(t)
	spans := []float64{sampleSpan, -sampleSpan, 2678400000, 37091106000, 1, 999, 59999, 31557600000 * 3}

	for _, ms := range spans {
		iso := env.Duration(Millis(ms)).ISOString()
		back := env.Duration(ISODuration(iso))
		if back.AsMilliseconds() != ms {
			t.Errorf("%v -> %q -> %v", ms, iso, back.AsMilliseconds())
		}
	}
}

func TestDurationJSON(t *testing.T) {
	env, _ := newTestEnv(t)
	data, err := env.Duration(Millis(1500)).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"PT1.5S"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, "PT1.5S")
	}
}

func TestDurationFormat(t *testing.T) {
	env, _ := newTestEnv(t)
	d := env.Duration(Millis(sampleSpan))

	tests := []struct {
		template string
		want     string
	}{
		{"", "26:03:04"},
		{DigitalClock, "26:03:04"},
		{DigitalClockMillis, "26:03:04.005"},
		{"HH:mm", "26:03"},
		{"d[d] h[h] m[m]", "1d 2h 3m"},
		{"hh:mm:ss.SSS", "02:03:04.005"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			if got := d.Format(tt.template); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestDurationHumanize(t *testing.T) {
	env, _ := newTestEnv(t)

	tests := []struct {
		name       string
		ms         float64
		withSuffix bool
		want       string
	}{
		{"plain", 3600000, false, "an hour"},
		{"future", 3600000, true, "in an hour"},
		{"past", -3600000, true, "an hour ago"},
		{"days", 3 * 86400000, false, "3 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := env.Duration(Millis(tt.ms)).Humanize(tt.withSuffix); got != tt.want {
				t.Errorf("Humanize(%v) = %q, want %q", tt.withSuffix, got, tt.want)
			}
		})
	}

	if got := env.HumanizeDuration(90000); got != "2 minutes" {
		t.Errorf("HumanizeDuration(90000) = %q, want %q", got, "2 minutes")
	}
}

func TestFormatDuration(t *testing.T) {
	env, _ := newTestEnv(t)

	tests := []struct {
		name    string
		ms      float64
		options DurationFormatOptions
		want    string
	}{
		{"long", sampleSpan, DurationFormatOptions{}, "1 day, 2 hours, 3 minutes, 4 seconds"},
		{"largest two", sampleSpan, DurationFormatOptions{Largest: 2}, "1 day, 2 hours"},
		{"selected units", sampleSpan, DurationFormatOptions{Units: []Unit{Hour, Minute}}, "2 hours, 3 minutes"},
		{"singular", 86400000 + 1000, DurationFormatOptions{}, "1 day, 1 second"},
		{"digital", sampleSpan, DurationFormatOptions{Style: DurationDigital}, "26:03:04"},
		{"template", sampleSpan, DurationFormatOptions{Template: "HH:mm"}, "26:03"},
		{"zero", 0, DurationFormatOptions{}, "0 milliseconds"},
		{"invalid", math.NaN(), DurationFormatOptions{}, InvalidDurationText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := env.FormatDuration(tt.ms, tt.options); got != tt.want {
				t.Errorf("FormatDuration() = %q, want %q", got, tt.want)
			}
		})
	}
}
