// File: instant_test.go
// Title: Instant Value Tests
// Description: Getters, conversions, offsets and zones.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
)

const sampleISO = "2021-06-15T10:30:45.123+03:00"

func TestInstantGetters(t *testing.T) {
	env, _ := newTestEnv(t)
	i := mustParse(t, env, sampleISO)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Year", i.Year(), 2021},
		{"Month", i.Month(), 6},
		{"Date", i.Date(), 15},
		{"Day", i.Day(), 2},
		{"Hour", i.Hour(), 10},
		{"Minute", i.Minute(), 30},
		{"Second", i.Second(), 45},
		{"Millisecond", i.Millisecond(), 123},
		{"Get(Month)", i.Get(Month), 6},
		{"Get(Day)", i.Get(Day), 15},
		{"Get(Week)", i.Get(Week), InvalidNumber},
		{"UTCOffset", i.UTCOffset(), 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %d, want %d", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestInstantConversions(t *testing.T) {
	env, _ := newTestEnv(t)
	i := mustParse(t, env, sampleISO)

	if diff := cmp.Diff([7]int{2021, 6, 15, 10, 30, 45, 123}, i.ToArray()); diff != "" {
		t.Errorf("ToArray() mismatch (-want +got):\n%s", diff)
	}

	obj, ok := i.ToObject()
	want := Civil{Year: 2021, Month: 6, Day: 15, Hour: 10, Minute: 30, Second: 45, Millisecond: 123}
	if !ok {
		t.Fatal("ToObject() ok = false, want true")
	}
	if diff := cmp.Diff(want, obj); diff != "" {
		t.Errorf("ToObject() mismatch (-want +got):\n%s", diff)
	}

	if got := i.ISOString(); got != "2021-06-15T07:30:45.123Z" {
		t.Errorf("ISOString() = %q, want %q", got, "2021-06-15T07:30:45.123Z")
	}
	if got := i.ToTime().UnixMilli(); got != i.ValueOf() {
		t.Errorf("ToTime().UnixMilli() = %d, want %d", got, i.ValueOf())
	}
	if _, offset := i.ToTime().Zone(); offset != 180*60 {
		t.Errorf("ToTime() offset = %d, want %d", offset, 180*60)
	}
}

func TestInstantUnixFloors(t *testing.T) {
	env, _ := newTestEnv(t)
	tests := []struct {
		ms   int64
		want int64
	}{
		{1500, 1},
		{-1500, -2},
		{-1000, -1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := env.New(Timestamp(tt.ms)).Unix(); got != tt.want {
			t.Errorf("Unix() of %d = %d, want %d", tt.ms, got, tt.want)
		}
	}
	if got := (Instant{}).Unix(); got != math.MinInt64 {
		t.Errorf("Unix() of invalid = %d, want MinInt64", got)
	}
}

func TestInstantStringAndJSON(t *testing.T) {
	env, _ := newTestEnv(t)
	i := env.New(Timestamp(1609459200000))

	if got := i.String(); got != "Fri Jan 01 2021 00:00:00 GMT+0000" {
		t.Errorf("String() = %q, want %q", got, "Fri Jan 01 2021 00:00:00 GMT+0000")
	}
	data, err := i.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"2021-01-01T00:00:00.000Z"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, "2021-01-01T00:00:00.000Z")
	}
	if got := (Instant{}).String(); got != InvalidDate {
		t.Errorf("String() of invalid = %q, want %q", got, InvalidDate)
	}
}

func TestInstantTimezoneLabels(t *testing.T) {
	env, _ := newTestEnv(t)
	i := mustParse(t, env, sampleISO)

	tests := []struct {
		name string
		in   Instant
		want string
	}{
		{"positive offset", i, "UTC+0300"},
		{"utc", i.UTC(), "UTC"},
		{"negative offset", i.WithUTCOffset(-330), "UTC-0530"},
		{"local host", i.Local(), "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Timezone(); got != tt.want {
				t.Errorf("Timezone() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstantUTCAndLocalKeepInstant(t *testing.T) {
	env, _ := newTestEnv(t)
	i := mustParse(t, env, sampleISO)

	for name, view := range map[string]Instant{"UTC": i.UTC(), "Local": i.Local()} {
		if view.ValueOf() != i.ValueOf() {
			t.Errorf("%s().ValueOf() = %d, want %d", name, view.ValueOf(), i.ValueOf())
		}
		if view.Hour() != 7 {
			t.Errorf("%s().Hour() = %d, want 7", name, view.Hour())
		}
	}
}

func TestWithUTCOffset(t *testing.T) {
	env, _ := newTestEnv(t)
	i := mustParse(t, env, sampleISO)

	tests := []struct {
		name      string
		got       Instant
		wantValid bool
		wantISO   string
	}{
		{"east", i.WithUTCOffset(60), true, "2021-06-15T09:30:45.123Z"},
		{"west string", i.WithUTCOffsetString("-05:00"), true, "2021-06-15T15:30:45.123Z"},
		{"same offset", i.WithUTCOffset(180), true, "2021-06-15T07:30:45.123Z"},
		{"too far east", i.WithUTCOffset(900), false, InvalidDate},
		{"unparseable", i.WithUTCOffsetString("bogus"), false, InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.IsValid() != tt.wantValid {
				t.Fatalf("IsValid() = %v, want %v", tt.got.IsValid(), tt.wantValid)
			}
			if iso := tt.got.ISOString(); iso != tt.wantISO {
				t.Errorf("ISOString() = %q, want %q", iso, tt.wantISO)
			}
			if tt.wantValid && tt.got.Hour() != 10 {
				t.Errorf("Hour() = %d, want the civil hour 10 kept", tt.got.Hour())
			}
		})
	}
}

func TestInstantTz(t *testing.T) {
	env, _ := newTestEnv(t)
	i := mustParse(t, env, sampleISO)

	kolkata, err := i.Tz("Asia/Kolkata")
	if err != nil {
		t.Fatalf("Tz() error = %v", err)
	}
	if kolkata.Hour() != 13 || kolkata.Minute() != 0 {
		t.Errorf("Tz() = %02d:%02d, want 13:00", kolkata.Hour(), kolkata.Minute())
	}
	if kolkata.Timezone() != "Asia/Kolkata" || kolkata.UTCOffset() != 330 {
		t.Errorf("Tz() zone %q offset %d, want Asia/Kolkata and 330", kolkata.Timezone(), kolkata.UTCOffset())
	}
	if kolkata.ValueOf() != i.ValueOf() {
		t.Errorf("Tz().ValueOf() = %d, want %d", kolkata.ValueOf(), i.ValueOf())
	}

	_, err = i.Tz("Mars/Olympus_Mons")
	if err == nil {
		t.Fatal("Tz() with unknown zone: expected error")
	}
	if !tkerror.HasCode(err, tkerror.CodeInvalidTimezone) {
		t.Errorf("Tz() error code = %v, want %v", tkerror.GetCode(err), tkerror.CodeInvalidTimezone)
	}
}

func TestInstantTzInvalidReceiver(t *testing.T) {
	env, _ := newTestEnv(t)
	invalid := env.New(String("nope"))

	tests := []struct {
		name    string
		zone    string
		wantErr bool
	}{
		{"known zone", "Asia/Kolkata", false},
		{"unknown zone", "Mars/Olympus_Mons", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := invalid.Tz(tt.zone)
			if got.IsValid() {
				t.Error("Tz() of an invalid instant is valid")
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("Tz(%q) error = %v, wantErr %v", tt.zone, err, tt.wantErr)
			}
			if tt.wantErr && !tkerror.HasCode(err, tkerror.CodeInvalidTimezone) {
				t.Errorf("Tz() error code = %v, want %v", tkerror.GetCode(err), tkerror.CodeInvalidTimezone)
			}
		})
	}
}

func TestInstantIsImmutable(t *testing.T) {
	env, _ := newTestEnv(t)
	i := mustParse(t, env, sampleISO)
	before := i.ValueOf()

	_ = i.Add(3, Day)
	_ = i.SetYear(1999)
	_ = i.StartOf(Month)
	_ = i.UTC()

	if i.ValueOf() != before || i.UTCOffset() != 180 {
		t.Errorf("receiver changed to %v", i)
	}
}
