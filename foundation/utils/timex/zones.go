// File: zones.go
// Title: Zone Resolution
// Description: Zone resolvers backed by the Go time zone database with a
//              location cache, and by a fixed offset table for tests.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"sort"
	"sync"
	"time"
	_ "time/tzdata"

	tkerror "github.com/ersinkoc/TimeKit/foundation/core/error"
)

// HostZones resolves IANA zones with time.LoadLocation. The embedded tz
// database is used when the system has none. Loaded locations are cached.
type HostZones struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
}

// NewHostZones creates a resolver with an empty cache
func NewHostZones() *HostZones {
	return &HostZones{cache: make(map[string]*time.Location)}
}

// Location returns the cached location of zone, loading it on first use
func (z *HostZones) Location(zone string) (*time.Location, error) {
	z.mu.RLock()
	if loc, exists := z.cache[zone]; exists {
		z.mu.RUnlock()
		return loc, nil
	}
	z.mu.RUnlock()

	if zone == "" || zone == "Local" {
		return nil, unknownZone(zone, nil)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, unknownZone(zone, err)
	}

	z.mu.Lock()
	z.cache[zone] = loc
	z.mu.Unlock()

	return loc, nil
}

// Resolve implements ZoneResolver
func (z *HostZones) Resolve(zone string, ms int64) (Civil, int, error) {
	loc, err := z.Location(zone)
	if err != nil {
		return Civil{}, 0, err
	}
	t := time.UnixMilli(ms).In(loc)
	_, seconds := t.Zone()
	return civilOf(t), seconds / 60, nil
}

// FixedZones maps zone names to constant offsets in minutes
type FixedZones map[string]int

// Resolve implements ZoneResolver
func (z FixedZones) Resolve(zone string, ms int64) (Civil, int, error) {
	offset, ok := z[zone]
	if !ok {
		return Civil{}, 0, unknownZone(zone, nil)
	}
	return civilAt(ms, offset), offset, nil
}

func unknownZone(zone string, cause error) *tkerror.Error {
	var err *tkerror.Error
	if cause != nil {
		err = tkerror.Wrap(cause, "unknown timezone")
	} else {
		err = tkerror.New("unknown timezone")
	}
	return err.WithCode(tkerror.CodeInvalidTimezone).
		WithOperation("timex.ResolveZone").
		WithDetail("zone", zone)
}

var commonZones = []string{
	"Africa/Cairo", "Africa/Johannesburg", "Africa/Lagos", "Africa/Nairobi",
	"America/Argentina/Buenos_Aires", "America/Bogota", "America/Chicago",
	"America/Denver", "America/Los_Angeles", "America/Mexico_City",
	"America/New_York", "America/Phoenix", "America/Sao_Paulo",
	"America/Toronto", "America/Vancouver",
	"Asia/Bangkok", "Asia/Dubai", "Asia/Hong_Kong", "Asia/Jakarta",
	"Asia/Kolkata", "Asia/Seoul", "Asia/Shanghai", "Asia/Singapore",
	"Asia/Taipei", "Asia/Tokyo",
	"Atlantic/Reykjavik",
	"Australia/Brisbane", "Australia/Melbourne", "Australia/Perth", "Australia/Sydney",
	"Europe/Amsterdam", "Europe/Berlin", "Europe/Istanbul", "Europe/London",
	"Europe/Madrid", "Europe/Paris", "Europe/Rome", "Europe/Zurich",
	"Pacific/Auckland", "Pacific/Honolulu",
	"UTC",
}

// Timezones returns a sorted list of commonly used IANA zone names
func Timezones() []string {
	zones := make([]string, len(commonZones))
	copy(zones, commonZones)
	sort.Strings(zones)
	return zones
}

// ZoneOffset returns the UTC offset in minutes observed in zone at the
// instant described by at.
func (e *Env) ZoneOffset(zone string, at Input) (int, error) {
	t := e.New(at)
	if !t.IsValid() {
		return 0, tkerror.New("invalid instant").
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("timex.ZoneOffset")
	}
	_, offset, err := e.zones.Resolve(zone, t.ms)
	if err != nil {
		return 0, err
	}
	return offset, nil
}

// InZone creates an Instant from in and views it in zone
func (e *Env) InZone(in Input, zone string) (Instant, error) {
	return e.New(in).Tz(zone)
}
