// Package duration models how long a toast stays on screen.
//
// A duration is either one of a small set of standard lengths that host
// presenters support natively, or an arbitrary millisecond value that the
// presentation loop enforces with its own timer.
package duration

import (
	"errors"
	"fmt"
	"math"
)

// Standard is a named duration with native presenter support.
type Standard int

const (
	Short Standard = iota
	Long
	Indefinite
)

// Millisecond equivalents of the standard durations.
const (
	ShortMillis = 4000
	LongMillis  = 10000

	// IndefiniteMillis is the sentinel for "never expires". A custom
	// duration constructed with this exact value is indefinite too.
	IndefiniteMillis = math.MaxInt64
)

// ErrNonPositive is returned when constructing a duration from a
// zero or negative value.
var ErrNonPositive = errors.New("duration must be positive")

// Duration is how long a toast is displayed. The zero value is
// Standard(Short).
type Duration struct {
	custom bool
	std    Standard
	millis int64
}

// FromStandard returns the duration for a standard tag.
func FromStandard(std Standard) Duration {
	return Duration{std: std}
}

// FromMillis returns a custom duration of ms milliseconds.
// ms equal to IndefiniteMillis yields an indefinite duration.
func FromMillis(ms int64) (Duration, error) {
	if ms <= 0 {
		return Duration{}, fmt.Errorf("from millis %d: %w", ms, ErrNonPositive)
	}
	return Duration{custom: true, millis: ms}, nil
}

// FromSeconds returns a custom duration of s seconds, truncated toward
// zero at millisecond resolution. Positive values below one millisecond
// floor to 1ms rather than truncating into an invalid duration; values
// too large to represent as int64 milliseconds are indefinite.
func FromSeconds(s float64) (Duration, error) {
	if s <= 0 {
		return Duration{}, fmt.Errorf("from seconds %g: %w", s, ErrNonPositive)
	}
	// int64(s * 1000) is undefined for out-of-range floats and
	// saturates negative on amd64.
	if s >= float64(math.MaxInt64)/1000 {
		return FromMillis(IndefiniteMillis)
	}
	ms := int64(s * 1000)
	if ms < 1 {
		ms = 1
	}
	return FromMillis(ms)
}

// Millis returns the millisecond equivalent. Indefinite durations
// return IndefiniteMillis.
func (d Duration) Millis() int64 {
	if d.custom {
		return d.millis
	}
	switch d.std {
	case Short:
		return ShortMillis
	case Long:
		return LongMillis
	case Indefinite:
		return IndefiniteMillis
	}
	return ShortMillis
}

// IsIndefinite reports whether the toast never expires on its own.
func (d Duration) IsIndefinite() bool {
	if d.custom {
		return d.millis == IndefiniteMillis
	}
	return d.std == Indefinite
}

// StandardTag returns the standard tag and true when the duration was
// built from one. Custom durations return false; presenters that only
// speak standard tags must run their own timer for those.
func (d Duration) StandardTag() (Standard, bool) {
	if d.custom {
		return 0, false
	}
	return d.std, true
}

// String returns a compact human-readable form, for debugging.
func (d Duration) String() string {
	if d.IsIndefinite() {
		return "indefinite"
	}
	if d.custom {
		return fmt.Sprintf("%dms", d.millis)
	}
	switch d.std {
	case Short:
		return "short"
	case Long:
		return "long"
	}
	return "short"
}
