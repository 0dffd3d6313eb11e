// Package hourofday provides an immutable hour-of-day field on the 24-hour
// clock, with 12-hour clock and AM/PM views, and an adjuster that stamps the
// hour onto a time of day.
package hourofday

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var (
	// ErrOutOfRange reports an hour outside its valid range.
	ErrOutOfRange = errors.New("hourofday: value out of range")

	// ErrNilSource reports a derivation from a nil source.
	ErrNilSource = errors.New("hourofday: nil source")

	// ErrUnsupportedSource reports a derivation from a source that carries
	// no hour-of-day component, such as a calendar date.
	ErrUnsupportedSource = errors.New("hourofday: source has no hour-of-day")
)

// HourOfDay is an hour on the 24-hour clock, in the range 0 to 23. Values
// are validated at construction; the arithmetic comparisons and views are
// all derived from the single stored hour.
type HourOfDay struct {
	value int
}

// New validates and wraps an hour-of-day.
func New(hour int) (HourOfDay, error) {
	if hour < 0 || hour > 23 {
		return HourOfDay{}, fmt.Errorf("%w: hour-of-day must be 0-23, got %d", ErrOutOfRange, hour)
	}
	return HourOfDay{value: hour}, nil
}

// FromHalf builds an hour-of-day from a half-of-day marker and an hour
// within that half, in the range 0 to 11.
func FromHalf(half AmPm, hourOfHalf int) (HourOfDay, error) {
	if half != AM && half != PM {
		return HourOfDay{}, fmt.Errorf("%w: %d", ErrUnknownAmPm, int(half))
	}
	if hourOfHalf < 0 || hourOfHalf > 11 {
		return HourOfDay{}, fmt.Errorf("%w: hour-of-am-pm must be 0-11, got %d", ErrOutOfRange, hourOfHalf)
	}
	if half == PM {
		return HourOfDay{value: hourOfHalf + 12}, nil
	}
	return HourOfDay{value: hourOfHalf}, nil
}

// HourSource is anything exposing a 24-hour clock hour, such as time.Time.
type HourSource interface {
	Hour() int
}

// From derives the hour-of-day from any source exposing one. Sources with
// no hour-of-day component fail with ErrUnsupportedSource.
func From(src any) (HourOfDay, error) {
	switch s := src.(type) {
	case nil:
		return HourOfDay{}, ErrNilSource
	case HourSource:
		// A typed nil pointer still satisfies HourSource but carries no
		// hour to read.
		if v := reflect.ValueOf(src); v.Kind() == reflect.Pointer && v.IsNil() {
			return HourOfDay{}, ErrNilSource
		}
		return New(s.Hour())
	}
	return HourOfDay{}, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
}

// Value returns the hour on the 24-hour clock, 0 to 23.
func (h HourOfDay) Value() int { return h.value }

// AmPm returns the half of the day the hour falls in.
func (h HourOfDay) AmPm() AmPm {
	if h.value < 12 {
		return AM
	}
	return PM
}

// HourOfAmPm returns the hour within its half of the day, 0 to 11.
func (h HourOfDay) HourOfAmPm() int { return h.value % 12 }

// ClockHourOfAmPm returns the hour as shown on a 12-hour clock, 1 to 12,
// where both midnight and noon read 12.
func (h HourOfDay) ClockHourOfAmPm() int {
	if hour := h.value % 12; hour != 0 {
		return hour
	}
	return 12
}

// ClockHourOfDay returns the hour as counted on a 24-hour clock face,
// 1 to 24, where midnight reads 24.
func (h HourOfDay) ClockHourOfDay() int {
	if h.value == 0 {
		return 24
	}
	return h.value
}

// AdjustTime returns t with its hour replaced by this value. Minute,
// second, sub-second and location are preserved.
func (h HourOfDay) AdjustTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), h.value, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Compare orders two hours on the 24-hour clock.
func (h HourOfDay) Compare(other HourOfDay) int {
	switch {
	case h.value < other.value:
		return -1
	case h.value > other.value:
		return 1
	}
	return 0
}

func (h HourOfDay) String() string {
	return "HourOfDay=" + strconv.Itoa(h.value)
}

// MarshalText encodes the hour as its decimal value.
func (h HourOfDay) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(h.value), 10), nil
}

// UnmarshalText decodes and re-validates a decimal hour.
func (h *HourOfDay) UnmarshalText(text []byte) error {
	value, err := strconv.Atoi(string(text))
	if err != nil {
		return fmt.Errorf("hourofday: %w", err)
	}
	parsed, err := New(value)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
