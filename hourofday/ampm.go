package hourofday

import (
	"errors"
	"fmt"
)

// ErrUnknownAmPm reports a half-of-day value other than AM or PM.
var ErrUnknownAmPm = errors.New("hourofday: unknown half-of-day")

// AmPm is the half-of-day marker used by the 12-hour clock.
type AmPm int

const (
	AM AmPm = iota
	PM
)

func (a AmPm) String() string {
	switch a {
	case AM:
		return "AM"
	case PM:
		return "PM"
	}
	return fmt.Sprintf("AmPm(%d)", int(a))
}

// AmPmOf classifies an hour of the 24-hour clock into its half of the day.
func AmPmOf(hour int) (AmPm, error) {
	if hour < 0 || hour > 23 {
		return AM, fmt.Errorf("%w: hour-of-day must be 0-23, got %d", ErrOutOfRange, hour)
	}
	if hour < 12 {
		return AM, nil
	}
	return PM, nil
}
