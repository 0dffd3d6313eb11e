// Package weekend provides calendar adjusters that skip Saturdays and
// Sundays when stepping a date forward or backward, for example to find the
// working day that follows a delivery date.
package weekend

import (
	"errors"
	"fmt"
	"time"

	"github.com/rickb777/date/v2"
)

// Adjuster maps a date to another date according to a calendar rule.
type Adjuster interface {
	Adjust(d date.Date) date.Date
}

// Rule is a stateless weekend-skipping adjuster. The two rules,
// NextNonWeekendDay and PreviousNonWeekendDay, are process-wide singletons:
// repeated references yield the identical pointer, and ByName resolves a
// persisted tag back to the same instance rather than building a new one.
type Rule struct {
	name    string
	forward bool
}

var (
	// NextNonWeekendDay moves to the next day that is not a Saturday or a
	// Sunday. Fridays and Saturdays both land on the following Monday.
	NextNonWeekendDay = &Rule{name: "next-non-weekend-day", forward: true}

	// PreviousNonWeekendDay moves to the previous day that is not a
	// Saturday or a Sunday. Mondays and Sundays both land on the preceding
	// Friday.
	PreviousNonWeekendDay = &Rule{name: "previous-non-weekend-day"}
)

var _ Adjuster = NextNonWeekendDay

// ErrUnknownRule reports a rule tag that names no known rule.
var ErrUnknownRule = errors.New("weekend: unknown rule")

// ByName resolves a rule tag, as produced by String or MarshalText, to its
// canonical singleton.
func ByName(name string) (*Rule, error) {
	switch name {
	case NextNonWeekendDay.name:
		return NextNonWeekendDay, nil
	case PreviousNonWeekendDay.name:
		return PreviousNonWeekendDay, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// Adjust applies the rule to d. The result is always a non-weekend day,
// reached in one arithmetic step; date.Date counts days, so month and year
// rollover need no special casing.
func (r *Rule) Adjust(d date.Date) date.Date {
	if r.forward {
		switch d.Weekday() {
		case time.Friday:
			return d + 3
		case time.Saturday:
			return d + 2
		default: // Sunday through Thursday
			return d + 1
		}
	}
	switch d.Weekday() {
	case time.Monday:
		return d - 3
	case time.Sunday:
		return d - 2
	default: // Tuesday through Saturday
		return d - 1
	}
}

func (r *Rule) String() string { return r.name }

// MarshalText encodes the rule as its fixed name tag. Restore the singleton
// with ByName.
func (r *Rule) MarshalText() ([]byte, error) {
	return []byte(r.name), nil
}
