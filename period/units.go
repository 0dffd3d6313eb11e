package period

import (
	"fmt"

	isoperiod "github.com/rickb777/period"
)

// Unit identifies the time unit a Field is measured in.
type Unit int

const (
	UnitYears Unit = iota + 1
	UnitMonths
	UnitWeeks
	UnitDays
	UnitHours
	UnitMinutes
	UnitSeconds
)

func (u Unit) String() string {
	switch u {
	case UnitYears:
		return "years"
	case UnitMonths:
		return "months"
	case UnitWeeks:
		return "weeks"
	case UnitDays:
		return "days"
	case UnitHours:
		return "hours"
	case UnitMinutes:
		return "minutes"
	case UnitSeconds:
		return "seconds"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// UnitTag is the set of unit markers a Field can be instantiated with. The
// spec method is unexported, so the set is closed: no unit can be added
// outside this package.
type UnitTag interface {
	comparable
	spec() unitSpec
}

type unitSpec struct {
	unit       Unit
	designator isoperiod.Designator
	timePart   bool
}

type (
	yearsTag   struct{}
	monthsTag  struct{}
	weeksTag   struct{}
	daysTag    struct{}
	hoursTag   struct{}
	minutesTag struct{}
	secondsTag struct{}
)

func (yearsTag) spec() unitSpec   { return unitSpec{UnitYears, isoperiod.Year, false} }
func (monthsTag) spec() unitSpec  { return unitSpec{UnitMonths, isoperiod.Month, false} }
func (weeksTag) spec() unitSpec   { return unitSpec{UnitWeeks, isoperiod.Week, false} }
func (daysTag) spec() unitSpec    { return unitSpec{UnitDays, isoperiod.Day, false} }
func (hoursTag) spec() unitSpec   { return unitSpec{UnitHours, isoperiod.Hour, true} }
func (minutesTag) spec() unitSpec { return unitSpec{UnitMinutes, isoperiod.Minute, true} }
func (secondsTag) spec() unitSpec { return unitSpec{UnitSeconds, isoperiod.Second, true} }

// The seven concrete single-unit fields.
type (
	YearsField   = Field[yearsTag]
	MonthsField  = Field[monthsTag]
	WeeksField   = Field[weeksTag]
	DaysField    = Field[daysTag]
	HoursField   = Field[hoursTag]
	MinutesField = Field[minutesTag]
	SecondsField = Field[secondsTag]
)

// Years returns a period of the given number of years.
func Years(amount int32) YearsField { return YearsField{amount: amount} }

// Months returns a period of the given number of months.
func Months(amount int32) MonthsField { return MonthsField{amount: amount} }

// Weeks returns a period of the given number of weeks.
func Weeks(amount int32) WeeksField { return WeeksField{amount: amount} }

// Days returns a period of the given number of days.
func Days(amount int32) DaysField { return DaysField{amount: amount} }

// Hours returns a period of the given number of hours.
func Hours(amount int32) HoursField { return HoursField{amount: amount} }

// Minutes returns a period of the given number of minutes.
func Minutes(amount int32) MinutesField { return MinutesField{amount: amount} }

// Seconds returns a period of the given number of seconds.
func Seconds(amount int32) SecondsField { return SecondsField{amount: amount} }

// ParseYears reads an ISO-8601 period containing only years, such as "P6Y".
func ParseYears(s string) (YearsField, error) { return parse[yearsTag](s) }

// ParseMonths reads an ISO-8601 period containing only months, such as "P6M".
func ParseMonths(s string) (MonthsField, error) { return parse[monthsTag](s) }

// ParseWeeks reads an ISO-8601 period containing only weeks, such as "P6W".
func ParseWeeks(s string) (WeeksField, error) { return parse[weeksTag](s) }

// ParseDays reads an ISO-8601 period containing only days, such as "P6D".
func ParseDays(s string) (DaysField, error) { return parse[daysTag](s) }

// ParseHours reads an ISO-8601 period containing only hours, such as "PT6H".
func ParseHours(s string) (HoursField, error) { return parse[hoursTag](s) }

// ParseMinutes reads an ISO-8601 period containing only minutes, such as "PT6M".
func ParseMinutes(s string) (MinutesField, error) { return parse[minutesTag](s) }

// ParseSeconds reads an ISO-8601 period containing only seconds, such as "PT6S".
func ParseSeconds(s string) (SecondsField, error) { return parse[secondsTag](s) }
