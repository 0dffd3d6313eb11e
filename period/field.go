// Package period provides immutable amounts of time measured in a single
// unit, such as "6 years" or "90 minutes". All arithmetic is checked against
// the int32 range and fails fast on overflow, so a period fed into date
// computation can never silently hold a wrong amount.
package period

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	isoperiod "github.com/rickb777/period"
)

var (
	// ErrOverflow reports an arithmetic result outside the int32 range.
	ErrOverflow = errors.New("period: amount overflows int32")

	// ErrDivideByZero reports a division of a period amount by zero.
	ErrDivideByZero = errors.New("period: division by zero")

	// ErrUnitMismatch reports a parsed period whose non-zero fields do not
	// match the requested unit.
	ErrUnitMismatch = errors.New("period: unit mismatch")
)

// Field is an amount of time in the single unit U. Instances of different
// units are different types, so they can never be compared or mixed by
// accident; within one unit, == compares amounts. The zero value is a zero
// amount of that unit.
type Field[U UnitTag] struct {
	amount int32
}

// Amount returns the amount of time, which may be negative.
func (f Field[U]) Amount() int32 { return f.amount }

// Unit returns the unit the amount is measured in.
func (f Field[U]) Unit() Unit {
	var u U
	return u.spec().unit
}

// WithAmount returns a field of the same unit holding the given amount.
func (f Field[U]) WithAmount(amount int32) Field[U] {
	return Field[U]{amount: amount}
}

// IsZero reports whether the amount is zero.
func (f Field[U]) IsZero() bool { return f.amount == 0 }

// Plus returns the field with amount added. It fails with ErrOverflow if
// the sum does not fit in an int32.
func (f Field[U]) Plus(amount int32) (Field[U], error) {
	if amount == 0 {
		return f, nil
	}
	sum := int64(f.amount) + int64(amount)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return Field[U]{}, fmt.Errorf("%w: %d + %d", ErrOverflow, f.amount, amount)
	}
	return f.WithAmount(int32(sum)), nil
}

// Minus returns the field with amount subtracted. It fails with ErrOverflow
// if the difference does not fit in an int32.
func (f Field[U]) Minus(amount int32) (Field[U], error) {
	diff := int64(f.amount) - int64(amount)
	if diff < math.MinInt32 || diff > math.MaxInt32 {
		return Field[U]{}, fmt.Errorf("%w: %d - %d", ErrOverflow, f.amount, amount)
	}
	return f.WithAmount(int32(diff)), nil
}

// MultipliedBy returns the field with the amount multiplied by scalar. It
// fails with ErrOverflow if the product does not fit in an int32.
func (f Field[U]) MultipliedBy(scalar int32) (Field[U], error) {
	product := int64(f.amount) * int64(scalar)
	if product < math.MinInt32 || product > math.MaxInt32 {
		return Field[U]{}, fmt.Errorf("%w: %d * %d", ErrOverflow, f.amount, scalar)
	}
	return f.WithAmount(int32(product)), nil
}

// DividedBy returns the field with the amount divided by divisor, truncating
// toward zero, so 3/2 is 1 and -3/2 is -1. It fails with ErrDivideByZero
// when divisor is zero.
func (f Field[U]) DividedBy(divisor int32) (Field[U], error) {
	switch divisor {
	case 0:
		return Field[U]{}, fmt.Errorf("%w: %d / 0", ErrDivideByZero, f.amount)
	case 1:
		return f, nil
	}
	return f.WithAmount(f.amount / divisor), nil
}

// Negated returns the field with the amount negated. It fails with
// ErrOverflow when the amount is math.MinInt32, whose negation is not
// representable.
func (f Field[U]) Negated() (Field[U], error) {
	if f.amount == math.MinInt32 {
		return Field[U]{}, fmt.Errorf("%w: cannot negate %d", ErrOverflow, f.amount)
	}
	return f.WithAmount(-f.amount), nil
}

// Compare orders two fields of the same unit by amount.
func (f Field[U]) Compare(other Field[U]) int {
	return cmp.Compare(f.amount, other.amount)
}

// Period converts the field to a general ISO-8601 period with this field's
// unit as its only non-zero component.
func (f Field[U]) Period() isoperiod.Period {
	var u U
	return isoperiod.Zero.SetInt(int(f.amount), u.spec().designator)
}

// String returns the single-field ISO-8601 form, such as "P6Y" or "PT6H".
// Negative amounts carry the sign on the field, such as "P-2W".
func (f Field[U]) String() string {
	var u U
	sp := u.spec()
	if sp.timePart {
		return fmt.Sprintf("PT%d%c", f.amount, sp.designator.Byte())
	}
	return fmt.Sprintf("P%d%c", f.amount, sp.designator.Byte())
}

// MarshalText encodes the field in its ISO-8601 form.
func (f Field[U]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes an ISO-8601 period whose only non-zero field is
// this field's unit.
func (f *Field[U]) UnmarshalText(text []byte) error {
	parsed, err := parse[U](string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// parse reads an ISO-8601 period string and extracts the single field for
// unit U, rejecting strings carrying any other non-zero field, fractional
// amounts, and whole amounts outside the int32 range.
func parse[U UnitTag](s string) (Field[U], error) {
	p, err := isoperiod.Parse(s)
	if err != nil {
		return Field[U]{}, fmt.Errorf("period: %w", err)
	}
	var u U
	sp := u.spec()
	if rest := p.SetInt(0, sp.designator); !rest.IsZero() {
		return Field[U]{}, fmt.Errorf("%w: %q has fields other than %s", ErrUnitMismatch, s, sp.unit)
	}
	field := p.GetField(sp.designator)
	if field.Scale() > 0 {
		return Field[U]{}, fmt.Errorf("%w: %q has a fractional amount of %s", ErrUnitMismatch, s, sp.unit)
	}
	amount, _, ok := field.Int64(0)
	if !ok || amount < math.MinInt32 || amount > math.MaxInt32 {
		return Field[U]{}, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return Field[U]{amount: int32(amount)}, nil
}
