// Package length implements a length quantity stored as an exact count of
// nanometers.
//
// All arithmetic happens on the integer count, so repeated conversions between
// units never accumulate rounding error. Floating point only appears when a
// value is read back with Value or ValueIn.
package length

import (
	"fmt"
	"math"

	"github.com/phrazzld/measure/internal/domain"
)

// Length is an immutable distance. The unit records how the value was last
// expressed and is display metadata only; it never changes the magnitude.
type Length struct {
	nanometers int64
	unit       Unit
}

// New creates a Length of value units.
//
// It returns an error wrapping domain.ErrUnknownUnit if unit is not in the
// table, and one wrapping domain.ErrOverflow if value expressed in nanometers
// does not fit in an int64. With miles that happens a little above 5.7 million.
func New(unit Unit, value int64) (Length, error) {
	scale := unit.NanometersPerUnit()
	if scale == 0 {
		return Length{}, fmt.Errorf("%w: %d", domain.ErrUnknownUnit, int(unit))
	}

	nm, err := mulChecked(value, scale)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %d %s", err, value, unit)
	}

	return Length{nanometers: nm, unit: unit}, nil
}

// MustNew is like New but panics if the length cannot be represented.
func MustNew(unit Unit, value int64) Length {
	l, err := New(unit, value)
	if err != nil {
		panic(fmt.Sprintf("invalid length: %v", err))
	}
	return l
}

// FromNanometers creates a Length from a raw nanometer count, tagged with unit.
func FromNanometers(nm int64, unit Unit) Length {
	return Length{nanometers: nm, unit: unit}
}

// ConvertTo returns the same length tagged with unit.
func (l Length) ConvertTo(unit Unit) Length {
	return Length{nanometers: l.nanometers, unit: unit}
}

// Value returns the length expressed in its own unit.
func (l Length) Value() float64 {
	return l.ValueIn(l.unit)
}

// ValueIn returns the length expressed in unit, or NaN if unit is unknown.
//
// The integer part is computed exactly, so a length built from a whole number
// of unit reads back as exactly that number.
func (l Length) ValueIn(unit Unit) float64 {
	scale := unit.NanometersPerUnit()
	if scale == 0 {
		return math.NaN()
	}
	whole := l.nanometers / scale
	rem := l.nanometers % scale
	return float64(whole) + float64(rem)/float64(scale)
}

// Nanometers returns the canonical magnitude.
func (l Length) Nanometers() int64 {
	return l.nanometers
}

// Unit returns the unit the length is currently expressed in.
func (l Length) Unit() Unit {
	return l.unit
}

// Add returns l + other, keeping l's unit.
func (l Length) Add(other Length) (Length, error) {
	sum := l.nanometers + other.nanometers
	// Signed overflow happened iff both operands share a sign the sum lacks.
	if (l.nanometers >= 0) == (other.nanometers >= 0) && (sum >= 0) != (l.nanometers >= 0) {
		return Length{}, fmt.Errorf("%w: %s + %s", domain.ErrOverflow, l, other)
	}
	return Length{nanometers: sum, unit: l.unit}, nil
}

// Sub returns l - other, keeping l's unit.
func (l Length) Sub(other Length) (Length, error) {
	if other.nanometers == math.MinInt64 {
		// -MinInt64 does not fit, but l - MinInt64 does whenever l is negative.
		if l.nanometers >= 0 {
			return Length{}, fmt.Errorf("%w: %s - %s", domain.ErrOverflow, l, other)
		}
		return Length{nanometers: l.nanometers - other.nanometers, unit: l.unit}, nil
	}
	return l.Add(Length{nanometers: -other.nanometers, unit: other.unit})
}

// Equal reports whether l and other have the same magnitude, whatever their units.
func (l Length) Equal(other Length) bool {
	return l.nanometers == other.nanometers
}

// TryInto returns l unchanged, so a Length can be passed wherever a
// representation convertible into a Length is accepted.
func (l Length) TryInto() (Length, error) {
	return l, nil
}

// String formats the length with the shortest exact float and its unit name.
func (l Length) String() string {
	return fmt.Sprintf("%v %s", l.Value(), l.unit)
}

// mulChecked returns value*scale or domain.ErrOverflow. scale must be positive.
func mulChecked(value, scale int64) (int64, error) {
	if value > math.MaxInt64/scale || value < math.MinInt64/scale {
		return 0, domain.ErrOverflow
	}
	return value * scale, nil
}
