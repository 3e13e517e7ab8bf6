// Package angle implements angles stored canonically in radians.
//
// Degrees exist only as a representation converted in and out at the
// boundary. Conversions are plain floating point arithmetic and cannot fail:
// non-finite inputs produce non-finite results (Inf, NaN) and callers that
// care must check for them.
package angle

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used when comparing angles that went
// through a degrees/radians round trip.
const DefaultEpsilon = 1e-9

// Radians is the canonical angle representation.
type Radians float64

// Into returns r unchanged.
func (r Radians) Into() Radians {
	return r
}

// ToDegrees converts r into degrees.
func (r Radians) ToDegrees() Degrees {
	return Degrees(float64(r) * 180 / math.Pi)
}

// Degrees is an angle expressed in degrees.
type Degrees float64

// Into converts d into radians.
func (d Degrees) Into() Radians {
	return Radians(float64(d) * math.Pi / 180)
}

// ToDegrees returns d unchanged.
func (d Degrees) ToDegrees() Degrees {
	return d
}

// Angle is an immutable angle holding radians plus the representation it was
// last expressed in. The representation is display metadata only.
type Angle struct {
	radians        float64
	representation Representation
}

// New creates an Angle of value in representation rep. An unknown
// representation yields an Angle whose radians are NaN.
func New(rep Representation, value float64) Angle {
	return Angle{radians: rep.toRadians(value), representation: rep}
}

// ConvertTo returns the same angle tagged with rep.
func (a Angle) ConvertTo(rep Representation) Angle {
	return Angle{radians: a.radians, representation: rep}
}

// Value returns the angle in its own representation.
func (a Angle) Value() float64 {
	return a.ValueIn(a.representation)
}

// ValueIn returns the angle expressed in rep, or NaN if rep is unknown.
func (a Angle) ValueIn(rep Representation) float64 {
	return rep.fromRadians(a.radians)
}

// Representation returns the representation the angle is expressed in.
func (a Angle) Representation() Representation {
	return a.representation
}

// Radians returns the canonical magnitude.
func (a Angle) Radians() Radians {
	return Radians(a.radians)
}

// Into returns the canonical magnitude, so an Angle can be passed wherever a
// representation convertible into Radians is accepted.
func (a Angle) Into() Radians {
	return Radians(a.radians)
}

func (a Angle) String() string {
	return fmt.Sprintf("%v %s", a.Value(), a.representation)
}

// ApproxEqual reports whether a and b differ by no more than epsilon.
// NaN is never approximately equal to anything.
func ApproxEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= epsilon
}
