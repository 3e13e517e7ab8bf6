package angle

import "math"

// Representation identifies how an angle is written. The set is closed; the
// zero value is not a representation.
type Representation int

// Angle representations. Radians is the canonical one.
const (
	RepresentationRadians Representation = iota + 1
	RepresentationDegrees
)

// Representations lists every representation in the table.
var Representations = []Representation{RepresentationRadians, RepresentationDegrees}

type transform struct {
	name        string
	toRadians   func(float64) float64
	fromRadians func(float64) float64
}

var transforms = map[Representation]transform{
	RepresentationRadians: {
		name:        "radians",
		toRadians:   func(v float64) float64 { return v },
		fromRadians: func(v float64) float64 { return v },
	},
	RepresentationDegrees: {
		name:        "degrees",
		toRadians:   func(v float64) float64 { return float64(Degrees(v).Into()) },
		fromRadians: func(v float64) float64 { return float64(Radians(v).ToDegrees()) },
	},
}

// Valid reports whether rep is one of the defined representations.
func (rep Representation) Valid() bool {
	_, ok := transforms[rep]
	return ok
}

func (rep Representation) String() string {
	if t, ok := transforms[rep]; ok {
		return t.name
	}
	return "unknown"
}

func (rep Representation) toRadians(v float64) float64 {
	t, ok := transforms[rep]
	if !ok {
		return math.NaN()
	}
	return t.toRadians(v)
}

func (rep Representation) fromRadians(v float64) float64 {
	t, ok := transforms[rep]
	if !ok {
		return math.NaN()
	}
	return t.fromRadians(v)
}
