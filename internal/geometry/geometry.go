package geometry

import (
	"fmt"
	"math"

	"github.com/phrazzld/measure/internal/domain/angle"
	"github.com/phrazzld/measure/internal/domain/convert"
)

// Point is a position on an integer grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ProjectAngle returns the point radius away from origin in the direction of a.
//
// Any representation convertible into radians is accepted. The coordinates
// are computed as
//
//	x = origin.X - radius*sin(a)
//	y = origin.Y + radius*cos(a)
//
// and truncated toward zero.
func ProjectAngle[A convert.Into[angle.Radians]](origin Point, radius float64, a A) Point {
	radians := float64(a.Into())
	return Point{
		X: int(float64(origin.X) - radius*math.Sin(radians)),
		Y: int(float64(origin.Y) + radius*math.Cos(radians)),
	}
}

// AreaOfCircle returns the area of a circle with the given radius, in the
// square of whatever unit the radius is in.
func AreaOfCircle(radius float64) float64 {
	return math.Pi * radius * radius
}
