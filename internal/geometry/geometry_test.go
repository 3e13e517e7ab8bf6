package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/phrazzld/measure/internal/domain/angle"
	"github.com/stretchr/testify/assert"
)

func TestProjectAngle(t *testing.T) {
	t.Parallel()

	origin := Point{X: 0, Y: 0}

	testCases := []struct {
		name     string
		got      Point
		expected Point
	}{
		{
			name:     "ninety degrees",
			got:      ProjectAngle(origin, 10.0, angle.Degrees(90.0)),
			expected: Point{X: -10, Y: 0},
		},
		{
			name:     "half pi radians",
			got:      ProjectAngle(origin, 10.0, angle.Radians(math.Pi/2)),
			expected: Point{X: -10, Y: 0},
		},
		{
			name:     "zero angle points up",
			got:      ProjectAngle(origin, 10.0, angle.Radians(0)),
			expected: Point{X: 0, Y: 10},
		},
		{
			name:     "offset origin",
			got:      ProjectAngle(Point{X: 5, Y: -5}, 10.0, angle.Degrees(0)),
			expected: Point{X: 5, Y: 5},
		},
		{
			name:     "truncates toward zero",
			got:      ProjectAngle(origin, 10.0, angle.Degrees(45)),
			expected: Point{X: -7, Y: 7},
		},
		{
			name:     "angle value",
			got:      ProjectAngle(origin, 3.0, angle.New(angle.RepresentationDegrees, 270)),
			expected: Point{X: 3, Y: 0},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.got)
		})
	}
}

func TestProjectAngleRepresentationEquivalence(t *testing.T) {
	t.Parallel()

	for _, deg := range []float64{0, 30, 45, 60, 90, 135, 200, 315} {
		fromDegrees := ProjectAngle(Point{}, 100.0, angle.Degrees(deg))
		fromRadians := ProjectAngle(Point{}, 100.0, angle.Degrees(deg).Into())
		assert.Equal(t, fromDegrees, fromRadians, "degrees %v", deg)
	}
}

func TestAreaOfCircle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "314.1593", fmt.Sprintf("%.4f", AreaOfCircle(10.0)))
	assert.Equal(t, 0.0, AreaOfCircle(0))
	assert.InDelta(t, math.Pi, AreaOfCircle(-1), 1e-12)
}

func TestPointString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(-10, 0)", Point{X: -10, Y: 0}.String())
}
