package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/phrazzld/measure/internal/display"
	"github.com/phrazzld/measure/internal/domain"
	"github.com/phrazzld/measure/internal/domain/angle"
	"github.com/phrazzld/measure/internal/domain/convert"
	"github.com/phrazzld/measure/internal/domain/length"
	"github.com/phrazzld/measure/internal/geometry"
	"github.com/phrazzld/measure/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, precision int) (MeasureService, *logger.TestLogBuffer) {
	t.Helper()
	l, buf := logger.GetTestLogger(t)
	return NewMeasureService(display.NewFormatter(precision), l), buf
}

func TestDescribeLength(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, display.ShortestPrecision)

	lines, err := svc.DescribeLength(context.Background(), length.Meters(100))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "100 meters", lines[0])
	assert.Equal(t, "100000 millimeters", lines[1])
	assert.Contains(t, lines[2], "0.0621371192")
	assert.Contains(t, lines[2], "miles")
}

func TestDescribeLengthErrors(t *testing.T) {
	t.Parallel()
	svc, buf := newTestService(t, 4)

	_, err := svc.DescribeLength(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilDistance)

	_, err = svc.DescribeLength(context.Background(), length.Miles(10_000_000_000))
	require.Error(t, err)

	var svcErr *MeasureServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "describe_length", svcErr.Operation)
	assert.ErrorIs(t, err, convert.ErrConversion)
	assert.ErrorIs(t, err, domain.ErrOverflow)

	logger.AssertLogField(t, buf, "msg", "failed to convert distance")
	logger.AssertLogField(t, buf, "level", "ERROR")
}

func TestDescribeWalk(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, display.ShortestPrecision)

	got, err := svc.DescribeWalk(context.Background(), length.Miles(500))
	require.NoError(t, err)
	assert.Equal(t, "500 miles", got)

	got, err = svc.DescribeWalk(context.Background(), length.Meters(500))
	require.NoError(t, err)
	assert.Contains(t, got, "0.31068")

	_, err = svc.DescribeWalk(context.Background(), length.Miles(-10_000_000_000))
	assert.ErrorIs(t, err, domain.ErrOverflow)

	_, err = svc.DescribeWalk(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilDistance)
}

func TestDescribeProjection(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, 4)

	fromDegrees, text, err := svc.DescribeProjection(context.Background(), geometry.Point{}, 10, angle.Degrees(90))
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{X: -10, Y: 0}, fromDegrees)
	assert.Equal(t, "(0, 0) -> (-10, 0)", text)

	fromRadians, _, err := svc.DescribeProjection(context.Background(), geometry.Point{}, 10, angle.Radians(math.Pi/2))
	require.NoError(t, err)
	assert.Equal(t, fromDegrees, fromRadians)

	_, _, err = svc.DescribeProjection(context.Background(), geometry.Point{}, 10, nil)
	assert.ErrorIs(t, err, ErrNilAngle)
}

func TestDescribeCircleArea(t *testing.T) {
	t.Parallel()
	svc, buf := newTestService(t, 4)

	ctx, runID := logger.WithRunID(context.Background())
	assert.Equal(t, "314.1593", svc.DescribeCircleArea(ctx, 10))
	logger.AssertLogField(t, buf, "run_id", runID)
	logger.AssertLogField(t, buf, "component", "measure_service")
}

func TestNilLoggerUsesContextLogger(t *testing.T) {
	t.Parallel()
	l, buf := logger.GetTestLogger(t)
	svc := NewMeasureService(display.NewFormatter(2), nil)

	ctx := logger.WithLogger(context.Background(), l)
	assert.Equal(t, "3.14", svc.DescribeCircleArea(ctx, 1))
	logger.AssertLogField(t, buf, "msg", "computed circle area")
}

func TestInjectedLoggerWinsOverContextLogger(t *testing.T) {
	t.Parallel()
	svc, buf := newTestService(t, 2)
	other, otherBuf := logger.GetTestLogger(t)

	ctx := logger.WithLogger(context.Background(), other)
	ctx, runID := logger.WithRunID(ctx)
	svc.DescribeCircleArea(ctx, 1)

	logger.AssertLogField(t, buf, "run_id", runID)
	assert.Empty(t, otherBuf.String())
}
