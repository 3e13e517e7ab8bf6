package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/measure/internal/display"
	"github.com/phrazzld/measure/internal/domain/angle"
	"github.com/phrazzld/measure/internal/domain/convert"
	"github.com/phrazzld/measure/internal/domain/length"
	"github.com/phrazzld/measure/internal/geometry"
	"github.com/phrazzld/measure/internal/platform/logger"
	"github.com/phrazzld/measure/internal/travel"
)

// MeasureService describes quantities for people.
type MeasureService interface {
	// DescribeLength renders distance once per unit in the length table.
	DescribeLength(ctx context.Context, distance convert.TryInto[length.Length]) ([]string, error)

	// DescribeWalk renders distance in miles.
	DescribeWalk(ctx context.Context, distance convert.TryInto[length.Length]) (string, error)

	// DescribeProjection projects a point radius away from origin at angle a.
	DescribeProjection(
		ctx context.Context,
		origin geometry.Point,
		radius float64,
		a convert.Into[angle.Radians],
	) (geometry.Point, string, error)

	// DescribeCircleArea renders the area of a circle with the given radius.
	DescribeCircleArea(ctx context.Context, radius float64) string
}

// measureService is the standard implementation of MeasureService.
type measureService struct {
	formatter display.Formatter
	logger    *slog.Logger
}

// NewMeasureService creates a MeasureService. A nil logger falls back to the
// logger carried by each call's context.
func NewMeasureService(formatter display.Formatter, logger *slog.Logger) MeasureService {
	return &measureService{formatter: formatter, logger: logger}
}

func (s *measureService) log(ctx context.Context) *slog.Logger {
	l := s.logger
	if l == nil {
		l = logger.FromContext(ctx)
	} else if id := logger.RunID(ctx); id != "" {
		l = l.With(slog.String("run_id", id))
	}
	return l.With(slog.String("component", "measure_service"))
}

// DescribeLength implements MeasureService.
func (s *measureService) DescribeLength(
	ctx context.Context,
	distance convert.TryInto[length.Length],
) ([]string, error) {
	log := s.log(ctx)
	if distance == nil {
		return nil, NewMeasureServiceError("describe_length", "no distance given", ErrNilDistance)
	}

	l, err := convert.Canonical(distance)
	if err != nil {
		log.Error("failed to convert distance", slog.String("error", err.Error()))
		return nil, NewMeasureServiceError("describe_length", "failed to convert distance", err)
	}

	lines := make([]string, 0, len(length.Units))
	for _, unit := range length.Units {
		lines = append(lines, s.formatter.Length(l.ConvertTo(unit)))
	}

	log.Debug("described length",
		slog.Int64("nanometers", l.Nanometers()),
		slog.String("unit", l.Unit().String()))

	return lines, nil
}

// DescribeWalk implements MeasureService.
func (s *measureService) DescribeWalk(
	ctx context.Context,
	distance convert.TryInto[length.Length],
) (string, error) {
	log := s.log(ctx)
	if distance == nil {
		return "", NewMeasureServiceError("describe_walk", "no distance given", ErrNilDistance)
	}

	miles, err := travel.Walk(distance)
	if err != nil {
		log.Error("failed to compute walk", slog.String("error", err.Error()))
		return "", NewMeasureServiceError("describe_walk", "failed to compute walk", err)
	}

	log.Debug("described walk", slog.Int64("nanometers", miles.Nanometers()))

	return s.formatter.Length(miles), nil
}

// DescribeProjection implements MeasureService.
func (s *measureService) DescribeProjection(
	ctx context.Context,
	origin geometry.Point,
	radius float64,
	a convert.Into[angle.Radians],
) (geometry.Point, string, error) {
	if a == nil {
		return geometry.Point{}, "", NewMeasureServiceError("describe_projection", "no angle given", ErrNilAngle)
	}

	end := geometry.ProjectAngle(origin, radius, a)

	s.log(ctx).Debug("projected point",
		slog.Float64("radians", float64(a.Into())),
		slog.Float64("radius", radius),
		slog.Int("x", end.X),
		slog.Int("y", end.Y))

	return end, fmt.Sprintf("%s -> %s", origin, end), nil
}

// DescribeCircleArea implements MeasureService.
func (s *measureService) DescribeCircleArea(ctx context.Context, radius float64) string {
	area := geometry.AreaOfCircle(radius)
	s.log(ctx).Debug("computed circle area",
		slog.Float64("radius", radius),
		slog.Float64("area", area))
	return s.formatter.Float(area)
}
