package main

import (
	"fmt"

	"github.com/phrazzld/measure/internal/config"
	"github.com/phrazzld/measure/internal/domain/angle"
	"github.com/phrazzld/measure/internal/domain/convert"
	"github.com/phrazzld/measure/internal/domain/length"
	"github.com/phrazzld/measure/internal/geometry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCommand builds the command tree. Each call returns an independent
// tree with its own viper instance.
func newRootCommand() *cobra.Command {
	v := viper.New()
	var app *application

	root := &cobra.Command{
		Use:           "measure",
		Short:         "Convert and combine typed physical quantities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := initializeApp(cmd.Context(), v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app = a
			cmd.SetContext(ctx)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (json, text)")
	flags.Int("precision", config.DefaultPrecision, "decimal places in output, -1 for shortest")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindPFlag("display.precision", flags.Lookup("precision"))

	appFn := func() *application { return app }
	root.AddCommand(
		newLengthCommand(appFn),
		newWalkCommand(appFn),
		newProjectCommand(appFn),
		newAreaCommand(appFn),
	)

	return root
}

func newLengthCommand(app func() *application) *cobra.Command {
	var meters, millimeters, miles int64

	cmd := &cobra.Command{
		Use:   "length",
		Short: "Show a length in every unit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var distance convert.TryInto[length.Length]
			switch {
			case cmd.Flags().Changed("meters"):
				distance = length.Meters(meters)
			case cmd.Flags().Changed("millimeters"):
				distance = length.Millimeters(millimeters)
			default:
				distance = length.Miles(miles)
			}

			lines, err := app().service.DescribeLength(cmd.Context(), distance)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&meters, "meters", 0, "length in meters")
	cmd.Flags().Int64Var(&millimeters, "millimeters", 0, "length in millimeters")
	cmd.Flags().Int64Var(&miles, "miles", 0, "length in miles")
	cmd.MarkFlagsOneRequired("meters", "millimeters", "miles")
	cmd.MarkFlagsMutuallyExclusive("meters", "millimeters", "miles")

	return cmd
}

func newWalkCommand(app func() *application) *cobra.Command {
	var miles, meters int64

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Compare two walks in miles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := app().service
			first, err := svc.DescribeWalk(cmd.Context(), length.Miles(miles))
			if err != nil {
				return err
			}
			second, err := svc.DescribeWalk(cmd.Context(), length.Meters(meters))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "If I would walk %s, then I would walk %s more\n", first, second)
			return nil
		},
	}

	cmd.Flags().Int64Var(&miles, "miles", 500, "first walk, in miles")
	cmd.Flags().Int64Var(&meters, "meters", 500, "second walk, in meters")

	return cmd
}

func newProjectCommand(app func() *application) *cobra.Command {
	var (
		x, y             int
		radius           float64
		degrees, radians float64
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a point along an angle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var a convert.Into[angle.Radians] = angle.Radians(radians)
			if cmd.Flags().Changed("degrees") {
				a = angle.Degrees(degrees)
			}

			_, text, err := app().service.DescribeProjection(cmd.Context(), geometry.Point{X: x, Y: y}, radius, a)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "origin x")
	cmd.Flags().IntVar(&y, "y", 0, "origin y")
	cmd.Flags().Float64Var(&radius, "radius", 10, "distance to project")
	cmd.Flags().Float64Var(&degrees, "degrees", 0, "angle in degrees")
	cmd.Flags().Float64Var(&radians, "radians", 0, "angle in radians")
	cmd.MarkFlagsOneRequired("degrees", "radians")
	cmd.MarkFlagsMutuallyExclusive("degrees", "radians")

	return cmd
}

func newAreaCommand(app func() *application) *cobra.Command {
	var radius float64

	cmd := &cobra.Command{
		Use:   "area",
		Short: "Compute the area of a circle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app().service.DescribeCircleArea(cmd.Context(), radius))
			return nil
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 10, "circle radius")

	return cmd
}
