package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/measure/internal/config"
	"github.com/phrazzld/measure/internal/display"
	"github.com/phrazzld/measure/internal/platform/logger"
	"github.com/phrazzld/measure/internal/service"
	"github.com/spf13/viper"
)

// application holds the components shared by every subcommand.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	service service.MeasureService
}

// initializeApp loads configuration from v, sets up structured logging on
// logOut and wires the measure service. It returns a context carrying the
// logger and a fresh run id.
func initializeApp(ctx context.Context, v *viper.Viper, logOut io.Writer) (context.Context, *application, error) {
	cfg, err := config.LoadWith(v)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(logOut, cfg.Log)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx = logger.WithLogger(ctx, l)
	ctx, runID := logger.WithRunID(ctx)

	l.Debug("configuration loaded",
		"run_id", runID,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"precision", cfg.Display.Precision)

	return ctx, &application{
		config:  cfg,
		logger:  l,
		service: service.NewMeasureService(display.NewFormatter(cfg.Display.Precision), l),
	}, nil
}
