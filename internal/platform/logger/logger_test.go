// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/measure/internal/ciutil"
	"github.com/phrazzld/measure/internal/config"
	"github.com/phrazzld/measure/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outsideCI blanks the CI detection variables for the duration of the test.
func outsideCI(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		ciutil.EnvCI, ciutil.EnvGitHubActions, ciutil.EnvGitLabCI,
		ciutil.EnvJenkinsURL, ciutil.EnvTravisCI, ciutil.EnvCircleCI,
	} {
		t.Setenv(name, "")
	}
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		expected slog.Level
		ok       bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := logger.ParseLevel(tc.name)
			assert.Equal(t, tc.expected, level)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestNewJSON(t *testing.T) {
	outsideCI(t)

	buf := &logger.TestLogBuffer{}
	l, err := logger.New(buf, config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "unit", "meters")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1, "info is below the configured level")
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "meters", entries[0]["unit"])
}

func TestNewText(t *testing.T) {
	outsideCI(t)

	buf := &logger.TestLogBuffer{}
	l, err := logger.New(buf, config.LogConfig{Level: "info", Format: "text"})
	require.NoError(t, err)

	l.Info("converted", "value", 100)

	out := buf.String()
	assert.Contains(t, out, "msg=converted")
	assert.Contains(t, out, "value=100")
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	outsideCI(t)

	buf := &logger.TestLogBuffer{}
	l, err := logger.New(buf, config.LogConfig{Level: "loud", Format: "text"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "invalid log level configured")
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewInCI(t *testing.T) {
	outsideCI(t)
	t.Setenv(ciutil.EnvGitHubActions, "true")
	t.Setenv(ciutil.EnvGitHubWorkspace, "/w")
	t.Setenv(ciutil.EnvGitHubRunID, "7")

	buf := &logger.TestLogBuffer{}
	l, err := logger.New(buf, config.LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)

	l.With("component", "test").Info("in ci")

	logger.AssertLogField(t, buf, "ci_provider", "github_actions")
	logger.AssertLogField(t, buf, "ci_run_id", "7")
	logger.AssertLogField(t, buf, "component", "test")
}

func TestNewInCIKeepsFormatAndLevel(t *testing.T) {
	outsideCI(t)
	t.Setenv(ciutil.EnvGitHubActions, "true")
	t.Setenv(ciutil.EnvGitHubWorkspace, "/w")

	buf := &logger.TestLogBuffer{}
	l, err := logger.New(buf, config.LogConfig{Level: "warn", Format: "text"})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("in ci")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"in ci\"")
	assert.Contains(t, out, "ci_provider=github_actions")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "text format should survive the CI wrapper")
}

func TestSetupSetsDefault(t *testing.T) {
	outsideCI(t)
	original := slog.Default()
	defer slog.SetDefault(original)

	l, err := logger.Setup(&logger.TestLogBuffer{}, config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, slog.Default())
}

func TestContextLogger(t *testing.T) {
	base, buf := logger.GetTestLogger(t)

	ctx := logger.WithLogger(context.Background(), base)
	ctx, runID := logger.WithRunID(ctx)

	_, err := uuid.Parse(runID)
	require.NoError(t, err, "run id should be a UUID")
	assert.Equal(t, runID, logger.RunID(ctx))

	logger.FromContext(ctx).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, runID, entry["run_id"])
}

func TestFromContextDefaults(t *testing.T) {
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	assert.Equal(t, "", logger.RunID(context.Background()))
}
