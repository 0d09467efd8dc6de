package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/talekit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("defaults to JSON at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)

		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("last formatter wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("fixed level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Zero(t, buf.Len())
		log.Warn("shown")
		assert.Equal(t, "shown", decode(t, buf)["msg"])
	})
}

func TestWithLevelVar(t *testing.T) {
	level := new(slog.LevelVar)
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelVar(level))

	log.Debug("before")
	assert.Zero(t, buf.Len())

	level.Set(slog.LevelDebug)
	log.Debug("after")
	assert.Equal(t, "after", decode(t, buf)["msg"])

	buf.Reset()
	level.Set(slog.LevelInfo)
	log.Debug("silenced again")
	assert.Zero(t, buf.Len())
}

func TestWithContextValue(t *testing.T) {
	type key struct{}
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextValue("run_id", key{}))

	log.InfoContext(context.WithValue(context.Background(), key{}, "run-42"), "with value")
	assert.Equal(t, "run-42", decode(t, buf)["run_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "without value")
	_, ok := decode(t, buf)["run_id"]
	assert.False(t, ok)
}

func TestWithContextExtractors_SurviveWith(t *testing.T) {
	type key struct{}
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			v, ok := ctx.Value(key{}).(string)
			return slog.String("scene", v), ok
		}),
	).With("component", "test").WithGroup("g")

	log.InfoContext(context.WithValue(context.Background(), key{}, "harbor"), "msg")
	entry := decode(t, buf)
	assert.Equal(t, "test", entry["component"])
	group, ok := entry["g"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "harbor", group["scene"])
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("dev", "thematic"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=thematic")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "thematic"), logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Zero(t, buf.Len())
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "thematic", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("updates a bound level var", func(t *testing.T) {
		level := new(slog.LevelVar)
		logger.New(logger.WithLevelVar(level), logger.WithEnvironment("staging", ""))
		assert.Equal(t, slog.LevelInfo, level.Level())

		logger.New(logger.WithLevelVar(level), logger.WithEnvironment("development", ""))
		assert.Equal(t, slog.LevelDebug, level.Level())
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
