package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggerErrorIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := log.WithRequestID(context.Background(), "req-123")
	ctx = log.WithFields(ctx, map[string]any{"product": "cornflakes"})

	log.Error(ctx, "boom", errors.New("boom"))

	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"product":"cornflakes"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"service":"test"`)
}

func TestLoggerLevelFilters(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: zerolog.WarnLevel, Output: buf})

	ctx := context.Background()
	log.Debug(ctx, "hidden")
	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevelDefaults(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("invalid"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
}

func TestNopWritesNothing(t *testing.T) {
	log := Nop()
	ctx := log.WithField(context.Background(), "k", "v")

	assert.NotPanics(t, func() {
		log.Info(ctx, "ignored")
		log.Error(ctx, "ignored", errors.New("ignored"))
	})
}

func TestNewLeavesGlobalTimeFormat(t *testing.T) {
	before := zerolog.TimeFieldFormat
	t.Cleanup(func() { zerolog.TimeFieldFormat = before })

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	New(Options{ServiceName: "first", Output: &bytes.Buffer{}})
	New(Options{ServiceName: "second", Output: &bytes.Buffer{}, Format: FormatConsole})

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
}
