package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"clearance/config"
	"clearance/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("failed to put booking"))

	assert.Contains(t, buf.String(), "failed to put booking")
}

func TestUseJSONOutput(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.App.Name = "clearance"

	var buf bytes.Buffer
	logger.UseJSONOutput(cfg, &buf)
	log.Info().Msg("booking saved")

	assert.Contains(t, buf.String(), `"app":"clearance"`)
	assert.Contains(t, buf.String(), `"message":"booking saved"`)

	buf.Reset()

	var devBuf bytes.Buffer
	log.Logger = zerolog.New(&devBuf)
	cfg.Server.Env = "development"
	logger.UseJSONOutput(cfg, &buf)
	log.Info().Msg("wizard started")

	assert.Empty(t, buf.String())
	assert.Contains(t, devBuf.String(), "wizard started")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "loud", expectedLevel: zerolog.TraceLevel},
		{name: "empty level uses NoLevel", logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
