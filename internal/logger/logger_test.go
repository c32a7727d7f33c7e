package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ara-lang/forest/internal/logger"
)

func TestComponentLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetStdioMode(false)
	logger.SetLevel(logger.LevelWarn)
	defer logger.SetLevel(logger.LevelInfo)

	c := logger.Component("cache")
	c.Debugf("miss for %s", "a.ara")
	assert.Empty(t, buf.String())

	c.Warnf("stale entry for %s", "a.ara")
	assert.Contains(t, buf.String(), "[WARN:cache]")
	assert.Contains(t, buf.String(), "stale entry for a.ara")
}

func TestStdioModeSuppressesOutput(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetLevel(logger.LevelDebug)
	logger.SetStdioMode(true)
	defer logger.SetStdioMode(false)

	logger.Errorf("should not appear")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, logger.LevelSilent, logger.ParseLevel("silent"))
	assert.Equal(t, logger.LevelInfo, logger.ParseLevel("bogus"))
}
