package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level string, format LogFormat) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger, _ := NewLogger(LoggerOptions{Level: level})
	logger.outputs = []Output{NewConsoleOutput(buf, format)}
	return logger, buf
}

func TestLoggerTextFormat(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatText)

	logger.Info("parsed dates", Field{Key: "count", Value: 3}, Field{Key: "file", Value: "dates.txt"})

	line := buf.String()
	assert.Contains(t, line, "[INFO] parsed dates")
	assert.True(t, strings.HasSuffix(line, "count=3 file=dates.txt\n"))
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger("warn", FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warnf("shown %d", 1)
	logger.Error("shown too")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 1")
	assert.Contains(t, out, "[ERROR] shown too")
}

func TestLoggerJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger("debug", FormatJSON)

	logger.Info("done", Field{Key: "phase", Value: "render"})

	var entry map[string]interface{}
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "done", entry["message"])
	fields, ok := entry["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "render", fields["phase"])
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewLogger(LoggerOptions{Level: "info", File: path})
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] to file")
}

func TestNewLoggerBadFile(t *testing.T) {
	_, err := NewLogger(LoggerOptions{File: filepath.Join(t.TempDir(), "no", "such", "app.log")})

	assert.Error(t, err)
}

func TestNewLoggerDiscardsWithoutOutputs(t *testing.T) {
	logger, err := NewLogger(LoggerOptions{})
	require.NoError(t, err)

	require.Len(t, logger.outputs, 1)
	assert.IsType(t, DiscardOutput{}, logger.outputs[0])
	logger.Info("nowhere")
}

func TestGlobalLogger(t *testing.T) {
	logger, buf := newBufferLogger("debug", FormatText)
	SetLogger(logger)
	defer SetLogger(nil)

	LogDebugf("phase %d", 1)
	LogInfof("info %d", 2)
	LogWarn("warn", Field{Key: "date_index", Value: 4})
	LogWarnf("%d duplicates", 3)
	LogErrorf("error %s", "x")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] phase 1")
	assert.Contains(t, out, "[INFO] info 2")
	assert.Contains(t, out, "[WARN] warn date_index=4")
	assert.Contains(t, out, "[WARN] 3 duplicates")
	assert.Contains(t, out, "[ERROR] error x")
}

func TestGlobalLoggerNil(t *testing.T) {
	SetLogger(nil)

	assert.NotPanics(t, func() {
		LogInfof("dropped")
		LogDebug("dropped")
		LogWarn("dropped")
	})
}

func TestParseLogFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseLogFormat("JSON"))
	assert.Equal(t, FormatText, ParseLogFormat("text"))
	assert.Equal(t, FormatText, ParseLogFormat("yaml"))
}
