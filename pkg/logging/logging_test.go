package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger_WritesLogFile(t *testing.T) {
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	logFile := filepath.Join(t.TempDir(), "state", "heyps", "heyps.log")
	SetupLogger(1, logFile)
	log.Info().Msg("hello from test")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	SetupLogger(0, "")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	origLogger := log.Logger
	t.Cleanup(func() { log.Logger = origLogger })
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand("osascript", []string{"-e", "tell application"})

	output := buf.String()
	assert.Contains(t, output, "osascript")
	assert.Contains(t, output, "tell application")
	assert.Contains(t, output, "Executing command")
}

func TestLogOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	LogOutput(logger, "stderr", "first line\n\n  \nsecond line\n")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"stream":"stderr"`)
	assert.Contains(t, lines[0], "first line")
	assert.Contains(t, lines[1], "second line")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "resolve")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
