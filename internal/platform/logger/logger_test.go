package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		debugLogged bool
	}{
		{name: "debug level emits debug", level: "debug", debugLogged: true},
		{name: "info level filters debug", level: "info", debugLogged: false},
		{name: "case insensitive", level: "DEBUG", debugLogged: true},
		{name: "invalid level falls back to info", level: "verbose", debugLogged: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(tc.level, &buf)

			log.Debug("debug message")
			log.Info("info message")

			out := buf.String()
			if tc.debugLogged {
				assert.Contains(t, out, "debug message")
			} else {
				assert.NotContains(t, out, "debug message")
			}
			assert.Contains(t, out, "info message")
		})
	}
}

func TestNewLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("info", &buf)

	log.Info("structured entry", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be a JSON object")
	assert.Equal(t, "structured entry", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}
