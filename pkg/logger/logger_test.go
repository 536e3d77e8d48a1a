package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("hidden %d", 1)
	l.Info("hidden too")
	l.Warn("shown %s", "warning")
	l.Error("shown error")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[0], `"message":"shown warning"`)
	assert.Contains(t, lines[0], `"component":"fhirmodels"`)
	assert.Contains(t, lines[1], `"level":"error"`)
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	assert.False(t, l.Enabled(LevelDebug))

	l.SetLevel(LevelDebug)
	assert.True(t, l.Enabled(LevelDebug))
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Error("silenced")
	assert.Empty(t, buf.String())
	assert.False(t, l.Enabled(LevelNone))
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := New(&first, LevelInfo)
	l.SetOutput(&second)
	l.Info("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"off", LevelNone},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, LevelInfo)
	l.Info("decoded %s", "Patient")

	out := buf.String()
	assert.Contains(t, out, "decoded Patient")
	assert.NotContains(t, out, `"message"`)
}
