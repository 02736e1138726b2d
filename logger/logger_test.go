package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, LevelInfo)

	l.Info("HTTP.Request", Fields{"status": 200, "path": "/health"})
	l.Debug("dropped", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "HTTP.Request", lines[0]["message"])
	assert.Equal(t, "/health", lines[0]["path"])
	assert.EqualValues(t, 200, lines[0]["status"])
}

func TestPackageLevelUsesStd(t *testing.T) {
	var buf bytes.Buffer
	SetStd(NewJSON(&buf, LevelDebug))
	t.Cleanup(func() { SetStd(NewNop()) })

	Debug("one", nil)
	Warn("two", Fields{"k": "v"})
	Error("three", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, "v", lines[1]["k"])
	assert.Equal(t, "error", lines[2]["level"])
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	SetStd(NewJSON(&buf, LevelInfo))
	code := -1
	prev := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		SetStd(NewNop())
		exit = prev
	})

	Fatal("bind failed", Fields{"addr": "0.0.0.0:3000"})

	assert.Equal(t, 1, code)
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "fatal", lines[0]["level"])
}

func TestConsoleLevelCodes(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsole(&buf, LevelInfo, false)
	l.Warn("careful", nil)

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "careful")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewByType(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "none", LevelInfo).Info("silent", nil)
	assert.Empty(t, buf.String())

	New(&buf, "json", LevelInfo).Info("loud", nil)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	lvl, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
