package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"Warn", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseLevel(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseLevel(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseLevel(%q)", tt.in)
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestLoggerWritesJSONWithSession(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: LevelInfo, Output: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("saved", "bytes", 12)
	l.WithComponent("editor").Warn("careful")

	recs := records(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "saved", recs[0]["msg"])
	assert.Equal(t, float64(12), recs[0]["bytes"])
	assert.Equal(t, l.Session(), recs[0]["session"])
	assert.Equal(t, "editor", recs[1]["component"])
	assert.Equal(t, "WARN", recs[1]["level"])
	assert.NotEmpty(t, l.Session())
}

func TestSetLevelIsShared(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: LevelError, Output: &buf})
	require.NoError(t, err)
	child := l.WithFields(map[string]any{"a": 1, "b": "two"})

	child.Info("before")
	l.SetLevel(LevelDebug)
	child.Debug("after")

	recs := records(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "after", recs[0]["msg"])
	assert.Equal(t, "two", recs[0]["b"])
	assert.True(t, l.Enabled(LevelDebug))
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "padvi.log")
	l, err := New(Options{Level: LevelInfo, File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	l.Info("hello")
	assert.NoError(t, l.WithField("k", "v").Close(), "derived Close is a no-op")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/state", "padvi", "padvi.log"), DefaultPath())
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("discarded")
	assert.NoError(t, l.Close())
}
