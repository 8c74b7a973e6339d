package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevelAndFormat(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := Setup("warn", "json", &buf)
	l.Info("dropped")
	slog.Warn("kept", "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 3, rec["n"])

	buf.Reset()
	Setup("bogus", "text", &buf).Debug("hidden")
	slog.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestOpen(t *testing.T) {
	w, closeFn, err := Open("", nil)
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, closeFn())

	w, _, err = Open("", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)

	path := filepath.Join(t.TempDir(), "polyscope.log")
	w, closeFn, err = Open(path, io.Discard)
	require.NoError(t, err)
	_, err = io.WriteString(w, "line\n")
	require.NoError(t, err)
	require.NoError(t, closeFn())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
