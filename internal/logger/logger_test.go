package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"id": 42, "op": "toggle"}).Info("item toggled")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "item toggled", entry["message"])
	assert.Equal(t, "toggle", entry["op"])
	assert.EqualValues(t, 42, entry["id"])
	assert.Equal(t, "info", entry["level"])
}

func TestDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	assert.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("disk full"), "persist failed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "error", entry["level"])
}

func TestInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Warn("x")
		log.Debug("x")
		log.Error(nil, "x")
		assert.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
}

func TestOpenFileAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "tada.log")
	log, closer, err := OpenFile(path, Options{Level: "info", HumanReadable: true})
	require.NoError(t, err)
	log.Info("first")
	require.NoError(t, closer.Close())

	log, closer, err = OpenFile(path, Options{Level: "info", HumanReadable: true})
	require.NoError(t, err)
	log.Info("second")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "first")
	assert.Contains(t, string(b), "second")
}
