package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesFormattedMessage(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "info")
	require.NoError(t, err)

	l.With("session", "abc").Info("BookAppointment: client=%d", 7)
	l.Debug("hidden %s", "debug")

	out := buf.String()
	assert.Contains(t, out, "BookAppointment: client=7")
	assert.Contains(t, out, "session=abc")
	assert.NotContains(t, out, "hidden debug")
}

func TestLogger_UnknownLevel(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}

func TestNew_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "salon.log")

	l, err := New(path, "warn")
	require.NoError(t, err)
	l.Warn("slot %s is full", "09:00")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slot 09:00 is full")
}
