package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", "JSON", &buf)

	Log.WithField("session_id", "s1").Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "s1", entry["session_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigure_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	Configure("loud", "text", &buf)

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	Log.Debug("hidden")
	assert.Zero(t, buf.Len())

	Log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
