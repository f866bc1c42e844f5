package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStandardLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.Level
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})
	return buf
}

func TestWithContext(t *testing.T) {
	buf := captureStandardLogger(t)

	ctx := context.WithValue(context.Background(), UsernameKey, "ghost")
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")
	WithContext(ctx).WithField("loadout_id", "abc").Info("liked")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ghost", entry["user"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "abc", entry["loadout_id"])
	assert.Equal(t, "liked", entry["msg"])
}

func TestWithContextFallsBackToUserID(t *testing.T) {
	buf := captureStandardLogger(t)

	ctx := context.WithValue(context.Background(), UserIDKey, "0b6f")
	WithContext(ctx).Warn("no username")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "0b6f", entry["user"])
	_, hasRequestID := entry["request_id"]
	assert.False(t, hasRequestID)
}

func TestWithContextUnknownUser(t *testing.T) {
	buf := captureStandardLogger(t)

	WithContext(context.Background()).Error("anonymous")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["user"])
}

func TestSetupLevel(t *testing.T) {
	prev := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(prev) })

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
