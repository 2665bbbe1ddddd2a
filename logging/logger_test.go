package logging_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/auth-platform/libs/go/kernel/errors"
	"github.com/auth-platform/libs/go/kernel/logging"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestLoggerLevels(t *testing.T) {
	t.Run("messages at or above the level are emitted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithWriter(&buf, "info")

		logger.Info("ready")

		entry := logLine(t, &buf)
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "ready", entry["message"])
		assert.Contains(t, entry, "time")
	})

	t.Run("messages below the level are dropped", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithWriter(&buf, "warn")

		logger.Debug("noise")
		logger.Info("more noise")

		assert.Empty(t, buf.Bytes())
	})

	t.Run("unknown level defaults to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLoggerWithWriter(&buf, "chatty")

		logger.Debug("noise")
		assert.Empty(t, buf.Bytes())

		logger.Info("kept")
		assert.NotEmpty(t, buf.Bytes())
	})
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logging.NewLoggerWithWriter(&buf, "info").
		WithComponent("storage").
		Info("mounted")

	entry := logLine(t, &buf)
	assert.Equal(t, "storage", entry["component"])
}

func TestWithFieldRedaction(t *testing.T) {
	t.Run("sensitive keys are replaced", func(t *testing.T) {
		var buf bytes.Buffer
		logging.NewLoggerWithWriter(&buf, "info").
			WithField("api_key", "super-secret-value").
			Info("configured")

		entry := logLine(t, &buf)
		assert.Equal(t, "[REDACTED]", entry["api_key"])
		assert.NotContains(t, buf.String(), "super-secret-value")
	})

	t.Run("PII content in plain values is masked", func(t *testing.T) {
		var buf bytes.Buffer
		logging.NewLoggerWithWriter(&buf, "info").
			WithField("note", "contact user@example.com for details").
			Info("note added")

		entry := logLine(t, &buf)
		assert.Equal(t, "contact [PII] for details", entry["note"])
	})

	t.Run("ordinary values pass through", func(t *testing.T) {
		var buf bytes.Buffer
		logging.NewLoggerWithWriter(&buf, "info").
			WithFields(map[string]any{"attempt": 3, "queue": "uploads"}).
			Info("retrying")

		entry := logLine(t, &buf)
		assert.Equal(t, float64(3), entry["attempt"])
		assert.Equal(t, "uploads", entry["queue"])
	})
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	logging.NewLoggerWithWriter(&buf, "info").
		Error("request failed", stderrors.New("connection reset"))

	entry := logLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "connection reset", entry["error"])
}

func TestDomainErr(t *testing.T) {
	t.Run("logs code, metadata and cause", func(t *testing.T) {
		var buf bytes.Buffer
		domainErr := errors.ArgumentOutOfRange("port out of range", 1, 65535).
			WithCause(stderrors.New("config parse"))

		logging.NewLoggerWithWriter(&buf, "info").DomainErr("bad config", domainErr)

		entry := logLine(t, &buf)
		assert.Equal(t, "bad config", entry["message"])
		assert.Equal(t, string(errors.CodeArgumentOutOfRange), entry["error_code"])
		assert.Equal(t, "port out of range", entry["error_message"])
		assert.Equal(t, "config parse", entry["cause"])

		metadata, ok := entry["metadata"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), metadata["min"])
		assert.Equal(t, float64(65535), metadata["max"])

		assert.NotContains(t, entry, "stack")
	})

	t.Run("redacts sensitive metadata keys", func(t *testing.T) {
		var buf bytes.Buffer
		domainErr := errors.ArgumentInvalid("rejected credential").
			WithMetadata("client_secret", "hunter2")

		logging.NewLoggerWithWriter(&buf, "info").DomainErr("auth failed", domainErr)

		metadata := logLine(t, &buf)["metadata"].(map[string]any)
		assert.Equal(t, "[REDACTED]", metadata["client_secret"])
		assert.NotContains(t, buf.String(), "hunter2")
	})

	t.Run("attaches stack only at debug level", func(t *testing.T) {
		domainErr := errors.NotFound("user missing")

		var quiet bytes.Buffer
		logging.NewLoggerWithWriter(&quiet, "info").DomainErr("lookup failed", domainErr)
		assert.NotContains(t, logLine(t, &quiet), "stack")

		var verbose bytes.Buffer
		logging.NewLoggerWithWriter(&verbose, "debug").DomainErr("lookup failed", domainErr)
		assert.Contains(t, logLine(t, &verbose), "stack")
	})

	t.Run("falls back to plain error logging", func(t *testing.T) {
		var buf bytes.Buffer
		logging.NewLoggerWithWriter(&buf, "info").DomainErr("boom", stderrors.New("plain"))

		entry := logLine(t, &buf)
		assert.Equal(t, "plain", entry["error"])
		assert.NotContains(t, entry, "error_code")
	})
}

// Property: values under sensitive keys never reach the output.
func TestSensitiveKeysNeverLeak(t *testing.T) {
	keys := []string{"password", "Passwd", "API_KEY", "refresh_token", "client-secret", "ssn", "credit_card"}

	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SampledFrom(keys).Draw(t, "key")
		secret := rapid.StringMatching(`[a-z0-9]{16}`).Draw(t, "secret")

		var buf bytes.Buffer
		logging.NewLoggerWithWriter(&buf, "info").
			WithField(key, secret).
			Info("event")

		if strings.Contains(buf.String(), secret) {
			t.Fatalf("secret leaked for key %s: %s", key, buf.String())
		}
		if !strings.Contains(buf.String(), logging.Redacted) {
			t.Fatalf("redaction marker missing for key %s: %s", key, buf.String())
		}
	})
}
