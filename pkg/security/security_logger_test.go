package security

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("ada@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("a@example.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Len(t, MaskEmail("no-at-sign"), 16)
}

func TestLogLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "portfolio-backend", "test")
	ctx := context.Background()

	sl.LogContactSubmitted(ctx, "id-1", "ada@example.com")
	sl.LogNotifyFailed(ctx, "id-1", errors.New("timeout"))
	sl.LogPersistFailed(ctx, "ada@example.com", errors.New("db down"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "a***@example.com", fields["subject_value"])
	assert.Equal(t, "test", fields["env"])
	assert.Contains(t, fields["details"], "id-1")
	assert.Equal(t, "INFO", fields["severity"])
	assert.Equal(t, "HIGH", entries[2].ContextMap()["severity"])
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityWARN, GetSeverity(EventRateLimitTriggered))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("something_else")))
	assert.True(t, IsHighOrAbove(EventPersistFailed))
	assert.False(t, IsHighOrAbove(EventNotifyFailed))
}

func TestDefaultLoggerIsSafeBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		DefaultLogger().LogValidationFailed(context.Background(), []string{"name"})
	})
}
