package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapObserver_LogsSuccessAtInfo(t *testing.T) {
	core, logged := observer.New(zapcore.InfoLevel)
	obs := NewZapObserver(zap.New(core))

	obs.OnCallComplete(CallEvent{
		Task:      TaskChat,
		Model:     "anthropic/claude-3.5-sonnet",
		LatencyMs: 120,
		Success:   true,
	})

	entries := logged.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "ai call complete", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "chat", fields["task"])
	assert.Equal(t, "anthropic/claude-3.5-sonnet", fields["model"])
	assert.EqualValues(t, 120, fields["latency_ms"])
	assert.NotContains(t, fields, "error_code")
}

func TestZapObserver_LogsFailureAtWarnWithErrorCode(t *testing.T) {
	core, logged := observer.New(zapcore.InfoLevel)
	obs := NewZapObserver(zap.New(core))

	obs.OnCallComplete(CallEvent{
		Task:      TaskBehavior,
		Model:     "anthropic/claude-3.5-sonnet",
		LatencyMs: 45,
		Success:   false,
		ErrorCode: "UNAVAILABLE",
	})

	entries := logged.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "ai call failed", entries[0].Message)
	assert.Equal(t, "UNAVAILABLE", entries[0].ContextMap()["error_code"])
}
