package llm

import "go.uber.org/zap"

// CallEvent records metadata about a single AI call.
type CallEvent struct {
	Task      Task
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about AI calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// ZapObserver logs AI call events through a structured logger.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an Observer that logs events via log.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success {
		o.log.Info("ai call complete", fields...)
		return
	}
	fields = append(fields, zap.String("error_code", event.ErrorCode))
	o.log.Warn("ai call failed", fields...)
}
