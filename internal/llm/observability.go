package llm

import (
	"go.uber.org/zap"
)

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes LLM call events to a zap logger.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an Observer that logs events to log.
func NewLogObserver(log *zap.Logger) *LogObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogObserver{log: log.Named("llm")}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
		zap.Int("attempts", event.Attempts),
	}
	if !event.Success {
		o.log.Warn("llm_call", append(fields, zap.String("error_code", event.ErrorCode))...)
		return
	}
	o.log.Info("llm_call", fields...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
