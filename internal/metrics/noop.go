package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncExerciseAdded is a no-op.
func (n *NoopRecorder) IncExerciseAdded() {}

// IncLogQuery is a no-op.
func (n *NoopRecorder) IncLogQuery() {}

// IncLogCacheHit is a no-op.
func (n *NoopRecorder) IncLogCacheHit() {}

// IncLogCacheMiss is a no-op.
func (n *NoopRecorder) IncLogCacheMiss() {}

// ObserveLogQueryDuration is a no-op.
func (n *NoopRecorder) ObserveLogQueryDuration(duration time.Duration) {}
