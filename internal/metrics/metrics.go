// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Registry metrics
	IncUserRegistered()

	// Appender metrics
	IncExerciseAdded()

	// Query engine metrics
	IncLogQuery()
	IncLogCacheHit()
	IncLogCacheMiss()
	ObserveLogQueryDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
