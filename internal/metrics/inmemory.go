package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered         uint64
	ExercisesAdded          uint64
	LogQueries              uint64
	LogCacheHits            uint64
	LogCacheMisses          uint64
	LogQueryDurationCount   uint64
	LogQueryDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersRegistered         uint64
	exercisesAdded          uint64
	logQueries              uint64
	logCacheHits            uint64
	logCacheMisses          uint64
	logQueryDurationCount   uint64
	logQueryDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:         atomic.LoadUint64(&m.usersRegistered),
		ExercisesAdded:          atomic.LoadUint64(&m.exercisesAdded),
		LogQueries:              atomic.LoadUint64(&m.logQueries),
		LogCacheHits:            atomic.LoadUint64(&m.logCacheHits),
		LogCacheMisses:          atomic.LoadUint64(&m.logCacheMisses),
		LogQueryDurationCount:   atomic.LoadUint64(&m.logQueryDurationCount),
		LogQueryDurationTotalNs: atomic.LoadInt64(&m.logQueryDurationTotalNs),
	}
}

// IncUserRegistered increments the registered-user counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncExerciseAdded increments the appended-exercise counter.
func (m *InMemoryRecorder) IncExerciseAdded() {
	atomic.AddUint64(&m.exercisesAdded, 1)
}

// IncLogQuery increments the log query counter.
func (m *InMemoryRecorder) IncLogQuery() {
	atomic.AddUint64(&m.logQueries, 1)
}

// IncLogCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncLogCacheHit() {
	atomic.AddUint64(&m.logCacheHits, 1)
}

// IncLogCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncLogCacheMiss() {
	atomic.AddUint64(&m.logCacheMisses, 1)
}

// ObserveLogQueryDuration records query duration.
func (m *InMemoryRecorder) ObserveLogQueryDuration(duration time.Duration) {
	atomic.AddUint64(&m.logQueryDurationCount, 1)
	atomic.AddInt64(&m.logQueryDurationTotalNs, duration.Nanoseconds())
}
