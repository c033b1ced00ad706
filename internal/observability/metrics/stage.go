package metrics

import (
	"sync"
	"time"
)

// StageOutcome describes one completed engine invocation.
type StageOutcome struct {
	Success  bool
	Duration time.Duration
	At       time.Time
}

// StageSnapshot is a point-in-time copy of a recorder's counters.
type StageSnapshot struct {
	Count         uint64    `json:"count"`
	SuccessCount  uint64    `json:"success_count"`
	ErrorCount    uint64    `json:"error_count"`
	MinMS         float64   `json:"min_ms"`
	MaxMS         float64   `json:"max_ms"`
	AvgMS         float64   `json:"avg_ms"`
	LastProcessed time.Time `json:"last_processed"`
}

// StageRecorder accumulates per-stage invocation counters for the lifetime
// of the process. Record is safe for concurrent callers; a single lock
// covers the whole increment-and-merge so no update is lost.
type StageRecorder struct {
	mu sync.Mutex

	count        uint64
	successCount uint64
	errorCount   uint64
	minMS        float64
	maxMS        float64
	totalMS      float64
	last         time.Time
}

func NewStageRecorder() *StageRecorder {
	return &StageRecorder{}
}

func (r *StageRecorder) Record(outcome StageOutcome) {
	durationMS := float64(outcome.Duration.Microseconds()) / 1000.0

	r.mu.Lock()
	defer r.mu.Unlock()

	r.count++
	if outcome.Success {
		r.successCount++
	} else {
		r.errorCount++
	}
	if r.count == 1 || durationMS < r.minMS {
		r.minMS = durationMS
	}
	if durationMS > r.maxMS {
		r.maxMS = durationMS
	}
	r.totalMS += durationMS
	if outcome.At.After(r.last) {
		r.last = outcome.At
	}
}

func (r *StageRecorder) Snapshot() StageSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := StageSnapshot{
		Count:         r.count,
		SuccessCount:  r.successCount,
		ErrorCount:    r.errorCount,
		MinMS:         r.minMS,
		MaxMS:         r.maxMS,
		LastProcessed: r.last,
	}
	if r.count > 0 {
		snap.AvgMS = r.totalMS / float64(r.count)
	}
	return snap
}
