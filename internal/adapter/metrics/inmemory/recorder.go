package inmemory

import "sync"

type Snapshot struct {
	ActionTotal      uint64 `json:"action_total"`
	ActionMatched    uint64 `json:"action_matched"`
	ActionMismatched uint64 `json:"action_mismatched"`
	ActionFailure    uint64 `json:"action_failure"`
	TickTotal        uint64 `json:"tick_total"`
	TickProcessed    uint64 `json:"tick_processed"`
	TickSkipped      uint64 `json:"tick_skipped"`
}

type Recorder struct {
	mu            sync.Mutex
	matched       uint64
	mismatched    uint64
	failure       uint64
	ticks         uint64
	tickProcessed uint64
	tickSkipped   uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordMatched() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matched++
}

func (r *Recorder) RecordMismatched() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mismatched++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) RecordTick(processed, skipped int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	r.tickProcessed += uint64(processed)
	r.tickSkipped += uint64(skipped)
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		ActionTotal:      r.matched + r.mismatched + r.failure,
		ActionMatched:    r.matched,
		ActionMismatched: r.mismatched,
		ActionFailure:    r.failure,
		TickTotal:        r.ticks,
		TickProcessed:    r.tickProcessed,
		TickSkipped:      r.tickSkipped,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
