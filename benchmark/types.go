// SPDX-License-Identifier: MIT

package benchmark

import (
	"encoding/json"
	"time"

	"github.com/katalvlaran/tilemul/blocked"
)

// Record is the outcome of one timed configuration.
type Record struct {
	Elapsed time.Duration `json:"elapsed_ns"`
	Correct bool          `json:"correct"`
	GFLOPS  float64       `json:"gflops"`
}

// Entry pairs a config with its record; Entries returns them in run order.
type Entry struct {
	Config blocked.BlockConfig `json:"config"`
	Record
}

// Result is an insertion-ordered mapping BlockConfig → Record plus the
// operand shape and the time the reference product took.
// It marshals to JSON as the ordered array of entries.
type Result struct {
	M, K, N   int
	Reference time.Duration

	order   []blocked.BlockConfig
	records map[blocked.BlockConfig]Record
}

func newResult(m, k, n int, ref time.Duration, capacity int) *Result {
	return &Result{
		M: m, K: k, N: n,
		Reference: ref,
		order:     make([]blocked.BlockConfig, 0, capacity),
		records:   make(map[blocked.BlockConfig]Record, capacity),
	}
}

// add inserts cfg at the end; a config already present keeps its first record.
func (r *Result) add(cfg blocked.BlockConfig, rec Record) {
	if _, ok := r.records[cfg]; ok {
		return
	}
	r.order = append(r.order, cfg)
	r.records[cfg] = rec
}

func (r *Result) has(cfg blocked.BlockConfig) bool {
	_, ok := r.records[cfg]

	return ok
}

// Get returns the record of cfg.
func (r *Result) Get(cfg blocked.BlockConfig) (Record, bool) {
	rec, ok := r.records[cfg]

	return rec, ok
}

// Len returns the number of distinct configs.
func (r *Result) Len() int { return len(r.order) }

// Configs returns the configs in run order (a copy).
func (r *Result) Configs() []blocked.BlockConfig {
	out := make([]blocked.BlockConfig, len(r.order))
	copy(out, r.order)

	return out
}

// Entries returns config/record pairs in run order.
func (r *Result) Entries() []Entry {
	out := make([]Entry, len(r.order))
	for i, cfg := range r.order {
		out[i] = Entry{Config: cfg, Record: r.records[cfg]}
	}

	return out
}

// AllCorrect reports whether every record passed the tolerance check.
func (r *Result) AllCorrect() bool {
	for _, rec := range r.records {
		if !rec.Correct {
			return false
		}
	}

	return true
}

// Fastest returns the correct entry with the smallest elapsed time. Ties go to
// the earlier config. ok is false when no entry is correct.
func (r *Result) Fastest() (best Entry, ok bool) {
	for _, e := range r.Entries() {
		if !e.Correct {
			continue
		}
		if !ok || e.Elapsed < best.Elapsed {
			best, ok = e, true
		}
	}

	return best, ok
}

// MarshalJSON encodes the entries as an ordered array.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Entries())
}
