// Package metrics tracks the small set of per-second throughput counters
// the demo server reports, ported from original_source/rustdb/src/bin/
// srv.rs's array of AtomicU32 counters reset once a second.
package metrics

import "sync/atomic"

// Op names one of the operations metrics counts.
type Op int

const (
	Add Op = iota
	Remove
	Update
	Fetch
	NumOp
)

// Counters is a fixed set of per-operation atomic counters, safe for
// concurrent use by the writer goroutines and the dispatcher loop alike.
type Counters struct {
	counts   [NumOp]atomic.Uint64
	released atomic.Uint64
}

// New returns a zeroed Counters.
func New() *Counters {
	return &Counters{}
}

// Inc increments op's counter by one.
func (c *Counters) Inc(op Op) {
	c.counts[op].Add(1)
}

// Released increments the count of records whose last index handle has
// been released, wired to table.Table.OnRelease.
func (c *Counters) Released() {
	c.released.Add(1)
}

// Snapshot is a point-in-time read of every counter.
type Snapshot struct {
	Add, Remove, Update, Fetch, Released uint64
}

// SnapshotAndReset atomically reads every counter and resets it to zero,
// matching the original's "print the last second's rate, then zero it"
// reporting loop.
func (c *Counters) SnapshotAndReset() Snapshot {
	return Snapshot{
		Add:      c.counts[Add].Swap(0),
		Remove:   c.counts[Remove].Swap(0),
		Update:   c.counts[Update].Swap(0),
		Fetch:    c.counts[Fetch].Swap(0),
		Released: c.released.Swap(0),
	}
}
