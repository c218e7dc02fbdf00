// Package testutil provides deterministic test doubles shared across packages.
package testutil

import "sync"

// SeqRand replays a fixed sequence of values as a random source.
//
// Each call to Draw returns the next value in the sequence, clamped into the
// requested [lo, hi) range so a scripted value can never fall outside the
// tier being drawn from. When the sequence is exhausted, Draw keeps
// returning the last value.
//
// This makes identifier allocation fully scriptable: a test can force the
// exact ids "g" then "4", or force the same value repeatedly to synthesize
// collisions.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SeqRand struct {
	mu   sync.Mutex
	vals []uint64
	next int
}

// NewSeqRand creates a SeqRand replaying vals in order. vals must be
// non-empty.
func NewSeqRand(vals ...uint64) *SeqRand {
	if len(vals) == 0 {
		panic("testutil: NewSeqRand requires at least one value")
	}
	return &SeqRand{vals: vals}
}

// Draw returns the next scripted value, clamped into [lo, hi).
//
// Signature matches ident.RandInt.
func (r *SeqRand) Draw(lo, hi uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.vals[r.next]
	if r.next < len(r.vals)-1 {
		r.next++
	}

	if v < lo {
		return lo
	}
	if v >= hi {
		return hi - 1
	}
	return v
}

// Calls returns how many scripted values have been consumed so far.
// Exhausted replays of the final value are not counted.
func (r *SeqRand) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}
