package ident

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	// maxDraws bounds the random draws per candidate before falling back
	// to the deterministic timestamp construction.
	maxDraws = 50

	// maxLength caps the tier length so 36^L stays within uint64.
	maxLength = 12

	// fallbackSuffixLen is the number of random base-36 characters
	// appended to the timestamp in the fallback construction.
	fallbackSuffixLen = 4
)

// RandInt draws a uniform random integer from the half-open range [lo, hi).
// The allocator's default is replaceable via WithRandInt for tests.
type RandInt func(lo, hi uint64) uint64

// Allocator produces identifier candidates. Safe for concurrent use as long
// as the injected RandInt and clock are.
type Allocator struct {
	deny    *Denylist
	randInt RandInt
	now     func() time.Time
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithRandInt replaces the random source. Tests use this to force specific
// candidates and synthetic collisions.
func WithRandInt(r RandInt) Option {
	return func(a *Allocator) {
		a.randInt = r
	}
}

// WithNow replaces the clock used by the fallback construction.
func WithNow(now func() time.Time) Option {
	return func(a *Allocator) {
		a.now = now
	}
}

// New creates an Allocator screening candidates against deny.
func New(deny *Denylist, opts ...Option) *Allocator {
	a := &Allocator{
		deny: deny,
		randInt: func(lo, hi uint64) uint64 {
			return lo + rand.Uint64N(hi-lo)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Candidate returns one identifier candidate of exactly length characters.
// It never fails: after maxDraws denylisted draws it falls back to the
// deterministic timestamp construction, which skips the denylist check.
//
// Candidates are drawn from [36^(length-1), 36^length), so the rendered
// string always has exactly length characters and tiers never overlap.
func (a *Allocator) Candidate(length uint) string {
	if length < 1 {
		length = 1
	}
	if length > maxLength {
		length = maxLength
	}

	lo := pow36(length - 1)
	hi := pow36(length)
	for i := 0; i < maxDraws; i++ {
		cand := strconv.FormatUint(a.randInt(lo, hi), 36)
		if !a.deny.Blocked(cand) {
			return cand
		}
	}

	return a.fallback(length)
}

// fallback builds a deterministic candidate from the current timestamp plus
// a short random suffix, fitted to length characters. Known gap: the result
// is not screened against the denylist, so allocation can always succeed.
func (a *Allocator) fallback(length uint) string {
	ts := strconv.FormatUint(uint64(a.now().UnixMilli()), 36)
	suffix := strconv.FormatUint(a.randInt(0, pow36(fallbackSuffixLen)), 36)
	s := ts + suffix

	if uint(len(s)) >= length {
		// Keep the trailing characters: the suffix plus the
		// fastest-moving timestamp digits carry the entropy.
		return s[uint(len(s))-length:]
	}
	for uint(len(s)) < length {
		s = "0" + s
	}
	return s
}

// pow36 returns 36^n. n must be <= maxLength.
func pow36(n uint) uint64 {
	v := uint64(1)
	for i := uint(0); i < n; i++ {
		v *= 36
	}
	return v
}
