// Package testutil provides deterministic test doubles shared across
// package tests.
package testutil

import (
	"sync"
	"time"
)

// SequenceClock returns predetermined instants in order.
//
// Repeating an instant in the sequence reproduces a fingerprint
// collision; distinct instants exercise the happy path. Panics when
// exhausted - fail fast in tests rather than silently reusing time.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceClock struct {
	mu       sync.Mutex
	instants []time.Time
	idx      int
}

// NewSequenceClock creates a clock that returns instants in order.
func NewSequenceClock(instants ...time.Time) *SequenceClock {
	return &SequenceClock{instants: instants}
}

// Now returns the next predetermined instant.
func (c *SequenceClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idx >= len(c.instants) {
		panic("testutil: SequenceClock exhausted")
	}
	t := c.instants[c.idx]
	c.idx++
	return t
}

// StepClock returns strictly increasing instants: base, base+step,
// base+2*step, and so on. Never exhausts.
//
// Thread-safety: safe for concurrent use via internal mutex.
type StepClock struct {
	mu   sync.Mutex
	base time.Time
	step time.Duration
	n    int
}

// NewStepClock creates a stepping clock starting at base.
func NewStepClock(base time.Time, step time.Duration) *StepClock {
	return &StepClock{base: base, step: step}
}

// Now returns the next instant and advances the clock.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.base.Add(time.Duration(c.n) * c.step)
	c.n++
	return t
}
