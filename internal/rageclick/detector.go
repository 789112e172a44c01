// Package rageclick implements the rapid-vote deterrent. A session that
// fires too many votes in quick succession gets exactly one penalty vote
// against itself per streak. This is a courtesy mechanic, not a security
// control: the server accepts any vote volume regardless.
package rageclick

import (
	"sync"
	"time"
)

const (
	// DefaultGap is the maximum pause between clicks that keeps a streak alive.
	DefaultGap = 2 * time.Second
	// DefaultThreshold is the streak length that arms the penalty.
	DefaultThreshold = 5
	// DefaultPenaltyDelay is how long after arming the penalty vote is cast.
	DefaultPenaltyDelay = 300 * time.Millisecond

	// Sessions idle longer than this are pruned.
	staleAfter = 10 * time.Minute
)

type state struct {
	lastClick time.Time
	count     int
	fired     bool
}

// Detector tracks click streaks per session key. Safe for concurrent use.
type Detector struct {
	mu        sync.Mutex
	sessions  map[string]*state
	gap       time.Duration
	threshold int
	now       func() time.Time
}

// Option configures a Detector.
type Option func(*Detector)

// WithClock injects a clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Detector) { d.now = now }
}

// WithGap overrides the streak-keeping gap.
func WithGap(gap time.Duration) Option {
	return func(d *Detector) { d.gap = gap }
}

// WithThreshold overrides the penalty threshold.
func WithThreshold(n int) Option {
	return func(d *Detector) { d.threshold = n }
}

// New creates a Detector with the default 2s gap / 5 click rule.
func New(opts ...Option) *Detector {
	d := &Detector{
		sessions:  make(map[string]*state),
		gap:       DefaultGap,
		threshold: DefaultThreshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Record registers one vote-cast click for the session and reports whether
// the penalty arms on this click. A gap above the threshold resets the
// streak to 1 and clears the fired flag; within the gap the counter
// increments. The penalty arms once per streak, when the counter reaches
// the threshold and has not fired yet.
func (d *Detector) Record(sessionKey string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.pruneLocked(now)

	s := d.sessions[sessionKey]
	if s == nil {
		s = &state{}
		d.sessions[sessionKey] = s
	}

	if s.lastClick.IsZero() || now.Sub(s.lastClick) > d.gap {
		s.count = 1
		s.fired = false
	} else {
		s.count++
	}
	s.lastClick = now

	if s.count >= d.threshold && !s.fired {
		s.fired = true
		return true
	}
	return false
}

// Reset forgets a session's streak.
func (d *Detector) Reset(sessionKey string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sessions, sessionKey)
}

func (d *Detector) pruneLocked(now time.Time) {
	for key, s := range d.sessions {
		if now.Sub(s.lastClick) > staleAfter {
			delete(d.sessions, key)
		}
	}
}
