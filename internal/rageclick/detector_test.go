package rageclick

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDetector() (*Detector, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.now)), clock
}

func TestPenaltyArmsOnFifthRapidClick(t *testing.T) {
	d, clock := newTestDetector()

	for i := 1; i <= 4; i++ {
		assert.False(t, d.Record("session"), "click %d must not arm", i)
		clock.advance(200 * time.Millisecond)
	}
	assert.True(t, d.Record("session"), "fifth click within the window arms the penalty")
}

func TestPenaltyFiresOncePerStreak(t *testing.T) {
	d, clock := newTestDetector()

	for i := 1; i <= 4; i++ {
		d.Record("session")
		clock.advance(100 * time.Millisecond)
	}
	assert.True(t, d.Record("session"))

	// Continued rapid clicking within the same unbroken streak
	clock.advance(100 * time.Millisecond)
	assert.False(t, d.Record("session"), "sixth click queues no extra penalty")
	clock.advance(100 * time.Millisecond)
	assert.False(t, d.Record("session"))
}

func TestSlowClicksNeverArm(t *testing.T) {
	d, clock := newTestDetector()

	for i := 0; i < 10; i++ {
		assert.False(t, d.Record("session"))
		clock.advance(3 * time.Second)
	}
}

func TestGapResetsStreakAndRearms(t *testing.T) {
	d, clock := newTestDetector()

	for i := 1; i <= 5; i++ {
		d.Record("session")
		clock.advance(100 * time.Millisecond)
	}

	// A pause above the gap resets the streak; a fresh burst arms again
	clock.advance(2500 * time.Millisecond)
	for i := 1; i <= 4; i++ {
		assert.False(t, d.Record("session"))
		clock.advance(100 * time.Millisecond)
	}
	assert.True(t, d.Record("session"))
}

func TestSessionsAreIndependent(t *testing.T) {
	d, clock := newTestDetector()

	for i := 1; i <= 4; i++ {
		d.Record("angry")
		assert.False(t, d.Record("calm"))
		clock.advance(100 * time.Millisecond)
	}
	assert.True(t, d.Record("angry"))
	assert.False(t, d.Record("calm"))
}

func TestExactGapBoundaryKeepsStreak(t *testing.T) {
	d, clock := newTestDetector()

	for i := 1; i <= 4; i++ {
		d.Record("session")
		clock.advance(2 * time.Second) // exactly the gap, streak survives
	}
	assert.True(t, d.Record("session"))
}

func TestReset(t *testing.T) {
	d, clock := newTestDetector()

	for i := 1; i <= 4; i++ {
		d.Record("session")
		clock.advance(100 * time.Millisecond)
	}
	d.Reset("session")
	assert.False(t, d.Record("session"), "reset streak starts over")
}
