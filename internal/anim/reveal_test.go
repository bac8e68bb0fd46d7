package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeedStartsAtZero(t *testing.T) {
	s := NewScheduler()
	s.Seed("p1")
	assert.Equal(t, 0, s.Revealed("p1"))
}

func TestUnknownSegmentIsFullyRevealed(t *testing.T) {
	s := NewScheduler()
	assert.Equal(t, Steps, s.Revealed("loaded-from-disk"))
}

func TestAdvanceIsMonotonic(t *testing.T) {
	s := NewScheduler()
	s.Seed("p1")
	prev := 0
	for i := 0; i < 40; i++ {
		s.Advance(16 * time.Millisecond)
		cur := s.Revealed("p1")
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, Steps, prev)
}

func TestSeededSegmentRevealsOverHalfSecond(t *testing.T) {
	s := NewScheduler()
	s.Seed("p1")
	s.Advance(250 * time.Millisecond)
	assert.Equal(t, Steps/2, s.Revealed("p1"))
	s.Advance(250 * time.Millisecond)
	assert.Equal(t, Steps, s.Revealed("p1"))
	// Further time never pushes past full reveal.
	s.Advance(time.Second)
	assert.Equal(t, Steps, s.Revealed("p1"))
}

func TestSegmentsAdvanceIndependently(t *testing.T) {
	s := NewScheduler()
	s.Seed("old")
	s.Advance(500 * time.Millisecond)
	s.Seed("new")
	s.Advance(100 * time.Millisecond)
	assert.Equal(t, Steps, s.Revealed("old"))
	assert.Equal(t, 20, s.Revealed("new"))
}

func TestNegativeOrZeroDeltaIsIgnored(t *testing.T) {
	s := NewScheduler()
	s.Seed("p1")
	s.Advance(0)
	s.Advance(-time.Second)
	assert.Equal(t, 0, s.Revealed("p1"))
}

func TestDropAndReset(t *testing.T) {
	s := NewScheduler()
	s.Seed("p1")
	s.Seed("p2")
	s.Drop("p1")
	// Dropped segments re-enter as fully revealed strangers.
	assert.Equal(t, Steps, s.Revealed("p1"))
	assert.Equal(t, 0, s.Revealed("p2"))
	s.Reset()
	assert.Equal(t, Steps, s.Revealed("p2"))
}
