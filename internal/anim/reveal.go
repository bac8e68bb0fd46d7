// Package anim tracks the progressive reveal of path segments. Each
// segment, keyed by the identity of the point it ends at, owns a progress
// value in [0, Steps] counting how many of its parametric samples are
// drawn. Progress is a function of elapsed frame time only; there is no
// background execution.
package anim

import "time"

// Steps is the parametric sampling resolution of one segment.
const Steps = 100

const (
	// revealWindow is how long a freshly created segment takes to reveal
	// fully from zero.
	revealWindow = 500 * time.Millisecond
	// easeWindow is the full-sweep window used for segments first seen
	// already on screen, e.g. after a load.
	easeWindow = 300 * time.Millisecond
)

type entry struct {
	value float64
	rate  float64 // progress units per second
}

// Scheduler holds per-segment reveal progress.
type Scheduler struct {
	entries map[string]*entry
}

func NewScheduler() *Scheduler {
	return &Scheduler{entries: make(map[string]*entry)}
}

// Seed registers the segment ending at id with zero revealed samples,
// easing to full over the reveal window. Called when a new point is
// appended or inserted.
func (s *Scheduler) Seed(id string) {
	s.entries[id] = &entry{value: 0, rate: Steps / revealWindow.Seconds()}
}

// Advance moves every entry toward full reveal by dt of wall-clock time.
// Progress never decreases.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	for _, e := range s.entries {
		if e.value >= Steps {
			continue
		}
		e.value = min(Steps, e.value+e.rate*dt.Seconds())
	}
}

// Revealed reports how many of the Steps samples of the segment ending at
// id are currently drawn. Segments never seen before enter fully revealed,
// so loaded paths do not replay their reveal.
func (s *Scheduler) Revealed(id string) int {
	e, ok := s.entries[id]
	if !ok {
		e = &entry{value: Steps, rate: Steps / easeWindow.Seconds()}
		s.entries[id] = e
	}
	return int(e.value)
}

// Drop forgets the segment ending at id.
func (s *Scheduler) Drop(id string) {
	delete(s.entries, id)
}

// Reset forgets all segments.
func (s *Scheduler) Reset() {
	clear(s.entries)
}
