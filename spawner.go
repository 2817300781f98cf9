package main

import "time"

// Spawner decides when a new block appears. It accumulates the wall-clock time
// that passed between frames and fires once every Interval.
//
// The interval is subtracted from the accumulated time instead of resetting it
// to zero, so frames that don't divide the interval evenly don't make the
// spawn rate drift. If the game stalls for several intervals, only one block
// is spawned and the missed intervals are dropped. A burst of blocks after a
// stall would be unfair to the player.
type Spawner struct {
	Interval    time.Duration
	Accumulated time.Duration
}

func NewSpawner(interval time.Duration) Spawner {
	return Spawner{Interval: interval}
}

// Advance adds elapsed to the accumulated time and returns true if a block
// must be spawned now.
func (s *Spawner) Advance(elapsed time.Duration) bool {
	if s.Interval <= 0 || elapsed < 0 {
		return false
	}
	s.Accumulated += elapsed
	if s.Accumulated < s.Interval {
		return false
	}
	s.Accumulated -= s.Interval
	if s.Accumulated >= s.Interval {
		s.Accumulated %= s.Interval
	}
	return true
}
