package stopwatch

import "time"

// Stopwatch measures elapsed wall-clock time in microseconds.
type Stopwatch struct {
	start time.Time
}

// Start resets the stopwatch to now.
func (s *Stopwatch) Start() {
	s.start = time.Now()
}

// Stop returns microseconds since the last Start.
func (s *Stopwatch) Stop() int64 {
	return time.Since(s.start).Microseconds()
}

// Time runs fn and returns how long it took in microseconds.
func Time(fn func()) int64 {
	var s Stopwatch
	s.Start()
	fn()
	return s.Stop()
}
