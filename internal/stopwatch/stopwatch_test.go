package stopwatch

import (
	"testing"
	"time"
)

func TestStopwatch(t *testing.T) {
	var s Stopwatch
	s.Start()
	time.Sleep(2 * time.Millisecond)
	if got := s.Stop(); got < 2000 {
		t.Fatalf("expected at least 2000us, got %d", got)
	}
}

func TestTime(t *testing.T) {
	called := false
	us := Time(func() { called = true })
	if !called {
		t.Fatal("fn was not called")
	}
	if us < 0 {
		t.Fatalf("negative duration %d", us)
	}
}
