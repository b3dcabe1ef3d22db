package bench

import (
	"testing"
	"time"
)

func TestTimer_ElapsedGrows(t *testing.T) {
	t.Parallel()

	var timer Timer
	if got := timer.Elapsed(); got != 0 {
		t.Fatalf("Elapsed() before Start() = %v, want 0", got)
	}

	timer.Start()
	time.Sleep(5 * time.Millisecond)
	first := timer.Elapsed()
	if first <= 0 {
		t.Fatalf("Elapsed() = %v, want > 0", first)
	}
	time.Sleep(5 * time.Millisecond)
	if second := timer.Elapsed(); second < first {
		t.Fatalf("Elapsed() went backwards: %v then %v", first, second)
	}
}

func TestTimer_Remaining(t *testing.T) {
	t.Parallel()

	var timer Timer
	timer.Start()
	if got := timer.Remaining(time.Hour); got <= 0 {
		t.Fatalf("Remaining(1h) = %v, want > 0", got)
	}

	time.Sleep(2 * time.Millisecond)
	if got := timer.Remaining(time.Nanosecond); got != 0 {
		t.Fatalf("Remaining(1ns) after sleep = %v, want 0", got)
	}
}

func TestTimer_RestartResetsOrigin(t *testing.T) {
	t.Parallel()

	var timer Timer
	timer.Start()
	time.Sleep(50 * time.Millisecond)
	before := timer.Elapsed()
	timer.Start()
	if got := timer.Elapsed(); got >= before {
		t.Fatalf("Elapsed() after restart = %v, want less than %v", got, before)
	}
}
