package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestFrameClock_Manual(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewFrameClock(start, 0)

	if !clock.Now().Equal(start) || !clock.Now().Equal(start) {
		t.Errorf("zero-step clock should hold at %v", start)
	}

	next := start.Add(24 * time.Hour)
	clock.Set(next)
	clock.Advance(time.Hour)
	clock.Advance(30 * time.Minute)

	if want := next.Add(90 * time.Minute); !clock.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, clock.Now())
	}
}

func TestFrameClock_StepsPerReading(t *testing.T) {
	start := time.Unix(100, 0)
	clock := NewFrameClockFPS(start, 50)

	for i := 0; i < 3; i++ {
		want := start.Add(time.Duration(i) * 20 * time.Millisecond)
		if got := clock.Now(); !got.Equal(want) {
			t.Errorf("reading %d = %v, want %v", i, got, want)
		}
	}

	clock.Advance(time.Second)
	if got, want := clock.Now(), start.Add(60*time.Millisecond+time.Second); !got.Equal(want) {
		t.Errorf("after Advance = %v, want %v", got, want)
	}

	if NewFrameClockFPS(start, 0).step != 0 {
		t.Error("non-positive fps should give a manual clock")
	}
}

func TestFrameClock_Concurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewFrameClock(start, 0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = clock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				clock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := start.Add(500 * time.Millisecond); !clock.Now().Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, clock.Now())
	}
}

func TestPausableClock(t *testing.T) {
	mock := NewFrameClock(time.Unix(0, 0), 0)
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Fatalf("Elapsed = %v, want 2s", got)
	}

	if !clock.Toggle() {
		t.Fatal("Toggle should report paused")
	}
	mock.Advance(5 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed while paused = %v, want 2s", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 5s", got)
	}

	clock.Pause() // no-op while paused
	clock.Resume()
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed after resume = %v, want 3s", got)
	}
	if clock.IsPaused() {
		t.Error("clock should be running")
	}
}

var (
	_ TimeProvider = (*MonotonicTimeProvider)(nil)
	_ TimeProvider = (*FrameClock)(nil)
)
