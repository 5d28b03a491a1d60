package phase

import (
	"math/rand"
	"testing"
	"time"
)

type countingStepper struct {
	n int
}

func (c *countingStepper) Advance() bool {
	c.n++
	return false
}

func TestPacerFixedTimestep(t *testing.T) {
	p := NewPacer(10 * time.Millisecond)
	s := &countingStepper{}

	tests := []struct {
		delta time.Duration
		steps int
		carry time.Duration
	}{
		{5 * time.Millisecond, 0, 5 * time.Millisecond},
		{5 * time.Millisecond, 0, 10 * time.Millisecond}, // exactly one interval is not > interval
		{1 * time.Millisecond, 1, 1 * time.Millisecond},
		{35 * time.Millisecond, 3, 6 * time.Millisecond},
		{0, 0, 6 * time.Millisecond},
	}

	total := 0
	for i, tc := range tests {
		got := p.Update(tc.delta, s)
		total += got
		if got != tc.steps {
			t.Errorf("frame %d: Update(%v) = %d steps, expected %d", i, tc.delta, got, tc.steps)
		}
		if p.Accumulated() != tc.carry {
			t.Errorf("frame %d: Accumulated() = %v, expected %v", i, p.Accumulated(), tc.carry)
		}
	}
	if s.n != total {
		t.Errorf("stepper advanced %d times, pacer reported %d", s.n, total)
	}
}

func TestPacerPausedConsumesNoTime(t *testing.T) {
	p := NewPacer(10 * time.Millisecond)
	s := &countingStepper{}
	p.Update(4*time.Millisecond, s)
	p.Pause()

	if n := p.Update(time.Second, s); n != 0 {
		t.Errorf("paused Update() = %d, expected 0", n)
	}
	if p.Accumulated() != 4*time.Millisecond {
		t.Errorf("Accumulated() = %v, paused pacer must not accumulate", p.Accumulated())
	}

	if paused := p.Toggle(); paused {
		t.Fatal("Toggle() should resume a paused pacer")
	}
	if n := p.Update(7*time.Millisecond, s); n != 1 {
		t.Errorf("Update() after resume = %d, expected 1", n)
	}
}

func TestPacerNegativeDelta(t *testing.T) {
	p := NewPacer(10 * time.Millisecond)
	s := &countingStepper{}
	p.Update(3*time.Millisecond, s)

	if n := p.Update(-time.Hour, s); n != 0 {
		t.Errorf("Update(negative) = %d, expected 0", n)
	}
	if p.Accumulated() != 3*time.Millisecond {
		t.Errorf("Accumulated() = %v, negative delta must not subtract time", p.Accumulated())
	}
}

func TestPacerBoundsUnderJitter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	intervals := []time.Duration{time.Millisecond, 16 * time.Millisecond, 100 * time.Millisecond}

	for _, interval := range intervals {
		p := NewPacer(interval)
		s := &countingStepper{}
		for i := 0; i < 2000; i++ {
			delta := time.Duration(rng.Int63n(int64(5 * interval)))
			if rng.Intn(20) == 0 {
				p.Toggle()
			}
			n := p.Update(delta, s)

			limit := int(delta/interval) + 1
			if n > limit {
				t.Fatalf("interval %v: Update(%v) = %d steps, limit %d", interval, delta, n, limit)
			}
			if p.Accumulated() < 0 {
				t.Fatalf("interval %v: accumulator went negative: %v", interval, p.Accumulated())
			}
			if p.Accumulated() > interval {
				t.Fatalf("interval %v: accumulator %v exceeds one interval", interval, p.Accumulated())
			}
		}
	}
}

func TestPacerSetInterval(t *testing.T) {
	p := NewPacer(100 * time.Millisecond)
	s := &countingStepper{}
	p.Update(90*time.Millisecond, s)

	p.SetInterval(20 * time.Millisecond)
	if p.Accumulated() != 20*time.Millisecond {
		t.Errorf("Accumulated() = %v, expected cap at new interval", p.Accumulated())
	}
	p.SetInterval(0)
	if p.Interval() != 20*time.Millisecond {
		t.Errorf("SetInterval(0) should be ignored, interval = %v", p.Interval())
	}

	p.Reset()
	if p.Accumulated() != 0 {
		t.Errorf("Reset() left %v accumulated", p.Accumulated())
	}
}

func TestNewPacerDefaults(t *testing.T) {
	if got := NewPacer(0).Interval(); got != DefaultInterval {
		t.Errorf("NewPacer(0).Interval() = %v, expected %v", got, DefaultInterval)
	}
	if NewPacer(time.Second).Paused() {
		t.Error("new pacer should be running")
	}
}

func TestIntervalForRate(t *testing.T) {
	tests := []struct {
		rate float64
		want time.Duration
	}{
		{60, time.Second / 60},
		{1, time.Second},
		{0.5, 2 * time.Second},
		{0, DefaultInterval},
		{-3, DefaultInterval},
	}
	for _, tc := range tests {
		if got := IntervalForRate(tc.rate); got != tc.want {
			t.Errorf("IntervalForRate(%v) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}
