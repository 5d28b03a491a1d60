package phase

import "time"

// DefaultInterval is one step per 60 Hz frame.
const DefaultInterval = time.Second / 60

// Stepper is anything that can take one discrete step. The bool result
// reports a phase boundary and is ignored by the Pacer.
type Stepper interface {
	Advance() bool
}

// Pacer is a fixed-timestep accumulator: it turns a stream of frame deltas
// into a whole number of steps, at most one per interval of simulated time.
type Pacer struct {
	interval    time.Duration
	accumulated time.Duration
	paused      bool
}

// NewPacer returns a running pacer. A non-positive interval selects
// DefaultInterval.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pacer{interval: interval}
}

// IntervalForRate converts a steps-per-second rate to a step interval.
// Non-positive rates select DefaultInterval.
func IntervalForRate(stepsPerSecond float64) time.Duration {
	if stepsPerSecond <= 0 {
		return DefaultInterval
	}
	d := time.Duration(float64(time.Second) / stepsPerSecond)
	if d <= 0 {
		d = 1
	}
	return d
}

// Update feeds one frame's elapsed time and advances s once per whole
// interval accumulated. It returns the number of steps taken. A paused
// pacer does not consume time; negative deltas count as zero.
func (p *Pacer) Update(delta time.Duration, s Stepper) int {
	if p.paused || delta <= 0 {
		return 0
	}
	p.accumulated += delta
	n := 0
	for p.accumulated > p.interval {
		p.accumulated -= p.interval
		s.Advance()
		n++
	}
	return n
}

// Pause stops time from accumulating.
func (p *Pacer) Pause() {
	p.paused = true
}

// Toggle flips the paused state and returns the new value.
func (p *Pacer) Toggle() bool {
	p.paused = !p.paused
	return p.paused
}

// Paused reports whether the pacer is paused.
func (p *Pacer) Paused() bool {
	return p.paused
}

// Interval returns the step interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// SetInterval changes the step interval; non-positive values are ignored.
// Carried-over time is capped at the new interval.
func (p *Pacer) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	p.interval = d
	if p.accumulated > d {
		p.accumulated = d
	}
}

// Accumulated returns the carried-over time not yet spent on a step.
func (p *Pacer) Accumulated() time.Duration {
	return p.accumulated
}

// Reset drops carried-over time.
func (p *Pacer) Reset() {
	p.accumulated = 0
}
