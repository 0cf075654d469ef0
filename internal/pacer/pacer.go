// Package pacer decouples the simulation rate from the render rate with a
// fixed-timestep accumulator and a frame-skip bound.
package pacer

import "time"

const (
	DefaultStep     = time.Second / 60
	DefaultMaxTicks = 5
)

// Clock supplies monotonic time. Only differences between readings matter.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock { return &SystemClock{start: time.Now()} }

func (c *SystemClock) Now() time.Duration { return time.Since(c.start) }

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Duration

func (f ClockFunc) Now() time.Duration { return f() }

// Frame reports what one Advance call did.
type Frame struct {
	Ticks   int // simulation ticks run
	Dropped int // ticks discarded because of the per-frame cap
}

// Pacer tracks the time the next simulation tick is due.
type Pacer struct {
	clock    Clock
	step     time.Duration
	maxTicks int
	nextTick time.Duration
}

// New starts pacing from the clock's current reading. Non-positive
// arguments fall back to the defaults.
func New(clock Clock, step time.Duration, maxTicks int) *Pacer {
	if step <= 0 {
		step = DefaultStep
	}
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	return &Pacer{
		clock:    clock,
		step:     step,
		maxTicks: maxTicks,
		nextTick: clock.Now(),
	}
}

func (p *Pacer) Step() time.Duration { return p.step }

func (p *Pacer) MaxTicks() int { return p.maxTicks }

// Advance runs tick once for every step that came due since the last call,
// up to MaxTicks. Whatever backlog remains after the cap is thrown away
// rather than carried into the next frame.
func (p *Pacer) Advance(tick func()) Frame {
	now := p.clock.Now()
	var f Frame
	for now > p.nextTick && f.Ticks < p.maxTicks {
		tick()
		p.nextTick += p.step
		f.Ticks++
	}
	if now > p.nextTick {
		f.Dropped = int((now - p.nextTick) / p.step)
		p.nextTick = now
	}
	return f
}
