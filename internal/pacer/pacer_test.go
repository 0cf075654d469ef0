package pacer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type manualClock struct {
	t time.Duration
}

func (c *manualClock) Now() time.Duration { return c.t }

func (c *manualClock) advance(d time.Duration) { c.t += d }

func TestAdvance_NoTimeNoTicks(t *testing.T) {
	clk := &manualClock{t: time.Second}
	p := New(clk, DefaultStep, DefaultMaxTicks)

	ticks := 0
	f := p.Advance(func() { ticks++ })

	assert.Equal(t, Frame{}, f)
	assert.Equal(t, 0, ticks)
}

func TestAdvance_OneTickPerStep(t *testing.T) {
	clk := &manualClock{}
	p := New(clk, 10*time.Millisecond, 5)

	ticks := 0
	tick := func() { ticks++ }
	clk.advance(5 * time.Millisecond)
	assert.Equal(t, 1, p.Advance(tick).Ticks)

	// nextTick is now 10ms; 5ms is not past it.
	assert.Equal(t, 0, p.Advance(tick).Ticks)

	clk.advance(26 * time.Millisecond) // now 31ms
	f := p.Advance(tick)
	assert.Equal(t, 3, f.Ticks)
	assert.Equal(t, 0, f.Dropped)
	assert.Equal(t, 4, ticks)
}

func TestAdvance_CapDropsBacklog(t *testing.T) {
	clk := &manualClock{}
	ms := float64(time.Millisecond)
	step := time.Duration(ms * 1000.0 / 60.0)
	p := New(clk, step, 5)

	clk.advance(200 * time.Millisecond)
	ticks := 0
	f := p.Advance(func() { ticks++ })

	assert.Equal(t, 5, ticks)
	assert.Equal(t, 5, f.Ticks)
	assert.Equal(t, 7, f.Dropped)

	// Backlog is gone: a frame later only the new time counts.
	clk.advance(step / 2)
	f = p.Advance(func() { ticks++ })
	assert.Equal(t, 1, f.Ticks)
	assert.Equal(t, 0, f.Dropped)
}

func TestNew_Defaults(t *testing.T) {
	p := New(&manualClock{}, 0, 0)

	assert.Equal(t, DefaultStep, p.Step())
	assert.Equal(t, DefaultMaxTicks, p.MaxTicks())
}

func TestSystemClock_Monotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b, a)
}

func TestClockFunc(t *testing.T) {
	c := ClockFunc(func() time.Duration { return 3 * time.Second })
	assert.Equal(t, 3*time.Second, c.Now())
}
