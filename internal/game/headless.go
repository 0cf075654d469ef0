package game

import (
	"context"
	"time"

	"particles/internal/config"
	"particles/internal/pacer"
)

// RunHeadless drives the same pipeline without a window. By default time is
// virtual: each frame advances the clock by exactly one tick, so a run is as
// fast as the CPU allows and repeatable for a given seed. With
// Options.Realtime the pacer reads the system clock instead, the same way
// the desktop loop does.
func RunHeadless(ctx context.Context, cfg *config.Config, opts Options) (Summary, error) {
	var now time.Duration
	var clock pacer.Clock = pacer.ClockFunc(func() time.Duration { return now })
	if opts.Realtime {
		clock = pacer.NewSystemClock()
	}

	sim := NewSimulation(cfg, opts.Seed, NewCamera(cfg))
	l, err := newLoop(cfg, opts, sim, clock)
	if err != nil {
		return Summary{}, err
	}

	for !l.done() {
		if err := ctx.Err(); err != nil {
			break
		}
		start := time.Now()
		if !opts.Realtime {
			now += cfg.Derived.TickDuration
		}
		f := l.update()
		sim.Pack()
		l.endFrame(start)
		if opts.Realtime && f.Ticks == 0 {
			// Nothing due yet; there is no vsync to block on.
			time.Sleep(time.Millisecond)
		}
	}

	return l.close(), nil
}
