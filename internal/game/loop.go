package game

import (
	"log/slog"
	"time"

	"particles/internal/config"
	"particles/internal/pacer"
	"particles/internal/particles"
	"particles/internal/telemetry"
)

// Summary describes a finished run.
type Summary struct {
	RunID  string
	Ticks  int
	Frames int
	Live   int
}

// loop is the per-frame driver shared by the desktop and headless modes.
// Everything here runs on one goroutine.
type loop struct {
	sim   *particles.Simulation
	clock pacer.Clock
	pacer *pacer.Pacer
	stats *telemetry.Counter
	csv   *telemetry.CSVWriter
	log   *slog.Logger

	maxTicks int
	ticks    int
	frames   int
}

func newLoop(cfg *config.Config, opts Options, sim *particles.Simulation, clock pacer.Clock) (*loop, error) {
	csv, err := telemetry.CreateCSV(opts.StatsCSV)
	if err != nil {
		return nil, err
	}
	l := &loop{
		sim:      sim,
		clock:    clock,
		pacer:    pacer.New(clock, cfg.Derived.TickDuration, cfg.Physics.MaxTicksPerFrame),
		stats:    telemetry.NewCounter(clock.Now(), cfg.Derived.Interval),
		csv:      csv,
		log:      opts.logger(),
		maxTicks: opts.MaxTicks,
	}
	l.log.Info("simulation ready",
		"run_id", l.stats.RunID(),
		"seed", opts.Seed,
		"capacity", sim.Pool.Cap(),
		"tick", cfg.Derived.TickDuration,
		"max_ticks_per_frame", cfg.Physics.MaxTicksPerFrame,
	)
	return l, nil
}

// update runs every simulation tick that is due this frame.
func (l *loop) update() pacer.Frame {
	f := l.pacer.Advance(func() {
		start := time.Now()
		l.sim.Tick()
		l.stats.Tick(time.Since(start))
	})
	l.ticks += f.Ticks
	if f.Dropped > 0 {
		l.stats.Drop(f.Dropped)
		l.log.Debug("simulation behind, ticks dropped", "dropped", f.Dropped)
	}
	return f
}

// endFrame accounts for one rendered frame and reports when an interval closes.
func (l *loop) endFrame(start time.Time) {
	l.frames++
	l.stats.Frame(time.Since(start))

	s, ok := l.stats.Flush(l.clock.Now(), l.sim.Live())
	if !ok {
		return
	}
	l.log.Info("stats",
		"draws", s.Draws,
		"updates", s.Updates,
		"dropped", s.Dropped,
		"live", s.Live,
		"tick_avg_us", s.TickAvgUs,
		"frame_avg_us", s.FrameAvgUs,
	)
	if err := l.csv.Write(s); err != nil {
		l.log.Warn("stats output disabled", "error", err)
		l.csv.Close()
		l.csv = nil
	}
}

func (l *loop) done() bool {
	return l.maxTicks > 0 && l.ticks >= l.maxTicks
}

func (l *loop) close() Summary {
	if err := l.csv.Close(); err != nil {
		l.log.Warn("closing stats output", "error", err)
	}
	return Summary{
		RunID:  l.stats.RunID(),
		Ticks:  l.ticks,
		Frames: l.frames,
		Live:   l.sim.Live(),
	}
}
