// Package game wires the simulation, pacer, telemetry and renderer into the
// desktop loop and the headless loop.
package game

import (
	"log/slog"

	"particles/internal/camera"
	"particles/internal/config"
	"particles/internal/particles"
)

// Options are the per-run settings that do not live in the config file.
type Options struct {
	Seed     uint64
	MaxTicks int    // stop after this many simulation ticks, 0 = unlimited
	StatsCSV string // path for per-interval stats, empty = disabled
	Realtime bool   // headless only: pace on the system clock
	Logger   *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// NewCamera builds the static camera from config.
func NewCamera(cfg *config.Config) camera.Camera {
	return camera.Camera{
		Eye:    cfg.Camera.Position.Mgl(),
		Target: cfg.Camera.Target.Mgl(),
		Up:     cfg.Camera.Up.Mgl(),
		FovY:   cfg.Camera.FovDegrees,
		Aspect: cfg.Derived.Aspect,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	}
}

// NewSimulation builds the pool, emitter and integrator from config. The
// depth key is measured from the camera's eye.
func NewSimulation(cfg *config.Config, seed uint64, cam camera.Camera) *particles.Simulation {
	pool := particles.NewPool(cfg.Pool.Capacity)

	em := particles.NewEmitter(seed)
	em.Rate = cfg.Emitter.Rate
	em.Origin = cfg.Emitter.Origin.Mgl()
	em.Direction = cfg.Emitter.Direction.Mgl()
	em.Spread = cfg.Emitter.Spread
	em.Life = cfg.Emitter.LifeMs
	em.SizeMin = cfg.Emitter.SizeMin
	em.SizeMax = cfg.Emitter.SizeMax
	em.AlphaMax = cfg.Emitter.AlphaMax

	in := particles.NewIntegrator(cam.Position())
	in.Gravity = cfg.Physics.Gravity.Mgl()
	in.Step = cfg.Derived.TickMillis

	return particles.NewSimulation(pool, em, in)
}
