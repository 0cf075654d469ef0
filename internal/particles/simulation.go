package particles

// Simulation runs the per-tick pipeline over one pool.
type Simulation struct {
	Pool       *Pool
	Emitter    *Emitter
	Integrator *Integrator
	Packer     *Packer

	live int
}

func NewSimulation(pool *Pool, em *Emitter, in *Integrator) *Simulation {
	return &Simulation{
		Pool:       pool,
		Emitter:    em,
		Integrator: in,
		Packer:     NewPacker(pool.Cap()),
	}
}

// Tick spawns, integrates and depth-sorts, in that order.
func (s *Simulation) Tick() {
	s.Emitter.Emit(s.Pool)
	s.live = s.Integrator.Integrate(s.Pool)
	SortByDepth(s.Pool.Particles())
}

// Live is the number of particles alive after the last tick.
func (s *Simulation) Live() int { return s.live }

// Pack builds the render list from the current pool order.
func (s *Simulation) Pack() Instances {
	return s.Packer.Pack(s.Pool.Particles())
}
