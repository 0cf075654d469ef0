package particles

import "github.com/go-gl/mathgl/mgl32"

// DefaultStep is one 60 Hz tick in milliseconds.
const DefaultStep float32 = 1000.0 / 60.0

var DefaultGravity = mgl32.Vec3{0, -9.81, 0}

// Integrator advances every live particle by one fixed tick.
type Integrator struct {
	Gravity mgl32.Vec3
	Step    float32    // tick length in ms; also the life decrement
	Eye     mgl32.Vec3 // camera position for the depth key
}

func NewIntegrator(eye mgl32.Vec3) *Integrator {
	return &Integrator{
		Gravity: DefaultGravity,
		Step:    DefaultStep,
		Eye:     eye,
	}
}

// Integrate runs one tick over the whole pool and returns the number of
// particles still alive afterwards.
//
// Velocity picks up half a step of gravity before the position moves by a
// full step. That is not textbook semi-implicit Euler and the trajectories
// depend on it, so keep it.
func (in *Integrator) Integrate(pool *Pool) int {
	dt := in.Step
	dv := in.Gravity.Mul(dt * 0.5)
	live := 0

	ps := pool.Particles()
	for i := range ps {
		p := &ps[i]
		if p.Life < 0 {
			continue
		}

		p.Life -= dt
		if p.Life <= 0 {
			// Not drawn from here on. A slot that lands on exactly 0 is
			// decremented once more next tick before it can be reused.
			p.CameraDistance = DeadDistance
			continue
		}

		p.Vel = p.Vel.Add(dv)
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		d := p.Pos.Sub(in.Eye)
		p.CameraDistance = d.Dot(d)
		live++
	}
	return live
}
