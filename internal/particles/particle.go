// Package particles owns the CPU side of the fountain: a fixed pool of
// particle slots, the emission and integration steps that run once per
// simulation tick, the back-to-front depth sort, and the packer that
// flattens live particles into per-instance attribute arrays.
package particles

import "github.com/go-gl/mathgl/mgl32"

// DeadDistance marks a particle that has no meaningful camera distance.
// It is smaller than any squared distance, so dead particles sort last.
const DeadDistance float32 = -1

// Particle is one pool slot.
type Particle struct {
	Pos, Vel mgl32.Vec3
	Color    [4]float32 // RGBA, 0..1

	Size float32 // billboard half-extent
	Life float32 // remaining life in ms; negative = free slot

	// CameraDistance is the squared distance to the eye, DeadDistance when dead.
	// Only the depth sort reads it.
	CameraDistance float32
}

// Alive reports whether the slot is in use.
func (p *Particle) Alive() bool { return p.Life >= 0 }

// Visible reports whether the particle should be drawn this frame.
func (p *Particle) Visible() bool { return p.Life > 0 }

func (p *Particle) kill() {
	p.Life = -1
	p.CameraDistance = DeadDistance
}
