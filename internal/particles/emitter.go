package particles

import "github.com/go-gl/mathgl/mgl32"

// Emission defaults.
const (
	DefaultRate     = 1
	DefaultLife     = 10000.0 // ms
	DefaultSpread   = 1.5
	DefaultSizeMin  = 0.1
	DefaultSizeMax  = 0.6
	DefaultAlphaMax = 1.0 / 3.0
)

var (
	DefaultOrigin    = mgl32.Vec3{0, 0, -20}
	DefaultDirection = mgl32.Vec3{0, 10, 0}
)

// Emitter spawns a fixed number of particles per simulation tick from a
// single point.
type Emitter struct {
	Rate      int        // particles per tick
	Origin    mgl32.Vec3 // spawn position
	Direction mgl32.Vec3 // main velocity
	Spread    float32    // scale of the random velocity offset
	Life      float32    // ms

	SizeMin, SizeMax float32
	AlphaMax         float32

	rng *Rand
}

// NewEmitter returns an emitter with the fountain defaults.
func NewEmitter(seed uint64) *Emitter {
	return &Emitter{
		Rate:      DefaultRate,
		Origin:    DefaultOrigin,
		Direction: DefaultDirection,
		Spread:    DefaultSpread,
		Life:      DefaultLife,
		SizeMin:   DefaultSizeMin,
		SizeMax:   DefaultSizeMax,
		AlphaMax:  DefaultAlphaMax,
		rng:       NewRand(seed),
	}
}

// Emit spawns Rate particles into the pool and returns how many it wrote.
// A saturated pool still accepts them by recycling slot 0.
func (e *Emitter) Emit(pool *Pool) int {
	for range e.Rate {
		pool.Spawn(e.newParticle())
	}
	return max(e.Rate, 0)
}

func (e *Emitter) newParticle() Particle {
	r := e.rng
	// Uniform in the cube, not on the sphere: directions are biased toward
	// the corners.
	dir := mgl32.Vec3{r.Signed(), r.Signed(), r.Signed()}
	return Particle{
		Pos: e.Origin,
		Vel: e.Direction.Add(dir.Mul(e.Spread)),
		Color: [4]float32{
			r.Float32(),
			r.Float32(),
			r.Float32(),
			r.RangeF(0, e.AlphaMax),
		},
		Size: r.RangeF(e.SizeMin, e.SizeMax),
		Life: e.Life,
	}
}
