package particles

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_DecrementsLife(t *testing.T) {
	pool := NewPool(4)
	pool.Spawn(Particle{Life: 100})
	in := &Integrator{Step: 25}

	live := in.Integrate(pool)

	assert.Equal(t, 1, live)
	assert.Equal(t, float32(75), pool.Slot(0).Life)
}

func TestIntegrate_HalfStepGravity(t *testing.T) {
	pool := NewPool(1)
	pool.Spawn(Particle{Life: 100, Vel: mgl32.Vec3{1, 0, 0}})
	in := &Integrator{Gravity: mgl32.Vec3{0, -10, 0}, Step: 2}

	in.Integrate(pool)

	p := pool.Slot(0)
	// v += g*dt*0.5 -> (1,-10,0); x += v*dt -> (2,-20,0)
	assert.Equal(t, mgl32.Vec3{1, -10, 0}, p.Vel)
	assert.Equal(t, mgl32.Vec3{2, -20, 0}, p.Pos)
	assert.Equal(t, float32(404), p.CameraDistance)
}

func TestIntegrate_DistanceFromEye(t *testing.T) {
	pool := NewPool(1)
	pool.Spawn(Particle{Life: 100, Pos: mgl32.Vec3{3, 4, 0}})
	in := &Integrator{Step: 1, Eye: mgl32.Vec3{0, 0, 12}}

	in.Integrate(pool)

	assert.Equal(t, float32(9+16+144), pool.Slot(0).CameraDistance)
}

func TestIntegrate_ExpiredParticleKeepsPosition(t *testing.T) {
	pool := NewPool(1)
	start := mgl32.Vec3{1, 2, 3}
	pool.Spawn(Particle{Life: 10, Pos: start, Vel: mgl32.Vec3{5, 5, 5}, CameraDistance: 50})
	in := &Integrator{Gravity: DefaultGravity, Step: 20}

	live := in.Integrate(pool)

	p := pool.Slot(0)
	assert.Equal(t, 0, live)
	assert.Equal(t, float32(-10), p.Life)
	assert.Equal(t, DeadDistance, p.CameraDistance)
	assert.Equal(t, start, p.Pos)
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, p.Vel)
}

func TestIntegrate_SkipsFreeSlots(t *testing.T) {
	pool := NewPool(3)
	in := NewIntegrator(mgl32.Vec3{})

	assert.Equal(t, 0, in.Integrate(pool))
	for i := range pool.Cap() {
		assert.Equal(t, float32(-1), pool.Slot(i).Life)
	}
}

func TestIntegrate_ThreeParticlesExpire(t *testing.T) {
	pool := NewPool(10)
	for range 3 {
		pool.Spawn(Particle{Life: 100})
	}
	in := &Integrator{Gravity: DefaultGravity, Step: 40, Eye: mgl32.Vec3{10, 10, -10}}
	pk := NewPacker(pool.Cap())

	in.Integrate(pool)
	for i := range 3 {
		require.Equal(t, float32(60), pool.Slot(i).Life)
	}
	assert.Equal(t, 3, pk.Pack(pool.Particles()).Count)

	in.Integrate(pool)
	in.Integrate(pool)
	SortByDepth(pool.Particles())

	for i := range pool.Cap() {
		p := pool.Slot(i)
		assert.False(t, p.Alive())
		assert.Equal(t, DeadDistance, p.CameraDistance)
	}
	lives := 0
	for i := range pool.Cap() {
		if pool.Slot(i).Life == -20 {
			lives++
		}
	}
	assert.Equal(t, 3, lives)
	assert.Equal(t, 0, pk.Pack(pool.Particles()).Count)
}

func TestIntegrate_LifeReachingZeroSortsBehindDrawn(t *testing.T) {
	pool := NewPool(2)
	far := mgl32.Vec3{0, 0, 100}
	pool.Spawn(Particle{Life: 20, Pos: far})
	pool.Spawn(Particle{Life: 100, Pos: mgl32.Vec3{0, 0, 1}})
	in := &Integrator{Step: 20}

	live := in.Integrate(pool)
	SortByDepth(pool.Particles())
	out := NewPacker(pool.Cap()).Pack(pool.Particles())

	require.Equal(t, 1, live)
	require.Equal(t, live, out.Count)
	assert.Equal(t, float32(1), pool.Slot(0).CameraDistance)
	for i := live; i < pool.Cap(); i++ {
		assert.Equal(t, DeadDistance, pool.Slot(i).CameraDistance, "index %d", i)
	}

	zero := pool.Slot(1)
	assert.Equal(t, float32(0), zero.Life)
	assert.Equal(t, far, zero.Pos)

	// Still occupies its slot until the next tick pushes life negative.
	assert.True(t, zero.Alive())
	in.Integrate(pool)
	assert.False(t, pool.Slot(1).Alive())
}
