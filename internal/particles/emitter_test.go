package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestEmit_InitialState(t *testing.T) {
	pool := NewPool(2000)
	em := NewEmitter(42)
	em.Rate = 2000

	n := em.Emit(pool)

	require.Equal(t, 2000, n)
	require.Equal(t, 2000, pool.LiveCount())
	for i := range pool.Cap() {
		p := pool.Slot(i)
		assert.Equal(t, float32(DefaultLife), p.Life)
		assert.Equal(t, DefaultOrigin, p.Pos)
		assert.Equal(t, float32(0), p.CameraDistance)
		for c := range 3 {
			assert.True(t, p.Vel[c] >= em.Direction[c]-em.Spread && p.Vel[c] <= em.Direction[c]+em.Spread,
				"vel[%d]=%f", c, p.Vel[c])
			assert.True(t, p.Color[c] >= 0 && p.Color[c] <= 1, "color[%d]=%f", c, p.Color[c])
		}
		assert.True(t, p.Color[3] >= 0 && p.Color[3] <= DefaultAlphaMax, "alpha=%f", p.Color[3])
		assert.True(t, p.Size >= DefaultSizeMin && p.Size <= DefaultSizeMax, "size=%f", p.Size)
	}
}

func TestEmit_Deterministic(t *testing.T) {
	a, b := NewPool(16), NewPool(16)
	ea, eb := NewEmitter(9), NewEmitter(9)
	ea.Rate, eb.Rate = 16, 16

	ea.Emit(a)
	eb.Emit(b)

	assert.Equal(t, a.Particles(), b.Particles())
}

func TestEmit_ZeroRate(t *testing.T) {
	pool := NewPool(4)
	em := NewEmitter(1)
	em.Rate = 0

	assert.Equal(t, 0, em.Emit(pool))
	assert.Equal(t, 0, pool.LiveCount())
}

func TestEmit_NeverExceedsCapacity(t *testing.T) {
	pool := NewPool(10)
	em := NewEmitter(3)
	em.Rate = 7

	for range 20 {
		em.Emit(pool)
		require.LessOrEqual(t, pool.LiveCount(), pool.Cap())
	}
	assert.Equal(t, pool.Cap(), pool.LiveCount())
}

func TestEmit_RandomDirectionCentred(t *testing.T) {
	pool := NewPool(20000)
	em := NewEmitter(1234)
	em.Rate = pool.Cap()
	em.Emit(pool)

	xs := make([]float64, pool.Cap())
	for i := range xs {
		xs[i] = float64(pool.Slot(i).Vel[0])
	}
	mean, std := stat.MeanStdDev(xs, nil)

	// Uniform on [-1.5, 1.5]: mean 0, std 1.5/sqrt(3).
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 0.866, std, 0.05)
}
