package particles

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomParticles(n int, seed uint64) []Particle {
	r := NewRand(seed)
	ps := make([]Particle, n)
	for i := range ps {
		if r.Float32() < 0.3 {
			ps[i] = Particle{Life: -r.RangeF(1, 50), CameraDistance: DeadDistance, Size: float32(i)}
			continue
		}
		ps[i] = Particle{Life: r.RangeF(1, 1000), CameraDistance: r.RangeF(0, 500), Size: float32(i)}
	}
	return ps
}

func TestSortByDepth_FarToNearDeadLast(t *testing.T) {
	ps := randomParticles(500, 3)
	live := 0
	for i := range ps {
		if ps[i].Alive() {
			live++
		}
	}

	SortByDepth(ps)

	for i := 1; i < live; i++ {
		require.GreaterOrEqual(t, ps[i-1].CameraDistance, ps[i].CameraDistance, "index %d", i)
	}
	for i := live; i < len(ps); i++ {
		require.Equal(t, DeadDistance, ps[i].CameraDistance, "index %d", i)
	}
}

func TestSortByDepth_Idempotent(t *testing.T) {
	ps := randomParticles(300, 11)
	SortByDepth(ps)
	once := slices.Clone(ps)

	SortByDepth(ps)

	assert.Equal(t, once, ps)
}

func TestSortByDepth_EmptyAndSingle(t *testing.T) {
	SortByDepth(nil)

	ps := []Particle{{Life: 1, CameraDistance: 3}}
	SortByDepth(ps)
	assert.Equal(t, float32(3), ps[0].CameraDistance)
}
