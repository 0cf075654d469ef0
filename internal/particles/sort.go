package particles

import (
	"cmp"
	"slices"
)

// SortByDepth orders particles far-to-near for back-to-front blending.
// Dead particles carry DeadDistance and end up after every live one.
// The sort is stable, so sorting an already sorted pool is a no-op.
func SortByDepth(ps []Particle) {
	slices.SortStableFunc(ps, func(a, b Particle) int {
		return cmp.Compare(b.CameraDistance, a.CameraDistance)
	})
}
