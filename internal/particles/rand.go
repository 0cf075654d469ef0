package particles

// golden is the SplitMix64 stream increment, 2^64 divided by the golden ratio.
const golden = 0x9E3779B97F4A7C15

// Rand is a seeded SplitMix64 stream. Every emitter owns one, so a run is
// reproducible from its seed alone.
type Rand struct {
	state uint64
}

func NewRand(seed uint64) *Rand { return &Rand{state: seed} }

// Uint64 advances the stream by one step and returns the mixed state.
func (r *Rand) Uint64() uint64 {
	r.state += golden
	z := r.state
	z = (z ^ z>>30) * 0xBF58476D1CE4E5B9
	z = (z ^ z>>27) * 0x94D049BB133111EB
	return z ^ z>>31
}

// Float32 returns a value in [0, 1) built from the top 24 bits.
func (r *Rand) Float32() float32 {
	return float32(r.Uint64()>>40) / (1 << 24)
}

// RangeF returns a value in [lo, hi). Degenerate ranges return lo.
func (r *Rand) RangeF(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*r.Float32()
}

// Signed returns a value in [-1, 1).
func (r *Rand) Signed() float32 {
	return r.Float32()*2 - 1
}
