package particles

// Instances is the per-frame render list handed to the backend.
// Format: PositionSize is [x, y, z, size] * Count, Color is [r, g, b, a] * Count.
type Instances struct {
	PositionSize []float32
	Color        []float32
	Count        int
}

// Packer flattens visible particles into reusable buffers to avoid
// per-frame heap allocations.
type Packer struct {
	posBuf []float32
	colBuf []float32
}

// NewPacker preallocates room for capacity instances.
func NewPacker(capacity int) *Packer {
	return &Packer{
		posBuf: make([]float32, 0, 4*capacity),
		colBuf: make([]float32, 0, 4*capacity),
	}
}

// Pack walks ps once, in order. The returned slices alias the packer's
// buffers and are overwritten by the next call.
func (pk *Packer) Pack(ps []Particle) Instances {
	pos := pk.posBuf[:0]
	col := pk.colBuf[:0]

	for i := range ps {
		p := &ps[i]
		if !p.Visible() {
			continue
		}
		pos = append(pos, p.Pos[0], p.Pos[1], p.Pos[2], p.Size)
		col = append(col, p.Color[0], p.Color[1], p.Color[2], p.Color[3])
	}

	pk.posBuf = pos
	pk.colBuf = col
	return Instances{
		PositionSize: pos,
		Color:        col,
		Count:        len(pos) / 4,
	}
}
