package particles

// DefaultCapacity is used when a pool is created with a non-positive size.
const DefaultCapacity = 100000

// Pool is a fixed arena of particle slots. It never grows and never
// compacts; the depth sort is what moves dead slots out of the way.
type Pool struct {
	slots []Particle

	// lastUsed is where the next free-slot scan starts.
	lastUsed int
}

func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	p := &Pool{slots: make([]Particle, capacity)}
	p.Reset()
	return p
}

// Reset frees every slot.
func (p *Pool) Reset() {
	for i := range p.slots {
		p.slots[i] = Particle{}
		p.slots[i].kill()
	}
	p.lastUsed = 0
}

// Cap returns the fixed number of slots.
func (p *Pool) Cap() int { return len(p.slots) }

// Slot returns a pointer into the pool. It is only valid until the next sort.
func (p *Pool) Slot(i int) *Particle { return &p.slots[i] }

// Particles exposes the backing slots for the sort and pack stages.
func (p *Pool) Particles() []Particle { return p.slots }

// FindFreeSlot returns the index of a free slot, starting the scan at the
// last slot handed out and wrapping once. When every slot is live it
// returns 0, so the particle in slot 0 gets overwritten.
func (p *Pool) FindFreeSlot() int {
	for i := p.lastUsed; i < len(p.slots); i++ {
		if p.slots[i].Life < 0 {
			p.lastUsed = i
			return i
		}
	}
	for i := 0; i < p.lastUsed; i++ {
		if p.slots[i].Life < 0 {
			p.lastUsed = i
			return i
		}
	}
	return 0
}

// LiveCount counts slots with Life >= 0. It is a full scan.
func (p *Pool) LiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Alive() {
			n++
		}
	}
	return n
}

// Spawn claims a slot and overwrites every field with p.
func (p *Pool) Spawn(part Particle) int {
	i := p.FindFreeSlot()
	p.slots[i] = part
	return i
}
