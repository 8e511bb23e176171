package game

import "math"

// Particle is one burst fragment, moving in grid-cell units.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Life    float64
	MaxLife float64

	Col RGB
}

// ParticleSystem manages pickup/death burst effects. A fixed-capacity
// slice with circular overwrite keeps it allocation-free in play.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// EmitBurst spawns count particles radiating from the center of cell.
func (ps *ParticleSystem) EmitBurst(cell Cell, count int, col RGB) {
	cx := float64(cell.Col) + 0.5
	cy := float64(cell.Row) + 0.5
	for i := 0; i < count; i++ {
		angle := ps.rng.RangeF(0, 2*math.Pi)
		speed := ps.rng.RangeF(ParticleSpeed*0.5, ParticleSpeed)
		life := ParticleLifetime * ps.rng.RangeF(0.7, 1.0)
		ps.add(Particle{
			X: cx, Y: cy,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Col:     col,
		})
	}
}

// Update advances positions and drops expired particles in place.
func (ps *ParticleSystem) Update(dt float64) {
	n := 0
	for i := range ps.P {
		p := &ps.P[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		ps.P[n] = *p
		n++
	}
	ps.P = ps.P[:n]
	if ps.ovrIdx > n {
		ps.ovrIdx = 0
	}
}

// RenderData appends glow sprites for all live particles to buf.
// Format: [x, y, size, r, g, b, a, rotation] * N, RGB pre-multiplied for
// additive blending.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		t := p.Life / p.MaxLife
		a := float32(clampF(t, 0, 1))
		size := float32(0.18 + 0.22*t)
		buf = append(buf,
			float32(p.X), float32(p.Y), size,
			float32(p.Col.R)/255.0*a,
			float32(p.Col.G)/255.0*a,
			float32(p.Col.B)/255.0*a,
			a, 0,
		)
	}
	return buf
}
