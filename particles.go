package breakout

import "math/rand/v2"

// particleScale is the side length of a particle sprite in pixels.
const particleScale = 10

// Particle is one element of the ball trail.
type Particle struct {
	Position Vec2
	Velocity Vec2
	Color    Color
	// Life is the remaining lifetime in seconds; dead particles have Life <= 0.
	Life float32
}

// Alive reports whether the particle is still visible.
func (p *Particle) Alive() bool { return p.Life > 0 }

// ParticleGenerator emits particles from a moving object out of a fixed pool.
// Dead particles are recycled; when the pool is exhausted the first slot is
// overwritten.
type ParticleGenerator struct {
	particles []Particle
	lastUsed  int
	rng       *rand.Rand
}

// NewParticleGenerator returns a generator with a pool of amount dead particles.
func NewParticleGenerator(amount int, rng *rand.Rand) *ParticleGenerator {
	return &ParticleGenerator{
		particles: make([]Particle, amount),
		rng:       rng,
	}
}

// Particles returns the pool, including dead particles.
func (g *ParticleGenerator) Particles() []Particle { return g.particles }

// Update spawns newParticles at obj (shifted by offset) and ages every live
// particle by dt.
func (g *ParticleGenerator) Update(dt float32, obj *Object, newParticles int, offset Vec2) {
	if len(g.particles) == 0 {
		return
	}
	for range newParticles {
		g.respawn(&g.particles[g.firstUnused()], obj, offset)
	}
	for i := range g.particles {
		p := &g.particles[i]
		p.Life -= dt
		if p.Life > 0 {
			p.Position = p.Position.Sub(p.Velocity.Mul(dt))
			p.Color.A -= dt * 2.5
		}
	}
}

// firstUnused finds a dead particle, searching from the last reused slot first.
func (g *ParticleGenerator) firstUnused() int {
	for i := g.lastUsed; i < len(g.particles); i++ {
		if !g.particles[i].Alive() {
			g.lastUsed = i
			return i
		}
	}
	for i := 0; i < g.lastUsed; i++ {
		if !g.particles[i].Alive() {
			g.lastUsed = i
			return i
		}
	}
	g.lastUsed = 0
	return 0
}

func (g *ParticleGenerator) respawn(p *Particle, obj *Object, offset Vec2) {
	jitter := float32(g.rng.IntN(100)-50) / 10
	grey := 0.5 + float32(g.rng.IntN(100))/100
	p.Position = obj.Position.AddScalar(jitter).Add(offset)
	p.Color = RGBA(grey, grey, grey, 1)
	p.Life = 1
	p.Velocity = obj.Velocity.Mul(0.1)
}

// Draw renders every live particle.
func (g *ParticleGenerator) Draw(r SpriteRenderer, res Resources) {
	tex := res.Texture(SpriteParticle)
	size := V2(particleScale, particleScale)
	for i := range g.particles {
		if p := &g.particles[i]; p.Alive() {
			r.DrawSprite(tex, p.Position, size, 0, p.Color)
		}
	}
}
