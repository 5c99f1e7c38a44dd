package entity

// Particle is a short-lived visual: a sparkle or a chunk of brick
// debris. Particles never collide with anything; debris keeps gravity
// so it arcs off the screen.
type Particle struct {
	Body
	kind Kind
	TTL  float64
}

// NewParticle creates a particle with an initial velocity and lifetime.
func NewParticle(kind Kind, x, y, vx, vy, ttl float64) *Particle {
	p := &Particle{
		Body: Body{
			X: x, Y: y,
			W: 4, H: 4,
			VX:    vx,
			VY:    vy,
			Alive: true,
			Ghost: true,
		},
		kind: kind,
		TTL:  ttl,
	}
	if kind == KindSparkle {
		p.Weightless = true
	}
	return p
}

// Base returns the physical body.
func (p *Particle) Base() *Body { return &p.Body }

// Kind returns the particle variant.
func (p *Particle) Kind() Kind { return p.kind }

// Step counts down the lifetime.
func (p *Particle) Step(dt float64, ctx *Context) {
	p.TTL -= dt
	if p.TTL <= 0 {
		p.Alive = false
	}
}

// HitTile is never called for ghost bodies.
func (p *Particle) HitTile(side Side, t Tile, tx, ty int, ctx *Context) {}

// HitEntity is never called; particles are intangible.
func (p *Particle) HitEntity(other Entity, side Side, ctx *Context) {}

// RenderState is constant.
func (p *Particle) RenderState() int { return 0 }
