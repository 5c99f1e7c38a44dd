package entity

import "github.com/hyunmoon/sidescroll/internal/domain/event"

const shellHeight = 12.0

// Fireball is the player's Fire-tier projectile. It skips along the
// ground and dies against walls, enemies, or when its lifetime runs out.
type Fireball struct {
	Body
	BounceVY float64
	Lifetime float64
}

// NewFireball creates a fireball at (x, y) moving in the given direction.
func NewFireball(x, y float64, facingRight bool, speed, bounceVY, lifetime float64) *Fireball {
	dir := -1.0
	if facingRight {
		dir = 1.0
	}
	return &Fireball{
		Body: Body{
			X: x, Y: y,
			W: 6, H: 6,
			VX:          dir * speed,
			FacingRight: facingRight,
			Alive:       true,
		},
		BounceVY: bounceVY,
		Lifetime: lifetime,
	}
}

// Base returns the physical body.
func (f *Fireball) Base() *Body { return &f.Body }

// Kind returns KindFireball.
func (f *Fireball) Kind() Kind { return KindFireball }

// Step burns down the lifetime.
func (f *Fireball) Step(dt float64, ctx *Context) {
	f.Lifetime -= dt
	if f.Lifetime <= 0 {
		f.expire(ctx)
	}
}

// HitTile bounces off the ground and dies against walls or ceilings.
func (f *Fireball) HitTile(side Side, t Tile, tx, ty int, ctx *Context) {
	switch side {
	case SideBottom:
		f.VY = -f.BounceVY
	case SideLeft, SideRight, SideTop:
		f.expire(ctx)
	}
}

// HitEntity burns out against any enemy; the enemy's handler scores the
// kill.
func (f *Fireball) HitEntity(other Entity, side Side, ctx *Context) {
	switch other.Kind() {
	case KindGoomba, KindKoopa, KindSpiny, KindBulletBill:
		if e, ok := other.(*Enemy); ok && e.State == EnemyDead {
			return
		}
		f.expire(ctx)
	}
}

func (f *Fireball) expire(ctx *Context) {
	if !f.Alive {
		return
	}
	f.Alive = false
	ctx.Spawn(NewParticle(KindSparkle, f.CenterX(), f.CenterY(), 0, 0, 0.3))
}

// RenderState is constant; fireballs animate by frame index only.
func (f *Fireball) RenderState() int { return 0 }

// Shell is the remains of a stomped Koopa. It sits stunned until the
// player touches its side, then slides and mows down other enemies.
type Shell struct {
	Body
	Sliding    bool
	SlideSpeed float64
}

// NewShell creates an idle shell at world pixel (x, y).
func NewShell(x, y float64) *Shell {
	return &Shell{
		Body: Body{
			X: x, Y: y,
			W: 14, H: shellHeight,
			Alive: true,
		},
		SlideSpeed: 180,
	}
}

// Base returns the physical body.
func (s *Shell) Base() *Body { return &s.Body }

// Kind returns KindShell.
func (s *Shell) Kind() Kind { return KindShell }

// Step keeps a sliding shell at slide speed.
func (s *Shell) Step(dt float64, ctx *Context) {
	if s.Sliding {
		dir := -1.0
		if s.FacingRight {
			dir = 1.0
		}
		s.VX = dir * s.SlideSpeed
	} else {
		s.VX = 0
	}
}

// HitTile ricochets a sliding shell off walls.
func (s *Shell) HitTile(side Side, t Tile, tx, ty int, ctx *Context) {
	if !s.Sliding {
		return
	}
	switch side {
	case SideLeft:
		s.FacingRight = true
	case SideRight:
		s.FacingRight = false
	}
}

// HitEntity: a stomp stops a sliding shell; a side touch from the
// player kicks an idle one away from the player.
func (s *Shell) HitEntity(other Entity, side Side, ctx *Context) {
	p, ok := other.(*Player)
	if !ok || p.Dying {
		return
	}
	if side == SideTop && p.VY > 0 {
		if s.Sliding {
			s.Sliding = false
			s.VX = 0
		}
		return
	}
	if !s.Sliding {
		s.Sliding = true
		s.FacingRight = p.CenterX() < s.CenterX()
		ctx.Events.Emit(event.Event{Kind: event.Kick, X: s.X, Y: s.Y})
	}
}

// RenderState distinguishes idle from sliding shells.
func (s *Shell) RenderState() int {
	if s.Sliding {
		return 1
	}
	return 0
}
