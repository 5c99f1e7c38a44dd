package entity

import "github.com/hyunmoon/sidescroll/internal/domain/event"

// PowerState is the player's size/ability tier.
type PowerState int

const (
	PowerSmall PowerState = iota
	PowerBig
	PowerFire
)

// String returns the tier name.
func (p PowerState) String() string {
	switch p {
	case PowerSmall:
		return "small"
	case PowerBig:
		return "big"
	case PowerFire:
		return "fire"
	default:
		return "unknown"
	}
}

// PlayerTuning holds the reaction constants a player is built with.
// They come from config; the behavior code never reads config directly.
type PlayerTuning struct {
	StompBounce   float64 // upward velocity after a stomp (px/s, positive)
	Iframes       float64 // invincible-flashing duration after damage (s)
	DeathHop      float64 // upward velocity of the death animation (px/s)
	DeathDuration float64 // seconds of dying animation before removal
}

// Player is the single player-controlled character.
// The bounding box is the same for every power tier so promotions and
// demotions never create a new tile overlap.
type Player struct {
	Body
	Power           PowerState
	InvincibleTimer float64
	Dying           bool
	DyingTimer      float64

	CoyoteTimer     float64
	JumpBufferTimer float64
	FireCooldown    float64

	Tuning PlayerTuning
}

// NewPlayer creates a player at world pixel (x, y).
func NewPlayer(x, y float64, tuning PlayerTuning) *Player {
	return &Player{
		Body: Body{
			X: x, Y: y,
			W: 12, H: 14,
			FacingRight: true,
			Alive:       true,
		},
		Power:  PowerSmall,
		Tuning: tuning,
	}
}

// Base returns the physical body.
func (p *Player) Base() *Body { return &p.Body }

// Kind returns KindPlayer.
func (p *Player) Kind() Kind { return KindPlayer }

// Invincible reports whether damage is currently ignored.
func (p *Player) Invincible() bool {
	return p.InvincibleTimer > 0
}

// Step advances the player's timers and the dying animation.
// Movement intent is applied by the input system before this runs.
func (p *Player) Step(dt float64, ctx *Context) {
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer -= dt
	}
	if p.FireCooldown > 0 {
		p.FireCooldown -= dt
	}
	if p.CoyoteTimer > 0 {
		p.CoyoteTimer -= dt
	}
	if p.JumpBufferTimer > 0 {
		p.JumpBufferTimer -= dt
	}

	if p.Dying {
		p.DyingTimer -= dt
		if p.DyingTimer <= 0 {
			p.Alive = false
		}
	}
}

// Damage demotes the player one tier, or starts the dying sequence when
// already Small. A hit during invincible-flashing is ignored. Position
// is never changed by a hit.
func (p *Player) Damage(ctx *Context) {
	if p.Invincible() || p.Dying {
		return
	}
	if p.Power > PowerSmall {
		p.Power--
		p.InvincibleTimer = p.Tuning.Iframes
		ctx.Events.Emit(event.Event{Kind: event.PlayerDamaged, X: p.X, Y: p.Y})
		return
	}
	p.Dying = true
	p.DyingTimer = p.Tuning.DeathDuration
	p.Ghost = true
	p.VX = 0
	p.VY = -p.Tuning.DeathHop
	ctx.Events.Emit(event.Event{Kind: event.PlayerDied, X: p.X, Y: p.Y})
}

// FallOut starts the dying sequence unconditionally. Pits kill through
// invincible-flashing and regardless of power tier.
func (p *Player) FallOut(ctx *Context) {
	if p.Dying {
		return
	}
	p.Dying = true
	p.DyingTimer = p.Tuning.DeathDuration
	p.Ghost = true
	p.VX = 0
	p.VY = -p.Tuning.DeathHop
	ctx.Events.Emit(event.Event{Kind: event.PlayerDied, X: p.X, Y: p.Y})
}

// Promote raises the power tier by one, capped at Fire.
func (p *Player) Promote(ctx *Context) {
	if p.Power < PowerFire {
		p.Power++
	}
	ctx.Events.Emit(event.Event{Kind: event.PowerUp, X: p.X, Y: p.Y})
}

// HitTile reacts to tile contacts. Hitting a brick or question block
// from below emits a bump event; the grid itself is consumed by the
// orchestrator after the resolution pass.
func (p *Player) HitTile(side Side, t Tile, tx, ty int, ctx *Context) {
	if p.Dying {
		return
	}
	if side == SideTop && (t.Type == TileBrick || t.Type == TileQuestion) {
		ctx.Events.Emit(event.Event{Kind: event.BlockBump, TX: tx, TY: ty})
	}
}

// HitEntity handles the player's own reaction to a contact: bounce off
// a stomped enemy, or take damage from a hostile touch. The other
// party's transition happens in its own handler.
func (p *Player) HitEntity(other Entity, side Side, ctx *Context) {
	if p.Dying {
		return
	}
	switch other.Kind() {
	case KindGoomba, KindKoopa, KindBulletBill:
		if e, ok := other.(*Enemy); ok && e.State == EnemyDead {
			return
		}
		if p.stomping(side) {
			p.VY = -p.Tuning.StompBounce
			p.OnGround = false
			return
		}
		p.Damage(ctx)
	case KindSpiny:
		// Spines point up: even a descending contact hurts.
		p.Damage(ctx)
	case KindShell:
		sh, ok := other.(*Shell)
		if !ok {
			return
		}
		if p.stomping(side) {
			p.VY = -p.Tuning.StompBounce
			p.OnGround = false
			return
		}
		if sh.Sliding {
			p.Damage(ctx)
		}
	}
}

// stomping reports whether this contact counts as a stomp: the player
// was touched on its bottom edge while descending.
func (p *Player) stomping(side Side) bool {
	return side == SideBottom && p.VY > 0
}

// RenderState encodes power tier, airborne flag and dying for sprites.
func (p *Player) RenderState() int {
	if p.Dying {
		return 8
	}
	s := int(p.Power) * 2
	if !p.OnGround {
		s++
	}
	return s
}
