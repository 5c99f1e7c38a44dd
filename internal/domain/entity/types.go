package entity

import "github.com/hyunmoon/sidescroll/internal/domain/event"

// Kind identifies an entity variant.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindGoomba
	KindKoopa
	KindSpiny
	KindFireball
	KindShell
	KindBulletBill
	KindCoin
	KindPowerUp
	KindSparkle
	KindDebris
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGoomba:
		return "goomba"
	case KindKoopa:
		return "koopa"
	case KindSpiny:
		return "spiny"
	case KindFireball:
		return "fireball"
	case KindShell:
		return "shell"
	case KindBulletBill:
		return "bulletBill"
	case KindCoin:
		return "coin"
	case KindPowerUp:
		return "powerUp"
	case KindSparkle:
		return "sparkle"
	case KindDebris:
		return "debris"
	default:
		return "none"
	}
}

// Side is the side of the receiving entity that was contacted.
// SideTop means the receiver was touched on its top edge.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// Opposite returns the contact side as seen by the other party.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Context carries the per-step services behavior code may use:
// emitting events and queuing spawn requests. Queued spawns are applied
// by the orchestrator after transitions, never mid-resolution.
type Context struct {
	Events *event.Buffer
	Spawn  func(Entity)
}

// Entity is the behavior contract shared by every simulated object.
//
// Step advances timers and AI-driven velocity intent. HitTile and
// HitEntity are invoked by the collision resolver, in resolution order,
// exactly once per contact. RenderState is a small integer the sprite
// resolver combines with Kind to pick a drawable.
type Entity interface {
	Base() *Body
	Kind() Kind
	Step(dt float64, ctx *Context)
	HitTile(side Side, t Tile, tx, ty int, ctx *Context)
	HitEntity(other Entity, side Side, ctx *Context)
	RenderState() int
}

// ZOrder returns the back-to-front draw rank for a variant.
// Collectibles draw behind enemies, enemies behind projectiles, the
// player above those, particles on top of everything.
func ZOrder(k Kind) int {
	switch k {
	case KindCoin, KindPowerUp:
		return 10
	case KindGoomba, KindKoopa, KindSpiny, KindBulletBill:
		return 20
	case KindFireball, KindShell:
		return 30
	case KindPlayer:
		return 40
	case KindSparkle, KindDebris:
		return 50
	default:
		return 0
	}
}
