package entity

import "github.com/hyunmoon/sidescroll/internal/domain/event"

// EnemyState is the behavior state of a walker enemy.
type EnemyState int

const (
	EnemyWalking EnemyState = iota
	EnemyFalling
	EnemyDead
)

// String returns the state name.
func (s EnemyState) String() string {
	switch s {
	case EnemyWalking:
		return "walking"
	case EnemyFalling:
		return "falling"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// EnemyTuning holds per-kind constants set at spawn time from config.
type EnemyTuning struct {
	MoveSpeed  float64 // walk speed in px/s
	ScoreValue int     // score awarded on defeat
}

// Enemy is a walker: Goomba, Koopa, Spiny, or the flying BulletBill.
// Koopas spawn a Shell when stomped; Spinies cannot be stomped at all.
type Enemy struct {
	Body
	kind       Kind
	State      EnemyState
	Tuning     EnemyTuning
	DeathTimer float64
}

// NewEnemy creates an enemy of the given kind at world pixel (x, y),
// walking in its facing direction.
func NewEnemy(kind Kind, x, y float64, tuning EnemyTuning) *Enemy {
	e := &Enemy{
		Body: Body{
			X: x, Y: y,
			W: 14, H: 14,
			Alive: true,
		},
		kind:   kind,
		Tuning: tuning,
	}
	if kind == KindBulletBill {
		// Bullets fly straight through everything.
		e.Weightless = true
		e.Ghost = true
	}
	return e
}

// Base returns the physical body.
func (e *Enemy) Base() *Body { return &e.Body }

// Kind returns the enemy variant.
func (e *Enemy) Kind() Kind { return e.kind }

// Step advances the walk AI: constant speed in the facing direction,
// with the Walking/Falling distinction derived from ground contact.
func (e *Enemy) Step(dt float64, ctx *Context) {
	if e.State == EnemyDead {
		e.DeathTimer -= dt
		if e.DeathTimer <= 0 {
			e.Alive = false
		}
		return
	}

	dir := -1.0
	if e.FacingRight {
		dir = 1.0
	}
	e.VX = dir * e.Tuning.MoveSpeed

	if e.kind != KindBulletBill {
		if e.OnGround {
			e.State = EnemyWalking
		} else {
			e.State = EnemyFalling
		}
	}
}

// HitTile turns the walker around when it runs into a wall.
func (e *Enemy) HitTile(side Side, t Tile, tx, ty int, ctx *Context) {
	if e.State == EnemyDead {
		return
	}
	switch side {
	case SideLeft:
		e.FacingRight = true
	case SideRight:
		e.FacingRight = false
	}
}

// HitEntity applies this enemy's own transition for a contact:
// stomped by the player, or struck by a fireball or sliding shell.
// Score is emitted here, exactly once, since only the enemy knows it died.
func (e *Enemy) HitEntity(other Entity, side Side, ctx *Context) {
	if e.State == EnemyDead {
		return
	}

	switch o := other.(type) {
	case *Player:
		if o.Dying {
			return
		}
		if e.kind == KindSpiny {
			return // the player handler takes the damage
		}
		if side == SideTop && o.VY > 0 {
			e.stomped(ctx)
		}
	case *Fireball:
		if o.Alive {
			e.struck(ctx)
		}
	case *Shell:
		if o.Sliding {
			e.struck(ctx)
		}
	}
}

// stomped squashes the enemy in place. A stomped Koopa leaves a shell.
func (e *Enemy) stomped(ctx *Context) {
	ctx.Events.Emit(event.Event{Kind: event.Stomp, X: e.X, Y: e.Y})
	ctx.Events.Emit(event.Event{Kind: event.ScoreDelta, Score: e.Tuning.ScoreValue, X: e.X, Y: e.Y})

	if e.kind == KindKoopa {
		e.Alive = false
		sh := NewShell(e.X, e.Y+e.H-shellHeight)
		ctx.Spawn(sh)
		return
	}

	e.State = EnemyDead
	e.DeathTimer = 0.4
	e.VX = 0
	e.Ghost = true
	e.Weightless = true
}

// struck knocks the enemy off the world: it flips over and falls
// through the tiles until pruned below the bottom edge.
func (e *Enemy) struck(ctx *Context) {
	ctx.Events.Emit(event.Event{Kind: event.EnemyKilled, X: e.X, Y: e.Y})
	ctx.Events.Emit(event.Event{Kind: event.ScoreDelta, Score: e.Tuning.ScoreValue, X: e.X, Y: e.Y})

	e.State = EnemyDead
	e.DeathTimer = 2.0
	e.Ghost = true
	e.VY = -120
}

// RenderState maps the behavior state to a sprite code.
func (e *Enemy) RenderState() int {
	return int(e.State)
}
