package entity

import "github.com/hyunmoon/sidescroll/internal/domain/event"

// Coin is a static collectible worth a fixed score.
type Coin struct {
	Body
	Value int
}

// NewCoin creates a coin at world pixel (x, y).
func NewCoin(x, y float64, value int) *Coin {
	return &Coin{
		Body: Body{
			X: x, Y: y,
			W: 10, H: 14,
			Alive:      true,
			Weightless: true,
			Ghost:      true,
		},
		Value: value,
	}
}

// Base returns the physical body.
func (c *Coin) Base() *Body { return &c.Body }

// Kind returns KindCoin.
func (c *Coin) Kind() Kind { return KindCoin }

// Step does nothing; coins idle in place.
func (c *Coin) Step(dt float64, ctx *Context) {}

// HitTile is never called for ghost bodies.
func (c *Coin) HitTile(side Side, t Tile, tx, ty int, ctx *Context) {}

// HitEntity collects the coin when the player touches it.
func (c *Coin) HitEntity(other Entity, side Side, ctx *Context) {
	p, ok := other.(*Player)
	if !ok || p.Dying || !c.Alive {
		return
	}
	c.Alive = false
	ctx.Events.Emit(event.Event{Kind: event.Coin, X: c.X, Y: c.Y})
	ctx.Events.Emit(event.Event{Kind: event.ScoreDelta, Score: c.Value, X: c.X, Y: c.Y})
	ctx.Spawn(NewParticle(KindSparkle, c.CenterX(), c.CenterY(), 0, -30, 0.25))
}

// RenderState is constant; coins animate by frame index.
func (c *Coin) RenderState() int { return 0 }

// PowerUpItem is a mushroom/flower released from a question block.
// It rises out of the block, then walks along the ground until collected.
type PowerUpItem struct {
	Body
	Value     float64 // remaining rise distance in pixels
	Score     int
	WalkSpeed float64
	rising    bool
}

// NewPowerUp creates a power-up emerging from the block at (x, y).
func NewPowerUp(x, y float64, score int) *PowerUpItem {
	return &PowerUpItem{
		Body: Body{
			X: x, Y: y,
			W: 14, H: 14,
			FacingRight: true,
			Alive:       true,
			Weightless:  true,
			Ghost:       true,
		},
		Value:     float64(TileSize),
		Score:     score,
		WalkSpeed: 40,
		rising:    true,
	}
}

// Base returns the physical body.
func (u *PowerUpItem) Base() *Body { return &u.Body }

// Kind returns KindPowerUp.
func (u *PowerUpItem) Kind() Kind { return KindPowerUp }

// Step rises out of the block, then switches to walking physics.
func (u *PowerUpItem) Step(dt float64, ctx *Context) {
	if u.rising {
		rise := 20 * dt
		u.Y -= rise
		u.Value -= rise
		if u.Value <= 0 {
			u.rising = false
			u.Weightless = false
			u.Ghost = false
		}
		return
	}
	dir := -1.0
	if u.FacingRight {
		dir = 1.0
	}
	u.VX = dir * u.WalkSpeed
}

// HitTile turns the walking power-up around at walls.
func (u *PowerUpItem) HitTile(side Side, t Tile, tx, ty int, ctx *Context) {
	switch side {
	case SideLeft:
		u.FacingRight = true
	case SideRight:
		u.FacingRight = false
	}
}

// HitEntity promotes the player on touch.
func (u *PowerUpItem) HitEntity(other Entity, side Side, ctx *Context) {
	p, ok := other.(*Player)
	if !ok || p.Dying || !u.Alive {
		return
	}
	u.Alive = false
	p.Promote(ctx)
	ctx.Events.Emit(event.Event{Kind: event.ScoreDelta, Score: u.Score, X: u.X, Y: u.Y})
}

// RenderState distinguishes the rising phase.
func (u *PowerUpItem) RenderState() int {
	if u.rising {
		return 1
	}
	return 0
}
