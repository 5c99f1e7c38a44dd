package system

import (
	"math"

	"github.com/hyunmoon/sidescroll/internal/domain/entity"
)

// maxPushOut bounds the silent overlap correction per axis. Two tiles
// is enough to free a body embedded a full tile deep.
const maxPushOut = entity.TileSize * 2

// TileContact reports one tile collision found while sweeping a body.
// Side is relative to the body: SideBottom means its feet landed.
type TileContact struct {
	Side entity.Side
	TX   int
	TY   int
	Tile entity.Tile
}

// Resolver moves bodies against the tile grid using an axis-separated
// per-pixel sweep: X first with horizontal contacts, then Y with
// vertical contacts. One-pixel substeps plus a one-tile displacement
// cap make tunneling impossible at any velocity.
type Resolver struct {
	grid *entity.Grid
}

// NewResolver creates a resolver for the given grid.
func NewResolver(grid *entity.Grid) *Resolver {
	return &Resolver{grid: grid}
}

// MoveBody integrates one body for dt against the grid and returns the
// tile contacts encountered. Ghost bodies float through tiles.
func (r *Resolver) MoveBody(b *entity.Body, dt float64) []TileContact {
	if b.Ghost {
		b.X += b.VX * dt
		b.Y += b.VY * dt
		return nil
	}

	b.ResetContacts()

	// Free a body that starts the step embedded in a solid tile.
	r.resolveOverlap(b)

	dx, dy := b.PendingMove(dt)
	dx = r.capStep(b, dx, true)
	dy = r.capStep(b, dy, false)

	var contacts []TileContact
	if c, hit := r.moveX(b, dx); hit {
		contacts = append(contacts, c)
	}
	if c, hit := r.moveY(b, dy); hit {
		contacts = append(contacts, c)
	}

	// Standing check: grounded even when this step had no downward
	// movement left to absorb.
	if !b.OnGround && b.VY >= 0 && r.solidRect(b.X, b.Y+b.H, b.W, 1) {
		b.OnGround = true
	}
	return contacts
}

// capStep bounds per-step displacement to one tile per axis. The
// remainder is dropped so a capped body does not burst forward later.
func (r *Resolver) capStep(b *entity.Body, d int, horizontal bool) int {
	if d > entity.TileSize {
		d = entity.TileSize
		if horizontal {
			b.RemX = 0
		} else {
			b.RemY = 0
		}
	} else if d < -entity.TileSize {
		d = -entity.TileSize
		if horizontal {
			b.RemX = 0
		} else {
			b.RemY = 0
		}
	}
	return d
}

// moveX sweeps the body horizontally in one-pixel steps.
func (r *Resolver) moveX(b *entity.Body, dx int) (TileContact, bool) {
	if dx == 0 {
		return TileContact{}, false
	}
	step := 1.0
	if dx < 0 {
		step = -1.0
		dx = -dx
	}
	for i := 0; i < dx; i++ {
		if r.solidRect(b.X+step, b.Y, b.W, b.H) {
			b.VX = 0
			b.RemX = 0
			side := entity.SideRight
			if step < 0 {
				side = entity.SideLeft
				b.OnWallLeft = true
			} else {
				b.OnWallRight = true
			}
			tx, ty, t := r.contactTileX(b, step > 0)
			return TileContact{Side: side, TX: tx, TY: ty, Tile: t}, true
		}
		b.X += step
	}
	return TileContact{}, false
}

// moveY sweeps the body vertically in one-pixel steps.
func (r *Resolver) moveY(b *entity.Body, dy int) (TileContact, bool) {
	if dy == 0 {
		return TileContact{}, false
	}
	step := 1.0
	if dy < 0 {
		step = -1.0
		dy = -dy
	}
	for i := 0; i < dy; i++ {
		if r.solidRect(b.X, b.Y+step, b.W, b.H) {
			b.VY = 0
			b.RemY = 0
			if step > 0 {
				b.OnGround = true
				tx, ty, t := r.contactTileY(b, true)
				return TileContact{Side: entity.SideBottom, TX: tx, TY: ty, Tile: t}, true
			}
			b.OnCeiling = true
			tx, ty, t := r.contactTileY(b, false)
			return TileContact{Side: entity.SideTop, TX: tx, TY: ty, Tile: t}, true
		}
		b.Y += step
	}
	return TileContact{}, false
}

// contactTileX finds the solid tile at the body's leading horizontal
// edge, preferring the row nearest the body's vertical center.
func (r *Resolver) contactTileX(b *entity.Body, right bool) (int, int, entity.Tile) {
	px := b.X - 1
	if right {
		px = b.X + b.W
	}
	tx := tileIndex(px)
	startTY := tileIndex(b.Y)
	endTY := tileIndex(b.Y + b.H - 1e-6)

	bestTY := -1
	bestDist := math.MaxFloat64
	for ty := startTY; ty <= endTY; ty++ {
		if !r.grid.At(tx, ty).Solid {
			continue
		}
		center := float64(ty*entity.TileSize) + entity.TileSize/2
		if d := math.Abs(center - b.CenterY()); d < bestDist {
			bestDist = d
			bestTY = ty
		}
	}
	if bestTY < 0 {
		bestTY = startTY
	}
	return tx, bestTY, r.grid.At(tx, bestTY)
}

// contactTileY finds the solid tile at the body's leading vertical
// edge. For upward bumps the tile nearest the body's horizontal center
// wins, matching how head bumps pick a single block.
func (r *Resolver) contactTileY(b *entity.Body, down bool) (int, int, entity.Tile) {
	py := b.Y - 1
	if down {
		py = b.Y + b.H
	}
	ty := tileIndex(py)
	startTX := tileIndex(b.X)
	endTX := tileIndex(b.X + b.W - 1e-6)

	bestTX := -1
	bestDist := math.MaxFloat64
	for tx := startTX; tx <= endTX; tx++ {
		if !r.grid.At(tx, ty).Solid {
			continue
		}
		center := float64(tx*entity.TileSize) + entity.TileSize/2
		if d := math.Abs(center - b.CenterX()); d < bestDist {
			bestDist = d
			bestTX = tx
		}
	}
	if bestTX < 0 {
		bestTX = startTX
	}
	return bestTX, ty, r.grid.At(bestTX, ty)
}

// resolveOverlap pushes an embedded body to the nearest free position,
// trying all four directions and taking the shortest displacement.
// Corrections are silent; they never halt the frame.
func (r *Resolver) resolveOverlap(b *entity.Body) bool {
	if !r.solidRect(b.X, b.Y, b.W, b.H) {
		return true
	}

	type push struct {
		dx, dy   float64
		distance int
	}
	var options []push

	for i := 1; i <= maxPushOut; i++ {
		if !r.solidRect(b.X-float64(i), b.Y, b.W, b.H) {
			options = append(options, push{dx: -float64(i), distance: i})
			break
		}
	}
	for i := 1; i <= maxPushOut; i++ {
		if !r.solidRect(b.X+float64(i), b.Y, b.W, b.H) {
			options = append(options, push{dx: float64(i), distance: i})
			break
		}
	}
	for i := 1; i <= maxPushOut; i++ {
		if !r.solidRect(b.X, b.Y-float64(i), b.W, b.H) {
			options = append(options, push{dy: -float64(i), distance: i})
			break
		}
	}
	for i := 1; i <= maxPushOut; i++ {
		if !r.solidRect(b.X, b.Y+float64(i), b.W, b.H) {
			options = append(options, push{dy: float64(i), distance: i})
			break
		}
	}

	if len(options) == 0 {
		return false
	}

	best := options[0]
	for _, opt := range options[1:] {
		if opt.distance < best.distance {
			best = opt
		}
	}

	b.X += best.dx
	b.Y += best.dy

	if best.dx > 0 {
		b.OnWallLeft = true
		b.VX = 0
	} else if best.dx < 0 {
		b.OnWallRight = true
		b.VX = 0
	}
	if best.dy > 0 {
		b.OnCeiling = true
		b.VY = 0
	} else if best.dy < 0 {
		b.OnGround = true
		b.VY = 0
	}
	return true
}

// solidRect reports whether any tile overlapped by the rect is solid.
func (r *Resolver) solidRect(x, y, w, h float64) bool {
	startTX := tileIndex(x)
	endTX := tileIndex(x + w - 1e-6)
	startTY := tileIndex(y)
	endTY := tileIndex(y + h - 1e-6)

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if r.grid.At(tx, ty).Solid {
				return true
			}
		}
	}
	return false
}

func tileIndex(px float64) int {
	return int(math.Floor(px / entity.TileSize))
}
