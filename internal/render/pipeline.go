package render

import (
	"sort"

	"github.com/hyunmoon/sidescroll/internal/domain/entity"
)

// Layer orders draw operations back to front.
type Layer int

const (
	LayerBackground Layer = iota
	LayerTiles
	LayerEntities
	LayerHUD
)

// SpriteKey identifies a sprite frame without referencing any texture
// backend, so the same draw list renders under ebiten or a terminal.
type SpriteKey struct {
	Kind  entity.Kind
	State int
	Frame int
}

// DrawOp is one positioned sprite in view space.
type DrawOp struct {
	Layer  Layer
	Z      int
	Key    SpriteKey
	Tile   entity.TileType // set for LayerTiles ops
	X, Y   float64
	W, H   float64
	FlipX  bool
	Dimmed bool // invincible-flashing frames render dimmed
}

// BuildDrawList produces the ordered operations for one frame: visible
// tiles first, then visible entities sorted by z-order. The caller owns
// frame animation; pass the current animation frame counter.
func BuildDrawList(g *entity.Grid, entities []entity.Entity, cam *Camera, frame int) []DrawOp {
	ops := make([]DrawOp, 0, 256)
	ops = appendTiles(ops, g, cam)
	ops = appendEntities(ops, entities, cam, frame)
	return ops
}

// appendTiles emits only the tile columns and rows the camera can see.
func appendTiles(ops []DrawOp, g *entity.Grid, cam *Camera) []DrawOp {
	x0 := int(cam.X) / entity.TileSize
	y0 := int(cam.Y) / entity.TileSize
	x1 := int(cam.X+cam.ViewW)/entity.TileSize + 1
	y1 := int(cam.Y+cam.ViewH)/entity.TileSize + 1

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			t := g.At(tx, ty)
			if t.Type == entity.TileAir || t.Type == entity.TileVoid {
				continue
			}
			vx, vy := cam.ToView(float64(tx*entity.TileSize), float64(ty*entity.TileSize))
			ops = append(ops, DrawOp{
				Layer: LayerTiles,
				Tile:  t.Type,
				X:     vx, Y: vy,
				W: entity.TileSize, H: entity.TileSize,
			})
		}
	}
	return ops
}

func appendEntities(ops []DrawOp, entities []entity.Entity, cam *Camera, frame int) []DrawOp {
	start := len(ops)
	for _, e := range entities {
		b := e.Base()
		if !b.Alive || !cam.IsVisible(b.X, b.Y, b.W, b.H) {
			continue
		}
		vx, vy := cam.ToView(b.X, b.Y)
		op := DrawOp{
			Layer: LayerEntities,
			Z:     entity.ZOrder(e.Kind()),
			Key: SpriteKey{
				Kind:  e.Kind(),
				State: e.RenderState(),
				Frame: frame,
			},
			X: vx, Y: vy,
			W: b.W, H: b.H,
			FlipX: !b.FacingRight,
		}
		if p, ok := e.(*entity.Player); ok && p.Invincible() && frame%2 == 0 {
			op.Dimmed = true
		}
		ops = append(ops, op)
	}

	// Stable sort keeps the list order of equal-z entities.
	sort.SliceStable(ops[start:], func(i, j int) bool {
		return ops[start+i].Z < ops[start+j].Z
	})
	return ops
}
