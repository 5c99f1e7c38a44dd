package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunmoon/sidescroll/internal/domain/entity"
)

func pipelineGrid() *entity.Grid {
	g := entity.NewGrid(40, 5)
	for tx := 0; tx < 40; tx++ {
		g.Set(tx, 4, entity.MakeTile(entity.TileGround))
	}
	g.Set(2, 2, entity.MakeTile(entity.TileQuestion))
	return g
}

func pipelinePlayer(x, y float64) *entity.Player {
	return entity.NewPlayer(x, y, entity.PlayerTuning{StompBounce: 220, Iframes: 1.5, DeathHop: 260, DeathDuration: 1.2})
}

func tileOps(ops []DrawOp) []DrawOp {
	var out []DrawOp
	for _, op := range ops {
		if op.Layer == LayerTiles {
			out = append(out, op)
		}
	}
	return out
}

func entityOps(ops []DrawOp) []DrawOp {
	var out []DrawOp
	for _, op := range ops {
		if op.Layer == LayerEntities {
			out = append(out, op)
		}
	}
	return out
}

func TestBuildDrawList_CullsTilesOutsideView(t *testing.T) {
	cam := NewCamera(64, 80, 640, 80, 0)
	cam.Jump(320, 40) // view covers world x 288..352, tiles 18..22

	ops := tileOps(BuildDrawList(pipelineGrid(), nil, cam, 0))

	require.NotEmpty(t, ops)
	for _, op := range ops {
		assert.GreaterOrEqual(t, op.X, -16.0, "tile op outside the view slipped through")
		assert.LessOrEqual(t, op.X, 80.0)
	}
	// The question block at tile x=2 is far off screen.
	for _, op := range ops {
		assert.NotEqual(t, entity.TileQuestion, op.Tile)
	}
}

func TestBuildDrawList_SkipsAirTiles(t *testing.T) {
	cam := NewCamera(640, 80, 640, 80, 0)

	ops := tileOps(BuildDrawList(pipelineGrid(), nil, cam, 0))

	for _, op := range ops {
		assert.NotEqual(t, entity.TileAir, op.Tile)
	}
}

func TestBuildDrawList_CullsOffscreenEntities(t *testing.T) {
	cam := NewCamera(64, 80, 640, 80, 0)
	cam.Jump(320, 40)

	visible := pipelinePlayer(300, 40)
	offscreen := entity.NewEnemy(entity.KindGoomba, 10, 40, entity.EnemyTuning{MoveSpeed: 30})

	ops := entityOps(BuildDrawList(pipelineGrid(), []entity.Entity{visible, offscreen}, cam, 0))

	require.Len(t, ops, 1)
	assert.Equal(t, entity.KindPlayer, ops[0].Key.Kind)
}

func TestBuildDrawList_SkipsDeadEntities(t *testing.T) {
	cam := NewCamera(640, 80, 640, 80, 0)
	e := entity.NewEnemy(entity.KindGoomba, 100, 40, entity.EnemyTuning{MoveSpeed: 30})
	e.Alive = false

	ops := entityOps(BuildDrawList(pipelineGrid(), []entity.Entity{e}, cam, 0))

	assert.Empty(t, ops)
}

func TestBuildDrawList_EntitiesSortedByZ(t *testing.T) {
	cam := NewCamera(640, 80, 640, 80, 0)

	spark := entity.NewParticle(entity.KindSparkle, 120, 40, 0, 0, 1)
	player := pipelinePlayer(100, 40)
	coin := entity.NewCoin(140, 40, 200)
	enemy := entity.NewEnemy(entity.KindGoomba, 160, 40, entity.EnemyTuning{MoveSpeed: 30})

	ops := entityOps(BuildDrawList(pipelineGrid(), []entity.Entity{spark, player, coin, enemy}, cam, 0))

	require.Len(t, ops, 4)
	assert.Equal(t, entity.KindCoin, ops[0].Key.Kind, "pickups draw behind everything")
	assert.Equal(t, entity.KindGoomba, ops[1].Key.Kind)
	assert.Equal(t, entity.KindPlayer, ops[2].Key.Kind)
	assert.Equal(t, entity.KindSparkle, ops[3].Key.Kind, "particles draw on top")
}

func TestBuildDrawList_TilesPrecedeEntities(t *testing.T) {
	cam := NewCamera(640, 80, 640, 80, 0)
	player := pipelinePlayer(100, 40)

	ops := BuildDrawList(pipelineGrid(), []entity.Entity{player}, cam, 0)

	sawEntity := false
	for _, op := range ops {
		if op.Layer == LayerEntities {
			sawEntity = true
		}
		if sawEntity {
			assert.Equal(t, LayerEntities, op.Layer, "no tile op after the first entity op")
		}
	}
	assert.True(t, sawEntity)
}

func TestBuildDrawList_FlipAndViewCoordinates(t *testing.T) {
	cam := NewCamera(64, 80, 640, 80, 0)
	cam.Jump(320, 40) // X = 288

	p := pipelinePlayer(300, 40)
	p.FacingRight = false

	ops := entityOps(BuildDrawList(pipelineGrid(), []entity.Entity{p}, cam, 0))

	require.Len(t, ops, 1)
	assert.True(t, ops[0].FlipX)
	assert.Equal(t, 12.0, ops[0].X, "world minus camera origin")
}

func TestBuildDrawList_InvincibleFlashAlternates(t *testing.T) {
	cam := NewCamera(640, 80, 640, 80, 0)
	p := pipelinePlayer(100, 40)
	p.InvincibleTimer = 1.0

	even := entityOps(BuildDrawList(pipelineGrid(), []entity.Entity{p}, cam, 0))
	odd := entityOps(BuildDrawList(pipelineGrid(), []entity.Entity{p}, cam, 1))

	require.Len(t, even, 1)
	require.Len(t, odd, 1)
	assert.True(t, even[0].Dimmed)
	assert.False(t, odd[0].Dimmed)
}
