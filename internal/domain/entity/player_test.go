package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunmoon/sidescroll/internal/domain/event"
)

func testTuning() PlayerTuning {
	return PlayerTuning{
		StompBounce:   220,
		Iframes:       1.5,
		DeathHop:      260,
		DeathDuration: 1.2,
	}
}

func testCtx() (*Context, *event.Buffer, *[]Entity) {
	buf := &event.Buffer{}
	spawned := &[]Entity{}
	ctx := &Context{
		Events: buf,
		Spawn:  func(e Entity) { *spawned = append(*spawned, e) },
	}
	return ctx, buf, spawned
}

func TestPlayer_DamageDemotesOneTier(t *testing.T) {
	ctx, buf, _ := testCtx()
	p := NewPlayer(100, 100, testTuning())
	p.Power = PowerFire

	p.Damage(ctx)
	assert.Equal(t, PowerBig, p.Power)
	assert.True(t, p.Invincible())
	assert.Equal(t, 1, buf.CountKind(event.PlayerDamaged))

	// Invincible-flashing absorbs the next hit entirely.
	p.Damage(ctx)
	assert.Equal(t, PowerBig, p.Power)
	assert.Equal(t, 1, buf.CountKind(event.PlayerDamaged))
}

func TestPlayer_DamageKeepsPosition(t *testing.T) {
	ctx, _, _ := testCtx()
	p := NewPlayer(100, 100, testTuning())
	p.Power = PowerBig
	w, h := p.W, p.H

	p.Damage(ctx)

	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 100.0, p.Y)
	assert.Equal(t, w, p.W)
	assert.Equal(t, h, p.H)
}

func TestPlayer_DamageWhenSmallStartsDying(t *testing.T) {
	ctx, buf, _ := testCtx()
	p := NewPlayer(100, 100, testTuning())

	p.Damage(ctx)

	require.True(t, p.Dying)
	assert.True(t, p.Ghost, "dying player falls through tiles")
	assert.Equal(t, -260.0, p.VY, "death hop launches upward")
	assert.Equal(t, 1, buf.CountKind(event.PlayerDied))
	assert.True(t, p.Alive, "removal waits for the animation")
}

func TestPlayer_DyingAnimationEndsInRemoval(t *testing.T) {
	ctx, _, _ := testCtx()
	p := NewPlayer(100, 100, testTuning())
	p.Damage(ctx)

	for i := 0; i < 200 && p.Alive; i++ {
		p.Step(1.0/120.0, ctx)
	}
	assert.False(t, p.Alive)
}

func TestPlayer_FallOutIgnoresInvincibility(t *testing.T) {
	ctx, buf, _ := testCtx()
	p := NewPlayer(100, 100, testTuning())
	p.Power = PowerFire
	p.InvincibleTimer = 10

	p.FallOut(ctx)

	assert.True(t, p.Dying)
	assert.Equal(t, 1, buf.CountKind(event.PlayerDied))
}

func TestPlayer_PromoteCapsAtFire(t *testing.T) {
	ctx, buf, _ := testCtx()
	p := NewPlayer(0, 0, testTuning())

	p.Promote(ctx)
	assert.Equal(t, PowerBig, p.Power)
	p.Promote(ctx)
	assert.Equal(t, PowerFire, p.Power)
	p.Promote(ctx)
	assert.Equal(t, PowerFire, p.Power)
	assert.Equal(t, 3, buf.CountKind(event.PowerUp))
}

func TestPlayer_HitTileBumpsBlocksFromBelow(t *testing.T) {
	tests := []struct {
		name     string
		side     Side
		tileType TileType
		want     int
	}{
		{"brick from below", SideTop, TileBrick, 1},
		{"question from below", SideTop, TileQuestion, 1},
		{"ground from below", SideTop, TileGround, 0},
		{"brick landed on", SideBottom, TileBrick, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf, _ := testCtx()
			p := NewPlayer(0, 0, testTuning())
			p.HitTile(tt.side, MakeTile(tt.tileType), 3, 4, ctx)
			assert.Equal(t, tt.want, buf.CountKind(event.BlockBump))
		})
	}
}

func TestPlayer_StompBouncesOffEnemy(t *testing.T) {
	ctx, _, _ := testCtx()
	p := NewPlayer(100, 84, testTuning())
	p.VY = 120

	e := NewEnemy(KindGoomba, 100, 100, EnemyTuning{MoveSpeed: 30, ScoreValue: 100})
	p.HitEntity(e, SideBottom, ctx)

	assert.Equal(t, -220.0, p.VY)
	assert.Equal(t, PowerSmall, p.Power, "a stomp is not damage")
}

func TestPlayer_SideContactWithEnemyDamages(t *testing.T) {
	ctx, _, _ := testCtx()
	p := NewPlayer(100, 100, testTuning())
	p.Power = PowerBig

	e := NewEnemy(KindGoomba, 110, 100, EnemyTuning{})
	p.HitEntity(e, SideRight, ctx)

	assert.Equal(t, PowerSmall, p.Power)
}

func TestPlayer_SpinyDamagesEvenWhenStomped(t *testing.T) {
	ctx, _, _ := testCtx()
	p := NewPlayer(100, 84, testTuning())
	p.Power = PowerBig
	p.VY = 120

	e := NewEnemy(KindSpiny, 100, 100, EnemyTuning{})
	p.HitEntity(e, SideBottom, ctx)

	assert.Equal(t, PowerSmall, p.Power, "spines hurt descending players")
}

func TestPlayer_IdleShellIsHarmless(t *testing.T) {
	ctx, _, _ := testCtx()
	p := NewPlayer(100, 100, testTuning())
	p.Power = PowerBig

	sh := NewShell(110, 102)
	p.HitEntity(sh, SideRight, ctx)

	assert.Equal(t, PowerBig, p.Power)
}

func TestPlayer_SlidingShellDamages(t *testing.T) {
	ctx, _, _ := testCtx()
	p := NewPlayer(100, 100, testTuning())
	p.Power = PowerBig

	sh := NewShell(110, 102)
	sh.Sliding = true
	p.HitEntity(sh, SideRight, ctx)

	assert.Equal(t, PowerSmall, p.Power)
}

func TestPlayer_RenderState(t *testing.T) {
	p := NewPlayer(0, 0, testTuning())
	p.OnGround = true
	assert.Equal(t, 0, p.RenderState())

	p.OnGround = false
	assert.Equal(t, 1, p.RenderState())

	p.Power = PowerFire
	p.OnGround = true
	assert.Equal(t, 4, p.RenderState())

	p.Dying = true
	assert.Equal(t, 8, p.RenderState())
}
