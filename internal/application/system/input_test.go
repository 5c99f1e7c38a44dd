package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunmoon/sidescroll/internal/domain/entity"
	"github.com/hyunmoon/sidescroll/internal/domain/event"
	"github.com/hyunmoon/sidescroll/internal/infrastructure/config"
)

func testPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Physics: config.PhysicsValues{Gravity: 980, MaxFallSpeed: 420},
		Movement: config.MovementConfig{
			Acceleration:    800,
			Deceleration:    1000,
			MaxSpeed:        110,
			RunMultiplier:   1.6,
			AirControl:      0.65,
			TurnaroundBoost: 1.8,
		},
		Jump: config.JumpConfig{
			Force:                  320,
			VariableJumpMultiplier: 0.45,
			CoyoteTime:             0.1,
			JumpBuffer:             0.12,
		},
	}
}

func testFireConfig() config.FireballConfig {
	return config.FireballConfig{Speed: 220, BounceVY: 160, Lifetime: 3, Cooldown: 0.35}
}

func inputPlayer() *entity.Player {
	return entity.NewPlayer(50, 50, entity.PlayerTuning{StompBounce: 220, Iframes: 1.5, DeathHop: 260, DeathDuration: 1.2})
}

const inputDT = 1.0 / 120.0

func TestInput_GroundJump(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, buf, _ := systemCtx()
	p := inputPlayer()
	p.OnGround = true

	s.Apply(p, Command{Jump: true, JumpPressed: true}, inputDT, ctx)

	assert.Equal(t, -320.0, p.VY)
	assert.False(t, p.OnGround)
	assert.Equal(t, 1, buf.CountKind(event.Jump))
}

func TestInput_CoyoteJumpAfterLeavingLedge(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, _ := systemCtx()
	p := inputPlayer()
	p.OnGround = false
	p.CoyoteTimer = 0.05 // walked off a ledge a moment ago

	s.Apply(p, Command{Jump: true, JumpPressed: true}, inputDT, ctx)

	assert.Equal(t, -320.0, p.VY, "coyote window still allows the jump")
}

func TestInput_NoAirJumpOnceCoyoteExpires(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, buf, _ := systemCtx()
	p := inputPlayer()
	p.OnGround = false
	p.VY = 120

	s.Apply(p, Command{Jump: true, JumpPressed: true}, inputDT, ctx)

	assert.Equal(t, 120.0, p.VY, "no double jump")
	assert.Zero(t, buf.CountKind(event.Jump))
	assert.Equal(t, 0.12, p.JumpBufferTimer, "press is remembered for landing")
}

func TestInput_BufferedJumpFiresOnLanding(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, buf, _ := systemCtx()
	p := inputPlayer()
	p.OnGround = false
	p.VY = 120

	// Pressed while still airborne.
	s.Apply(p, Command{Jump: true, JumpPressed: true}, inputDT, ctx)
	require.Zero(t, buf.CountKind(event.Jump))

	// Touches down with the buffer still live; jump fires immediately.
	p.OnGround = true
	s.Apply(p, Command{Jump: true}, inputDT, ctx)

	assert.Equal(t, -320.0, p.VY)
	assert.Equal(t, 1, buf.CountKind(event.Jump))
	assert.Zero(t, p.JumpBufferTimer)
}

func TestInput_ReleasingEarlyCutsTheRise(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, _ := systemCtx()
	p := inputPlayer()
	p.VY = -300

	s.Apply(p, Command{JumpReleased: true}, inputDT, ctx)

	assert.InDelta(t, -135.0, p.VY, 1e-9, "rise scaled by the variable jump factor")
}

func TestInput_ReleaseWhileFallingDoesNothing(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, _ := systemCtx()
	p := inputPlayer()
	p.VY = 80

	s.Apply(p, Command{JumpReleased: true}, inputDT, ctx)

	assert.Equal(t, 80.0, p.VY)
}

func TestInput_AccelerationTowardTarget(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, _ := systemCtx()
	p := inputPlayer()
	p.OnGround = true

	s.Apply(p, Command{Right: true}, inputDT, ctx)

	assert.InDelta(t, 800.0*inputDT, p.VX, 1e-9)
	assert.True(t, p.FacingRight)

	for i := 0; i < 200; i++ {
		p.OnGround = true
		s.Apply(p, Command{Right: true}, inputDT, ctx)
	}
	assert.Equal(t, 110.0, p.VX, "settles at walk speed")
}

func TestInput_RunMultiplierRaisesTopSpeed(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, _ := systemCtx()
	p := inputPlayer()

	for i := 0; i < 400; i++ {
		p.OnGround = true
		s.Apply(p, Command{Right: true, Run: true}, inputDT, ctx)
	}
	assert.InDelta(t, 176.0, p.VX, 1e-9)
}

func TestInput_TurnaroundBoost(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, _ := systemCtx()
	p := inputPlayer()
	p.OnGround = true
	p.VX = 110

	s.Apply(p, Command{Left: true}, inputDT, ctx)

	assert.InDelta(t, 110.0-800.0*1.8*inputDT, p.VX, 1e-9, "reversal decelerates faster than plain accel")
}

func TestInput_AirControlReducesTarget(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, _ := systemCtx()
	p := inputPlayer()
	p.OnGround = false
	p.CoyoteTimer = 0

	for i := 0; i < 400; i++ {
		p.OnGround = false
		s.Apply(p, Command{Right: true}, inputDT, ctx)
	}
	assert.InDelta(t, 110.0*0.65, p.VX, 1e-9)
}

func TestInput_DeceleratesWithNoDirection(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, _ := systemCtx()
	p := inputPlayer()
	p.OnGround = true
	p.VX = 5

	s.Apply(p, Command{}, inputDT, ctx)

	assert.Equal(t, 0.0, p.VX, "deceleration clamps at rest, never overshoots")
}

func TestInput_FireNeedsFireTier(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, buf, spawned := systemCtx()
	p := inputPlayer()
	p.OnGround = true

	s.Apply(p, Command{Fire: true}, inputDT, ctx)
	assert.Empty(t, *spawned, "small player cannot throw")
	assert.Zero(t, buf.CountKind(event.Fireball))

	p.Power = entity.PowerFire
	s.Apply(p, Command{Fire: true}, inputDT, ctx)
	require.Len(t, *spawned, 1)
	fb, ok := (*spawned)[0].(*entity.Fireball)
	require.True(t, ok)
	assert.Equal(t, p.X+p.W, fb.X, "thrown from the leading edge")
	assert.Equal(t, 1, buf.CountKind(event.Fireball))
	assert.Equal(t, 0.35, p.FireCooldown)
}

func TestInput_FireCooldownBlocksSpam(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, _, spawned := systemCtx()
	p := inputPlayer()
	p.Power = entity.PowerFire
	p.OnGround = true

	s.Apply(p, Command{Fire: true}, inputDT, ctx)
	s.Apply(p, Command{Fire: true}, inputDT, ctx)

	assert.Len(t, *spawned, 1, "second throw gated by the cooldown")
}

func TestInput_DyingPlayerIgnoresInput(t *testing.T) {
	s := NewInputSystem(testPhysicsConfig(), testFireConfig())
	ctx, buf, _ := systemCtx()
	p := inputPlayer()
	p.Dying = true
	p.OnGround = true

	s.Apply(p, Command{Right: true, Jump: true, JumpPressed: true, Fire: true}, inputDT, ctx)

	assert.Zero(t, p.VX)
	assert.Zero(t, buf.Len())
}
