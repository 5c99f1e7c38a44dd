package system

import (
	"github.com/hyunmoon/sidescroll/internal/domain/entity"
	"github.com/hyunmoon/sidescroll/internal/domain/event"
	"github.com/hyunmoon/sidescroll/internal/infrastructure/config"
)

// Command is the per-frame input sampled once by the caller at the
// start of a frame. The core never touches input devices.
type Command struct {
	Left         bool
	Right        bool
	Run          bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Fire         bool
}

// InputSystem turns commands into player acceleration, jumps and
// fireballs. Coyote time, jump buffering and variable jump height
// are all handled here.
type InputSystem struct {
	cfg  *config.PhysicsConfig
	fire config.FireballConfig
}

// NewInputSystem creates an input system.
func NewInputSystem(cfg *config.PhysicsConfig, fire config.FireballConfig) *InputSystem {
	return &InputSystem{cfg: cfg, fire: fire}
}

// Apply updates the player for one fixed step of input.
func (s *InputSystem) Apply(p *entity.Player, cmd Command, dt float64, ctx *entity.Context) {
	if p.Dying {
		return
	}

	if p.OnGround {
		p.CoyoteTimer = s.cfg.Jump.CoyoteTime
	}

	s.applyMovement(p, cmd, dt)
	s.applyJump(p, cmd, ctx)
	s.applyFire(p, cmd, ctx)
}

func (s *InputSystem) applyMovement(p *entity.Player, cmd Command, dt float64) {
	mv := s.cfg.Movement

	maxSpeed := mv.MaxSpeed
	if cmd.Run {
		maxSpeed *= mv.RunMultiplier
	}

	targetVX := 0.0
	if cmd.Left {
		targetVX = -maxSpeed
		p.FacingRight = false
	}
	if cmd.Right {
		targetVX = maxSpeed
		p.FacingRight = true
	}

	if !p.OnGround {
		targetVX *= mv.AirControl
	}

	if targetVX != 0 {
		accel := mv.Acceleration
		if (p.VX > 0 && targetVX < 0) || (p.VX < 0 && targetVX > 0) {
			accel *= mv.TurnaroundBoost
		}
		p.VX = approach(p.VX, targetVX, accel*dt)
	} else {
		p.VX = approach(p.VX, 0, mv.Deceleration*dt)
	}
}

func (s *InputSystem) applyJump(p *entity.Player, cmd Command, ctx *entity.Context) {
	if cmd.JumpPressed {
		p.JumpBufferTimer = s.cfg.Jump.JumpBuffer
	}

	canJump := p.OnGround || p.CoyoteTimer > 0
	if canJump && p.JumpBufferTimer > 0 {
		p.VY = -s.cfg.Jump.Force
		p.OnGround = false
		p.CoyoteTimer = 0
		p.JumpBufferTimer = 0
		ctx.Events.Emit(event.Event{Kind: event.Jump, X: p.X, Y: p.Y})
	}

	// Releasing early cuts the rise short.
	if cmd.JumpReleased && p.VY < 0 {
		p.VY *= s.cfg.Jump.VariableJumpMultiplier
	}
}

func (s *InputSystem) applyFire(p *entity.Player, cmd Command, ctx *entity.Context) {
	if !cmd.Fire || p.Power != entity.PowerFire || p.FireCooldown > 0 {
		return
	}
	p.FireCooldown = s.fire.Cooldown

	fx := p.X - 4
	if p.FacingRight {
		fx = p.X + p.W
	}
	ctx.Spawn(entity.NewFireball(fx, p.Y+2, p.FacingRight, s.fire.Speed, s.fire.BounceVY, s.fire.Lifetime))
	ctx.Events.Emit(event.Event{Kind: event.Fireball, X: p.X, Y: p.Y})
}

// approach moves cur toward target by at most delta.
func approach(cur, target, delta float64) float64 {
	if cur < target {
		cur += delta
		if cur > target {
			cur = target
		}
	} else if cur > target {
		cur -= delta
		if cur < target {
			cur = target
		}
	}
	return cur
}
