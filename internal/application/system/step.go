package system

import (
	"github.com/charmbracelet/log"

	"github.com/hyunmoon/sidescroll/internal/domain/entity"
	"github.com/hyunmoon/sidescroll/internal/domain/event"
	"github.com/hyunmoon/sidescroll/internal/generate"
	"github.com/hyunmoon/sidescroll/internal/infrastructure/config"
)

// Signal tells the orchestrating caller to tear the world down.
type Signal int

const (
	SignalNone Signal = iota
	SignalRestart
	SignalComplete
)

// World owns the tile grid and the live entity list for one level and
// advances them with a fixed timestep. A new level gets a new World;
// nothing is reused across level transitions.
type World struct {
	Grid     *entity.Grid
	Entities []entity.Entity
	Player   *entity.Player
	Events   event.Buffer

	cfg      *config.GameConfig
	resolver *Resolver
	input    *InputSystem

	pending  []entity.Entity
	acc      float64
	fixedDT  float64
	maxSteps int
	signal   Signal
}

// NewWorld builds a world from a generated level. Spawn records with
// out-of-bounds or in-wall positions are logged and dropped.
func NewWorld(cfg *config.GameConfig, lvl *generate.Level) *World {
	hz := cfg.Physics.Step.TimestepHz
	if hz <= 0 {
		hz = 120
	}
	maxSteps := cfg.Physics.Step.MaxStepsPerFrame
	if maxSteps <= 0 {
		maxSteps = 4
	}

	w := &World{
		Grid:     lvl.Grid,
		cfg:      cfg,
		resolver: NewResolver(lvl.Grid),
		input:    NewInputSystem(cfg.Physics, cfg.Entities.Fireball),
		fixedDT:  1.0 / float64(hz),
		maxSteps: maxSteps,
	}

	pc := cfg.Entities.Player
	w.Player = entity.NewPlayer(
		float64(lvl.PlayerTX*entity.TileSize),
		float64(lvl.PlayerTY*entity.TileSize),
		entity.PlayerTuning{
			StompBounce:   pc.StompBounce,
			Iframes:       pc.Iframes,
			DeathHop:      pc.DeathHop,
			DeathDuration: pc.DeathDuration,
		},
	)
	// The player is always first so resolution order is stable.
	w.Entities = append(w.Entities, w.Player)

	for _, rec := range lvl.Spawns {
		e := w.entityFromRecord(rec)
		if e == nil {
			continue
		}
		w.Entities = append(w.Entities, e)
	}
	return w
}

// entityFromRecord instantiates an initial placement, or nil for an
// invalid one.
func (w *World) entityFromRecord(rec generate.SpawnRecord) entity.Entity {
	if rec.TX < 0 || rec.TX >= w.Grid.Width || rec.TY < 0 || rec.TY >= w.Grid.Height || w.Grid.At(rec.TX, rec.TY).Solid {
		log.Warn("dropping invalid entity spawn", "kind", rec.Kind, "tx", rec.TX, "ty", rec.TY)
		return nil
	}

	x := float64(rec.TX*entity.TileSize) + 1
	y := float64(rec.TY * entity.TileSize)

	switch rec.Kind {
	case entity.KindGoomba, entity.KindKoopa, entity.KindSpiny, entity.KindBulletBill:
		ec := w.cfg.Entities.Enemies[rec.Kind.String()]
		return entity.NewEnemy(rec.Kind, x, y, entity.EnemyTuning{
			MoveSpeed:  ec.MoveSpeed,
			ScoreValue: ec.Score,
		})
	case entity.KindCoin:
		return entity.NewCoin(x, y, w.cfg.Entities.Coin.Score)
	case entity.KindPowerUp:
		return entity.NewPowerUp(x, y, w.cfg.Entities.PowerUp.Score)
	default:
		log.Warn("dropping spawn of unknown kind", "kind", rec.Kind)
		return nil
	}
}

// FixedDT returns the fixed simulation timestep in seconds.
func (w *World) FixedDT() float64 {
	return w.fixedDT
}

// Advance accumulates frame time and runs zero or more fixed steps,
// decoupling simulation rate from display rate. A restart or complete
// signal stops iteration immediately.
func (w *World) Advance(frameDT float64, cmd Command) Signal {
	w.acc += frameDT

	steps := 0
	for w.acc >= w.fixedDT && steps < w.maxSteps && w.signal == SignalNone {
		w.stepOnce(cmd)
		w.acc -= w.fixedDT
		steps++
	}

	// Shed backlog so a long stall cannot spiral.
	if limit := w.fixedDT * float64(w.maxSteps); w.acc > limit {
		w.acc = limit
	}
	return w.signal
}

// stepOnce runs one fixed timestep in the mandated order: input and AI
// accel, integration with tile resolution, entity contacts, transitions
// from emitted events, pruning, then queued spawns.
func (w *World) stepOnce(cmd Command) {
	mark := w.Events.Len()
	ctx := &entity.Context{Events: &w.Events, Spawn: w.queueSpawn}

	w.input.Apply(w.Player, cmd, w.fixedDT, ctx)
	for _, e := range w.Entities {
		if e.Base().Alive {
			e.Step(w.fixedDT, ctx)
		}
	}

	for _, e := range w.Entities {
		b := e.Base()
		if !b.Alive {
			continue
		}
		w.applyGravity(e)
		for _, c := range w.resolver.MoveBody(b, w.fixedDT) {
			e.HitTile(c.Side, c.Tile, c.TX, c.TY, ctx)
		}
		w.clampToWorld(e, ctx)
	}

	ResolveContacts(w.Entities, ctx)

	w.applyTileEvents(mark, ctx)
	w.checkGoal(ctx)

	w.prune()
	w.flushSpawns()

	if !w.Player.Alive {
		w.signal = SignalRestart
	}
}

// applyGravity accelerates a body downward. The player additionally
// gets apex gravity relief and a fall multiplier for game feel.
func (w *World) applyGravity(e entity.Entity) {
	b := e.Base()
	if b.Weightless {
		return
	}

	g := w.cfg.Physics.Physics.Gravity
	if p, ok := e.(*entity.Player); ok && !p.Dying {
		jump := w.cfg.Physics.Jump
		if jump.ApexModifier.Enabled && absF(b.VY) < jump.ApexModifier.Threshold {
			g *= jump.ApexModifier.GravityMultiplier
		}
		if b.VY > 0 && jump.FallMultiplier > 0 {
			g *= jump.FallMultiplier
		}
	}

	b.VY += g * w.fixedDT
	if b.VY > w.cfg.Physics.Physics.MaxFallSpeed {
		b.VY = w.cfg.Physics.Physics.MaxFallSpeed
	}
}

// clampToWorld keeps bodies inside the horizontal world bounds and
// culls whatever falls past the bottom. A player in a pit dies.
func (w *World) clampToWorld(e entity.Entity, ctx *entity.Context) {
	b := e.Base()

	if p, ok := e.(*entity.Player); ok {
		if b.X < 0 {
			b.X = 0
			b.VX = 0
		}
		if max := w.Grid.PixelWidth() - b.W; b.X > max {
			b.X = max
			b.VX = 0
		}
		if !p.Dying && b.Y > w.Grid.PixelHeight() {
			p.FallOut(ctx)
		}
		return
	}

	if b.Y > w.Grid.PixelHeight()+4*entity.TileSize {
		b.Alive = false
	}
	if b.X < -4*entity.TileSize || b.X > w.Grid.PixelWidth()+4*entity.TileSize {
		b.Alive = false
	}
}

// applyTileEvents consumes the block bumps emitted during this step,
// after the resolution pass is finished: breaking bricks, releasing
// block contents.
func (w *World) applyTileEvents(mark int, ctx *entity.Context) {
	for _, ev := range w.Events.Since(mark) {
		if ev.Kind != event.BlockBump {
			continue
		}
		t := w.Grid.At(ev.TX, ev.TY)
		bx := float64(ev.TX * entity.TileSize)
		by := float64(ev.TY * entity.TileSize)

		switch t.Type {
		case entity.TileQuestion:
			w.Grid.Consume(ev.TX, ev.TY)
			if t.Contains == entity.KindPowerUp {
				ctx.Spawn(entity.NewPowerUp(bx+1, by-2, w.cfg.Entities.PowerUp.Score))
			} else {
				ctx.Events.Emit(event.Event{Kind: event.Coin, X: bx, Y: by})
				ctx.Events.Emit(event.Event{Kind: event.ScoreDelta, Score: w.cfg.Entities.Coin.Score, X: bx, Y: by})
				ctx.Spawn(entity.NewParticle(entity.KindSparkle, bx+8, by-8, 0, -60, 0.3))
			}
		case entity.TileBrick:
			if w.Player.Power == entity.PowerSmall {
				break // small players only rattle the brick
			}
			w.Grid.Consume(ev.TX, ev.TY)
			ctx.Events.Emit(event.Event{Kind: event.Break, TX: ev.TX, TY: ev.TY})
			for _, d := range [][2]float64{{-40, -140}, {40, -140}, {-25, -90}, {25, -90}} {
				ctx.Spawn(entity.NewParticle(entity.KindDebris, bx+8, by+8, d[0], d[1], 1.5))
			}
		}
	}
}

// checkGoal completes the level once the player touches a goal tile.
func (w *World) checkGoal(ctx *entity.Context) {
	if w.signal != SignalNone || w.Player.Dying {
		return
	}
	b := &w.Player.Body
	startTX := tileIndex(b.X)
	endTX := tileIndex(b.X + b.W - 1e-6)
	startTY := tileIndex(b.Y)
	endTY := tileIndex(b.Y + b.H - 1e-6)
	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if w.Grid.At(tx, ty).Type == entity.TileGoal {
				ctx.Events.Emit(event.Event{Kind: event.LevelComplete, X: b.X, Y: b.Y})
				w.signal = SignalComplete
				return
			}
		}
	}
}

// queueSpawn defers a runtime spawn request to the end of the step.
func (w *World) queueSpawn(e entity.Entity) {
	w.pending = append(w.pending, e)
}

// flushSpawns appends queued spawns to the live list, dropping any with
// positions far outside the world.
func (w *World) flushSpawns() {
	for _, e := range w.pending {
		b := e.Base()
		if b.X < -4*entity.TileSize || b.X > w.Grid.PixelWidth()+4*entity.TileSize || b.Y > w.Grid.PixelHeight()+4*entity.TileSize {
			log.Warn("dropping out-of-bounds runtime spawn", "kind", e.Kind(), "x", b.X, "y", b.Y)
			continue
		}
		w.Entities = append(w.Entities, e)
	}
	w.pending = w.pending[:0]
}

// prune removes entities whose alive flag dropped during this step.
func (w *World) prune() {
	kept := w.Entities[:0]
	for _, e := range w.Entities {
		if e.Base().Alive || e == entity.Entity(w.Player) {
			kept = append(kept, e)
		}
	}
	w.Entities = kept
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
