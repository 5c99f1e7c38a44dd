// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hyunmoon/sidescroll/internal/application/scene"
	"github.com/hyunmoon/sidescroll/internal/application/state"
	"github.com/hyunmoon/sidescroll/internal/application/system"
	"github.com/hyunmoon/sidescroll/internal/domain/entity"
	"github.com/hyunmoon/sidescroll/internal/domain/event"
	"github.com/hyunmoon/sidescroll/internal/generate"
	"github.com/hyunmoon/sidescroll/internal/infrastructure/audio"
	"github.com/hyunmoon/sidescroll/internal/infrastructure/config"
	"github.com/hyunmoon/sidescroll/internal/render"
)

const startingLives = 3

var (
	colorSky      = color.RGBA{92, 148, 252, 255}
	colorGround   = color.RGBA{150, 90, 40, 255}
	colorBrick    = color.RGBA{200, 110, 60, 255}
	colorQuestion = color.RGBA{250, 200, 40, 255}
	colorUsed     = color.RGBA{140, 120, 90, 255}
	colorPipe     = color.RGBA{50, 170, 60, 255}
	colorGoal     = color.RGBA{230, 230, 240, 255}

	colorPlayerSmall = color.RGBA{220, 60, 60, 255}
	colorPlayerBig   = color.RGBA{240, 110, 70, 255}
	colorPlayerFire  = color.RGBA{250, 250, 250, 255}
	colorGoomba      = color.RGBA{160, 90, 50, 255}
	colorKoopa       = color.RGBA{70, 200, 90, 255}
	colorSpiny       = color.RGBA{220, 60, 120, 255}
	colorBullet      = color.RGBA{60, 60, 70, 255}
	colorShell       = color.RGBA{40, 150, 60, 255}
	colorFireball    = color.RGBA{255, 160, 40, 255}
	colorCoin        = color.RGBA{255, 215, 0, 255}
	colorPowerUp     = color.RGBA{255, 80, 80, 255}
	colorSparkle     = color.RGBA{255, 255, 200, 255}
	colorDebris      = color.RGBA{180, 100, 60, 255}
)

// Playing runs one procedurally generated level at a time.
type Playing struct {
	cfg   *config.GameConfig
	mixer *audio.Mixer

	world *system.World
	cam   *render.Camera

	gameState state.GameState
	seed      int64
	levelNum  int
	score     int
	coins     int
	lives     int

	frame     int
	eventMark int
	screenW   int
	screenH   int
}

// New creates the gameplay scene seeded for its first level. A nil
// mixer disables audio.
func New(cfg *config.GameConfig, seed int64, mixer *audio.Mixer) *Playing {
	p := &Playing{
		cfg:       cfg,
		mixer:     mixer,
		gameState: state.StatePlaying,
		seed:      seed,
		levelNum:  1,
		lives:     startingLives,
		screenW:   cfg.Physics.Display.ScreenWidth,
		screenH:   cfg.Physics.Display.ScreenHeight,
	}
	p.buildLevel()
	return p
}

// buildLevel generates the current level and resets the world. A seed
// whose generation fails is skipped; the next one is tried.
func (p *Playing) buildLevel() {
	seed := p.levelSeed()
	for tries := 0; ; tries++ {
		lvl, err := generate.Generate(system.GenParams(p.cfg.Gen, seed))
		if err == nil {
			p.world = system.NewWorld(p.cfg, lvl)
			break
		}
		log.Error("level generation failed, trying next seed", "seed", seed, "err", err)
		seed++
		if tries >= 8 {
			panic(fmt.Sprintf("level generation failed for 8 consecutive seeds starting at %d", p.levelSeed()))
		}
	}

	p.eventMark = 0
	p.cam = render.NewCamera(
		float64(p.screenW), float64(p.screenH),
		p.world.Grid.PixelWidth(), p.world.Grid.PixelHeight(),
		p.cfg.Physics.Camera.LeadMargin,
	)
	p.cam.Jump(p.world.Player.CenterX(), p.world.Player.CenterY())
}

// levelSeed derives each level's seed from the run seed so a run is
// reproducible end to end.
func (p *Playing) levelSeed() int64 {
	return p.seed + int64(p.levelNum-1)*7919
}

// Update proceeds the scene (implements scene.Scene).
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.frame++

	switch p.gameState {
	case state.StatePlaying:
		p.updatePlaying(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.gameState = state.StatePlaying
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.restartRun()
		}
	case state.StateLevelClear:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.levelNum++
			p.buildLevel()
			p.gameState = state.StatePlaying
		}
	}

	return nil, nil
}

func (p *Playing) updatePlaying(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.gameState = state.StatePaused
		return
	}

	signal := p.world.Advance(dt, sampleInput())
	p.drainEvents()

	switch signal {
	case system.SignalRestart:
		p.lives--
		if p.lives <= 0 {
			p.gameState = state.StateGameOver
			return
		}
		p.buildLevel()
	case system.SignalComplete:
		p.gameState = state.StateLevelClear
	}

	pl := p.world.Player
	p.cam.Follow(pl.CenterX(), pl.CenterY(), pl.FacingRight)
}

// sampleInput reads the keyboard into one simulation command.
func sampleInput() system.Command {
	return system.Command{
		Left:         ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:        ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Run:          ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Jump:         ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace) || inpututil.IsKeyJustReleased(ebiten.KeyW) || inpututil.IsKeyJustReleased(ebiten.KeyArrowUp),
		Fire:         ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeyControlLeft),
	}
}

// drainEvents folds new simulation events into the run totals and
// forwards them to the audio mixer.
func (p *Playing) drainEvents() {
	events := p.world.Events.Since(p.eventMark)
	p.eventMark = p.world.Events.Len()

	for _, ev := range events {
		switch ev.Kind {
		case event.ScoreDelta:
			p.score += ev.Score
		case event.Coin:
			p.coins++
		}
	}
	if p.mixer != nil {
		p.mixer.PlayEvents(events)
	}
}

func (p *Playing) restartRun() {
	// A fresh run reuses the same seed so the level sequence repeats.
	p.levelNum = 1
	p.score = 0
	p.coins = 0
	p.lives = startingLives
	p.buildLevel()
	p.gameState = state.StatePlaying
}

// Draw renders the level (implements scene.Scene).
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	for _, op := range render.BuildDrawList(p.world.Grid, p.world.Entities, p.cam, p.frame/8) {
		c, ok := opColor(op)
		if !ok {
			continue
		}
		ebitenutil.DrawRect(screen, op.X, op.Y, op.W, op.H, c)
	}

	p.drawHUD(screen)

	switch p.gameState {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nScore: %d\n\nPress Enter to restart", p.score))
	case state.StateLevelClear:
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 160},
			fmt.Sprintf("LEVEL %d CLEAR\n\nScore: %d\n\nPress Enter for the next level", p.levelNum, p.score))
	}
}

// opColor maps a draw operation to its flat placeholder color.
func opColor(op render.DrawOp) (color.Color, bool) {
	if op.Layer == render.LayerTiles {
		switch op.Tile {
		case entity.TileGround:
			return colorGround, true
		case entity.TileBrick:
			return colorBrick, true
		case entity.TileQuestion:
			return colorQuestion, true
		case entity.TileUsed:
			return colorUsed, true
		case entity.TilePipe:
			return colorPipe, true
		case entity.TileGoal:
			return colorGoal, true
		}
		return nil, false
	}

	if op.Dimmed {
		return color.RGBA{255, 255, 255, 140}, true
	}

	switch op.Key.Kind {
	case entity.KindPlayer:
		switch {
		case op.Key.State >= 4 && op.Key.State < 8:
			return colorPlayerFire, true
		case op.Key.State >= 2:
			return colorPlayerBig, true
		default:
			return colorPlayerSmall, true
		}
	case entity.KindGoomba:
		return colorGoomba, true
	case entity.KindKoopa:
		return colorKoopa, true
	case entity.KindSpiny:
		return colorSpiny, true
	case entity.KindBulletBill:
		return colorBullet, true
	case entity.KindShell:
		return colorShell, true
	case entity.KindFireball:
		return colorFireball, true
	case entity.KindCoin:
		return colorCoin, true
	case entity.KindPowerUp:
		return colorPowerUp, true
	case entity.KindSparkle:
		return colorSparkle, true
	case entity.KindDebris:
		return colorDebris, true
	}
	return nil, false
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("SCORE %06d   COINS %02d   LIVES %d   LEVEL %d", p.score, p.coins, p.lives, p.levelNum)
	ebitenutil.DebugPrint(screen, hud)
	controls := "Arrows/AD: Move | Shift: Run | Space: Jump | X: Fireball | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 4, p.screenH-16)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

// OnEnter is called when the scene becomes current.
func (p *Playing) OnEnter() {}

// OnExit is called when the scene is replaced.
func (p *Playing) OnExit() {
	if p.mixer != nil {
		p.mixer.Close()
	}
}
