package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/hyunmoon/sidescroll/internal/application/game"
	"github.com/hyunmoon/sidescroll/internal/application/scene"
	"github.com/hyunmoon/sidescroll/internal/application/scene/playing"
	"github.com/hyunmoon/sidescroll/internal/application/scene/title"
	"github.com/hyunmoon/sidescroll/internal/infrastructure/audio"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play.

Controls:
  Arrows/A/D  - Move
  Shift       - Run
  Space/W/Up  - Jump (hold for higher)
  X/Ctrl      - Fireball (fire tier only)
  ESC         - Pause`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	seed := resolveSeed()

	var mixer *audio.Mixer
	if !flagMute {
		mixer = audio.NewMixer(0.8)
		if err := mixer.Init(); err != nil {
			log.Warn("audio unavailable, continuing silent", "err", err)
			mixer = nil
		}
	}

	display := cfg.Physics.Display
	start := func() scene.Scene {
		return playing.New(cfg, seed, mixer)
	}
	first := title.New(seed, display.ScreenWidth, display.ScreenHeight, start)
	g := game.New(first, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Sidescroll")
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}
