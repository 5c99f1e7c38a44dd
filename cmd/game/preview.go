package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/hyunmoon/sidescroll/internal/application/system"
	"github.com/hyunmoon/sidescroll/internal/domain/entity"
	"github.com/hyunmoon/sidescroll/internal/generate"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Scroll through a generated level in the terminal",
	Long: `Generate a level and browse it in the terminal, one cell per
tile. Left/Right (or h/l) scroll, Home jumps to the start, End to the
goal, q or ESC quits.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	seed := resolveSeed()

	lvl, err := generate.Generate(system.GenParams(cfg.Gen, seed))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	offset := 0
	for {
		drawPreview(screen, lvl, offset)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			w, _ := screen.Size()
			maxOffset := maxI(0, lvl.Grid.Width-w)
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
				offset = maxI(0, offset-4)
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
				offset = minI(maxOffset, offset+4)
			case ev.Key() == tcell.KeyHome:
				offset = 0
			case ev.Key() == tcell.KeyEnd:
				offset = maxOffset
			}
		}
	}
}

func drawPreview(screen tcell.Screen, lvl *generate.Level, offset int) {
	screen.Clear()
	w, h := screen.Size()

	for ty := 0; ty < lvl.Grid.Height && ty < h-1; ty++ {
		for sx := 0; sx < w; sx++ {
			tx := sx + offset
			if tx >= lvl.Grid.Width {
				break
			}
			t := lvl.Grid.At(tx, ty).Type
			if t == entity.TileAir {
				continue
			}
			screen.SetContent(sx, ty, tileRune(t), nil, tileStyle(t))
		}
	}

	spawnStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	for _, s := range lvl.Spawns {
		sx := s.TX - offset
		if sx >= 0 && sx < w && s.TY < h-1 {
			screen.SetContent(sx, s.TY, spawnRune(s.Kind), nil, spawnStyle)
		}
	}
	if px := lvl.PlayerTX - offset; px >= 0 && px < w {
		screen.SetContent(px, lvl.PlayerTY, '@', nil,
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}

	status := []rune("←/→ scroll  Home/End jump  q quit")
	for i, r := range status {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

func tileStyle(t entity.TileType) tcell.Style {
	switch t {
	case entity.TileGround:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case entity.TileBrick:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case entity.TileQuestion:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case entity.TilePipe:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case entity.TileGoal:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}
