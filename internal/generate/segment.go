package generate

import (
	"math/rand"

	"github.com/hyunmoon/sidescroll/internal/domain/entity"
)

// seg is a scratch buffer for one segment. Nothing touches the real
// grid until the segment validates.
type seg struct {
	w, h      int
	groundRow int
	tiles     [][]entity.Tile // [y][x]
	spawns    []SpawnRecord   // TX relative to the segment
}

func newSeg(cfg Config) *seg {
	s := &seg{
		w:         cfg.SegmentWidth,
		h:         cfg.Height,
		groundRow: cfg.Height - 2,
	}
	s.tiles = make([][]entity.Tile, s.h)
	for y := range s.tiles {
		s.tiles[y] = make([]entity.Tile, s.w)
	}
	return s
}

func (s *seg) set(x, y int, t entity.Tile) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.tiles[y][x] = t
}

// groundCol fills the ground rows of column x.
func (s *seg) groundCol(x int) {
	for y := s.groundRow; y < s.h; y++ {
		s.set(x, y, entity.MakeTile(entity.TileGround))
	}
}

func (s *seg) spawn(kind entity.Kind, tx, ty int) {
	s.spawns = append(s.spawns, SpawnRecord{Kind: kind, TX: tx, TY: ty})
}

// colSolid reports whether column x holds any solid tile. A column with
// none is a pit the player can fall through.
func (s *seg) colSolid(x int) bool {
	for y := 0; y < s.h; y++ {
		if s.tiles[y][x].Solid {
			return true
		}
	}
	return false
}

// validate checks the jumpable-gap invariant, including a pit run
// carried over from the previous segment's trailing edge.
func (s *seg) validate(maxGap, trailingGap int) bool {
	run := trailingGap
	for x := 0; x < s.w; x++ {
		if s.colSolid(x) {
			run = 0
			continue
		}
		run++
		if run > maxGap {
			return false
		}
	}
	return true
}

// commit writes the segment into the grid at column offset x0, appends
// its spawns with absolute coordinates, and returns the trailing pit
// width for the next segment's validation.
func (s *seg) commit(grid *entity.Grid, x0 int, spawns *[]SpawnRecord) int {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if s.tiles[y][x].Type != entity.TileAir {
				grid.Set(x0+x, y, s.tiles[y][x])
			}
		}
	}
	for _, sp := range s.spawns {
		*spawns = append(*spawns, SpawnRecord{Kind: sp.Kind, TX: x0 + sp.TX, TY: sp.TY})
	}

	trailing := 0
	for x := s.w - 1; x >= 0 && !s.colSolid(x); x-- {
		trailing++
	}
	return trailing
}

// fillGroundColumn covers a grid column with plain ground, used for the
// remainder when the level length is not a multiple of the segment
// width.
func fillGroundColumn(grid *entity.Grid, x int) {
	for y := grid.Height - 2; y < grid.Height; y++ {
		grid.Set(x, y, entity.MakeTile(entity.TileGround))
	}
}

// goalOffset is the goal marker's column within the final segment.
func goalOffset(w int) int {
	if w < 3 {
		return 0
	}
	return w - 3
}

// buildFlat is plain walkable ground, occasionally with a coin arc.
func buildFlat(cfg Config, rng *rand.Rand) *seg {
	s := newSeg(cfg)
	for x := 0; x < s.w; x++ {
		s.groundCol(x)
	}
	if rng.Intn(100) < 30 {
		n := 2 + rng.Intn(2)
		start := 1 + rng.Intn(maxInt(1, s.w-n-1))
		for i := 0; i < n; i++ {
			s.spawn(entity.KindCoin, start+i, s.groundRow-3)
		}
	}
	return s
}

// buildGoal is the terminal segment: flat ground with a goal marker
// column near its end.
func buildGoal(cfg Config, rng *rand.Rand) *seg {
	s := newSeg(cfg)
	for x := 0; x < s.w; x++ {
		s.groundCol(x)
	}
	gx := goalOffset(s.w)
	for y := s.groundRow - 5; y < s.groundRow; y++ {
		s.set(gx, y, entity.MakeTile(entity.TileGoal))
	}
	return s
}

// buildGap cuts a pit into flat ground. The pit is surrounded by at
// least two ground columns on each side so it never merges across a
// segment boundary, and its width is drawn within the jumpable bound
// whenever the configuration allows one at all.
func buildGap(cfg Config, rng *rand.Rand) *seg {
	s := newSeg(cfg)

	maxW := cfg.MaxGapWidth
	if maxW > s.w-4 {
		maxW = s.w - 4
	}
	gapW := 2
	if maxW > 2 {
		gapW = 2 + rng.Intn(maxW-1)
	}

	lead := 2
	if extra := s.w - gapW - 4; extra > 0 {
		lead += rng.Intn(extra + 1)
	}

	for x := 0; x < s.w; x++ {
		if x >= lead && x < lead+gapW {
			continue
		}
		s.groundCol(x)
	}
	return s
}

// buildStaircase raises steps toward the middle and back down.
func buildStaircase(cfg Config, rng *rand.Rand) *seg {
	s := newSeg(cfg)
	maxH := 2 + rng.Intn(2)
	half := s.w / 2
	for x := 0; x < s.w; x++ {
		s.groundCol(x)
		steps := x
		if x >= half {
			steps = s.w - 1 - x
		}
		if steps > maxH {
			steps = maxH
		}
		for i := 1; i <= steps; i++ {
			s.set(x, s.groundRow-i, entity.MakeTile(entity.TileGround))
		}
	}
	return s
}

// buildPipes plants one or two pipes on flat ground.
func buildPipes(cfg Config, rng *rand.Rand) *seg {
	s := newSeg(cfg)
	for x := 0; x < s.w; x++ {
		s.groundCol(x)
	}

	placePipe := func(x, height int) {
		for y := s.groundRow - height; y < s.groundRow; y++ {
			s.set(x, y, entity.MakeTile(entity.TilePipe))
			s.set(x+1, y, entity.MakeTile(entity.TilePipe))
		}
	}

	placePipe(1, 2+rng.Intn(2))
	if s.w >= 8 && rng.Intn(100) < 50 {
		placePipe(s.w-3, 2+rng.Intn(3))
	}
	return s
}

// buildEnemies drops a cluster of walkers on flat ground. The mix
// shifts from Goombas toward Koopas and Spinies as progress rises, with
// a rare Bullet Bill late in the level.
func buildEnemies(cfg Config, rng *rand.Rand, progress float64) *seg {
	s := newSeg(cfg)
	for x := 0; x < s.w; x++ {
		s.groundCol(x)
	}

	n := 2 + rng.Intn(2)
	for i := 0; i < n; i++ {
		tx := 1 + (i*(s.w-2))/n
		s.spawn(pickEnemyKind(rng, progress), tx, s.groundRow-1)
	}
	if progress > 0.7 && rng.Intn(100) < 20 {
		s.spawn(entity.KindBulletBill, s.w-1, s.groundRow-4)
	}
	return s
}

func pickEnemyKind(rng *rand.Rand, progress float64) entity.Kind {
	r := rng.Float64()
	switch {
	case r < 0.6-progress*0.4:
		return entity.KindGoomba
	case r < 0.9-progress*0.2:
		return entity.KindKoopa
	default:
		return entity.KindSpiny
	}
}

// buildReward is a block gallery: bricks and question blocks overhead,
// one of them holding a power-up, with a few floating coins.
func buildReward(cfg Config, rng *rand.Rand) *seg {
	s := newSeg(cfg)
	for x := 0; x < s.w; x++ {
		s.groundCol(x)
	}

	row := s.groundRow - 4
	powerPlaced := false
	for x := 2; x < s.w-2; x++ {
		if rng.Intn(100) < 40 {
			s.set(x, row, entity.MakeTile(entity.TileBrick))
			continue
		}
		t := entity.MakeTile(entity.TileQuestion)
		if !powerPlaced {
			t.Contains = entity.KindPowerUp
			powerPlaced = true
		}
		s.set(x, row, t)
	}

	for i := 0; i < 2+rng.Intn(2); i++ {
		s.spawn(entity.KindCoin, 2+rng.Intn(maxInt(1, s.w-4)), row-2)
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
