// Package generate builds playable levels from a numeric seed.
//
// Generation walks left to right in fixed-width segments. Each segment
// picks an archetype by weighted random selection, writes tiles into a
// scratch buffer, and is validated (no gap wider than the configured
// jumpable maximum) before being committed to the grid. The same seed
// always produces the same grid and spawn list.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/hyunmoon/sidescroll/internal/domain/entity"
)

// WeightRamp is a selection weight that grows (or shrinks) with
// difficulty progress across the level.
type WeightRamp struct {
	Base int
	Ramp int
}

// at evaluates the weight at progress p in [0,1], clamped at zero.
func (w WeightRamp) at(p float64) int {
	v := w.Base + int(p*float64(w.Ramp))
	if v < 0 {
		return 0
	}
	return v
}

// Weights are the per-archetype selection weights.
type Weights struct {
	Flat      WeightRamp
	Gap       WeightRamp
	Staircase WeightRamp
	Pipes     WeightRamp
	Enemies   WeightRamp
	Reward    WeightRamp
}

// Config drives generation of one level.
type Config struct {
	Seed          int64
	Length        int // level width in tiles
	Height        int // level height in tiles
	SegmentWidth  int
	SafeZoneWidth int // flat, enemy-free columns at the start
	MaxGapWidth   int // widest jumpable pit, in tiles
	MaxRetries    int // archetype re-picks per segment before failing
	Weights       Weights
}

// DefaultConfig returns a playable configuration for the given seed.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:          seed,
		Length:        200,
		Height:        15,
		SegmentWidth:  8,
		SafeZoneWidth: 8,
		MaxGapWidth:   4,
		MaxRetries:    16,
		Weights: Weights{
			Flat:      WeightRamp{Base: 30, Ramp: -15},
			Gap:       WeightRamp{Base: 10, Ramp: 15},
			Staircase: WeightRamp{Base: 10, Ramp: 10},
			Pipes:     WeightRamp{Base: 10, Ramp: 5},
			Enemies:   WeightRamp{Base: 10, Ramp: 20},
			Reward:    WeightRamp{Base: 15, Ramp: -5},
		},
	}
}

// SpawnRecord is an initial entity placement in tile coordinates.
type SpawnRecord struct {
	Kind entity.Kind
	TX   int
	TY   int
}

// Level is the product of generation.
type Level struct {
	Grid   *entity.Grid
	Spawns []SpawnRecord

	PlayerTX int
	PlayerTY int
	GoalTX   int
}

// GenerationError reports that no valid segment could be placed within
// the bounded number of retries. The caller must regenerate with a new
// seed or abort; the partial grid is discarded.
type GenerationError struct {
	Seed    int64
	Segment int
	Retries int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("level generation failed: seed=%d segment=%d after %d retries", e.Seed, e.Segment, e.Retries)
}

// Generate deterministically builds a level for cfg.Seed.
func Generate(cfg Config) (*Level, error) {
	cfg = normalize(cfg)
	rng := rand.New(rand.NewSource(cfg.Seed))

	grid := entity.NewGrid(cfg.Length, cfg.Height)
	lvl := &Level{Grid: grid}

	segCount := cfg.Length / cfg.SegmentWidth

	// Trailing pit width of the previously committed segment, so a gap
	// spanning a segment boundary is still caught.
	trailingGap := 0

	for i := 0; i < segCount; i++ {
		x0 := i * cfg.SegmentWidth
		progress := 0.0
		if segCount > 1 {
			progress = float64(i) / float64(segCount-1)
		}

		var s *seg
		switch {
		case x0 < cfg.SafeZoneWidth:
			s = buildFlat(cfg, rng)
		case i == segCount-1:
			s = buildGoal(cfg, rng)
		default:
			var err error
			s, err = placeSegment(cfg, rng, i, progress, trailingGap)
			if err != nil {
				return nil, err
			}
		}

		trailingGap = s.commit(grid, x0, &lvl.Spawns)
	}

	// Cover any columns past the last full segment.
	for x := segCount * cfg.SegmentWidth; x < cfg.Length; x++ {
		fillGroundColumn(grid, x)
	}

	lvl.PlayerTX = 2
	lvl.PlayerTY = cfg.Height - 4
	lvl.GoalTX = (segCount-1)*cfg.SegmentWidth + goalOffset(cfg.SegmentWidth)
	return lvl, nil
}

// placeSegment picks archetypes until one validates, bounded by
// cfg.MaxRetries.
func placeSegment(cfg Config, rng *rand.Rand, index int, progress float64, trailingGap int) (*seg, error) {
	for try := 0; try <= cfg.MaxRetries; try++ {
		a := pickArchetype(rng, cfg.Weights, progress)
		s := buildArchetype(a, cfg, rng, progress)
		if s.validate(cfg.MaxGapWidth, trailingGap) {
			return s, nil
		}
	}
	return nil, &GenerationError{Seed: cfg.Seed, Segment: index, Retries: cfg.MaxRetries}
}

type archetype int

const (
	archFlat archetype = iota
	archGap
	archStaircase
	archPipes
	archEnemies
	archReward
)

func pickArchetype(rng *rand.Rand, w Weights, progress float64) archetype {
	weights := [...]int{
		archFlat:      w.Flat.at(progress),
		archGap:       w.Gap.at(progress),
		archStaircase: w.Staircase.at(progress),
		archPipes:     w.Pipes.at(progress),
		archEnemies:   w.Enemies.at(progress),
		archReward:    w.Reward.at(progress),
	}
	total := 0
	for _, v := range weights {
		total += v
	}
	if total <= 0 {
		return archFlat
	}
	roll := rng.Intn(total)
	for a, v := range weights {
		if roll < v {
			return archetype(a)
		}
		roll -= v
	}
	return archFlat
}

func buildArchetype(a archetype, cfg Config, rng *rand.Rand, progress float64) *seg {
	switch a {
	case archGap:
		return buildGap(cfg, rng)
	case archStaircase:
		return buildStaircase(cfg, rng)
	case archPipes:
		return buildPipes(cfg, rng)
	case archEnemies:
		return buildEnemies(cfg, rng, progress)
	case archReward:
		return buildReward(cfg, rng)
	default:
		return buildFlat(cfg, rng)
	}
}

func normalize(cfg Config) Config {
	def := DefaultConfig(cfg.Seed)
	if cfg.Length <= 0 {
		cfg.Length = def.Length
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.SegmentWidth <= 0 {
		cfg.SegmentWidth = def.SegmentWidth
	}
	if cfg.SafeZoneWidth <= 0 {
		cfg.SafeZoneWidth = def.SafeZoneWidth
	}
	if cfg.MaxGapWidth <= 0 {
		cfg.MaxGapWidth = def.MaxGapWidth
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	return cfg
}
