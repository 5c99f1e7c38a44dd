package system

import (
	"github.com/hyunmoon/sidescroll/internal/generate"
	"github.com/hyunmoon/sidescroll/internal/infrastructure/config"
)

// GenParams translates the loaded generation config into generator
// parameters for the given seed. Zero-valued fields keep the
// generator's defaults.
func GenParams(cfg *config.GenConfig, seed int64) generate.Config {
	out := generate.DefaultConfig(seed)
	if cfg == nil {
		return out
	}
	if cfg.LengthTiles > 0 {
		out.Length = cfg.LengthTiles
	}
	if cfg.HeightTiles > 0 {
		out.Height = cfg.HeightTiles
	}
	if cfg.SegmentWidth > 0 {
		out.SegmentWidth = cfg.SegmentWidth
	}
	if cfg.SafeZoneWidth > 0 {
		out.SafeZoneWidth = cfg.SafeZoneWidth
	}
	if cfg.MaxGapWidth > 0 {
		out.MaxGapWidth = cfg.MaxGapWidth
	}
	if cfg.MaxRetries > 0 {
		out.MaxRetries = cfg.MaxRetries
	}
	out.Weights = generate.Weights{
		Flat:      ramp(cfg.Weights.Flat, out.Weights.Flat),
		Gap:       ramp(cfg.Weights.Gap, out.Weights.Gap),
		Staircase: ramp(cfg.Weights.Staircase, out.Weights.Staircase),
		Pipes:     ramp(cfg.Weights.Pipes, out.Weights.Pipes),
		Enemies:   ramp(cfg.Weights.Enemies, out.Weights.Enemies),
		Reward:    ramp(cfg.Weights.Reward, out.Weights.Reward),
	}
	return out
}

func ramp(w config.WeightRamp, def generate.WeightRamp) generate.WeightRamp {
	if w.Base == 0 && w.Ramp == 0 {
		return def
	}
	return generate.WeightRamp{Base: w.Base, Ramp: w.Ramp}
}
