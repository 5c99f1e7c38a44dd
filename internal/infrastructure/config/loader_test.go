package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const physicsJSON = `{
	"display": {"screenWidth": 400, "screenHeight": 240, "scale": 3, "framerate": 60},
	"step": {"timestepHz": 120, "maxStepsPerFrame": 4},
	"physics": {"gravity": 980, "maxFallSpeed": 420},
	"movement": {"acceleration": 800, "maxSpeed": 110, "runMultiplier": 1.6},
	"jump": {"force": 320, "coyoteTime": 0.1, "apexModifier": {"enabled": true, "threshold": 40, "gravityMultiplier": 0.6}},
	"camera": {"leadMargin": 32}
}`

const entitiesJSON = `{
	"player": {"stompBounce": 220, "iframes": 1.5, "deathHop": 260, "deathDuration": 1.2},
	"fireball": {"speed": 220, "bounceVY": 160, "lifetime": 3, "cooldown": 0.35},
	"enemies": {"goomba": {"moveSpeed": 30, "score": 100}},
	"coin": {"score": 200},
	"powerUp": {"score": 1000}
}`

const genJSON = `{
	"lengthTiles": 200,
	"heightTiles": 15,
	"maxGapWidth": 4,
	"weights": {"flat": {"base": 30}, "gap": {"base": 10, "ramp": 15}}
}`

func fullFS() fstest.MapFS {
	return fstest.MapFS{
		"physics.json":  {Data: []byte(physicsJSON)},
		"entities.json": {Data: []byte(entitiesJSON)},
		"gen.json":      {Data: []byte(genJSON)},
	}
}

func TestLoader_LoadAll(t *testing.T) {
	cfg, err := NewFSLoader(fullFS()).LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 400, cfg.Physics.Display.ScreenWidth)
	assert.Equal(t, 120, cfg.Physics.Step.TimestepHz)
	assert.Equal(t, 980.0, cfg.Physics.Physics.Gravity)
	assert.Equal(t, 1.6, cfg.Physics.Movement.RunMultiplier)
	assert.True(t, cfg.Physics.Jump.ApexModifier.Enabled)
	assert.Equal(t, 32.0, cfg.Physics.Camera.LeadMargin)

	assert.Equal(t, 220.0, cfg.Entities.Player.StompBounce)
	require.Contains(t, cfg.Entities.Enemies, "goomba")
	assert.Equal(t, 30.0, cfg.Entities.Enemies["goomba"].MoveSpeed)
	assert.Equal(t, 1000, cfg.Entities.PowerUp.Score)

	assert.Equal(t, 200, cfg.Gen.LengthTiles)
	assert.Equal(t, WeightRamp{Base: 10, Ramp: 15}, cfg.Gen.Weights.Gap)
}

func TestLoader_OmittedFieldsStayZero(t *testing.T) {
	cfg, err := NewFSLoader(fullFS()).LoadGen()
	require.NoError(t, err)

	assert.Zero(t, cfg.SegmentWidth, "absent keys fall back to defaults downstream")
	assert.Zero(t, cfg.Weights.Staircase)
}

func TestLoader_MissingFile(t *testing.T) {
	fsys := fullFS()
	delete(fsys, "entities.json")

	_, err := NewFSLoader(fsys).LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read entities.json")
}

func TestLoader_MalformedJSON(t *testing.T) {
	fsys := fullFS()
	fsys["gen.json"] = &fstest.MapFile{Data: []byte(`{"lengthTiles": }`)}

	_, err := NewFSLoader(fsys).LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse gen.json")
}
