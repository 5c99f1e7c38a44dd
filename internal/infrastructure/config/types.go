package config

// PhysicsConfig is the root config for physics.json.
type PhysicsConfig struct {
	Display  DisplayConfig  `json:"display"`
	Step     StepConfig     `json:"step"`
	Physics  PhysicsValues  `json:"physics"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Camera   CameraConfig   `json:"camera"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// StepConfig controls the fixed-timestep accumulator.
type StepConfig struct {
	TimestepHz       int `json:"timestepHz"`
	MaxStepsPerFrame int `json:"maxStepsPerFrame"`
}

type PhysicsValues struct {
	Gravity      float64 `json:"gravity"`      // px/s²
	MaxFallSpeed float64 `json:"maxFallSpeed"` // px/s
}

type MovementConfig struct {
	Acceleration    float64 `json:"acceleration"`
	Deceleration    float64 `json:"deceleration"`
	MaxSpeed        float64 `json:"maxSpeed"`
	RunMultiplier   float64 `json:"runMultiplier"`
	AirControl      float64 `json:"airControl"`
	TurnaroundBoost float64 `json:"turnaroundBoost"`
}

type JumpConfig struct {
	Force                  float64            `json:"force"`
	VariableJumpMultiplier float64            `json:"variableJumpMultiplier"`
	CoyoteTime             float64            `json:"coyoteTime"`
	JumpBuffer             float64            `json:"jumpBuffer"`
	FallMultiplier         float64            `json:"fallMultiplier"`
	ApexModifier           ApexModifierConfig `json:"apexModifier"`
}

type ApexModifierConfig struct {
	Enabled           bool    `json:"enabled"`
	Threshold         float64 `json:"threshold"`
	GravityMultiplier float64 `json:"gravityMultiplier"`
}

type CameraConfig struct {
	LeadMargin float64 `json:"leadMargin"` // px ahead of the player in facing direction
}

// EntitiesConfig is the root config for entities.json.
type EntitiesConfig struct {
	Player   PlayerConfig           `json:"player"`
	Fireball FireballConfig         `json:"fireball"`
	Enemies  map[string]EnemyConfig `json:"enemies"`
	Coin     PickupConfig           `json:"coin"`
	PowerUp  PickupConfig           `json:"powerUp"`
}

type PlayerConfig struct {
	StompBounce   float64 `json:"stompBounce"`
	Iframes       float64 `json:"iframes"`
	DeathHop      float64 `json:"deathHop"`
	DeathDuration float64 `json:"deathDuration"`
}

type FireballConfig struct {
	Speed    float64 `json:"speed"`
	BounceVY float64 `json:"bounceVY"`
	Lifetime float64 `json:"lifetime"`
	Cooldown float64 `json:"cooldown"`
}

type EnemyConfig struct {
	MoveSpeed float64 `json:"moveSpeed"`
	Score     int     `json:"score"`
}

type PickupConfig struct {
	Score int `json:"score"`
}

// GenConfig is the root config for gen.json.
type GenConfig struct {
	LengthTiles   int `json:"lengthTiles"`
	HeightTiles   int `json:"heightTiles"`
	SegmentWidth  int `json:"segmentWidth"`
	SafeZoneWidth int `json:"safeZoneWidth"`
	MaxGapWidth   int `json:"maxGapWidth"`
	MaxRetries    int `json:"maxRetries"`

	Weights ArchetypeWeights `json:"weights"`
}

// ArchetypeWeights are the base selection weights per segment archetype.
// Ramp values are added per unit of difficulty progress (0..1 across the
// level), so harder archetypes become more likely toward the end.
type ArchetypeWeights struct {
	Flat      WeightRamp `json:"flat"`
	Gap       WeightRamp `json:"gap"`
	Staircase WeightRamp `json:"staircase"`
	Pipes     WeightRamp `json:"pipes"`
	Enemies   WeightRamp `json:"enemies"`
	Reward    WeightRamp `json:"reward"`
}

type WeightRamp struct {
	Base int `json:"base"`
	Ramp int `json:"ramp"`
}
