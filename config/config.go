package config

// Speeds are in pixels per second, accelerations in pixels per second squared
// and durations in seconds. The world is y-down.

// PhysicsConfig contains world-wide integration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`

	// Collision
	SkinWidth             float64 `yaml:"skinWidth"`
	MaxStep               float64 `yaml:"maxStep"`      // Longest distance covered by one sub-step
	SnapDistance          float64 `yaml:"snapDistance"` // Ground probe length for staying on descending slopes
	PlatformDropThreshold float64 `yaml:"platformDropThreshold"`
	ResolveIterations     int     `yaml:"resolveIterations"`
	CellSize              int     `yaml:"cellSize"`
}

// MovementConfig is the per-entity locomotion tuning. It is copied into each
// controller at construction and never changes afterwards.
type MovementConfig struct {
	MaxSpeed         float64 `yaml:"maxSpeed"`
	JumpSpeed        float64 `yaml:"jumpSpeed"`
	GravityScale     float64 `yaml:"gravityScale"`
	MaxWalkableAngle float64 `yaml:"maxWalkableAngle"` // Degrees from up

	// Horizontal blending. Zero or less snaps to the target.
	GroundAccel float64 `yaml:"groundAccel"`
	GroundDecel float64 `yaml:"groundDecel"`
	AirAccel    float64 `yaml:"airAccel"`
	AirDecel    float64 `yaml:"airDecel"`

	JumpCancelFactor float64 `yaml:"jumpCancelFactor"`

	// Dash
	DashEnabled  bool    `yaml:"dashEnabled"`
	DashSpeed    float64 `yaml:"dashSpeed"`
	DashDuration float64 `yaml:"dashDuration"`
	DashCooldown float64 `yaml:"dashCooldown"`
}

// CharacterConfig describes one controller variant
type CharacterConfig struct {
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
	Health   int            `yaml:"health"`
	Movement MovementConfig `yaml:"movement"`
}

// BounceConfig contains the bouncing form values
type BounceConfig struct {
	BounceSpeed float64 `yaml:"bounceSpeed"` // Takeoff speed of every bounce
}

// PatrolConfig contains autonomous walker values
type PatrolConfig struct {
	SpeedFactor float64 `yaml:"speedFactor"` // Fraction of MaxSpeed used while patrolling
	LedgeProbe  float64 `yaml:"ledgeProbe"`  // Depth checked below the leading foot
}

// PossessionConfig contains possession values
type PossessionConfig struct {
	RespawnFilter string `yaml:"respawnFilter"`

	// Where a released possessor's feet go, relative to the feet of the
	// body it leaves
	SpawnOffsetX float64 `yaml:"spawnOffsetX"`
	SpawnOffsetY float64 `yaml:"spawnOffsetY"`
}

// FlowConfig contains level sequencing values
type FlowConfig struct {
	FadeInDuration           float64 `yaml:"fadeInDuration"`
	FadeOutDuration          float64 `yaml:"fadeOutDuration"`
	EnableControlAfterFadeIn bool    `yaml:"enableControlAfterFadeIn"`
}

// Tuning groups every tunable value. It is what tuning files decode into.
type Tuning struct {
	Physics    PhysicsConfig       `yaml:"physics"`
	Player     CharacterConfig     `yaml:"player"`
	Walker     CharacterConfig     `yaml:"walker"`
	Bouncer    CharacterConfig     `yaml:"bouncer"`
	Bounce     BounceConfig        `yaml:"bounce"`
	Patrol     PatrolConfig        `yaml:"patrol"`
	Possession PossessionConfig    `yaml:"possession"`
	Flow       FlowConfig          `yaml:"flow"`
	Filters    map[string][]string `yaml:"filters"`
}

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Names of the contact filters known to every level
const (
	FilterRespawn = "respawn"
	FilterSolid   = "solid"
)

var Physics PhysicsConfig
var Player CharacterConfig
var Walker CharacterConfig
var Bouncer CharacterConfig
var Bounce BounceConfig
var Patrol PatrolConfig
var Possession PossessionConfig
var Flow FlowConfig

func init() {
	t := DefaultTuning()

	Physics = t.Physics
	Player = t.Player
	Walker = t.Walker
	Bouncer = t.Bouncer
	Bounce = t.Bounce
	Patrol = t.Patrol
	Possession = t.Possession
	Flow = t.Flow
}

// DefaultTuning returns a fresh copy of the built-in values.
func DefaultTuning() Tuning {
	return Tuning{
		Physics: PhysicsConfig{
			Gravity:      2700,
			MaxFallSpeed: 600,

			SkinWidth:             0.5,
			MaxStep:               4,
			SnapDistance:          6,
			PlatformDropThreshold: 4, // Pixels above platform to allow drop-through
			ResolveIterations:     4,
			CellSize:              16,
		},
		Player: CharacterConfig{
			Width:  16,
			Height: 40,
			Health: 1,
			Movement: MovementConfig{
				MaxSpeed:         360,
				JumpSpeed:        900,
				GravityScale:     1,
				MaxWalkableAngle: 50,
				GroundAccel:      0,
				GroundDecel:      0,
				AirAccel:         2700,
				AirDecel:         1800,
				JumpCancelFactor: 0.5,

				DashEnabled:  false,
				DashSpeed:    720,
				DashDuration: 0.15,
				DashCooldown: 0.5,
			},
		},
		Walker: CharacterConfig{
			Width:  16,
			Height: 32,
			Health: 3,
			Movement: MovementConfig{
				MaxSpeed:         180,
				JumpSpeed:        720,
				GravityScale:     1,
				MaxWalkableAngle: 50,
				AirAccel:         1800,
				AirDecel:         1200,
				JumpCancelFactor: 0.5,
			},
		},
		Bouncer: CharacterConfig{
			Width:  16,
			Height: 16,
			Health: 1,
			Movement: MovementConfig{
				MaxSpeed:         240,
				JumpSpeed:        780,
				GravityScale:     1,
				MaxWalkableAngle: 50,
				GroundAccel:      1800,
				GroundDecel:      1800,
				AirAccel:         1200,
				AirDecel:         600,
				JumpCancelFactor: 0.5,
			},
		},
		Bounce: BounceConfig{
			BounceSpeed: 780,
		},
		Patrol: PatrolConfig{
			SpeedFactor: 0.5,
			LedgeProbe:  8,
		},
		Possession: PossessionConfig{
			RespawnFilter: FilterRespawn,
			SpawnOffsetX:  -20,
			SpawnOffsetY:  0,
		},
		Flow: FlowConfig{
			FadeInDuration:           0.5,
			FadeOutDuration:          0.5,
			EnableControlAfterFadeIn: true,
		},
		Filters: map[string][]string{
			FilterRespawn: {"solid", "ramp", "character"},
			FilterSolid:   {"solid"},
		},
	}
}
