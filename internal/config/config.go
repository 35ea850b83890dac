// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGame is returned for a game ID that has no configuration.
var ErrUnknownGame = errors.New("config: unknown game")

// Game IDs with a configuration file.
const (
	GamePlatformer = "platformer"
	GameInvaders   = "invaders"
)

// PlatformerConfig contains all configuration for the platformer.
// Distances are world units (one tile is usually 0.1), times are seconds.
type PlatformerConfig struct {
	Level      string             `yaml:"level"` // built-in level ID or file path
	Physics    PlatformerPhysics  `yaml:"physics"`
	Player     PlatformerPlayer   `yaml:"player"`
	Collision  CollisionConfig    `yaml:"collision"`
	Gameplay   PlatformerGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPhysics defines integration parameters for the actor.
type PlatformerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	JumpHold    float64 `yaml:"jump_hold"` // upward acceleration while jump is held
	MoveAccel   float64 `yaml:"move_accel"`
	FrictionX   float64 `yaml:"friction_x"`
	FrictionY   float64 `yaml:"friction_y"`
	MaxFall     float64 `yaml:"max_fall"`
}

// PlatformerPlayer defines the actor's bounding box.
type PlatformerPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CollisionConfig tunes the tile resolver.
type CollisionConfig struct {
	Epsilon         float64 `yaml:"epsilon"`
	SingleDirection bool    `yaml:"single_direction"`
}

// PlatformerGameplay defines lives and scoring.
type PlatformerGameplay struct {
	Lives     int `yaml:"lives"`
	KeyPoints int `yaml:"key_points"`
}

// InvadersConfig contains all configuration for Invaders.
// Positions are field cells, speeds are cells per second.
type InvadersConfig struct {
	Field      InvadersField     `yaml:"field"`
	Formation  InvadersFormation `yaml:"formation"`
	Player     InvadersPlayer    `yaml:"player"`
	Bullets    InvadersBullets   `yaml:"bullets"`
	Gameplay   InvadersGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersField is the logical playfield size.
type InvadersField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersFormation defines the enemy grid and its march.
type InvadersFormation struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	EnemyWidth  float64 `yaml:"enemy_width"`
	EnemyHeight float64 `yaml:"enemy_height"`
	SpacingX    float64 `yaml:"spacing_x"`
	SpacingY    float64 `yaml:"spacing_y"`
	Top         float64 `yaml:"top"`
	MarchSpeed  float64 `yaml:"march_speed"`
	DropY       float64 `yaml:"drop_y"`
}

// InvadersPlayer defines the ship.
type InvadersPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// InvadersBullets defines player and enemy fire.
type InvadersBullets struct {
	Capacity      int     `yaml:"capacity"` // ring buffer slots
	Speed         float64 `yaml:"speed"`
	Cooldown      float64 `yaml:"cooldown"`
	EnemySpeed    float64 `yaml:"enemy_speed"`
	EnemyFireRate float64 `yaml:"enemy_fire_rate"` // expected shots per second
}

// InvadersGameplay defines lives and scoring.
type InvadersGameplay struct {
	Lives       int `yaml:"lives"`
	EnemyPoints int `yaml:"enemy_points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	RateMultiplier  float64 `yaml:"rate_multiplier"`  // Multiplier added to fire rates at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: invalid difficulty %q (use easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
