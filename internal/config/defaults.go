package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Level: "meadow",
		Physics: PlatformerPhysics{
			Gravity:     -20,
			JumpImpulse: 5,
			JumpHold:    6,
			MoveAccel:   6,
			FrictionX:   4,
			FrictionY:   0.7,
			MaxFall:     5.5,
		},
		Player: PlatformerPlayer{
			Width:  0.1,
			Height: 0.1,
		},
		Collision: CollisionConfig{
			Epsilon: 0.005,
		},
		Gameplay: PlatformerGameplay{
			Lives:     3,
			KeyPoints: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 0,
			},
		},
	}
}

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: InvadersField{
			Width:  60,
			Height: 22,
		},
		Formation: InvadersFormation{
			Rows:        2,
			Cols:        5,
			EnemyWidth:  3,
			EnemyHeight: 1,
			SpacingX:    6,
			SpacingY:    2,
			Top:         2,
			MarchSpeed:  4,
			DropY:       1,
		},
		Player: InvadersPlayer{
			Width:  3,
			Height: 1,
			Speed:  30,
		},
		Bullets: InvadersBullets{
			Capacity:      10,
			Speed:         30,
			Cooldown:      0.25,
			EnemySpeed:    12,
			EnemyFireRate: 0.8,
		},
		Gameplay: InvadersGameplay{
			Lives:       3,
			EnemyPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				RateMultiplier:  1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) ([]byte, error) {
	switch gameID {
	case GamePlatformer:
		return defaultPlatformerYAML, nil
	case GameInvaders:
		return defaultInvadersYAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}
}
