package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the built-in tuning, used when no YAML can be
// read and as the base that YAML files override.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		World: WorldConfig{
			Width:  1024,
			Height: 768,
		},
		Player: PlayerConfig{
			Speed:           300,
			Width:           50,
			WidthPerUpgrade: 20,
			StartShots:      1,
			MaxShots:        3,
			BottomOffset:    50,
		},
		Bullet: BulletConfig{
			Speed: 700,
		},
		Enemy: EnemyConfig{
			EdgeMargin:      20,
			DefenderLine:    100,
			CollisionRadius: 20,
		},
		Formation: FormationConfig{
			Pattern:  PatternGrid,
			Rows:     5,
			Cols:     10,
			SpacingX: 60,
			SpacingY: 50,
			StartY:   50,
		},
		Descent: DescentConfig{
			Step:  40,
			Speed: 120,
		},
		Scoring: ScoringConfig{
			Standard: 10,
			Fast:     20,
			Swooper:  30,
			Tank:     50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialSpeed: 150,
			SpeedPerWave: 20,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultDefenderYAML
}
