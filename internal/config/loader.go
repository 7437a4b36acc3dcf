package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "defender.yaml"

// LoadDefender loads the shooter configuration.
// Search order: customPath -> ~/.defender/configs/defender.yaml ->
// ./configs/defender.yaml -> embedded default -> DefaultDefenderConfig.
// Only an unreadable or malformed custom path is an error; the other
// locations are skipped when they fail.
func LoadDefender(customPath string) (DefenderConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseDefender(data)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDefender(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := ParseDefender(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseDefender(defaultDefenderYAML)
	if err != nil {
		return DefaultDefenderConfig(), nil
	}
	return cfg, nil
}

// ParseDefender decodes YAML over the built-in defaults and repairs any
// unusable values.
func ParseDefender(data []byte) (DefenderConfig, error) {
	cfg := DefaultDefenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

// userConfigPath returns the path of a file in the user config directory,
// or empty if the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".defender", "configs", filename)
}

// ApplyDefenderPreset adjusts speed scaling for a difficulty preset. An
// empty preset leaves the config untouched.
func ApplyDefenderPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialSpeed = 120
		cfg.Difficulty.SpeedPerWave = 15
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialSpeed = 150
		cfg.Difficulty.SpeedPerWave = 20
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialSpeed = 190
		cfg.Difficulty.SpeedPerWave = 30
		cfg.Descent.Speed = 160
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// Validate replaces non-positive or out-of-range values with defaults and
// returns the keys it repaired.
func (c *DefenderConfig) Validate() []string {
	def := DefaultDefenderConfig()
	var fixed []string

	fixF := func(key string, v *float64, d float64) {
		if *v <= 0 {
			*v = d
			fixed = append(fixed, key)
		}
	}
	fixI := func(key string, v *int, d int) {
		if *v <= 0 {
			*v = d
			fixed = append(fixed, key)
		}
	}

	fixF("world.width", &c.World.Width, def.World.Width)
	fixF("world.height", &c.World.Height, def.World.Height)
	fixF("player.speed", &c.Player.Speed, def.Player.Speed)
	fixF("player.width", &c.Player.Width, def.Player.Width)
	fixI("player.start_shots", &c.Player.StartShots, def.Player.StartShots)
	fixI("player.max_shots", &c.Player.MaxShots, def.Player.MaxShots)
	fixF("bullet.speed", &c.Bullet.Speed, def.Bullet.Speed)
	fixF("enemy.edge_margin", &c.Enemy.EdgeMargin, def.Enemy.EdgeMargin)
	fixF("enemy.defender_line", &c.Enemy.DefenderLine, def.Enemy.DefenderLine)
	fixF("enemy.collision_radius", &c.Enemy.CollisionRadius, def.Enemy.CollisionRadius)
	fixI("formation.rows", &c.Formation.Rows, def.Formation.Rows)
	fixI("formation.cols", &c.Formation.Cols, def.Formation.Cols)
	fixF("formation.spacing_x", &c.Formation.SpacingX, def.Formation.SpacingX)
	fixF("formation.spacing_y", &c.Formation.SpacingY, def.Formation.SpacingY)
	fixF("formation.start_y", &c.Formation.StartY, def.Formation.StartY)
	fixF("descent.step", &c.Descent.Step, def.Descent.Step)
	fixF("descent.speed", &c.Descent.Speed, def.Descent.Speed)
	fixF("difficulty.initial_speed", &c.Difficulty.InitialSpeed, def.Difficulty.InitialSpeed)

	if c.Player.WidthPerUpgrade < 0 {
		c.Player.WidthPerUpgrade = def.Player.WidthPerUpgrade
		fixed = append(fixed, "player.width_per_upgrade")
	}
	if c.Player.BottomOffset <= 0 || c.Player.BottomOffset >= c.World.Height {
		c.Player.BottomOffset = def.Player.BottomOffset
		fixed = append(fixed, "player.bottom_offset")
	}
	if c.Player.StartShots > c.Player.MaxShots {
		c.Player.StartShots = c.Player.MaxShots
		fixed = append(fixed, "player.start_shots")
	}
	if c.Difficulty.SpeedPerWave < 0 {
		c.Difficulty.SpeedPerWave = 0
		fixed = append(fixed, "difficulty.speed_per_wave")
	}
	if c.Formation.Pattern != PatternGrid && c.Formation.Pattern != PatternScattered {
		c.Formation.Pattern = PatternGrid
		fixed = append(fixed, "formation.pattern")
	}
	if c.Scoring == (ScoringConfig{}) {
		c.Scoring = def.Scoring
		fixed = append(fixed, "scoring")
	}

	return fixed
}
