// Package config loads the YAML tuning file for the shooter and turns
// difficulty presets into concrete speed parameters.
package config

// DefenderConfig holds every tunable of the simulation.
type DefenderConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Formation  FormationConfig  `yaml:"formation"`
	Descent    DescentConfig    `yaml:"descent"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig is the logical playfield size in pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the cannon.
type PlayerConfig struct {
	Speed           float64 `yaml:"speed"`             // px/s
	Width           float64 `yaml:"width"`             // starting base width
	WidthPerUpgrade float64 `yaml:"width_per_upgrade"` // added on every upgrade
	StartShots      int     `yaml:"start_shots"`
	MaxShots        int     `yaml:"max_shots"`
	BottomOffset    float64 `yaml:"bottom_offset"` // player y = height - offset
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Speed float64 `yaml:"speed"` // px/s, upward
}

// EnemyConfig defines formation members and the loss line.
type EnemyConfig struct {
	EdgeMargin      float64 `yaml:"edge_margin"`
	DefenderLine    float64 `yaml:"defender_line"` // distance from the bottom edge
	CollisionRadius float64 `yaml:"collision_radius"`
}

// FormationConfig defines how waves are laid out.
type FormationConfig struct {
	Pattern  string  `yaml:"pattern"` // "grid" or "scattered"
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
	StartY   float64 `yaml:"start_y"`
	Layout   string  `yaml:"layout"` // optional path to a layout file
}

// DescentConfig defines the drop after an edge reversal.
type DescentConfig struct {
	Step  float64 `yaml:"step"`  // px dropped per reversal
	Speed float64 `yaml:"speed"` // px/s while dropping
}

// ScoringConfig holds kill values per enemy variant.
type ScoringConfig struct {
	Standard uint32 `yaml:"standard"`
	Fast     uint32 `yaml:"fast"`
	Swooper  uint32 `yaml:"swooper"`
	Tank     uint32 `yaml:"tank"`
}

// DifficultyConfig defines wave-to-wave speed scaling.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialSpeed float64 `yaml:"initial_speed"`  // formation speed on wave 1
	SpeedPerWave float64 `yaml:"speed_per_wave"` // added on every cleared wave
	MaxSpeed     float64 `yaml:"max_speed"`      // 0 = uncapped
}

// Formation pattern names.
const (
	PatternGrid      = "grid"
	PatternScattered = "scattered"
)

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables per-wave scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
