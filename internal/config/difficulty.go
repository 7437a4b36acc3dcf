package config

import "math"

// DifficultyManager computes the formation speed for a wave.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for the given settings.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled toggles per-wave scaling.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether per-wave scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.SpeedPerWave > 0
}

// EnemySpeed returns initial + (wave-1)*perWave, capped at MaxSpeed when
// set. Waves below 1 count as wave 1.
func (d *DifficultyManager) EnemySpeed(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	if !d.IsEnabled() {
		return d.cfg.InitialSpeed
	}
	speed := d.cfg.InitialSpeed + float64(wave-1)*d.cfg.SpeedPerWave
	if d.cfg.MaxSpeed > 0 {
		speed = math.Min(speed, d.cfg.MaxSpeed)
	}
	return speed
}

// Increment returns the speed delta applied per cleared wave.
func (d *DifficultyManager) Increment() float64 {
	if !d.IsEnabled() {
		return 0
	}
	return d.cfg.SpeedPerWave
}
