package defender

import (
	"math"

	"github.com/vovakirdan/defender/internal/config"
)

// Phase is the formation movement phase.
type Phase int

const (
	// PhaseAdvancing sweeps the formation sideways.
	PhaseAdvancing Phase = iota
	// PhaseDescending drops the formation straight down.
	PhaseDescending
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseDescending {
		return "descending"
	}
	return "advancing"
}

// Coordinator moves the formation as one body. Sideways sweeps and descents
// never happen in the same frame.
type Coordinator struct {
	Phase     Phase
	Direction float64 // shared sign, flipped on every reversal
	Speed     float64 // horizontal speed in px/s
	Remaining float64 // descent still to cover, > 0 only while descending

	worldW       float64
	margin       float64
	step         float64
	descentSpeed float64
}

// NewCoordinator creates a coordinator in the advancing phase.
func NewCoordinator(cfg config.DefenderConfig) *Coordinator {
	c := &Coordinator{
		worldW:       cfg.World.Width,
		margin:       cfg.Enemy.EdgeMargin,
		step:         cfg.Descent.Step,
		descentSpeed: cfg.Descent.Speed,
	}
	c.Reset(cfg.Difficulty.InitialSpeed)
	return c
}

// Reset returns to advancing with direction +1 and no pending descent.
func (c *Coordinator) Reset(speed float64) {
	c.Phase = PhaseAdvancing
	c.Direction = 1
	c.Speed = speed
	c.Remaining = 0
}

// Advance moves the formation for one frame and reports whether it reversed.
func (c *Coordinator) Advance(enemies []Enemy, dt float64) bool {
	if c.Phase == PhaseDescending {
		c.descend(enemies, dt)
		return false
	}

	hitEdge := false
	for i := range enemies {
		enemies[i].Update(enemies[i].Direction, c.Speed, dt)
		if enemies[i].movingIntoEdge(c.worldW, c.margin) {
			hitEdge = true
		}
	}
	if !hitEdge {
		return false
	}

	c.Direction = -c.Direction
	for i := range enemies {
		enemies[i].Direction = -enemies[i].Direction
		enemies[i].X = math.Max(c.margin, math.Min(enemies[i].X, c.worldW-c.margin))
	}
	c.Remaining = c.step
	if c.Remaining > 0 {
		c.Phase = PhaseDescending
	}
	return true
}

// descend lowers every enemy by at most descentSpeed*dt without passing the
// remaining distance.
func (c *Coordinator) descend(enemies []Enemy, dt float64) {
	drop := math.Min(c.descentSpeed*dt, c.Remaining)
	for i := range enemies {
		enemies[i].Y += drop
	}
	c.Remaining -= drop
	if c.Remaining <= 0 {
		c.Remaining = 0
		c.Phase = PhaseAdvancing
	}
}
