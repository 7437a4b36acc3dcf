package core

import "math"

// MaxFrameDelta caps the wall time a single frame may feed into a FixedStep,
// so a stalled window does not replay seconds of simulation at once.
const MaxFrameDelta = 0.1 // seconds

// FixedStep converts variable frame times into a whole number of fixed
// simulation ticks.
type FixedStep struct {
	step float64
	acc  float64
}

// NewFixedStep creates a clock for tickRate ticks per second.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{step: 1 / float64(tickRate)}
}

// Step returns the tick length in seconds.
func (f *FixedStep) Step() float64 {
	return f.step
}

// Advance adds dt seconds of wall time and returns how many ticks are due.
// Negative dt counts as zero and dt is capped at MaxFrameDelta.
func (f *FixedStep) Advance(dt float64) int {
	if dt <= 0 || math.IsNaN(dt) {
		return 0
	}
	f.acc += ClampF(dt, 0, MaxFrameDelta)

	n := 0
	for f.acc >= f.step {
		f.acc -= f.step
		n++
	}
	return n
}
