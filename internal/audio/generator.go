package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Sweep is a sine tone gliding linearly between two frequencies with a
// short attack and a linear release.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	gain     float64
	pos      int
	phase    float64
}

// NewSweep creates a sweep lasting d.
func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration, gain float64) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, length: sr.N(d), gain: gain}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := g.gain * envelope(g.pos, g.length, g.sr) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error {
	return nil
}

// Noise is white noise with an exponential decay, used for explosions.
type Noise struct {
	sr    beep.SampleRate
	state uint64
	gain  float64
	pos   int
	last  float64
}

// NewNoise creates a noise burst.
func NewNoise(sr beep.SampleRate, seed uint64, gain float64) *Noise {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &Noise{sr: sr, state: seed, gain: gain}
}

func (g *Noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g.state ^= g.state << 13
		g.state ^= g.state >> 7
		g.state ^= g.state << 17
		white := float64(g.state>>11)/float64(1<<53)*2 - 1

		// One-pole low-pass for a duller crack
		g.last += 0.35 * (white - g.last)

		t := float64(g.pos) / float64(g.sr)
		sample := g.gain * math.Exp(-t*18) * g.last
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Noise) Err() error {
	return nil
}

// Arpeggio plays notes back to back, each for an equal share of d.
type Arpeggio struct {
	sr      beep.SampleRate
	notes   []float64
	perNote int
	gain    float64
	pos     int
	phase   float64
}

// NewArpeggio creates an arpeggio over notes lasting d.
func NewArpeggio(sr beep.SampleRate, notes []float64, d time.Duration, gain float64) *Arpeggio {
	per := 1
	if len(notes) > 0 {
		per = max(sr.N(d)/len(notes), 1)
	}
	return &Arpeggio{sr: sr, notes: notes, perNote: per, gain: gain}
}

func (g *Arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		return 0, false
	}
	for i := range samples {
		idx := min(g.pos/g.perNote, len(g.notes)-1)
		g.phase += 2 * math.Pi * g.notes[idx] / float64(g.sr)

		sample := g.gain * envelope(g.pos%g.perNote, g.perNote, g.sr) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Arpeggio) Err() error {
	return nil
}

// envelope ramps up over 5ms and down linearly to the end of length.
func envelope(pos, length int, sr beep.SampleRate) float64 {
	attack := float64(sr.N(5 * time.Millisecond))
	a := math.Min(float64(pos)/attack, 1)
	r := math.Max(1-float64(pos)/float64(length), 0)
	return a * r
}
