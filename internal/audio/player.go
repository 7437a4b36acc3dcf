// Package audio synthesizes the game's sound cues with beep. Nothing is
// loaded from disk; every cue is a short generated streamer.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/defender/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Cue lengths.
const (
	shootDuration     = 80 * time.Millisecond
	hitDuration       = 140 * time.Millisecond
	waveClearDuration = 360 * time.Millisecond
	gameOverDuration  = 700 * time.Millisecond
)

// Player plays cues through the system speaker. The zero value is not
// usable; call New.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	seed        uint64
}

// New creates a player. Init must succeed before cues are heard.
func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
		seed:   uint64(time.Now().UnixNano()), //#nosec G115 -- noise seed
	}
}

// Init opens the speaker. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Cue implements core.CueSink. It is silent until Init succeeds.
func (p *Player) Cue(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.seed++
	s := Streamer(c, p.seed)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every playing cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

// Streamer returns the finite streamer for a cue, or nil for an unknown
// cue. seed only affects noise-based cues.
func Streamer(c core.Cue, seed uint64) beep.Streamer {
	switch c {
	case core.CueShoot:
		return beep.Take(sampleRate.N(shootDuration), NewSweep(sampleRate, 880, 440, shootDuration, 0.18))
	case core.CueHit:
		return beep.Take(sampleRate.N(hitDuration), NewNoise(sampleRate, seed, 0.25))
	case core.CueWaveClear:
		return beep.Take(sampleRate.N(waveClearDuration), NewArpeggio(sampleRate, []float64{523.25, 659.25, 783.99}, waveClearDuration, 0.2))
	case core.CueGameOver:
		return beep.Take(sampleRate.N(gameOverDuration), NewSweep(sampleRate, 330, 82, gameOverDuration, 0.22))
	default:
		return nil
	}
}

var _ core.CueSink = (*Player)(nil)
