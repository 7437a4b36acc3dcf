package core

import "time"

// ScoreRecord is one persisted high score.
type ScoreRecord struct {
	Name      string
	Score     uint32
	CreatedAt time.Time
}

// ScoreBook is the persistence collaborator. SaveScore is fire-and-forget:
// implementations swallow (and log) their own failures.
type ScoreBook interface {
	SaveScore(name string, score uint32)
	TopScores(n int) []ScoreRecord
}

// Cue is an audio cue raised by the simulation.
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueWaveClear
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueWaveClear:
		return "wave_clear"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CueSink receives audio cues. Cue must not block.
type CueSink interface {
	Cue(c Cue)
}

// NopScores is a ScoreBook that stores nothing.
type NopScores struct{}

// SaveScore discards the score.
func (NopScores) SaveScore(string, uint32) {}

// TopScores returns nil.
func (NopScores) TopScores(int) []ScoreRecord { return nil }

// NopCues is a silent CueSink.
type NopCues struct{}

// Cue discards the cue.
func (NopCues) Cue(Cue) {}
