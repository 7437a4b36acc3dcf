package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/defender/internal/core"
	"github.com/vovakirdan/defender/internal/registry"
)

// Services are the collaborators the frontend hands to every game it
// creates. Any field may be nil.
type Services struct {
	// Books returns the score book for a mode.
	Books func(gameID string) core.ScoreBook

	// Cues receives audio cues.
	Cues core.CueSink

	// Logger receives game logs.
	Logger *log.Logger
}

// Book returns the score book for gameID, never nil.
func (s Services) Book(gameID string) core.ScoreBook {
	if s.Books == nil {
		return core.NopScores{}
	}
	if b := s.Books(gameID); b != nil {
		return b
	}
	return core.NopScores{}
}

// Collaborators returns the registry collaborators for gameID.
func (s Services) Collaborators(gameID string) registry.Collaborators {
	return registry.Collaborators{
		Scores: s.Book(gameID),
		Cues:   s.Cues,
		Logger: s.Logger,
	}
}

// CreateGame instantiates and wires a registered mode.
func (s Services) CreateGame(gameID string) (registry.Game, error) {
	return registry.CreateWired(gameID, s.Collaborators(gameID))
}
