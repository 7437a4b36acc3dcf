package storage

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/defender/internal/core"
)

// Book is a core.ScoreBook over one game's rows. Failures are logged and
// swallowed.
type Book struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// Book returns the score book for gameID. A nil logger discards output.
func (s *Store) Book(gameID string, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Book{store: s, gameID: gameID, logger: logger}
}

// SaveScore implements core.ScoreBook.
func (b *Book) SaveScore(name string, score uint32) {
	if _, err := b.store.SaveScore(b.gameID, name, int(score)); err != nil {
		b.logger.Warn("score not saved", "game", b.gameID, "player", name, "score", score, "error", err)
		return
	}
	b.logger.Info("score saved", "game", b.gameID, "player", name, "score", score)
}

// TopScores implements core.ScoreBook.
func (b *Book) TopScores(n int) []core.ScoreRecord {
	entries, err := b.store.TopScores(b.gameID, n)
	if err != nil {
		b.logger.Warn("cannot load scores", "game", b.gameID, "error", err)
		return nil
	}

	records := make([]core.ScoreRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, core.ScoreRecord{
			Name:      e.PlayerName,
			Score:     clampScore(e.Score),
			CreatedAt: e.CreatedAt,
		})
	}
	return records
}

func clampScore(v int) uint32 {
	switch {
	case v < 0:
		return 0
	case int64(v) > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v) //#nosec G115 -- bounds checked above
	}
}

var _ core.ScoreBook = (*Book)(nil)
