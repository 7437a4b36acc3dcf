package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/defender/internal/audio"
	"github.com/vovakirdan/defender/internal/core"
	"github.com/vovakirdan/defender/internal/games/defender"
	"github.com/vovakirdan/defender/internal/highscore"
	"github.com/vovakirdan/defender/internal/logging"
	"github.com/vovakirdan/defender/internal/platform/tui"
	"github.com/vovakirdan/defender/internal/storage"
)

// Score store kinds for --store.
const (
	storeSQLite = "sqlite"
	storeFile   = "file"
)

// session owns the collaborators of one local run.
type session struct {
	logger   *log.Logger
	closeLog func() error
	store    *storage.Store
	files    map[string]*highscore.File
	player   *audio.Player
}

// openSession sets up logging and the score store. Failures degrade to a
// warning: the game runs without persistence.
func openSession() (*session, error) {
	s := &session{files: make(map[string]*highscore.File)}

	logger, closeLog, err := logging.New(logging.Options{
		Path:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: "defender",
	})
	if err != nil {
		return nil, err
	}
	s.logger = logger
	s.closeLog = closeLog

	switch flagStore {
	case storeSQLite:
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", openErr)
			// Continue without storage - game still works
			break
		}
		s.store = store
	case storeFile:
	default:
		s.Close()
		return nil, fmt.Errorf("unknown score store %q (want %s or %s)", flagStore, storeSQLite, storeFile)
	}

	return s, nil
}

// enableSound starts the audio device. A missing device is a warning.
func (s *session) enableSound() {
	p := audio.New(s.logger)
	if err := p.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return
	}
	s.player = p
}

// book returns the score book for gameID.
func (s *session) book(gameID string) core.ScoreBook {
	if flagStore == storeFile {
		return s.file(gameID)
	}
	if s.store == nil {
		return nil
	}
	return s.store.Book(gameID, s.logger)
}

// file opens the flat score file of gameID once. The grid mode uses
// --scores-file as is, other modes get a suffixed sibling.
func (s *session) file(gameID string) core.ScoreBook {
	if f, ok := s.files[gameID]; ok {
		return f
	}

	path := flagScoresFile
	if gameID != defender.ModeGrid {
		ext := filepath.Ext(path)
		path = strings.TrimSuffix(path, ext) + "_" + gameID + ext
	}
	f, err := highscore.Open(path, s.logger)
	if err != nil {
		s.logger.Warn("score file disabled", "path", path, "error", err)
		return nil
	}
	s.files[gameID] = f
	return f
}

// services returns the collaborators handed to every created game.
func (s *session) services() tui.Services {
	svc := tui.Services{
		Books:  s.book,
		Logger: s.logger,
	}
	if s.player != nil {
		svc.Cues = s.player
	}
	return svc
}

// Close releases the store, the audio device and the log file.
func (s *session) Close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.closeLog != nil {
		//nolint:errcheck // Best-effort close on exit
		s.closeLog()
	}
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
