// Package defender is the simulation core of a fixed-formation shooter. The
// Machine owns the player, bullets and enemy formation, advances them once
// per frame and moves between the Menu, Playing and GameOver states. The
// Game type adapts it to the platform registry for terminal play.
package defender

import (
	"io"
	"math"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/defender/internal/config"
	"github.com/vovakirdan/defender/internal/core"
)

// MaxNameLength caps player names.
const MaxNameLength = 20

// State is the top-level game state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Machine is the authoritative game state. It is not safe for concurrent
// use; drive it from a single frame loop.
type Machine struct {
	cfg        config.DefenderConfig
	player     *Player
	bullets    []Bullet
	enemies    []Enemy
	coord      *Coordinator
	gen        *Generator
	resolver   Resolver
	difficulty *config.DifficultyManager

	state State
	name  string
	score uint32
	wave  int

	events []Event
	scores core.ScoreBook
	logger *log.Logger
}

// NewMachine creates a machine in the Menu state with wave 1 laid out.
func NewMachine(cfg config.DefenderConfig, seed uint64) *Machine {
	cfg.Validate()
	m := &Machine{
		cfg:        cfg,
		player:     NewPlayer(cfg),
		coord:      NewCoordinator(cfg),
		gen:        NewGenerator(cfg, seed),
		resolver:   Resolver{Radius: cfg.Enemy.CollisionRadius},
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.New(io.Discard),
	}
	m.Reset()
	return m
}

// SetScoreBook sets the persistence collaborator. nil disables saving.
func (m *Machine) SetScoreBook(b core.ScoreBook) {
	m.scores = b
}

// SetLogger sets the logger. nil discards log output.
func (m *Machine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	m.logger = l
}

// SetLayout switches to a hand-drawn formation and relays the current wave
// when the game has not started.
func (m *Machine) SetLayout(l *Layout) {
	m.gen.SetLayout(l)
	if m.state == StateMenu {
		m.enemies = m.gen.Generate(m.wave)
	}
}

// Config returns the effective configuration.
func (m *Machine) Config() config.DefenderConfig {
	return m.cfg
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Score returns the current score.
func (m *Machine) Score() uint32 { return m.score }

// Wave returns the current wave number.
func (m *Machine) Wave() int { return m.wave }

// Name returns the current player name.
func (m *Machine) Name() string { return m.name }

// SanitizeName keeps letters and digits and truncates to MaxNameLength.
func SanitizeName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.TrimSpace(name) {
		if n == MaxNameLength {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}

// StartGame moves from Menu to Playing. It returns false, changing nothing,
// when not in Menu or when the sanitized name is empty.
func (m *Machine) StartGame(name string) bool {
	if m.state != StateMenu {
		return false
	}
	name = SanitizeName(name)
	if name == "" {
		return false
	}

	m.resetEntities()
	m.name = name
	m.state = StatePlaying
	m.logger.Info("game started", "player", name, "pattern", m.gen.Pattern())
	m.logWave()
	return true
}

// Reset returns to Menu from any state with wave 1, zero score, a fresh
// player and formation, and no name. Calling it repeatedly is harmless.
func (m *Machine) Reset() {
	m.resetEntities()
	m.name = ""
	m.state = StateMenu
	m.events = m.events[:0]
}

func (m *Machine) resetEntities() {
	m.score = 0
	m.wave = 1
	m.player.Reset()
	m.bullets = nil
	m.enemies = m.gen.Generate(1)
	m.coord.Reset(m.difficulty.EnemySpeed(1))
}

// MoveLeft moves the player left. No-op outside Playing.
func (m *Machine) MoveLeft(dt float64) {
	if m.state != StatePlaying {
		return
	}
	m.player.MoveLeft(clampDT(dt), m.cfg.Player.Speed)
}

// MoveRight moves the player right. No-op outside Playing.
func (m *Machine) MoveRight(dt float64) {
	if m.state != StatePlaying {
		return
	}
	m.player.MoveRight(clampDT(dt), m.cfg.Player.Speed)
}

// Fire adds a volley of bullets. No-op outside Playing.
func (m *Machine) Fire() {
	if m.state != StatePlaying {
		return
	}
	volley := m.player.Shoot()
	if len(volley) == 0 {
		return
	}
	m.bullets = append(m.bullets, volley...)
	m.emit(Event{Kind: EventFired, Count: len(volley), Wave: m.wave})
}

// Update advances the simulation by dt seconds. Negative and non-finite dt
// count as zero. Nothing moves outside Playing.
func (m *Machine) Update(dt float64) {
	dt = clampDT(dt)
	if m.state != StatePlaying {
		return
	}

	for i := range m.bullets {
		m.bullets[i].Update(dt, m.cfg.Bullet.Speed)
	}
	m.bullets = pruneBullets(m.bullets, m.cfg.World.Width)

	if m.coord.Advance(m.enemies, dt) {
		m.logger.Debug("formation reversed", "direction", m.coord.Direction, "wave", m.wave)
		m.emit(Event{Kind: EventReversal, Wave: m.wave})
	}

	if m.breached() {
		m.gameOver()
		return
	}

	var kills []Kill
	m.bullets, m.enemies, kills = m.resolver.Resolve(m.bullets, m.enemies)
	for _, k := range kills {
		m.score = addScore(m.score, k.Points)
		m.logger.Debug("enemy destroyed", "variant", k.Variant, "points", k.Points, "score", m.score)
		m.emit(Event{Kind: EventKill, X: k.X, Y: k.Y, Points: k.Points, Variant: k.Variant, Wave: m.wave})
	}

	if len(m.enemies) == 0 {
		m.nextWave()
	}
}

func (m *Machine) breached() bool {
	for _, e := range m.enemies {
		if e.HasBreachedDefenderLine(m.cfg.World.Height, m.cfg.Enemy.DefenderLine) {
			return true
		}
	}
	return false
}

func (m *Machine) gameOver() {
	m.state = StateGameOver
	m.logger.Info("game over", "player", m.name, "score", m.score, "wave", m.wave)
	m.emit(Event{Kind: EventGameOver, Wave: m.wave})

	if m.scores != nil && m.name != "" && m.score > 0 {
		m.scores.SaveScore(m.name, m.score)
	}
}

func (m *Machine) nextWave() {
	m.wave++
	speed := m.difficulty.EnemySpeed(m.wave)
	if m.player.Upgrade() {
		m.logger.Info("player upgraded", "shots", m.player.Shots, "width", m.player.BaseWidth)
	}
	m.enemies = m.gen.Generate(m.wave)
	m.coord.Reset(speed)
	m.emit(Event{Kind: EventWaveCleared, Wave: m.wave})
	m.logWave()
}

func (m *Machine) logWave() {
	m.logger.Info("wave generated",
		"wave", m.wave,
		"enemies", len(m.enemies),
		"speed", m.coord.Speed,
	)
}

func (m *Machine) emit(e Event) {
	m.events = append(m.events, e)
}

// DrainEvents returns the events raised since the last call and clears
// the queue.
func (m *Machine) DrainEvents() []Event {
	if len(m.events) == 0 {
		return nil
	}
	out := make([]Event, len(m.events))
	copy(out, m.events)
	m.events = m.events[:0]
	return out
}

func clampDT(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	return dt
}

// addScore adds without wrapping past the uint32 maximum.
func addScore(score, points uint32) uint32 {
	if score > math.MaxUint32-points {
		return math.MaxUint32
	}
	return score + points
}
