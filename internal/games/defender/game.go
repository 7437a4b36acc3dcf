package defender

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/defender/internal/config"
	"github.com/vovakirdan/defender/internal/core"
	"github.com/vovakirdan/defender/internal/registry"
)

// Registered mode IDs.
const (
	ModeGrid      = "defender"
	ModeScattered = "defender_scatter"
)

// Launch options set from the CLI before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	formation        string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetFormation overrides the formation: "grid", "scattered" or a path to a
// layout file. Empty keeps the configured pattern.
func SetFormation(f string) {
	formation = f
}

func init() {
	registry.Register(ModeGrid, func() registry.Game { return New() })
	registry.Register(ModeScattered, func() registry.Game { return NewScattered() })
}

// Game adapts a Machine to the platform's tick/render contract.
type Game struct {
	id        string
	title     string
	scattered bool

	machine    *Machine
	explosions Explosions
	runtime    core.RuntimeConfig
	name       string
	paused     bool
	dt         float64

	scores core.ScoreBook
	cues   core.CueSink
	logger *log.Logger
}

// New creates the grid mode.
func New() *Game {
	return &Game{id: ModeGrid, title: "Defender"}
}

// NewScattered creates the scattered-formation mode.
func NewScattered() *Game {
	return &Game{id: ModeScattered, title: "Defender (Scattered)", scattered: true}
}

// ID returns the mode ID.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Wire implements registry.Wirable.
func (g *Game) Wire(c registry.Collaborators) {
	g.scores = c.Scores
	g.cues = c.Cues
	g.logger = c.Logger
}

// Reset loads the configuration, builds a fresh machine and, when the
// runtime config carries a player name, starts playing right away.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.cues == nil {
		g.cues = core.NopCues{}
	}

	cfg, err := config.LoadDefender(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
	}
	if difficultyPreset != "" {
		config.ApplyDefenderPreset(&cfg, difficultyPreset)
	}

	var layout *Layout
	switch formation {
	case "":
	case config.PatternGrid, config.PatternScattered:
		cfg.Formation.Pattern = formation
	default:
		layout, err = LoadLayout(formation)
		if err != nil {
			g.logger.Warn("ignoring formation layout", "error", err)
		}
	}
	if layout == nil && cfg.Formation.Layout != "" {
		layout, err = LoadLayout(cfg.Formation.Layout)
		if err != nil {
			g.logger.Warn("ignoring formation layout", "error", err)
		}
	}
	if g.scattered {
		cfg.Formation.Pattern = config.PatternScattered
	}

	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.runtime = rc
	g.dt = 1 / float64(rc.TickRate)
	g.name = SanitizeName(rc.PlayerName)
	g.paused = false
	g.explosions.Clear()

	g.machine = NewMachine(cfg, uint64(rc.Seed)) //#nosec G115 -- seed bits are reinterpreted
	g.machine.SetScoreBook(g.scores)
	g.machine.SetLogger(g.logger)
	g.machine.SetLayout(layout)

	if g.name != "" {
		g.machine.StartGame(g.name)
	}
}

// Machine exposes the underlying simulation.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Explosions returns the running kill animations.
func (g *Game) Explosions() []Explosion {
	return g.explosions.Active()
}

// PlayerName returns the sanitized name a game starts with.
func (g *Game) PlayerName() string {
	return g.name
}

// Paused reports whether play is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Step advances one tick with the given input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	m := g.machine

	switch m.State() {
	case StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			m.StartGame(g.name)
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return core.StepResult{State: g.State()}
		}
		if in.Has(core.ActionLeft) {
			m.MoveLeft(g.dt)
		}
		if in.Has(core.ActionRight) {
			m.MoveRight(g.dt)
		}
		if in.Has(core.ActionFire) {
			m.Fire()
		}
		m.Update(g.dt)

	case StateGameOver:
		if in.Has(core.ActionRestart) {
			m.Reset()
			g.explosions.Clear()
			m.StartGame(g.name)
		}
	}

	g.dispatch(m.DrainEvents())
	g.explosions.Update(g.dt)

	return core.StepResult{State: g.State()}
}

// dispatch turns machine events into explosions and audio cues.
func (g *Game) dispatch(events []Event) {
	g.explosions.Spawn(events)
	hit := false
	for _, ev := range events {
		switch ev.Kind {
		case EventFired:
			g.cues.Cue(core.CueShoot)
		case EventKill:
			hit = true
		case EventWaveCleared:
			g.cues.Cue(core.CueWaveClear)
		case EventGameOver:
			g.cues.Cue(core.CueGameOver)
		}
	}
	if hit {
		g.cues.Cue(core.CueHit)
	}
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.machine.Score()),
		Wave:     g.machine.Wave(),
		GameOver: g.machine.State() == StateGameOver,
		Paused:   g.paused,
	}
}
