// Package gui is the windowed frontend. It runs a defender.Game on Ebiten
// at a fixed tick rate and draws the world with vector shapes.
package gui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/defender/internal/core"
	"github.com/vovakirdan/defender/internal/games/defender"
)

// Options configure the window.
type Options struct {
	Title string
	Scale float64 // window size relative to the world, default 1
}

// App implements ebiten.Game around a wired defender.Game.
type App struct {
	game    *defender.Game
	cfg     core.RuntimeConfig
	clock   *core.FixedStep
	pending core.InputFrame // presses waiting for the next tick
	last    time.Time
	worldW  int
	worldH  int
}

// NewApp resets game with cfg and prepares it for the window.
func NewApp(game *defender.Game, cfg core.RuntimeConfig) *App {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	game.Reset(cfg)

	world := game.Machine().Config().World
	return &App{
		game:    game,
		cfg:     cfg,
		clock:   core.NewFixedStep(cfg.TickRate),
		pending: core.NewInputFrame(),
		last:    time.Now(),
		worldW:  int(world.Width),
		worldH:  int(world.Height),
	}
}

// Update polls input and runs every simulation tick that is due.
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.last).Seconds()
	a.last = now

	if a.quitRequested() {
		return ebiten.Termination
	}
	a.pollPresses()

	for range a.clock.Advance(dt) {
		frame := a.pending.Clone()
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			frame.Set(core.ActionLeft)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			frame.Set(core.ActionRight)
		}
		a.game.Step(frame)
		a.pending.Clear()
	}
	return nil
}

// pollPresses queues one-shot keys so a press between ticks is not lost.
func (a *App) pollPresses() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		a.pending.Set(core.ActionFire)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.pending.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.pending.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.pending.Set(core.ActionRestart)
	}
}

// quitRequested reports Q at any time, or Escape when nothing is in play.
func (a *App) quitRequested() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return false
	}
	return a.game.Machine().State() != defender.StatePlaying || a.game.Paused()
}

// Draw renders the current state.
func (a *App) Draw(screen *ebiten.Image) {
	drawScene(screen, a.game)
}

// Layout keeps the logical screen at world size; Ebiten scales the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.worldW, a.worldH
}

// Run opens a window and plays game until the window closes or the player
// quits.
func Run(game *defender.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Title == "" {
		opts.Title = game.Title()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	app := NewApp(game, cfg)
	ebiten.SetWindowSize(int(float64(app.worldW)*opts.Scale), int(float64(app.worldH)*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.cfg.TickRate)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
