package defender

import (
	"strings"
	"testing"

	"github.com/vovakirdan/defender/internal/core"
	"github.com/vovakirdan/defender/internal/registry"
)

type recordingCues struct {
	cues []core.Cue
}

func (r *recordingCues) Cue(c core.Cue) {
	r.cues = append(r.cues, c)
}

func (r *recordingCues) count(c core.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, name string) (*Game, *recordingCues) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cues := &recordingCues{}
	g := New()
	g.Wire(registry.Collaborators{Cues: cues, Scores: &recordingBook{}})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7, PlayerName: name})
	return g, cues
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{ModeGrid, ModeScattered} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}

	g, err := registry.Create(ModeScattered)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Defender (Scattered)" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestScatteredModeForcesPattern(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := NewScattered()
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})

	if got := g.Machine().Config().Formation.Pattern; got != "scattered" {
		t.Errorf("pattern = %q, expected scattered", got)
	}
}

func TestGameWaitsForName(t *testing.T) {
	g, _ := newTestGame(t, "")

	g.Step(input(core.ActionConfirm))
	if g.Machine().State() != StateMenu {
		t.Errorf("state = %v, expected menu without a name", g.Machine().State())
	}
}

func TestGameStartsWithName(t *testing.T) {
	g, cues := newTestGame(t, "Ace")

	if g.Machine().State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", g.Machine().State())
	}

	g.Step(input(core.ActionFire))
	if cues.count(core.CueShoot) != 1 {
		t.Errorf("shoot cues = %d, expected 1", cues.count(core.CueShoot))
	}

	x := g.Machine().Snapshot().PlayerX
	g.Step(input(core.ActionRight))
	if got := g.Machine().Snapshot().PlayerX; got <= x {
		t.Errorf("player x = %v, expected to move right of %v", got, x)
	}
}

func TestGamePause(t *testing.T) {
	g, _ := newTestGame(t, "Ace")

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}

	before := g.Machine().Snapshot()
	g.Step(input(core.ActionRight, core.ActionFire))
	after := g.Machine().Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("state changed while paused")
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused {
		t.Error("expected unpaused")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g, cues := newTestGame(t, "Ace")
	m := g.Machine()

	m.enemies = []Enemy{NewEnemy(512, 700, 1, VariantStandard)}
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if cues.count(core.CueGameOver) != 1 {
		t.Errorf("game over cues = %d, expected 1", cues.count(core.CueGameOver))
	}

	g.Step(input(core.ActionRestart))
	if m.State() != StatePlaying || m.Name() != "Ace" || m.Wave() != 1 {
		t.Errorf("after restart: state=%v name=%q wave=%d", m.State(), m.Name(), m.Wave())
	}
}

func TestDispatchOneHitCuePerFrame(t *testing.T) {
	g, cues := newTestGame(t, "Ace")

	g.dispatch([]Event{
		{Kind: EventKill, X: 1, Y: 1},
		{Kind: EventKill, X: 2, Y: 2},
		{Kind: EventKill, X: 3, Y: 3},
		{Kind: EventWaveCleared, Wave: 2},
	})

	if cues.count(core.CueHit) != 1 {
		t.Errorf("hit cues = %d, expected 1", cues.count(core.CueHit))
	}
	if cues.count(core.CueWaveClear) != 1 {
		t.Errorf("wave clear cues = %d, expected 1", cues.count(core.CueWaveClear))
	}
	if len(g.explosions.Active()) != 3 {
		t.Errorf("explosions = %d, expected 3", len(g.explosions.Active()))
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(t, "Ace")
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Wave 1") || !strings.Contains(hud, "Ace") {
		t.Errorf("HUD = %q", hud)
	}

	out := screen.String()
	if !strings.ContainsRune(out, glyphStandard) {
		t.Error("no enemies drawn")
	}
	if !strings.ContainsRune(out, glyphPlayer) {
		t.Error("player not drawn")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, "Ace")
	screen := core.NewScreen(20, 10)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small message")
	}
}

func TestGameRenderMenu(t *testing.T) {
	g, _ := newTestGame(t, "")
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Set a player name") {
		t.Error("menu overlay missing")
	}
}
