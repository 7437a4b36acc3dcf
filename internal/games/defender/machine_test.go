package defender

import (
	"math"
	"testing"

	"github.com/vovakirdan/defender/internal/config"
	"github.com/vovakirdan/defender/internal/core"
)

type recordingBook struct {
	saved []core.ScoreRecord
}

func (b *recordingBook) SaveScore(name string, score uint32) {
	b.saved = append(b.saved, core.ScoreRecord{Name: name, Score: score})
}

func (b *recordingBook) TopScores(int) []core.ScoreRecord { return b.saved }

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	return NewMachine(config.DefaultDefenderConfig(), 1)
}

func TestNewMachine(t *testing.T) {
	m := newTestMachine(t)

	if m.State() != StateMenu {
		t.Errorf("state = %v, expected menu", m.State())
	}
	if m.Wave() != 1 || m.Score() != 0 {
		t.Errorf("wave=%d score=%d, expected 1 and 0", m.Wave(), m.Score())
	}
	snap := m.Snapshot()
	if len(snap.Enemies) != 50 || len(snap.Bullets) != 0 {
		t.Errorf("enemies=%d bullets=%d, expected 50 and 0", len(snap.Enemies), len(snap.Bullets))
	}
	if snap.Speed != 150 {
		t.Errorf("speed = %v, expected 150", snap.Speed)
	}
}

func TestStartGameRequiresName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		want string
	}{
		{"", false, ""},
		{"   ", false, ""},
		{"!!--", false, ""},
		{"Ace", true, "Ace"},
		{" R2-D2 ", true, "R2D2"},
		{"abcdefghijklmnopqrstuvwxyz", true, "abcdefghijklmnopqrst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t)
			if got := m.StartGame(tt.name); got != tt.ok {
				t.Fatalf("StartGame(%q) = %v, expected %v", tt.name, got, tt.ok)
			}
			if m.Name() != tt.want {
				t.Errorf("name = %q, expected %q", m.Name(), tt.want)
			}
			wantState := StateMenu
			if tt.ok {
				wantState = StatePlaying
			}
			if m.State() != wantState {
				t.Errorf("state = %v, expected %v", m.State(), wantState)
			}
		})
	}
}

func TestStartGameOnlyFromMenu(t *testing.T) {
	m := newTestMachine(t)
	m.StartGame("Ace")
	if m.StartGame("Bob") {
		t.Error("StartGame() while playing should be refused")
	}
	if m.Name() != "Ace" {
		t.Errorf("name = %q, expected Ace", m.Name())
	}
}

func TestInputIgnoredOutsidePlaying(t *testing.T) {
	m := newTestMachine(t)
	before := m.Snapshot()

	m.Fire()
	m.MoveLeft(1)
	m.MoveRight(0.5)
	m.Update(1)

	after := m.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("menu state changed on input")
	}
	if len(m.DrainEvents()) != 0 {
		t.Error("events raised in menu")
	}
}

func TestFireAddsVolley(t *testing.T) {
	m := newTestMachine(t)
	m.StartGame("Ace")

	m.Fire()
	m.Fire()
	if got := len(m.Snapshot().Bullets); got != 2 {
		t.Errorf("bullets = %d, expected 2", got)
	}

	events := m.DrainEvents()
	if len(events) != 2 || events[0].Kind != EventFired || events[0].Count != 1 {
		t.Errorf("events = %+v, expected two fired events of one bullet", events)
	}
	if len(m.DrainEvents()) != 0 {
		t.Error("DrainEvents() did not clear the queue")
	}
}

func TestUpdateIgnoresBadDelta(t *testing.T) {
	m := newTestMachine(t)
	m.StartGame("Ace")
	m.Fire()
	before := m.Snapshot()

	for _, dt := range []float64{-1, math.NaN(), math.Inf(1), 0} {
		m.Update(dt)
	}

	after := m.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("state changed for a zero, negative or non-finite dt")
	}
}

func TestWaveClear(t *testing.T) {
	m := newTestMachine(t)
	m.StartGame("Ace")
	m.DrainEvents()

	m.enemies = []Enemy{NewEnemy(512, 400, 1, VariantStandard)}
	m.bullets = []Bullet{{X: 512, Y: 401}}
	m.Update(0.001)

	if m.Wave() != 2 {
		t.Fatalf("wave = %d, expected 2", m.Wave())
	}
	if m.Score() != 10 {
		t.Errorf("score = %d, expected 10", m.Score())
	}
	snap := m.Snapshot()
	if snap.Speed != 170 {
		t.Errorf("speed = %v, expected 170 after one wave", snap.Speed)
	}
	if snap.Shots != 2 || snap.PlayerWidth != 70 {
		t.Errorf("shots=%d width=%v, expected 2 and 70", snap.Shots, snap.PlayerWidth)
	}
	if len(snap.Enemies) != 50 {
		t.Errorf("enemies = %d, expected a fresh formation of 50", len(snap.Enemies))
	}
	if snap.Phase != PhaseAdvancing || snap.Direction != 1 {
		t.Errorf("phase=%v direction=%v, expected a reset coordinator", snap.Phase, snap.Direction)
	}

	events := m.DrainEvents()
	if len(events) != 2 || events[0].Kind != EventKill || events[1].Kind != EventWaveCleared {
		t.Fatalf("events = %+v, expected kill then wave_cleared", events)
	}
	if events[0].Points != 10 || events[1].Wave != 2 {
		t.Errorf("events = %+v", events)
	}
}

func TestWaveClearFixedDifficulty(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	config.ApplyDefenderPreset(&cfg, config.DifficultyFixed)
	m := NewMachine(cfg, 1)
	m.StartGame("Ace")

	m.enemies = []Enemy{NewEnemy(512, 400, 1, VariantStandard)}
	m.bullets = []Bullet{{X: 512, Y: 401}}
	m.Update(0.001)

	if m.Wave() != 2 || m.Snapshot().Speed != 150 {
		t.Errorf("wave=%d speed=%v, expected 2 and an unchanged 150", m.Wave(), m.Snapshot().Speed)
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	m := newTestMachine(t)
	book := &recordingBook{}
	m.SetScoreBook(book)
	m.StartGame("Ace")

	m.score = 40
	m.enemies = []Enemy{NewEnemy(512, 700, 1, VariantStandard)}
	m.Update(0.01)

	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", m.State())
	}
	m.Update(0.01)
	m.Update(0.01)

	if len(book.saved) != 1 {
		t.Fatalf("saved %d scores, expected exactly 1", len(book.saved))
	}
	if book.saved[0].Name != "Ace" || book.saved[0].Score != 40 {
		t.Errorf("saved %+v, expected Ace/40", book.saved[0])
	}
}

func TestGameOverSkipsZeroScore(t *testing.T) {
	m := newTestMachine(t)
	book := &recordingBook{}
	m.SetScoreBook(book)
	m.StartGame("Ace")

	m.enemies = []Enemy{NewEnemy(512, 700, 1, VariantStandard)}
	m.Update(0.01)

	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", m.State())
	}
	if len(book.saved) != 0 {
		t.Errorf("saved %+v, expected nothing for a zero score", book.saved)
	}
}

func TestResetIdempotent(t *testing.T) {
	m := newTestMachine(t)
	m.StartGame("Ace")
	m.Fire()
	m.Update(0.5)

	m.Reset()
	first := m.Snapshot()
	m.Reset()
	second := m.Snapshot()

	if first.Hash() != second.Hash() {
		t.Error("second Reset() changed the state")
	}
	if m.State() != StateMenu || m.Name() != "" || m.Score() != 0 || m.Wave() != 1 {
		t.Errorf("after reset: state=%v name=%q score=%d wave=%d", m.State(), m.Name(), m.Score(), m.Wave())
	}
	if len(first.Bullets) != 0 || len(first.Enemies) != 50 {
		t.Errorf("bullets=%d enemies=%d, expected 0 and 50", len(first.Bullets), len(first.Enemies))
	}
}

func TestMachineDeterminism(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	cfg.Formation.Pattern = config.PatternScattered

	run := func() Snapshot {
		m := NewMachine(cfg, 12345)
		m.StartGame("Ace")
		for i := 0; i < 600; i++ {
			switch {
			case i%7 == 0:
				m.Fire()
			case i%50 < 25:
				m.MoveLeft(1.0 / 60)
			default:
				m.MoveRight(1.0 / 60)
			}
			m.Update(1.0 / 60)
		}
		return m.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Wave != b.Wave {
		t.Errorf("runs diverged: score %d/%d wave %d/%d", a.Score, b.Score, a.Wave, b.Wave)
	}
}

func TestAddScoreSaturates(t *testing.T) {
	if got := addScore(10, 20); got != 30 {
		t.Errorf("addScore(10, 20) = %d, expected 30", got)
	}
	if got := addScore(math.MaxUint32-5, 50); got != math.MaxUint32 {
		t.Errorf("addScore near max = %d, expected saturation", got)
	}
}
