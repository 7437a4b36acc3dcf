package registry

import (
	"testing"

	"github.com/vovakirdan/defender/internal/core"
)

type stubGame struct {
	wired  Collaborators
	resets int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Wire(c Collaborators) { g.wired = c }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub", func() Game { return &stubGame{} })

	if !Exists("test_stub") {
		t.Fatal("registered game should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("title = %q, expected Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{} })
}

func TestCreateWired(t *testing.T) {
	Register("test_wired", func() Game { return &stubGame{} })

	cues := core.NopCues{}
	g, err := CreateWired("test_wired", Collaborators{Cues: cues})
	if err != nil {
		t.Fatalf("CreateWired() failed: %v", err)
	}

	stub, ok := g.(*stubGame)
	if !ok {
		t.Fatalf("unexpected game type %T", g)
	}
	if stub.wired.Cues == nil {
		t.Error("collaborators should be passed to Wire")
	}
}
