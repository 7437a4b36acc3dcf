package defender

import (
	"math"
	"testing"

	"github.com/vovakirdan/defender/internal/config"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCoordinatorEdgeReversal(t *testing.T) {
	cfg := config.DefaultDefenderConfig()
	c := NewCoordinator(cfg)
	c.Reset(150)

	enemies := []Enemy{
		NewEnemy(1000, 100, 1, VariantStandard),
		NewEnemy(500, 150, -1, VariantStandard),
	}

	// 1000 + 150*0.1 crosses the right reversal line at 1004
	if !c.Advance(enemies, 0.1) {
		t.Fatal("expected a reversal at the right edge")
	}
	if c.Phase != PhaseDescending || c.Remaining != 40 {
		t.Errorf("phase=%v remaining=%v, expected descending with 40", c.Phase, c.Remaining)
	}
	if c.Direction != -1 {
		t.Errorf("shared direction = %v, expected -1", c.Direction)
	}
	if enemies[0].X != 1004 {
		t.Errorf("edge enemy x = %v, expected clamped to 1004", enemies[0].X)
	}
	if enemies[0].Direction != -1 || enemies[1].Direction != 1 {
		t.Errorf("directions = %v, %v, expected every enemy flipped", enemies[0].Direction, enemies[1].Direction)
	}

	// Descent frames move straight down only
	startX := enemies[0].X
	startY := enemies[0].Y
	for frame := 0; frame < 4; frame++ {
		if c.Advance(enemies, 0.1) {
			t.Fatalf("frame %d: unexpected reversal while descending", frame)
		}
		if enemies[0].X != startX {
			t.Fatalf("frame %d: x moved during descent", frame)
		}
	}
	if !near(enemies[0].Y-startY, 40) {
		t.Errorf("descended %v, expected 40", enemies[0].Y-startY)
	}
	if c.Phase != PhaseAdvancing || c.Remaining != 0 {
		t.Errorf("phase=%v remaining=%v, expected advancing with 0", c.Phase, c.Remaining)
	}

	// Back to sweeping left without re-triggering at the edge
	y := enemies[0].Y
	if c.Advance(enemies, 0.1) {
		t.Error("reversed again right after clamping")
	}
	if !near(enemies[0].X, 989) || enemies[0].Y != y {
		t.Errorf("enemy = (%v,%v), expected (989,%v)", enemies[0].X, enemies[0].Y, y)
	}
}

func TestCoordinatorNoReversalInside(t *testing.T) {
	c := NewCoordinator(config.DefaultDefenderConfig())
	enemies := []Enemy{NewEnemy(500, 100, 1, VariantStandard)}

	if c.Advance(enemies, 0.1) {
		t.Error("unexpected reversal in the middle of the field")
	}
	if !near(enemies[0].X, 515) {
		t.Errorf("x = %v, expected 515", enemies[0].X)
	}
	if c.Phase != PhaseAdvancing {
		t.Errorf("phase = %v, expected advancing", c.Phase)
	}
}

func TestCoordinatorLeftEdge(t *testing.T) {
	c := NewCoordinator(config.DefaultDefenderConfig())
	enemies := []Enemy{NewEnemy(25, 100, -1, VariantStandard)}

	if !c.Advance(enemies, 0.1) {
		t.Fatal("expected a reversal at the left edge")
	}
	if enemies[0].X != 20 || enemies[0].Direction != 1 {
		t.Errorf("enemy = %+v, expected x 20 moving right", enemies[0])
	}
}

func TestEnemyDefenderLine(t *testing.T) {
	tests := []struct {
		y    float64
		want bool
	}{
		{600, false},
		{668, false},
		{668.5, true},
		{760, true},
	}

	for _, tt := range tests {
		e := NewEnemy(100, tt.y, 1, VariantStandard)
		if got := e.HasBreachedDefenderLine(768, 100); got != tt.want {
			t.Errorf("y=%v: HasBreachedDefenderLine() = %v, expected %v", tt.y, got, tt.want)
		}
	}
}
