package defender

import (
	"math"
	"testing"

	"github.com/vovakirdan/defender/internal/config"
)

func TestPlayerStart(t *testing.T) {
	p := NewPlayer(config.DefaultDefenderConfig())
	if p.X != 512 || p.Y != 718 {
		t.Errorf("player at (%v,%v), expected (512,718)", p.X, p.Y)
	}
	if p.BaseWidth != 50 || p.Shots != 1 {
		t.Errorf("width=%v shots=%d, expected 50 and 1", p.BaseWidth, p.Shots)
	}
}

func TestPlayerMovementClamps(t *testing.T) {
	p := NewPlayer(config.DefaultDefenderConfig())

	p.MoveRight(0.5, 300)
	if p.X != 662 {
		t.Errorf("x = %v, expected 662", p.X)
	}

	p.MoveLeft(10, 300)
	if p.X != 25 {
		t.Errorf("x = %v, expected clamp at 25", p.X)
	}

	p.MoveRight(10, 300)
	if p.X != 999 {
		t.Errorf("x = %v, expected clamp at 999", p.X)
	}
}

func TestPlayerShoot(t *testing.T) {
	p := NewPlayer(config.DefaultDefenderConfig())

	volley := p.Shoot()
	if len(volley) != 1 || volley[0].X != 512 || volley[0].Y != 718 {
		t.Errorf("volley = %+v, expected one bullet at (512,718)", volley)
	}

	p.Upgrade()
	volley = p.Shoot()
	if len(volley) != 2 {
		t.Fatalf("volley size = %d, expected 2", len(volley))
	}
	gap := 70.0 / 3
	if math.Abs(volley[0].X-(477+gap)) > 1e-9 || math.Abs(volley[1].X-(477+2*gap)) > 1e-9 {
		t.Errorf("volley x = %v, %v, expected evenly spaced across 70px", volley[0].X, volley[1].X)
	}
}

func TestPlayerUpgradeCap(t *testing.T) {
	p := NewPlayer(config.DefaultDefenderConfig())

	if !p.Upgrade() || !p.Upgrade() {
		t.Fatal("first two upgrades should apply")
	}
	if p.Shots != 3 || p.BaseWidth != 90 {
		t.Errorf("shots=%d width=%v, expected 3 and 90", p.Shots, p.BaseWidth)
	}
	if p.Upgrade() {
		t.Error("upgrade past the cap should be refused")
	}
	if p.Shots != 3 || p.BaseWidth != 90 {
		t.Errorf("capped upgrade changed the player: shots=%d width=%v", p.Shots, p.BaseWidth)
	}

	p.MoveLeft(1, 300)
	p.Reset()
	if p.X != 512 || p.Shots != 1 || p.BaseWidth != 50 {
		t.Errorf("after reset = %+v, expected start state", p)
	}
}
