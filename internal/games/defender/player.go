package defender

import (
	"github.com/vovakirdan/defender/internal/config"
	"github.com/vovakirdan/defender/internal/core"
)

// Player is the cannon at the bottom of the playfield.
type Player struct {
	X         float64
	Y         float64
	BaseWidth float64
	Shots     int

	worldW     float64
	startWidth float64
	startShots int
	maxShots   int
	widthStep  float64
}

// NewPlayer creates a player in its starting state.
func NewPlayer(cfg config.DefenderConfig) *Player {
	p := &Player{
		worldW:     cfg.World.Width,
		startWidth: cfg.Player.Width,
		startShots: cfg.Player.StartShots,
		maxShots:   cfg.Player.MaxShots,
		widthStep:  cfg.Player.WidthPerUpgrade,
		Y:          cfg.World.Height - cfg.Player.BottomOffset,
	}
	p.Reset()
	return p
}

// Reset restores the starting position, width and shot count.
func (p *Player) Reset() {
	p.X = p.worldW / 2
	p.BaseWidth = p.startWidth
	p.Shots = p.startShots
}

// MoveLeft moves the player left by speed*dt and clamps to the playfield.
func (p *Player) MoveLeft(dt, speed float64) {
	p.X -= speed * dt
	p.clamp()
}

// MoveRight moves the player right by speed*dt and clamps to the playfield.
func (p *Player) MoveRight(dt, speed float64) {
	p.X += speed * dt
	p.clamp()
}

func (p *Player) clamp() {
	half := p.BaseWidth / 2
	if half > p.worldW/2 {
		half = p.worldW / 2
	}
	p.X = core.ClampF(p.X, half, p.worldW-half)
}

// Shoot returns one bullet per available shot, evenly spaced across the
// base width at the player's y.
func (p *Player) Shoot() []Bullet {
	bullets := make([]Bullet, 0, p.Shots)
	left := p.X - p.BaseWidth/2
	gap := p.BaseWidth / float64(p.Shots+1)
	for i := 0; i < p.Shots; i++ {
		bullets = append(bullets, Bullet{X: left + gap*float64(i+1), Y: p.Y})
	}
	return bullets
}

// Upgrade adds a shot and widens the base. It reports false and does
// nothing once the shot cap is reached.
func (p *Player) Upgrade() bool {
	if p.Shots >= p.maxShots {
		return false
	}
	p.Shots++
	p.BaseWidth += p.widthStep
	p.clamp()
	return true
}
