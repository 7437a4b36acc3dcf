package defender

import "github.com/vovakirdan/defender/internal/core"

// Kill records a destroyed enemy.
type Kill struct {
	X, Y    float64
	Points  uint32
	Variant Variant
}

// Resolver matches bullets against enemies with a circular hit test.
type Resolver struct {
	Radius float64
}

// CheckCollision reports whether b is strictly inside the hit radius of e.
func (r Resolver) CheckCollision(b Bullet, e Enemy) bool {
	return core.DistSq(b.X, b.Y, e.X, e.Y) < r.Radius*r.Radius
}

// Resolve runs one collision pass. Each bullet, in order, damages the first
// enemy in range that was not destroyed earlier in the pass and is then
// consumed. Bullets that hit nothing survive. Damage is applied to the
// enemies slice in place; the returned slices are fresh and hold only
// survivors.
func (r Resolver) Resolve(bullets []Bullet, enemies []Enemy) ([]Bullet, []Enemy, []Kill) {
	if len(bullets) == 0 || len(enemies) == 0 {
		return bullets, enemies, nil
	}

	consumed := make([]bool, len(bullets))
	destroyed := make([]bool, len(enemies))
	var kills []Kill

	for i, b := range bullets {
		for j := range enemies {
			if destroyed[j] || !r.CheckCollision(b, enemies[j]) {
				continue
			}
			consumed[i] = true
			if enemies[j].TakeDamage() {
				destroyed[j] = true
				e := enemies[j]
				kills = append(kills, Kill{X: e.X, Y: e.Y, Points: e.Points, Variant: e.Variant})
			}
			break
		}
	}

	liveBullets := make([]Bullet, 0, len(bullets))
	for i, b := range bullets {
		if !consumed[i] {
			liveBullets = append(liveBullets, b)
		}
	}
	liveEnemies := make([]Enemy, 0, len(enemies))
	for j, e := range enemies {
		if !destroyed[j] {
			liveEnemies = append(liveEnemies, e)
		}
	}

	return liveBullets, liveEnemies, kills
}
