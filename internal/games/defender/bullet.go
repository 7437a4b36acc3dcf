package defender

// Bullet is a player projectile. It only ever moves straight up.
type Bullet struct {
	X, Y float64
}

// Update moves the bullet up by speed*dt.
func (b *Bullet) Update(dt, speed float64) {
	b.Y -= speed * dt
}

// IsOutOfBounds reports whether the bullet left the playfield: above the
// top edge, or outside the left/right edges of a world worldW wide.
func (b Bullet) IsOutOfBounds(worldW float64) bool {
	return b.Y < 0 || b.X < 0 || b.X > worldW
}

// pruneBullets drops out-of-bounds bullets into a new slice.
func pruneBullets(bullets []Bullet, worldW float64) []Bullet {
	kept := make([]Bullet, 0, len(bullets))
	for _, b := range bullets {
		if !b.IsOutOfBounds(worldW) {
			kept = append(kept, b)
		}
	}
	return kept
}
