package defender

import "math"

// Snapshot is a read-only copy of the state for presentation and
// determinism checks.
type Snapshot struct {
	State State
	Name  string
	Score uint32
	Wave  int

	PlayerX     float64
	PlayerY     float64
	PlayerWidth float64
	Shots       int

	Bullets []Bullet
	Enemies []Enemy

	Phase            Phase
	Direction        float64
	Speed            float64
	RemainingDescent float64
}

// Snapshot copies the current state.
func (m *Machine) Snapshot() Snapshot {
	bullets := make([]Bullet, len(m.bullets))
	copy(bullets, m.bullets)
	enemies := make([]Enemy, len(m.enemies))
	copy(enemies, m.enemies)

	return Snapshot{
		State: m.state,
		Name:  m.name,
		Score: m.score,
		Wave:  m.wave,

		PlayerX:     m.player.X,
		PlayerY:     m.player.Y,
		PlayerWidth: m.player.BaseWidth,
		Shots:       m.player.Shots,

		Bullets: bullets,
		Enemies: enemies,

		Phase:            m.coord.Phase,
		Direction:        m.coord.Direction,
		Speed:            m.coord.Speed,
		RemainingDescent: m.coord.Remaining,
	}
}

// Hash folds the snapshot into a single value for determinism tests.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Wave) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerWidth)
	h = h*31 + uint64(snap.Shots) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Direction)
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + math.Float64bits(snap.RemainingDescent)

	for _, b := range snap.Bullets {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
	}
	for _, e := range snap.Enemies {
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.Direction)
		h = h*31 + uint64(e.Variant)
		h = h*31 + uint64(e.HP) //#nosec G115 -- hash computation
	}
	for _, r := range snap.Name {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	return h
}
