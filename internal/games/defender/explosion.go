package defender

// Explosion animation timing.
const (
	ExplosionFrames        = 3
	ExplosionFrameDuration = 0.1 // seconds per frame
)

// Explosion is a short kill animation at a world position.
type Explosion struct {
	X, Y  float64
	Frame int
	Timer float64 // seconds into the current frame
}

// Update advances the animation clock.
func (e *Explosion) Update(dt float64) {
	if e.Finished() || dt <= 0 {
		return
	}
	e.Timer += dt
	for e.Timer >= ExplosionFrameDuration && !e.Finished() {
		e.Timer -= ExplosionFrameDuration
		e.Frame++
	}
}

// Finished reports whether every frame has been shown.
func (e *Explosion) Finished() bool {
	return e.Frame >= ExplosionFrames
}

// Explosions is the set of running animations.
type Explosions struct {
	items []Explosion
}

// Spawn starts an explosion for every kill event.
func (x *Explosions) Spawn(events []Event) {
	for _, ev := range events {
		if ev.Kind == EventKill {
			x.items = append(x.items, Explosion{X: ev.X, Y: ev.Y})
		}
	}
}

// Update advances all animations and drops finished ones.
func (x *Explosions) Update(dt float64) {
	kept := x.items[:0]
	for i := range x.items {
		x.items[i].Update(dt)
		if !x.items[i].Finished() {
			kept = append(kept, x.items[i])
		}
	}
	x.items = kept
}

// Active returns the running animations.
func (x *Explosions) Active() []Explosion {
	return x.items
}

// Clear drops all animations.
func (x *Explosions) Clear() {
	x.items = nil
}
