package defender

// Variant distinguishes enemy toughness and value.
type Variant uint8

const (
	VariantStandard Variant = iota
	VariantFast
	VariantSwooper
	VariantTank
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantFast:
		return "fast"
	case VariantSwooper:
		return "swooper"
	case VariantTank:
		return "tank"
	default:
		return "unknown"
	}
}

// HitPoints returns the starting hit points of the variant.
func (v Variant) HitPoints() int {
	switch v {
	case VariantSwooper:
		return 2
	case VariantTank:
		return 3
	default:
		return 1
	}
}

// Points returns the default kill value of the variant.
func (v Variant) Points() uint32 {
	switch v {
	case VariantFast:
		return 20
	case VariantSwooper:
		return 30
	case VariantTank:
		return 50
	default:
		return 10
	}
}

// Enemy is one formation member.
type Enemy struct {
	X, Y      float64
	Direction float64 // +1 moving right, -1 moving left
	Variant   Variant
	HP        int
	Points    uint32 // awarded when destroyed
}

// NewEnemy creates an enemy with the variant's hit points and default value.
func NewEnemy(x, y, direction float64, v Variant) Enemy {
	return Enemy{
		X:         x,
		Y:         y,
		Direction: direction,
		Variant:   v,
		HP:        v.HitPoints(),
		Points:    v.Points(),
	}
}

// Update moves the enemy horizontally.
func (e *Enemy) Update(direction, speed, dt float64) {
	e.X += direction * speed * dt
}

// HasReachedEdge reports whether the enemy is within margin of either side
// of a world worldW wide.
func (e Enemy) HasReachedEdge(worldW, margin float64) bool {
	return e.X <= margin || e.X >= worldW-margin
}

// movingIntoEdge reports whether the enemy is at an edge and still heading
// into it.
func (e Enemy) movingIntoEdge(worldW, margin float64) bool {
	return (e.X <= margin && e.Direction < 0) || (e.X >= worldW-margin && e.Direction > 0)
}

// HasBreachedDefenderLine reports whether the enemy dropped below the loss
// line, which sits line pixels above the bottom of a world worldH tall.
func (e Enemy) HasBreachedDefenderLine(worldH, line float64) bool {
	return e.Y > worldH-line
}

// TakeDamage removes one hit point and reports whether the enemy is
// destroyed.
func (e *Enemy) TakeDamage() bool {
	e.HP--
	return e.HP <= 0
}
