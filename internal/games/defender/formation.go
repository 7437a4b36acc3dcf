package defender

import (
	"github.com/vovakirdan/defender/internal/config"
)

const goldenGamma = 0x9E3779B97F4A7C15

// scatterInset keeps scattered spawns away from the reversal margin.
const scatterInset = 30

// VariantFor assigns a variant from the row index and wave number. Row 0
// turns into tanks from wave 3, row 1 into swoopers from wave 4, and both
// top rows are fast from wave 2 until then.
func VariantFor(row, wave int) Variant {
	switch {
	case row == 0 && wave >= 3:
		return VariantTank
	case row == 1 && wave >= 4:
		return VariantSwooper
	case row <= 1 && wave >= 2:
		return VariantFast
	default:
		return VariantStandard
	}
}

// Generator builds the enemy set for a wave.
type Generator struct {
	formation config.FormationConfig
	scoring   config.ScoringConfig
	worldW    float64
	margin    float64
	seed      uint64
	layout    *Layout
}

// NewGenerator creates a generator for the configured pattern. seed only
// affects the scattered pattern.
func NewGenerator(cfg config.DefenderConfig, seed uint64) *Generator {
	return &Generator{
		formation: cfg.Formation,
		scoring:   cfg.Scoring,
		worldW:    cfg.World.Width,
		margin:    cfg.Enemy.EdgeMargin,
		seed:      seed,
	}
}

// SetLayout switches the generator to a hand-drawn layout. A nil or empty
// layout restores the configured pattern.
func (g *Generator) SetLayout(l *Layout) {
	if l.Cells() == 0 {
		g.layout = nil
		return
	}
	g.layout = l
}

// Pattern returns the active pattern name.
func (g *Generator) Pattern() string {
	if g.layout != nil {
		return "layout"
	}
	return g.formation.Pattern
}

// Generate returns the formation for wave. It is never empty; waves below 1
// are treated as wave 1.
func (g *Generator) Generate(wave int) []Enemy {
	if wave < 1 {
		wave = 1
	}
	switch {
	case g.layout != nil:
		return g.fromLayout(wave)
	case g.formation.Pattern == config.PatternScattered:
		return g.scattered(wave)
	default:
		return g.grid(wave)
	}
}

func (g *Generator) spawn(x, y, dir float64, v Variant) Enemy {
	e := NewEnemy(x, y, dir, v)
	e.Points = g.points(v)
	return e
}

func (g *Generator) points(v Variant) uint32 {
	switch v {
	case VariantFast:
		return g.scoring.Fast
	case VariantSwooper:
		return g.scoring.Swooper
	case VariantTank:
		return g.scoring.Tank
	default:
		return g.scoring.Standard
	}
}

func rowDirection(row int) float64 {
	if row%2 == 0 {
		return 1
	}
	return -1
}

// grid lays rows x cols enemies centered horizontally, rows alternating
// their initial direction.
func (g *Generator) grid(wave int) []Enemy {
	f := g.formation
	startX := (g.worldW - float64(f.Cols-1)*f.SpacingX) / 2

	enemies := make([]Enemy, 0, f.Rows*f.Cols)
	for row := 0; row < f.Rows; row++ {
		v := VariantFor(row, wave)
		y := f.StartY + float64(row)*f.SpacingY
		for col := 0; col < f.Cols; col++ {
			x := startX + float64(col)*f.SpacingX
			enemies = append(enemies, g.spawn(x, y, rowDirection(row), v))
		}
	}
	return enemies
}

// scattered places the same number of enemies as the grid at seeded random
// spots inside the top band.
func (g *Generator) scattered(wave int) []Enemy {
	f := g.formation
	r := newRNG(g.seed ^ uint64(wave)*goldenGamma) //#nosec G115 -- wave is >= 1

	minX := g.margin + scatterInset
	maxX := g.worldW - g.margin - scatterInset
	if maxX <= minX {
		minX, maxX = g.margin, g.worldW-g.margin
	}
	minY := f.StartY
	maxY := f.StartY + float64(f.Rows-1)*f.SpacingY

	count := f.Rows * f.Cols
	enemies := make([]Enemy, 0, count)
	for i := 0; i < count; i++ {
		x := r.between(minX, maxX)
		y := r.between(minY, maxY)
		row := int((y - minY) / f.SpacingY)
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		enemies = append(enemies, g.spawn(x, y, dir, VariantFor(row, wave)))
	}
	return enemies
}

// fromLayout places enemies from the hand-drawn layout. Standard cells still
// get the wave upgrades of VariantFor.
func (g *Generator) fromLayout(wave int) []Enemy {
	l := g.layout
	spacingX := l.SpacingX
	if spacingX == 0 {
		spacingX = g.formation.SpacingX
	}
	spacingY := l.SpacingY
	if spacingY == 0 {
		spacingY = g.formation.SpacingY
	}
	startY := l.StartY
	if startY == 0 {
		startY = g.formation.StartY
	}
	startX := (g.worldW - float64(l.width()-1)*spacingX) / 2

	enemies := make([]Enemy, 0, l.Cells())
	for row, line := range l.Rows {
		y := startY + float64(row)*spacingY
		col := 0
		for _, ch := range line {
			v, occupied, _ := cellVariant(ch)
			if occupied {
				if v == VariantStandard {
					v = VariantFor(row, wave)
				}
				x := startX + float64(col)*spacingX
				enemies = append(enemies, g.spawn(x, y, rowDirection(row), v))
			}
			col++
		}
	}
	return enemies
}
