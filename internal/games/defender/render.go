package defender

import (
	"fmt"

	"github.com/vovakirdan/defender/internal/core"
)

// Minimum terminal size for the playfield.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Glyphs.
const (
	glyphPlayer   = '▲'
	glyphBase     = '═'
	glyphBullet   = '|'
	glyphLine     = '┄'
	glyphStandard = 'W'
	glyphFast     = 'V'
	glyphSwooper  = 'S'
	glyphTank     = 'H'
)

var explosionFrames = [ExplosionFrames]rune{'*', '+', '.'}

// viewport maps world coordinates onto the cells below the HUD row.
type viewport struct {
	worldW, worldH float64
	cols, rows     int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{worldW: worldW, worldH: worldH, cols: dst.Width(), rows: dst.Height() - 1}
}

func (v viewport) col(x float64) int {
	return core.Clamp(int(x/v.worldW*float64(v.cols)), 0, v.cols-1)
}

func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(y/v.worldH*float64(v.rows)), 0, v.rows-1)
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.machine == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	cfg := g.machine.Config()
	vp := newViewport(dst, cfg.World.Width, cfg.World.Height)

	g.renderHUD(dst)
	dst.DrawHLine(0, vp.row(cfg.World.Height-cfg.Enemy.DefenderLine), dst.Width(), glyphLine, core.ColorRed)

	snap := g.machine.Snapshot()
	for _, e := range snap.Enemies {
		r, c := enemyGlyph(e)
		dst.SetColored(vp.col(e.X), vp.row(e.Y), r, c)
	}
	for _, b := range snap.Bullets {
		dst.SetColored(vp.col(b.X), vp.row(b.Y), glyphBullet, core.ColorBrightYellow)
	}
	for _, x := range g.explosions.Active() {
		dst.SetColored(vp.col(x.X), vp.row(x.Y), explosionFrames[x.Frame], core.ColorOrange)
	}
	g.renderPlayer(dst, vp, snap)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Score: %d", g.machine.Score())
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	dst.DrawTextCentered(0, fmt.Sprintf("Wave %d", g.machine.Wave()), core.ColorBrightCyan)

	right := g.machine.Name()
	if right != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorGreen)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, vp viewport, snap Snapshot) {
	y := vp.row(snap.PlayerY)
	from := vp.col(snap.PlayerX - snap.PlayerWidth/2)
	to := vp.col(snap.PlayerX + snap.PlayerWidth/2)
	for x := from; x <= to; x++ {
		dst.SetColored(x, y, glyphBase, core.ColorGreen)
	}
	dst.SetColored(vp.col(snap.PlayerX), y, glyphPlayer, core.ColorBrightGreen)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch g.machine.State() {
	case StateMenu:
		dst.DrawTextCentered(mid-2, "D E F E N D E R", core.ColorBrightCyan)
		if g.name == "" {
			dst.DrawTextCentered(mid, "Set a player name to start", core.ColorYellow)
		} else {
			dst.DrawTextCentered(mid, "Press ENTER to start", core.ColorWhite)
		}
		dst.DrawTextCentered(mid+2, "←/→ move  SPACE fire  P pause  Q quit", core.ColorGray)
	case StateGameOver:
		dst.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Final score: %d", g.machine.Score()), core.ColorWhite)
		dst.DrawTextCentered(mid+3, "R restart  Q quit", core.ColorGray)
	default:
		if g.paused {
			dst.DrawTextCentered(mid, "PAUSED", core.ColorYellow)
		}
	}
}

// EnemyColor returns the palette color of e. Tanks change color as they
// lose hit points.
func EnemyColor(e Enemy) core.Color {
	_, c := enemyGlyph(e)
	return c
}

func enemyGlyph(e Enemy) (rune, core.Color) {
	switch e.Variant {
	case VariantFast:
		return glyphFast, core.ColorBrightYellow
	case VariantSwooper:
		return glyphSwooper, core.ColorMagenta
	case VariantTank:
		switch e.HP {
		case 1:
			return glyphTank, core.ColorRed
		case 2:
			return glyphTank, core.ColorOrange
		default:
			return glyphTank, core.ColorBlue
		}
	default:
		return glyphStandard, core.ColorBrightRed
	}
}
