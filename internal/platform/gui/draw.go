package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/defender/internal/core"
	"github.com/vovakirdan/defender/internal/games/defender"
)

const (
	glyphW  = 7 // basicfont.Face7x13 advance
	hudY    = 20
	margin  = 12
	bulletW = 3
	bulletH = 14
)

var (
	background = color.RGBA{0x0b, 0x0d, 0x17, 0xff}
	dimmed     = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

func drawScene(dst *ebiten.Image, g *defender.Game) {
	dst.Fill(background)

	m := g.Machine()
	cfg := m.Config()
	snap := m.Snapshot()
	w := float32(cfg.World.Width)
	h := float32(cfg.World.Height)

	lineY := h - float32(cfg.Enemy.DefenderLine)
	vector.StrokeLine(dst, 0, lineY, w, lineY, 1, core.ColorRed.RGBA(), false)

	r := float32(cfg.Enemy.CollisionRadius)
	for _, e := range snap.Enemies {
		x, y := float32(e.X), float32(e.Y)
		vector.DrawFilledRect(dst, x-r, y-r*0.6, 2*r, 1.2*r, defender.EnemyColor(e).RGBA(), false)
	}

	for _, b := range snap.Bullets {
		vector.DrawFilledRect(dst, float32(b.X)-bulletW/2, float32(b.Y)-bulletH/2, bulletW, bulletH, core.ColorBrightWhite.RGBA(), false)
	}

	for _, ex := range g.Explosions() {
		c := core.ColorOrange.RGBA()
		c.A = uint8(0xff - ex.Frame*0x50) //#nosec G115 -- frame is below ExplosionFrames
		vector.DrawFilledCircle(dst, float32(ex.X), float32(ex.Y), float32(8*(ex.Frame+1)), c, true)
	}

	if snap.State != defender.StateMenu {
		px, py := float32(snap.PlayerX), float32(snap.PlayerY)
		pw := float32(snap.PlayerWidth)
		green := core.ColorBrightGreen.RGBA()
		vector.DrawFilledRect(dst, px-pw/2, py-6, pw, 12, green, false)
		vector.DrawFilledRect(dst, px-3, py-20, 6, 14, green, false)
	}

	drawHUD(dst, snap, int(w))
	drawOverlay(dst, g, snap, int(w), int(h))
}

func drawHUD(dst *ebiten.Image, snap defender.Snapshot, w int) {
	white := core.ColorBrightWhite.RGBA()
	text.Draw(dst, fmt.Sprintf("Score: %d", snap.Score), basicfont.Face7x13, margin, hudY, white)
	drawCentered(dst, fmt.Sprintf("Wave %d", snap.Wave), w, hudY, core.ColorBrightCyan.RGBA())
	if snap.Name != "" {
		text.Draw(dst, snap.Name, basicfont.Face7x13, w-margin-textWidth(snap.Name), hudY, core.ColorGray.RGBA())
	}
}

func drawOverlay(dst *ebiten.Image, g *defender.Game, snap defender.Snapshot, w, h int) {
	mid := h / 2
	switch {
	case snap.State == defender.StateMenu:
		drawCentered(dst, "D E F E N D E R", w, mid-20, core.ColorBrightCyan.RGBA())
		hint := "Press ENTER to start"
		if g.PlayerName() == "" {
			hint = "Set a player name with --name to start"
		}
		drawCentered(dst, hint, w, mid+10, core.ColorGray.RGBA())

	case snap.State == defender.StateGameOver:
		vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), dimmed, false)
		drawCentered(dst, "GAME OVER", w, mid-20, core.ColorBrightRed.RGBA())
		drawCentered(dst, fmt.Sprintf("Final score: %d", snap.Score), w, mid, core.ColorBrightWhite.RGBA())
		drawCentered(dst, "R: Restart  Esc: Quit", w, mid+20, core.ColorGray.RGBA())

	case g.Paused():
		vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), dimmed, false)
		drawCentered(dst, "PAUSED", w, mid, core.ColorYellow.RGBA())
	}
}

func drawCentered(dst *ebiten.Image, s string, w, y int, c color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, (w-textWidth(s))/2, y, c)
}

func textWidth(s string) int {
	return len([]rune(s)) * glyphW
}
