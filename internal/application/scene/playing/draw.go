package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/blockfall/internal/application/session"
	"github.com/younwookim/blockfall/internal/domain/entity"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

const (
	fieldMargin = 20
	panelGap    = 20
)

var (
	colorPauseOverlay    = color.RGBA{0, 0, 0, 128}
	colorGameOverOverlay = color.RGBA{100, 0, 0, 180}
)

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.colors.Background)

	v := p.session.Snapshot()
	cell := p.config.Rules.Display.CellSize

	p.drawField(screen, v, cell)
	p.drawGhost(screen, v, cell)
	p.drawActive(screen, v, cell)
	p.drawFlash(screen, v, cell)
	p.drawPanel(screen, v, cell)

	switch {
	case v.GameOver:
		p.drawGameOverOverlay(screen, v)
	case p.finished:
		p.drawBanner(screen, "REPLAY FINISHED")
	case p.paused:
		p.drawPauseOverlay(screen)
	}
}

// tokenColor maps a cell token onto the palette
func (p *Playing) tokenColor(c entity.Color) color.RGBA {
	palette := p.colors.Palette
	return palette[(int(c)-1)%len(palette)]
}

// translucent returns c with alpha a, unpremultiplied
func translucent(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func drawCell(screen *ebiten.Image, x, y, size int, c color.Color) {
	// 1px gutter shows the grid underneath
	ebitenutil.DrawRect(screen, float64(x+1), float64(y+1), float64(size-2), float64(size-2), c)
}

func (p *Playing) drawField(screen *ebiten.Image, v session.View, cell int) {
	ebitenutil.DrawRect(screen, fieldMargin, fieldMargin, float64(v.Width*cell), float64(v.Height*cell), p.colors.Grid)

	for y, row := range v.Cells {
		for x, c := range row {
			if c.IsEmpty() {
				ebitenutil.DrawRect(screen, float64(fieldMargin+x*cell+1), float64(fieldMargin+y*cell+1),
					float64(cell-2), float64(cell-2), p.colors.Background)
				continue
			}
			drawCell(screen, fieldMargin+x*cell, fieldMargin+y*cell, cell, p.tokenColor(c))
		}
	}
}

func (p *Playing) drawGhost(screen *ebiten.Image, v session.View, cell int) {
	if v.Active == nil || v.GhostRow == v.Active.Row {
		return
	}
	ghost := translucent(p.colors.Ghost, 60)
	g := entity.NewPiece(v.Active.Def(), v.Active.Col, v.GhostRow)
	for _, pt := range g.Cells() {
		if pt.Row < 0 {
			continue
		}
		drawCell(screen, fieldMargin+pt.Col*cell, fieldMargin+pt.Row*cell, cell, ghost)
	}
}

func (p *Playing) drawActive(screen *ebiten.Image, v session.View, cell int) {
	if v.Active == nil {
		return
	}
	c := config.Lighten(p.tokenColor(v.Active.Color), 0.15)
	for _, pt := range v.Active.Cells() {
		if pt.Row < 0 {
			continue
		}
		drawCell(screen, fieldMargin+pt.Col*cell, fieldMargin+pt.Row*cell, cell, c)
	}
}

func (p *Playing) drawFlash(screen *ebiten.Image, v session.View, cell int) {
	alpha := p.flavor.flashAlpha()
	if alpha <= 0 {
		return
	}
	c := color.NRGBA{255, 255, 255, uint8(160 * alpha)}
	for _, row := range p.flavor.rows {
		ebitenutil.DrawRect(screen, fieldMargin, float64(fieldMargin+row*cell), float64(v.Width*cell), float64(cell), c)
	}
}

func (p *Playing) drawPanel(screen *ebiten.Image, v session.View, cell int) {
	x := fieldMargin + v.Width*cell + panelGap
	y := fieldMargin
	small := cell * 2 / 3

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	if v.Next != nil {
		p.drawPreview(screen, *v.Next, x, y+16, small, false)
	}

	y += 16 + 3*small
	holdLabel := "HOLD"
	if !v.CanHold {
		holdLabel = "HOLD (used)"
	}
	ebitenutil.DebugPrintAt(screen, holdLabel, x, y)
	if v.Hold != nil {
		p.drawPreview(screen, *v.Hold, x, y+16, small, !v.CanHold)
	}

	y += 16 + 5*small
	stats := fmt.Sprintf("SCORE\n%d\n\nLINES\n%d\n\nPIECES\n%d", v.Score, v.Lines, v.Pieces)
	ebitenutil.DebugPrintAt(screen, stats, x, y)

	y += 120
	if p.flavor.text != "" {
		ebitenutil.DebugPrintAt(screen, p.flavor.text, x, y)
	}

	help := "<- -> : move\nDown  : soft drop\nUp/W  : hard drop\nA/D   : rotate\nH     : hold\nESC   : pause"
	ebitenutil.DebugPrintAt(screen, help, x, p.screenH-110)
	name := p.name
	if p.IsRecording() {
		name += " [REC]"
	}
	ebitenutil.DebugPrintAt(screen, name, x, p.screenH-130)
}

func (p *Playing) drawPreview(screen *ebiten.Image, def entity.PieceDef, x, y, size int, dimmed bool) {
	var c color.Color = p.tokenColor(def.Color)
	if dimmed {
		c = translucent(p.tokenColor(def.Color), 90)
	}
	for _, pt := range def.Shape.Occupied() {
		drawCell(screen, x+pt.Col*size, y+pt.Row*size, size, c)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPauseOverlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image, v session.View) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorGameOverOverlay)

	text := fmt.Sprintf("GAME OVER\n\nScore: %d\nLines: %d\n\nPress Enter to restart", v.Score, v.Lines)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func (p *Playing) drawBanner(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, float64(p.screenH/2-20), float64(p.screenW), 40, colorPauseOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-8)
}
