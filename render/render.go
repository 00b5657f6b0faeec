// Package render draws a game.Snapshot onto an ebiten image: the visible part
// of the board, the ghost and active piece, the hold box, the next queue and
// the score.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/shape"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	background = color.RGBA{18, 18, 24, 255}
	well       = color.RGBA{32, 32, 40, 255}
	gridLine   = color.RGBA{44, 44, 54, 255}
	frame      = color.RGBA{120, 120, 140, 255}
	dimmed     = color.RGBA{70, 70, 80, 255}
	overlay    = color.RGBA{0, 0, 0, 170}
)

var palette = [...]color.RGBA{
	shape.Empty:  {0, 0, 0, 0},
	shape.Cyan:   {0, 240, 240, 255},
	shape.Blue:   {40, 80, 240, 255},
	shape.Orange: {240, 160, 0, 255},
	shape.Yellow: {240, 230, 0, 255},
	shape.Green:  {0, 210, 80, 255},
	shape.Purple: {160, 40, 240, 255},
	shape.Red:    {230, 30, 40, 255},
}

// Palette returns the fill color of a cell.
func Palette(c shape.Color) color.RGBA {
	if !c.Valid() {
		return palette[shape.Empty]
	}
	return palette[c]
}

func ghost(c shape.Color) color.RGBA {
	p := Palette(c)
	p.R, p.G, p.B, p.A = p.R/4, p.G/4, p.B/4, 64
	return p
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Layout positions the panels for a given cell size.
type Layout struct {
	Cell    float32
	Margin  float32
	Preview int

	Well Rect
	Hold Rect
	Next []Rect
	Text Rect
}

// NewLayout computes the panel rectangles for cellSize-pixel cells and
// preview upcoming pieces.
func NewLayout(cellSize, preview int) Layout {
	cell := float32(cellSize)
	margin := cell
	l := Layout{
		Cell:    cell,
		Margin:  margin,
		Preview: preview,
		Well:    Rect{X: margin, Y: margin, W: cell * board.Width, H: cell * board.VisibleRows},
	}

	side := l.Well.X + l.Well.W + margin
	box := cell * 4
	l.Hold = Rect{X: side, Y: margin + cell, W: box, H: box}

	y := l.Hold.Y + box + cell*2
	for i := 0; i < preview; i++ {
		l.Next = append(l.Next, Rect{X: side, Y: y, W: box, H: box})
		y += box
	}
	l.Text = Rect{X: side, Y: y + cell, W: box, H: cell * 3}
	return l
}

// Size returns the screen size the layout needs.
func (l Layout) Size() (w, h int) {
	w = int(l.Hold.X + l.Hold.W + l.Margin)
	h = int(l.Well.Y + l.Well.H + l.Margin)
	if bottom := int(l.Text.Y + l.Text.H + l.Margin); bottom > h {
		h = bottom
	}
	return w, h
}

// CellRect returns the screen rectangle of board cell (x, y). Hidden rows map
// above the well.
func (l Layout) CellRect(x, y int) Rect {
	return Rect{
		X: l.Well.X + float32(x)*l.Cell,
		Y: l.Well.Y + float32(y-board.HiddenRows)*l.Cell,
		W: l.Cell,
		H: l.Cell,
	}
}

// Renderer draws snapshots. It keeps a printer for locale-aware counters.
type Renderer struct {
	Layout  Layout
	printer *message.Printer
}

// New returns a renderer for the given cell size and preview length.
func New(cellSize, preview int) *Renderer {
	return &Renderer{
		Layout:  NewLayout(cellSize, preview),
		printer: message.NewPrinter(language.English),
	}
}

// Status returns the text lines shown under the queue.
func (r *Renderer) Status(sn *game.Snapshot) []string {
	return []string{
		r.printer.Sprintf("Score %d", sn.Score),
		r.printer.Sprintf("Lines %d", sn.Lines),
	}
}

// Draw paints sn onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, sn *game.Snapshot) {
	screen.Fill(background)

	r.drawWell(screen, sn)
	r.drawHold(screen, sn)
	r.drawNext(screen, sn)

	l := r.Layout
	for i, line := range r.Status(sn) {
		ebitenutil.DebugPrintAt(screen, line, int(l.Text.X), int(l.Text.Y)+i*16)
	}

	if sn.Phase == game.GameOver {
		r.drawGameOver(screen, sn)
	}
}

func fill(dst *ebiten.Image, rc Rect, c color.Color) {
	vector.DrawFilledRect(dst, rc.X, rc.Y, rc.W, rc.H, c, false)
}

func stroke(dst *ebiten.Image, rc Rect, c color.Color) {
	vector.StrokeRect(dst, rc.X, rc.Y, rc.W, rc.H, 1, c, false)
}

func (r *Renderer) drawCell(dst *ebiten.Image, rc Rect, c color.Color) {
	inset := Rect{X: rc.X + 1, Y: rc.Y + 1, W: rc.W - 2, H: rc.H - 2}
	fill(dst, inset, c)
}

func (r *Renderer) drawWell(screen *ebiten.Image, sn *game.Snapshot) {
	l := r.Layout
	fill(screen, l.Well, well)

	active := sn.Active.Kind.Color()
	for y := board.HiddenRows; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			rc := l.CellRect(x, y)
			stroke(screen, rc, gridLine)

			switch {
			case sn.Phase == game.Playing && sn.ActiveAt(x, y):
				r.drawCell(screen, rc, Palette(active))
			case sn.Cells[y][x].Occupied():
				r.drawCell(screen, rc, Palette(sn.Cells[y][x]))
			case sn.Phase == game.Playing && sn.GhostAt(x, y):
				r.drawCell(screen, rc, ghost(active))
			}
		}
	}
	stroke(screen, l.Well, frame)
}

func (r *Renderer) drawPiece(screen *ebiten.Image, box Rect, k shape.Kind, c color.Color) {
	cell := r.Layout.Cell
	m := k.Mask(shape.R0)
	first, last := m.Rows()
	// Center the occupied rows vertically in the box.
	top := box.Y + (box.H-float32(last-first+1)*cell)/2 - float32(first)*cell
	for off := range m.Cells() {
		rc := Rect{X: box.X + float32(off.DX)*cell, Y: top + float32(off.DY)*cell, W: cell, H: cell}
		r.drawCell(screen, rc, c)
	}
}

func (r *Renderer) drawHold(screen *ebiten.Image, sn *game.Snapshot) {
	l := r.Layout
	ebitenutil.DebugPrintAt(screen, "HOLD", int(l.Hold.X), int(l.Hold.Y-l.Cell))
	stroke(screen, l.Hold, frame)
	if !sn.HasHeld {
		return
	}

	c := color.Color(Palette(sn.Held.Color()))
	if sn.JustHeld {
		c = dimmed
	}
	r.drawPiece(screen, l.Hold, sn.Held, c)
}

func (r *Renderer) drawNext(screen *ebiten.Image, sn *game.Snapshot) {
	l := r.Layout
	if len(l.Next) == 0 {
		return
	}
	ebitenutil.DebugPrintAt(screen, "NEXT", int(l.Next[0].X), int(l.Next[0].Y-l.Cell))
	for i, box := range l.Next {
		stroke(screen, box, frame)
		if i < len(sn.Next) {
			r.drawPiece(screen, box, sn.Next[i], Palette(sn.Next[i].Color()))
		}
	}
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, sn *game.Snapshot) {
	l := r.Layout
	fill(screen, l.Well, overlay)

	x := int(l.Well.X + l.Cell)
	y := int(l.Well.Y + l.Well.H/2 - 24)
	ebitenutil.DebugPrintAt(screen, "GAME OVER", x, y)
	ebitenutil.DebugPrintAt(screen, r.printer.Sprintf("Final score %d", sn.Score), x, y+16)
	ebitenutil.DebugPrintAt(screen, "Press any key to restart", x, y+32)
	ebitenutil.DebugPrintAt(screen, "Esc or Ctrl+C to quit", x, y+48)
}
