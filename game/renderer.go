package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"nonogrid/nonogram"
)

// Color constants
var (
	colorScreen     = color.Black
	colorBackground = color.RGBA{63, 63, 63, 255}
	colorBlock      = color.White
	colorMarked     = color.NRGBA{255, 255, 255, 128}
	colorHUD        = color.RGBA{180, 255, 200, 255}
)

const (
	crossStrokeWidth  = 2.0
	markedStrokeWidth = 1.0
	hudMargin         = 8.0
	hudLineSpacing    = 16.0
)

// Renderer turns a laid-out session frame into shapes on screen
type Renderer struct {
	face text.Face
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws the grid background and then every block on top of it
func (r *Renderer) Render(screen *ebiten.Image, frame nonogram.Frame) {
	screen.Fill(colorScreen)

	bg := frame.Background
	vector.DrawFilledRect(screen, float32(bg.X), float32(bg.Y), float32(bg.Width), float32(bg.Height), colorBackground, false)

	for _, p := range frame.Cells {
		r.RenderBlock(screen, p, frame.Unit)
	}
}

// RenderBlock draws a single block with its top-left corner at the placement position
func (r *Renderer) RenderBlock(screen *ebiten.Image, p nonogram.Placement, unit float64) {
	x, y, size := float32(p.X), float32(p.Y), float32(unit)

	switch p.Block {
	case nonogram.Filled:
		vector.DrawFilledRect(screen, x, y, size, size, colorBlock, false)
	case nonogram.Crossed:
		vector.StrokeLine(screen, x, y, x+size, y+size, crossStrokeWidth, colorBlock, true)
		vector.StrokeLine(screen, x+size, y, x, y+size, crossStrokeWidth, colorBlock, true)
	case nonogram.Marked:
		vector.StrokeRect(screen, x, y, size, size, markedStrokeWidth, colorMarked, false)
	case nonogram.Empty:
		// Nothing to draw, the background shows through
	}
}

// RenderHUD prints debug lines in the top-left corner
func (r *Renderer) RenderHUD(screen *ebiten.Image, lines string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(colorHUD)
	op.LineSpacing = hudLineSpacing
	text.Draw(screen, lines, r.face, op)
}
