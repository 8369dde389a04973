package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"nonogrid/nonogram"
)

// toButton maps an ebiten mouse button onto the buttons the grid understands
func toButton(b ebiten.MouseButton) nonogram.Button {
	switch b {
	case ebiten.MouseButtonLeft:
		return nonogram.ButtonPrimary
	case ebiten.MouseButtonRight:
		return nonogram.ButtonSecondary
	case ebiten.MouseButtonMiddle:
		return nonogram.ButtonTertiary
	default:
		return nonogram.ButtonOther
	}
}

// handleClicks toggles the block under the cursor for every button pressed this tick
func (g *Game) handleClicks() {
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if !inpututil.IsMouseButtonJustPressed(b) {
			continue
		}
		x, y := ebiten.CursorPosition()
		row, col, ok := g.session.HandleClick(toButton(b), float64(x), float64(y), g.viewport)
		if !ok {
			log.WithFields(log.Fields{"x": x, "y": y}).Trace("click outside grid")
			continue
		}
		log.WithFields(log.Fields{
			"button": int(b),
			"row":    row,
			"col":    col,
			"block":  g.session.Working().At(row, col),
		}).Debug("block toggled")
	}
}

// handleKeys processes the debug HUD and fullscreen toggles
func (g *Game) handleKeys() {
	// F1 toggles the debug HUD
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowHUD = !debugState.ShowHUD
	}

	// Alt+Enter toggles fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		log.WithField("fullscreen", fullscreen).Debug("display mode changed")
	}
}
