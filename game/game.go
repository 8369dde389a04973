package game

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"nonogrid/nonogram"
)

// Game represents the main game state
type Game struct {
	session  *nonogram.Session
	renderer *Renderer
	config   Config

	// Filled blocks in the loaded pattern, shown on the HUD
	referenceFilled int

	// Current drawable area, updated from Layout
	viewport nonogram.Viewport
}

// NewGame loads the configured puzzle and creates a game around it.
// No game is created when the puzzle cannot be loaded.
func NewGame(config Config) (*Game, error) {
	session, err := nonogram.NewSession(config.PuzzlePath, config.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	reference := session.Reference()
	log.WithFields(log.Fields{
		"path":   config.PuzzlePath,
		"width":  reference.Width(),
		"height": reference.Height(),
		"filled": reference.Count(nonogram.Filled),
	}).Info("puzzle loaded")

	return &Game{
		session:         session,
		renderer:        NewRenderer(),
		config:          config,
		referenceFilled: reference.Count(nonogram.Filled),
		viewport: nonogram.Viewport{
			Width:  float64(config.ScreenWidth),
			Height: float64(config.ScreenHeight),
		},
	}, nil
}

// Session returns the puzzle session driven by the game
func (g *Game) Session() *nonogram.Session {
	return g.session
}

// Update handles input for one tick
func (g *Game) Update() error {
	g.handleKeys()
	g.handleClicks()
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.session.Render(g.viewport))

	if GetDebugState().ShowHUD {
		g.renderer.RenderHUD(screen, g.hudText())
	}
}

// Layout tracks the window size so the grid stays centered after a resize
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport = nonogram.Viewport{
		Width:  float64(outsideWidth),
		Height: float64(outsideHeight),
	}
	return outsideWidth, outsideHeight
}

// hudText describes the puzzle and the block under the cursor
func (g *Game) hudText() string {
	working := g.session.Working()

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%dx%d)\n", g.session.Path(), working.Width(), working.Height())
	fmt.Fprintf(&b, "pattern %d filled\n", g.referenceFilled)
	fmt.Fprintf(&b, "filled %d  crossed %d  marked %d\n",
		working.Count(nonogram.Filled), working.Count(nonogram.Crossed), working.Count(nonogram.Marked))

	x, y := ebiten.CursorPosition()
	if row, col, ok := g.session.CellAt(float64(x), float64(y), g.viewport); ok {
		fmt.Fprintf(&b, "cursor r%d c%d: %s\n", row, col, working.At(row, col))
	} else {
		b.WriteString("cursor outside grid\n")
	}
	fmt.Fprintf(&b, "TPS: %.0f", ebiten.ActualTPS())
	return b.String()
}
