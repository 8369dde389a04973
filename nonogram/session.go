package nonogram

import "fmt"

// Session holds a loaded puzzle and the player's edits to it.
//
// The reference grid is the pattern read from the puzzle resource and is
// never modified. Clicks edit the working grid, which starts all Empty
// and always has the reference grid's dimensions.
type Session struct {
	path      string
	unit      float64
	reference *Grid
	working   *Grid
}

// Placement is one block positioned on screen
type Placement struct {
	Row   int
	Col   int
	Block Block
	X, Y  float64
}

// Frame is everything needed to draw a session for one viewport
type Frame struct {
	Background Rect
	Unit       float64
	Cells      []Placement
}

// NewSession loads the puzzle at path. No session is returned when loading fails.
func NewSession(path string, unit float64) (*Session, error) {
	reference, err := Load(path)
	if err != nil {
		return nil, err
	}
	s, err := NewSessionFromGrid(reference, unit)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// NewSessionFromGrid starts a session for an already parsed reference grid.
// The session keeps its own copy of reference.
func NewSessionFromGrid(reference *Grid, unit float64) (*Session, error) {
	working, err := NewGrid(reference.Width(), reference.Height())
	if err != nil {
		return nil, err
	}
	return &Session{
		unit:      unit,
		reference: reference.Clone(),
		working:   working,
	}, nil
}

// Path returns the resource the reference grid was loaded from, if any
func (s *Session) Path() string { return s.path }

// Unit returns the side length of one block in pixels
func (s *Session) Unit() float64 { return s.unit }

// Reference returns a copy of the loaded puzzle pattern
func (s *Session) Reference() *Grid { return s.reference.Clone() }

// Working returns the grid edited by clicks
func (s *Session) Working() *Grid { return s.working }

// Layout positions the working grid in vp
func (s *Session) Layout(vp Viewport) Layout {
	return NewLayout(s.working, s.unit, vp)
}

// CellAt resolves a screen position to a cell of the working grid
func (s *Session) CellAt(x, y float64, vp Viewport) (row, col int, ok bool) {
	return s.Layout(vp).CellAt(x, y)
}

// HandleClick toggles the cell under (x, y) with button.
// Clicks outside the grid are ignored and report ok == false.
func (s *Session) HandleClick(button Button, x, y float64, vp Viewport) (row, col int, ok bool) {
	row, col, ok = s.CellAt(x, y, vp)
	if !ok {
		return 0, 0, false
	}
	s.working.Toggle(row, col, button)
	return row, col, true
}

// Render lays out the working grid for vp. The background covers the whole
// grid and is drawn before the cells, which are listed in row-major order.
func (s *Session) Render(vp Viewport) Frame {
	layout := s.Layout(vp)
	frame := Frame{
		Background: layout.Bounds(),
		Unit:       s.unit,
		Cells:      make([]Placement, 0, s.working.Width()*s.working.Height()),
	}
	for row := 0; row < s.working.Height(); row++ {
		for col := 0; col < s.working.Width(); col++ {
			x, y := layout.CellOrigin(row, col)
			frame.Cells = append(frame.Cells, Placement{
				Row:   row,
				Col:   col,
				Block: s.working.At(row, col),
				X:     x,
				Y:     y,
			})
		}
	}
	return frame
}
