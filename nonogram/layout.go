package nonogram

// Viewport is the size of the drawable area in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in screen pixels
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Layout places a grid centered in a viewport, one unit-sized square per block
type Layout struct {
	Unit    float64
	Rows    int
	Cols    int
	OriginX float64 // top-left corner of the grid on screen
	OriginY float64
}

// NewLayout centers a grid of the given dimensions in vp
func NewLayout(grid *Grid, unit float64, vp Viewport) Layout {
	l := Layout{
		Unit: unit,
		Rows: grid.Height(),
		Cols: grid.Width(),
	}
	w, h := l.Footprint()
	l.OriginX = vp.Width/2 - w/2
	l.OriginY = vp.Height/2 - h/2
	return l
}

// Footprint returns the grid size in pixels
func (l Layout) Footprint() (float64, float64) {
	return float64(l.Cols) * l.Unit, float64(l.Rows) * l.Unit
}

// Bounds returns the rectangle covered by the grid
func (l Layout) Bounds() Rect {
	w, h := l.Footprint()
	return Rect{X: l.OriginX, Y: l.OriginY, Width: w, Height: h}
}

// CellAt converts a screen position to the (row, col) under it.
// ok is false when the position lies outside the grid.
func (l Layout) CellAt(x, y float64) (row, col int, ok bool) {
	w, h := l.Footprint()
	if x < l.OriginX || y < l.OriginY || x > l.OriginX+w || y > l.OriginY+h {
		return 0, 0, false
	}

	row = int((y - l.OriginY) / l.Unit)
	col = int((x - l.OriginX) / l.Unit)

	// The far edges are inclusive and belong to the last row and column.
	row = min(row, l.Rows-1)
	col = min(col, l.Cols-1)
	return row, col, true
}

// CellOrigin returns the top-left screen position of (row, col)
func (l Layout) CellOrigin(row, col int) (float64, float64) {
	return l.OriginX + float64(col)*l.Unit, l.OriginY + float64(row)*l.Unit
}
