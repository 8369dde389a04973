package game

// Config holds game configuration constants
type Config struct {
	// PuzzlePath is the puzzle resource loaded at startup
	PuzzlePath string

	// BlockSize is the side length of one grid block in pixels
	BlockSize float64

	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// Title is the window title
	Title string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		PuzzlePath:   "./nonograms/penguin.txt",
		BlockSize:    35.0,
		ScreenWidth:  640,
		ScreenHeight: 480,
		Title:        "Nonogram",
	}
}
