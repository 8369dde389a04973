package nonogram

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// FillMarker is the only significant character of the puzzle format
const FillMarker = '#'

var (
	// ErrResourceUnavailable is returned when a puzzle resource cannot be read
	ErrResourceUnavailable = errors.New("puzzle resource unavailable")

	// ErrInvalidDimensions is returned for grids with zero width or height
	ErrInvalidDimensions = errors.New("nonogram has invalid dimensions")
)

// Load reads and parses the puzzle file at path
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	grid, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return grid, nil
}

// ParseString parses a puzzle held in memory
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a puzzle from r. Every line becomes one row; lines shorter
// than the longest one are padded with Empty blocks on the right.
func Parse(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	return parse(data)
}

// splitLines splits on '\n', drops a trailing '\r' from each line and
// does not produce an extra line for a final newline.
func splitLines(data []byte) []string {
	text := string(data)
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func parse(data []byte) (*Grid, error) {
	lines := splitLines(data)
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	// height == 0 implies width == 0
	if width == 0 {
		return nil, fmt.Errorf("%w: all %d lines are empty", ErrInvalidDimensions, len(lines))
	}

	grid, err := NewGrid(width, len(lines))
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		col := 0
		for _, c := range line {
			if c == FillMarker {
				grid.Set(row, col, Filled)
			}
			col++
		}
	}
	return grid, nil
}
