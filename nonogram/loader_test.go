package nonogram

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExample(t *testing.T) {
	g, err := ParseString("#.\n.#")
	require.NoError(t, err)
	assert.Equal(t, [][]Block{{Filled, Empty}, {Empty, Filled}}, g.Rows())
}

func TestParseWidthIsLongestLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
	}{
		{"single", "#", 1},
		{"ragged", "#\n###\n##", 3},
		{"trailing newline", "##\n#\n", 2},
		{"crlf", "#.#\r\n#\r\n", 3},
		{"leading empty line", "\n  #", 3},
		{"multibyte", "é#\n#", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.width, g.Width())
			for _, row := range g.Rows() {
				assert.Len(t, row, tt.width)
			}
		})
	}
}

func TestParseHeightCountsLines(t *testing.T) {
	g, err := ParseString("#\n\n#\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, [][]Block{{Filled}, {Empty}, {Filled}}, g.Rows())
}

func TestParsePadsShortLines(t *testing.T) {
	g, err := ParseString("####\n#\n.#")
	require.NoError(t, err)

	assert.Equal(t, []Block{Filled, Filled, Filled, Filled}, g.Rows()[0])
	assert.Equal(t, []Block{Filled, Empty, Empty, Empty}, g.Rows()[1])
	assert.Equal(t, []Block{Empty, Filled, Empty, Empty}, g.Rows()[2])
}

func TestParseOnlyFillMarkerIsSignificant(t *testing.T) {
	line := "# .xX0123456789abc!@$%^&*()\t-_=+[]{}"
	g, err := ParseString(line)
	require.NoError(t, err)

	col := 0
	for _, c := range line {
		want := Empty
		if c == FillMarker {
			want = Filled
		}
		assert.Equal(t, want, g.At(0, col), "character %q", c)
		col++
	}
	assert.Equal(t, 1, g.Count(Filled))
}

func TestParseRejectsDegenerateInput(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n\n", "\r\n\r\n"} {
		g, err := ParseString(input)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "input %q", input)
		assert.Nil(t, g)
	}
}

func TestParseLongLine(t *testing.T) {
	const width = 2 << 20
	g, err := ParseString(strings.Repeat("#", width) + "\n.#\n")
	require.NoError(t, err)
	assert.Equal(t, width, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, width+1, g.Count(Filled))
	assert.Equal(t, Empty, g.At(1, width-1))
}

func TestParseReadFailure(t *testing.T) {
	cause := errors.New("disk on fire")
	g, err := Parse(iotest.ErrReader(cause))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidDimensions)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cross.txt")
	require.NoError(t, os.WriteFile(path, []byte(".#.\n###\n.#.\n"), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.Count(Filled))
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	g, err := Load(path)
	assert.Nil(t, g)
	require.ErrorIs(t, err, ErrResourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	assert.NotErrorIs(t, err, ErrResourceUnavailable)
}

func TestLoadBundledPuzzle(t *testing.T) {
	g, err := Load(filepath.Join("..", "nonograms", "penguin.txt"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join("..", "nonograms", "penguin.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	assert.Equal(t, len(lines), g.Height())
	assert.Equal(t, strings.Count(string(data), "#"), g.Count(Filled))
}
