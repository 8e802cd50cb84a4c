package breakout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Level errors.
var (
	// ErrMalformedLevel is returned when a level grid has a non-integer cell,
	// a negative cell or rows of different lengths.
	ErrMalformedLevel = errors.New("breakout: malformed level")

	// ErrEmptyLevel is returned when a level file holds no rows.
	ErrEmptyLevel = errors.New("breakout: empty level")
)

// Tile values in a level grid.
const (
	TileEmpty = 0
	TileSolid = 1
)

var (
	solidTint  = RGB(0.8, 0.8, 0.7)
	brickTints = map[int]Color{
		2: RGB(0.2, 0.6, 1.0),
		3: RGB(0.0, 0.7, 0.0),
		4: RGB(0.8, 0.8, 0.4),
		5: RGB(1.0, 0.5, 0.0),
	}
)

// Level is a grid of bricks covering a width x height area from the origin.
// Bricks are kept in row-major grid order and are never removed, only
// flagged Destroyed.
type Level struct {
	Bricks []Object

	Rows, Cols int
	// Path is the file the level was loaded from, if any.
	Path string
}

// LoadLevel reads the level grid at path and lays it out over width x height.
// On error the returned level is empty but usable.
func LoadLevel(path string, width, height float32) (*Level, error) {
	l := &Level{}
	err := l.Load(path, width, height)
	return l, err
}

// ParseLevel reads a level grid from r and lays it out over width x height.
func ParseLevel(r io.Reader, width, height float32) (*Level, error) {
	grid, err := parseGrid(r)
	if err != nil {
		return &Level{}, err
	}
	l := &Level{}
	l.init(grid, width, height)
	return l, nil
}

// Load clears the level and rebuilds it from the grid at path. If the file
// cannot be read or parsed the level is left with no bricks and the error
// is returned for the caller to report.
func (l *Level) Load(path string, width, height float32) error {
	l.Bricks = l.Bricks[:0]
	l.Rows, l.Cols = 0, 0
	l.Path = path

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("breakout: open level: %w", err)
	}
	defer func() { _ = f.Close() }()

	grid, err := parseGrid(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	l.init(grid, width, height)

	Logger().Debug("level loaded", "path", path, "rows", l.Rows, "cols", l.Cols, "bricks", len(l.Bricks))
	return nil
}

// parseGrid reads one row per non-blank line of whitespace separated
// non-negative integers.
func parseGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: bad tile %q", ErrMalformedLevel, line, f)
			}
			row[i] = v
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d: %d tiles, want %d", ErrMalformedLevel, line, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("breakout: read level: %w", err)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyLevel
	}
	return grid, nil
}

func (l *Level) init(grid [][]int, width, height float32) {
	l.Rows = len(grid)
	l.Cols = len(grid[0])
	xs := edges(l.Cols, width)
	ys := edges(l.Rows, height)

	for y, row := range grid {
		for x, tile := range row {
			if tile == TileEmpty {
				continue
			}
			pos := V2(xs[x], ys[y])
			size := V2(xs[x+1]-xs[x], ys[y+1]-ys[y])
			brick := NewObject(pos, size, SpriteBlock)
			if tile == TileSolid {
				brick.Sprite = SpriteBlockSolid
				brick.Color = solidTint
				brick.Solid = true
			} else if c, ok := brickTints[tile]; ok {
				brick.Color = c
			}
			l.Bricks = append(l.Bricks, brick)
		}
	}
}

// edges splits extent into n cells and returns the n+1 cell boundaries.
// The last boundary is exactly extent.
func edges(n int, extent float32) []float32 {
	e := make([]float32, n+1)
	for i := range n {
		e[i] = float32(i) * extent / float32(n)
	}
	e[n] = extent
	return e
}

// IsCompleted reports whether every destructible brick has been destroyed.
// A level without destructible bricks is trivially completed.
func (l *Level) IsCompleted() bool {
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			return false
		}
	}
	return true
}

// Destructible returns the number of non-solid bricks, destroyed or not.
func (l *Level) Destructible() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Solid {
			n++
		}
	}
	return n
}

// Draw renders every brick that has not been destroyed.
func (l *Level) Draw(r SpriteRenderer, res Resources) {
	for i := range l.Bricks {
		if !l.Bricks[i].Destroyed {
			l.Bricks[i].Draw(r, res)
		}
	}
}
