package types

import (
	"time"

	"github.com/pkg/errors"
)

// Cell is an integer coordinate on the board.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	delta := d.ToPoint()
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Contains reports whether c is one of cells.
func Contains(cells []Cell, c Cell) bool {
	for _, cell := range cells {
		if cell == c {
			return true
		}
	}
	return false
}

// MinCellCount is the smallest board that holds the initial snake.
const MinCellCount = 10

// Config holds the board geometry and pacing. It is passed by value and
// never mutated after construction.
type Config struct {
	CellSize     int
	CellCount    int
	Offset       int
	TickInterval time.Duration
	TargetFPS    int
}

// DefaultConfig returns the classic 25x25 board with 30px cells.
func DefaultConfig() Config {
	return Config{
		CellSize:     30,
		CellCount:    25,
		Offset:       75,
		TickInterval: 200 * time.Millisecond,
		TargetFPS:    60,
	}
}

func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.CellCount < MinCellCount:
		return errors.Errorf("cell count must be at least %d, got %d", MinCellCount, c.CellCount)
	case c.Offset < 0:
		return errors.Errorf("offset must not be negative, got %d", c.Offset)
	case c.TickInterval <= 0:
		return errors.Errorf("tick interval must be positive, got %s", c.TickInterval)
	case c.TargetFPS <= 0:
		return errors.Errorf("target fps must be positive, got %d", c.TargetFPS)
	}
	return nil
}

// InBounds reports whether cell lies on the board.
func (c Config) InBounds(cell Cell) bool {
	return cell.X >= 0 && cell.X < c.CellCount && cell.Y >= 0 && cell.Y < c.CellCount
}

// BoardPixels is the width (and height) of the board in pixels.
func (c Config) BoardPixels() int {
	return c.CellSize * c.CellCount
}

// WindowPixels is the window edge length: the board plus a margin on each side.
func (c Config) WindowPixels() int {
	return c.Offset*2 + c.BoardPixels()
}
