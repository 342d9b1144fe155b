package types

// Direction is one of the four cardinal directions
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a unit step vector
func (d Direction) ToPoint() Cell {
	switch d {
	case UP:
		return Cell{X: 0, Y: -1}
	case RIGHT:
		return Cell{X: 1, Y: 0}
	case DOWN:
		return Cell{X: 0, Y: 1}
	case LEFT:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction. NONE has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
