package entity

import "retro-snake/game/types"

// InitialBody is where every round starts, head first.
var InitialBody = []types.Cell{{X: 8, Y: 9}, {X: 7, Y: 9}, {X: 6, Y: 9}}

// Snake owns its body (head at index 0) and direction of travel.
type Snake struct {
	Body      []types.Cell
	direction types.Direction
	grow      bool
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset puts the snake back to the initial 3-cell body moving right.
func (s *Snake) Reset() {
	s.Place(InitialBody, types.RIGHT)
}

// Place replaces the body (head first) and sets the direction of travel.
// Any pending growth is dropped.
func (s *Snake) Place(body []types.Cell, dir types.Direction) {
	s.Body = append(s.Body[:0], body...)
	s.direction = dir
	s.grow = false
}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// ChangeDirection sets the direction for the next move. The exact
// opposite of the current direction is rejected.
func (s *Snake) ChangeDirection(dir types.Direction) bool {
	if dir == types.NONE {
		return false
	}
	if dir == s.direction.Opposite() {
		return false
	}
	s.direction = dir
	return true
}

// Grow makes the next Update keep the tail.
func (s *Snake) Grow() {
	s.grow = true
}

func (s *Snake) Growing() bool {
	return s.grow
}

// Update moves the head one step forward. The tail is dropped unless a
// growth was requested, in which case the body gets one cell longer.
func (s *Snake) Update() {
	newHead := s.Head().Add(s.direction)
	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	if s.grow {
		s.grow = false
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Occupies reports whether any segment of the snake covers cell.
func (s *Snake) Occupies(cell types.Cell) bool {
	return types.Contains(s.Body, cell)
}
