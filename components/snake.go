package components

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/term-snake/constants"
)

var (
	ErrSnakeTooShort      = errors.New("snake body too short")
	ErrSnakeNotContiguous = errors.New("snake body not contiguous")
)

// Snake is an ordered body with the tail first and the head last.
// Growth is driven externally through RequestGrowth; the snake never looks at food.
type Snake struct {
	body         []Position
	growthCredit int
}

// NewSnake creates a snake from tail to head. Consecutive cells must be orthogonally adjacent.
func NewSnake(body []Position) (*Snake, error) {
	if len(body) < constants.MinSnakeLength {
		return nil, fmt.Errorf("%w: got %d cells, need %d", ErrSnakeTooShort, len(body), constants.MinSnakeLength)
	}
	for i := 1; i < len(body); i++ {
		if body[i-1].Manhattan(body[i]) != 1 {
			return nil, fmt.Errorf("%w: %s and %s", ErrSnakeNotContiguous, body[i-1], body[i])
		}
	}

	cells := make([]Position, len(body))
	copy(cells, body)
	return &Snake{body: cells}, nil
}

// Head returns the leading cell
func (s *Snake) Head() Position {
	return s.body[len(s.body)-1]
}

// Tail returns the trailing cell
func (s *Snake) Tail() Position {
	return s.body[0]
}

// Len returns the number of body cells
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the cells from tail to head
func (s *Snake) Body() []Position {
	cells := make([]Position, len(s.body))
	copy(cells, s.body)
	return cells
}

// GrowthCredit returns the number of pending growth ticks
func (s *Snake) GrowthCredit() int {
	return s.growthCredit
}

// RequestGrowth adds pending growth ticks; non-positive amounts are ignored
func (s *Snake) RequestGrowth(amount int) {
	if amount > 0 {
		s.growthCredit += amount
	}
}

// ImplicitDirection is the heading inferred from the last two cells
func (s *Snake) ImplicitDirection() Direction {
	return s.Head().Sub(s.body[len(s.body)-2])
}

// resolve picks the direction for the next step: the request unless it is empty or a reversal
func (s *Snake) resolve(requested Direction) Direction {
	implicit := s.ImplicitDirection()
	if requested.IsNone() || requested == implicit.Reverse() {
		return implicit
	}
	return requested
}

// Move advances the head one cell and returns it.
// Bounds and self-collision are left to the caller.
func (s *Snake) Move(requested Direction) Position {
	head := s.Head().Add(s.resolve(requested))

	if s.growthCredit > 0 {
		s.growthCredit--
		s.body = append(s.body, head)
		return head
	}

	copy(s.body, s.body[1:])
	s.body[len(s.body)-1] = head
	return head
}

// BitesSelf reports whether the head overlaps any other body cell
func (s *Snake) BitesSelf() bool {
	head := s.Head()
	for _, p := range s.body[:len(s.body)-1] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupied returns the body as a set
func (s *Snake) Occupied() PositionSet {
	return NewPositionSet(s.body...)
}
