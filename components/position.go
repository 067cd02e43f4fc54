package components

import "fmt"

// Position is a grid cell, Row grows downward and Col grows rightward
type Position struct {
	Row int
	Col int
}

// Add returns the cell one step away in direction d
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Sub returns the vector from q to p
func (p Position) Sub(q Position) Direction {
	return Direction{DRow: p.Row - q.Row, DCol: p.Col - q.Col}
}

// Manhattan returns the Manhattan distance to another cell
func (p Position) Manhattan(q Position) int {
	dr := p.Row - q.Row
	dc := p.Col - q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a unit step on the grid. The zero value is None.
type Direction struct {
	DRow int
	DCol int
}

var (
	None  = Direction{}
	Up    = Direction{DRow: -1}
	Down  = Direction{DRow: 1}
	Left  = Direction{DCol: -1}
	Right = Direction{DCol: 1}
)

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// IsNone reports whether d is the empty request
func (d Direction) IsNone() bool {
	return d == None
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// PositionSet is a hash-backed set of cells
type PositionSet map[Position]struct{}

// NewPositionSet creates a set holding the given cells
func NewPositionSet(cells ...Position) PositionSet {
	s := make(PositionSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s PositionSet) Len() int {
	return len(s)
}

// Bounds is a rectangular grid, inclusive on both axes
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Height returns the number of rows
func (b Bounds) Height() int {
	return b.MaxRow - b.MinRow + 1
}

// Width returns the number of columns
func (b Bounds) Width() int {
	return b.MaxCol - b.MinCol + 1
}

// Contains reports whether p lies on the grid, border included
func (b Bounds) Contains(p Position) bool {
	return p.Row >= b.MinRow && p.Row <= b.MaxRow && p.Col >= b.MinCol && p.Col <= b.MaxCol
}

// IsBorder reports whether p lies on the perimeter
func (b Bounds) IsBorder(p Position) bool {
	if !b.Contains(p) {
		return false
	}
	return p.Row == b.MinRow || p.Row == b.MaxRow || p.Col == b.MinCol || p.Col == b.MaxCol
}

// IsCorner reports whether p is one of the four corner cells
func (b Bounds) IsCorner(p Position) bool {
	return (p.Row == b.MinRow || p.Row == b.MaxRow) && (p.Col == b.MinCol || p.Col == b.MaxCol)
}

// InteriorRows returns the number of rows strictly inside the border
func (b Bounds) InteriorRows() int {
	if n := b.Height() - 2; n > 0 {
		return n
	}
	return 0
}

// InteriorCols returns the number of columns strictly inside the border
func (b Bounds) InteriorCols() int {
	if n := b.Width() - 2; n > 0 {
		return n
	}
	return 0
}

// InteriorCells returns the number of cells strictly inside the border
func (b Bounds) InteriorCells() int {
	return b.InteriorRows() * b.InteriorCols()
}
