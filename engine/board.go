package engine

import (
	"fmt"

	"github.com/lixenwraith/term-snake/components"
	"github.com/lixenwraith/term-snake/render"
)

// Cause explains why a session ended
type Cause uint8

const (
	CauseNone Cause = iota
	CauseBorder
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseBorder:
		return "border"
	case CauseSelf:
		return "self"
	}
	return "none"
}

// TickResult reports what one tick did
type TickResult struct {
	Head  components.Position
	Ate   bool
	Cause Cause
	Over  bool
}

// FrameRenderer is the output side of the board
type FrameRenderer interface {
	DrawFrame(f render.Frame)
	DrawGameOver(b components.Bounds)
}

// Board owns the snake, the food and the border, and sequences each tick
type Board struct {
	cfg      Config
	border   components.PositionSet
	perim    []components.Position
	snake    *components.Snake
	food     *components.Food
	renderer FrameRenderer

	running bool
	score   int
	last    TickResult
}

// NewBoard creates the snake from cfg.StartBody and places the first food
func NewBoard(cfg Config, rng components.Rand, renderer FrameRenderer) (*Board, error) {
	snake, err := components.NewSnake(cfg.StartBody)
	if err != nil {
		return nil, fmt.Errorf("create snake: %w", err)
	}

	food, err := components.NewFood(cfg.Bounds, rng, snake.Occupied())
	if err != nil {
		return nil, fmt.Errorf("place food: %w", err)
	}

	perim := BorderCells(cfg.Bounds)
	return &Board{
		cfg:      cfg,
		border:   components.NewPositionSet(perim...),
		perim:    perim,
		snake:    snake,
		food:     food,
		renderer: renderer,
		running:  true,
	}, nil
}

// BorderCells lists every perimeter cell once, row by row
func BorderCells(b components.Bounds) []components.Position {
	cells := make([]components.Position, 0, 2*(b.Width()+b.Height()))
	for row := b.MinRow; row <= b.MaxRow; row++ {
		if row == b.MinRow || row == b.MaxRow {
			for col := b.MinCol; col <= b.MaxCol; col++ {
				cells = append(cells, components.Position{Row: row, Col: col})
			}
			continue
		}
		cells = append(cells, components.Position{Row: row, Col: b.MinCol})
		if b.MaxCol != b.MinCol {
			cells = append(cells, components.Position{Row: row, Col: b.MaxCol})
		}
	}
	return cells
}

// Tick runs one step: move, food check, collision check, render.
// The food check precedes the collision check, so landing on food and a wall
// in the same tick still ends the session.
func (b *Board) Tick(dir components.Direction) (TickResult, error) {
	if !b.running {
		return b.last, nil
	}

	head := b.snake.Move(dir)
	res := TickResult{Head: head}

	if head == b.food.Position() {
		res.Ate = true
		b.score++
		b.snake.RequestGrowth(b.cfg.GrowthPerFood)
		if err := b.food.Respawn(b.snake.Occupied()); err != nil {
			b.running = false
			res.Over = true
			b.last = res
			return res, fmt.Errorf("respawn food: %w", err)
		}
	}

	if cause := b.collision(head); cause != CauseNone {
		b.running = false
		res.Cause = cause
		res.Over = true
		b.last = res
		b.renderer.DrawGameOver(b.cfg.Bounds)
		return res, nil
	}

	b.last = res
	b.Render()
	return res, nil
}

func (b *Board) collision(head components.Position) Cause {
	if b.border.Has(head) {
		return CauseBorder
	}
	if b.snake.BitesSelf() {
		return CauseSelf
	}
	return CauseNone
}

// Render draws the current state without advancing it
func (b *Board) Render() {
	b.renderer.DrawFrame(render.Frame{
		Bounds: b.cfg.Bounds,
		Border: b.perim,
		Snake:  b.snake.Body(),
		Food:   b.food.Position(),
		Score:  b.score,
	})
}

// Running reports whether the session is still live
func (b *Board) Running() bool {
	return b.running
}

// Score returns the number of foods eaten
func (b *Board) Score() int {
	return b.score
}

// Snake exposes the snake for inspection
func (b *Board) Snake() *components.Snake {
	return b.snake
}

// Food returns the current food cell
func (b *Board) Food() components.Position {
	return b.food.Position()
}

// Border returns the precomputed perimeter set
func (b *Board) Border() components.PositionSet {
	return b.border
}
