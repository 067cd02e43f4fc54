package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the fixed real-time interval between two game ticks
	TickInterval = 125 * time.Millisecond

	// GameOverHold is how long the final frame stays visible after a collision
	GameOverHold = 2 * time.Second

	// InputBufferSize is the number of pending key commands kept between ticks
	InputBufferSize = 16
)

// Grid bounds, inclusive on both axes
const (
	GridMinRow = 0
	GridMaxRow = 20
	GridMinCol = 0
	GridMaxCol = 20
)

// Snake Constants
const (
	// StartRow is the row the snake is laid out on at session start
	StartRow = 1

	// StartCol is the column of the tail at session start
	StartCol = 1

	// StartLength is the initial body length, growing rightward from the tail
	StartLength = 4

	// MinSnakeLength is the shortest body a snake can be created with
	MinSnakeLength = 4

	// GrowthPerFood is the growth credit added each time food is eaten
	GrowthPerFood = 2
)
