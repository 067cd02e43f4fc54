package engine

import (
	"time"

	"github.com/lixenwraith/term-snake/components"
	"github.com/lixenwraith/term-snake/constants"
)

// Config holds the session tunables, resolved once at startup
type Config struct {
	Bounds        components.Bounds
	StartBody     []components.Position
	GrowthPerFood int
	TickInterval  time.Duration
	GameOverHold  time.Duration
}

// DefaultConfig assembles the classic 21x21 board with a four-cell snake heading right
func DefaultConfig() Config {
	body := make([]components.Position, constants.StartLength)
	for i := range body {
		body[i] = components.Position{Row: constants.StartRow, Col: constants.StartCol + i}
	}

	return Config{
		Bounds: components.Bounds{
			MinRow: constants.GridMinRow,
			MaxRow: constants.GridMaxRow,
			MinCol: constants.GridMinCol,
			MaxCol: constants.GridMaxCol,
		},
		StartBody:     body,
		GrowthPerFood: constants.GrowthPerFood,
		TickInterval:  constants.TickInterval,
		GameOverHold:  constants.GameOverHold,
	}
}
