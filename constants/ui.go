package constants

// Cell glyphs
const (
	GlyphSnake      = 'X'
	GlyphFood       = 'F'
	GlyphBorderRow  = '-'
	GlyphBorderCol  = '|'
	GlyphCorner     = '+'
	GlyphBackground = ' '
)

// Text shown below the board
const (
	// GameOverText is written one row below the bottom border
	GameOverText = "You died!"

	// StatusFormat renders snake length and score two rows below the bottom border
	StatusFormat = "Length: %d  Score: %d"
)

// Text placement relative to the bottom border row
const (
	GameOverRowOffset = 1
	GameOverColOffset = 1
	StatusRowOffset   = 2
)
