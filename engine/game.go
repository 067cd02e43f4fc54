package engine

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/term-snake/input"
)

// KeySource is a non-blocking key feed sampled once per tick
type KeySource interface {
	PollKey() input.Intent
}

// Outcome summarizes a finished session
type Outcome struct {
	SessionID string
	Quit      bool
	Cause     Cause
	Score     int
	Length    int
	Ticks     int64
	Elapsed   time.Duration
}

// Game drives a Board at a fixed interval: sleep, sample one key, tick
type Game struct {
	board        *Board
	keys         KeySource
	timeProvider TimeProvider
	interval     time.Duration
	hold         time.Duration

	sessionID string
	started   time.Time
	ticks     int64
	quit      bool
	cause     Cause
}

// NewGame creates a session runner with a fresh session id
func NewGame(board *Board, keys KeySource, timeProvider TimeProvider, cfg Config) *Game {
	return &Game{
		board:        board,
		keys:         keys,
		timeProvider: timeProvider,
		interval:     cfg.TickInterval,
		hold:         cfg.GameOverHold,
		sessionID:    uuid.New().String(),
	}
}

// SessionID identifies this session in logs
func (g *Game) SessionID() string {
	return g.sessionID
}

// Step samples one key and advances the board one tick.
// It returns true once the session has ended, by quit or collision.
func (g *Game) Step() (bool, error) {
	intent := g.keys.PollKey()
	if intent == input.IntentQuit {
		g.quit = true
		log.Printf("session %s: quit after %d ticks", g.sessionID, g.ticks)
		return true, nil
	}
	if intent != input.IntentNone {
		log.Printf("session %s: input %s", g.sessionID, intent)
	}

	res, err := g.board.Tick(intent.Direction())
	g.ticks++
	if err != nil {
		log.Printf("session %s: tick %d failed: %v", g.sessionID, g.ticks, err)
		return true, err
	}

	if res.Ate {
		log.Printf("session %s: food eaten at %s, score %d, next food %s",
			g.sessionID, res.Head, g.board.Score(), g.board.Food())
	}
	if res.Over {
		g.cause = res.Cause
		log.Printf("session %s: died on %s at %s after %d ticks", g.sessionID, res.Cause, res.Head, g.ticks)
		return true, nil
	}
	return false, nil
}

// Run plays the session until quit, collision or ctx cancellation.
// After a collision the final frame is held until GameOverHold elapses or a key is pressed.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	g.started = g.timeProvider.Now()
	log.Printf("session %s: started, tick interval %v", g.sessionID, g.interval)

	g.board.Render()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("session %s: cancelled: %v", g.sessionID, ctx.Err())
			return g.outcome(), nil
		case <-ticker.C:
		}

		done, err := g.Step()
		if err != nil {
			return g.outcome(), err
		}
		if done {
			if !g.quit {
				g.holdGameOver(ctx, ticker)
			}
			return g.outcome(), nil
		}
	}
}

// holdGameOver keeps the final frame up until a key is pressed or the hold,
// measured on the game's TimeProvider, has elapsed
func (g *Game) holdGameOver(ctx context.Context, ticker *time.Ticker) {
	if g.hold <= 0 {
		return
	}
	deadline := g.timeProvider.Now().Add(g.hold)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if g.keys.PollKey() != input.IntentNone {
			return
		}
		if !g.timeProvider.Now().Before(deadline) {
			return
		}
	}
}

func (g *Game) outcome() Outcome {
	o := Outcome{
		SessionID: g.sessionID,
		Quit:      g.quit,
		Cause:     g.cause,
		Score:     g.board.Score(),
		Length:    g.board.Snake().Len(),
		Ticks:     g.ticks,
		Elapsed:   g.timeProvider.Now().Sub(g.started),
	}
	log.Printf("session %s: ended, score %d, length %d, elapsed %v", o.SessionID, o.Score, o.Length, o.Elapsed)
	return o
}
