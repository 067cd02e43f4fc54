package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/term-snake/input"
)

// scriptedKeys replays intents once, then reports no input
type scriptedKeys struct {
	intents []input.Intent
	polls   int
}

func (k *scriptedKeys) PollKey() input.Intent {
	k.polls++
	if len(k.intents) == 0 {
		return input.IntentNone
	}
	next := k.intents[0]
	k.intents = k.intents[1:]
	return next
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.TickInterval = time.Millisecond
	cfg.GameOverHold = 0
	return cfg
}

func newTestGame(t *testing.T, cfg Config, keys KeySource) (*Game, *recordingRenderer) {
	t.Helper()
	b, rec := newTestBoard(t, cfg)
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewGame(b, keys, clock, cfg), rec
}

func TestGameSessionID(t *testing.T) {
	g, _ := newTestGame(t, fastConfig(), &scriptedKeys{})
	if _, err := uuid.Parse(g.SessionID()); err != nil {
		t.Errorf("Session id %q is not a UUID: %v", g.SessionID(), err)
	}

	other, _ := newTestGame(t, fastConfig(), &scriptedKeys{})
	if other.SessionID() == g.SessionID() {
		t.Error("Expected distinct session ids")
	}
}

func TestStepSamplesOneKeyPerTick(t *testing.T) {
	keys := &scriptedKeys{intents: []input.Intent{input.IntentDown, input.IntentLeft}}
	g, _ := newTestGame(t, fastConfig(), keys)

	done, err := g.Step()
	if err != nil || done {
		t.Fatalf("Step: done=%v err=%v", done, err)
	}
	if keys.polls != 1 {
		t.Errorf("Expected one poll per step, got %d", keys.polls)
	}
	if head := g.board.Snake().Head(); head.Row != 2 || head.Col != 4 {
		t.Errorf("Expected head (2,4) after down, got %s", head)
	}

	if _, err := g.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if head := g.board.Snake().Head(); head.Row != 2 || head.Col != 3 {
		t.Errorf("Expected head (2,3) after left, got %s", head)
	}
}

func TestStepContinueKeepsHeading(t *testing.T) {
	keys := &scriptedKeys{intents: []input.Intent{input.IntentContinue}}
	g, _ := newTestGame(t, fastConfig(), keys)

	if _, err := g.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if head := g.board.Snake().Head(); head.Row != 1 || head.Col != 5 {
		t.Errorf("Expected head (1,5), got %s", head)
	}
}

func TestRunQuit(t *testing.T) {
	keys := &scriptedKeys{intents: []input.Intent{input.IntentDown, input.IntentQuit}}
	g, rec := newTestGame(t, fastConfig(), keys)

	out, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !out.Quit {
		t.Error("Expected quit outcome")
	}
	if out.Ticks != 1 {
		t.Errorf("Expected 1 tick before quit, got %d", out.Ticks)
	}
	if out.Cause != CauseNone {
		t.Errorf("Expected no death cause, got %s", out.Cause)
	}
	// Initial frame plus one tick
	if rec.frames != 2 {
		t.Errorf("Expected 2 frames, got %d", rec.frames)
	}
}

func TestRunUntilWall(t *testing.T) {
	g, rec := newTestGame(t, fastConfig(), &scriptedKeys{})

	out, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.Quit {
		t.Error("Expected death, not quit")
	}
	if out.Cause != CauseBorder {
		t.Errorf("Expected border death, got %s", out.Cause)
	}
	// Head starts at column 4 and the right wall is column 20
	if out.Ticks != 16 {
		t.Errorf("Expected 16 ticks, got %d", out.Ticks)
	}
	if rec.gameOvers != 1 {
		t.Errorf("Expected game over drawn once, got %d", rec.gameOvers)
	}
	if out.Length != 4 {
		t.Errorf("Expected length 4, got %d", out.Length)
	}
}

// clockedKeys never presses a key and advances the clock one second per poll
type clockedKeys struct {
	clock *MockTimeProvider
	polls int
}

func (k *clockedKeys) PollKey() input.Intent {
	k.polls++
	k.clock.Advance(time.Second)
	return input.IntentNone
}

func TestRunGameOverHoldExpiresOnClock(t *testing.T) {
	cfg := fastConfig()
	cfg.GameOverHold = 3 * time.Second

	b, _ := newTestBoard(t, cfg)
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	keys := &clockedKeys{clock: clock}
	g := NewGame(b, keys, clock, cfg)

	out, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.Cause != CauseBorder || out.Ticks != 16 {
		t.Fatalf("Expected border death after 16 ticks, got %+v", out)
	}
	// 16 polls while playing, then 3 more until the hold deadline
	if keys.polls != 19 {
		t.Errorf("Expected 19 polls, got %d", keys.polls)
	}
	if out.Elapsed != 19*time.Second {
		t.Errorf("Expected elapsed 19s on the session clock, got %v", out.Elapsed)
	}
}

func TestRunGameOverHoldEndsOnKey(t *testing.T) {
	cfg := fastConfig()
	cfg.GameOverHold = time.Hour

	intents := make([]input.Intent, 16, 17)
	intents = append(intents, input.IntentContinue)
	keys := &scriptedKeys{intents: intents}
	g, _ := newTestGame(t, cfg, keys)

	done := make(chan Outcome, 1)
	go func() {
		out, _ := g.Run(context.Background())
		done <- out
	}()

	select {
	case out := <-done:
		if out.Cause != CauseBorder {
			t.Errorf("Expected border death, got %s", out.Cause)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Key press did not end the game over hold")
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := fastConfig()
	cfg.TickInterval = time.Hour
	g, _ := newTestGame(t, cfg, &scriptedKeys{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := g.Run(ctx)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.Ticks != 0 {
		t.Errorf("Expected no ticks, got %d", out.Ticks)
	}
}
