package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/constants"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
	"golang.org/x/exp/rand"
)

var debugFlag = flag.Bool("debug", false, "Write session logs to logs/snake.log")

func main() {
	os.Exit(run())
}

func run() (code int) {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	restore := sync.OnceFunc(screen.Fini)
	defer restore()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			restore()
			fmt.Fprintf(os.Stderr, "\nSNAKE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	screen.Clear()

	cfg := engine.DefaultConfig()
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	renderer := render.NewTerminalRenderer(screen, render.DefaultPalette())

	board, err := engine.NewBoard(cfg, rng, renderer)
	if err != nil {
		restore()
		fmt.Fprintf(os.Stderr, "Failed to set up board: %v\n", err)
		return 1
	}

	poller := input.NewPoller(screen, input.DefaultKeyTable(), constants.InputBufferSize)
	poller.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := engine.NewGame(board, poller, engine.NewMonotonicTimeProvider(), cfg)
	outcome, err := game.Run(ctx)
	restore()

	if err != nil {
		log.Printf("session %s: aborted: %v", outcome.SessionID, err)
		fmt.Fprintf(os.Stderr, "Game aborted: %v\n", err)
		return 1
	}

	if !outcome.Quit && outcome.Cause != engine.CauseNone {
		fmt.Printf("%s Score: %d, length: %d\n", constants.GameOverText, outcome.Score, outcome.Length)
	}
	return 0
}
