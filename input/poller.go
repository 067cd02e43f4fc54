package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// EventSource is the blocking event feed of a terminal; tcell.Screen satisfies it
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller turns a blocking event feed into a non-blocking per-tick key read.
// A single goroutine drains the feed into a bounded queue; keys arriving while
// the queue is full are dropped.
type Poller struct {
	source EventSource
	table  *KeyTable
	queue  chan Intent
	done   chan struct{}
	once   sync.Once
}

// NewPoller creates a poller holding at most size pending intents
func NewPoller(source EventSource, table *KeyTable, size int) *Poller {
	if size < 1 {
		size = 1
	}
	return &Poller{
		source: source,
		table:  table,
		queue:  make(chan Intent, size),
		done:   make(chan struct{}),
	}
}

// Start launches the reader goroutine. It exits when the source returns nil,
// which tcell does after Fini.
func (p *Poller) Start() {
	go p.run()
}

func (p *Poller) run() {
	defer p.once.Do(func() { close(p.done) })
	for {
		ev := p.source.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		intent := p.table.Translate(key)
		if intent == IntentNone {
			continue
		}
		select {
		case p.queue <- intent:
		default:
		}
	}
}

// PollKey returns the oldest pending intent, or IntentNone without blocking
func (p *Poller) PollKey() Intent {
	select {
	case intent := <-p.queue:
		return intent
	default:
		return IntentNone
	}
}

// Done is closed once the reader goroutine has exited
func (p *Poller) Done() <-chan struct{} {
	return p.done
}
