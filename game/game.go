// Package game runs the frame loop: drain input, step the simulation, draw
package game

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowcat/event"
	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/render"
	"github.com/lixenwraith/snowcat/sim"
)

// Game owns the screen loop for one simulation
type Game struct {
	screen   tcell.Screen
	sim      *sim.Sim
	renderer *render.Renderer
	queue    *event.Queue
	interval time.Duration
}

// New wires a simulation and renderer to the screen, ticking fps times per second
func New(screen tcell.Screen, s *sim.Sim, r *render.Renderer, fps int) *Game {
	if fps <= 0 {
		fps = parameter.FrameRate
	}
	return &Game{
		screen:   screen,
		sim:      s,
		renderer: r,
		queue:    event.NewQueue(),
		interval: time.Second / time.Duration(fps),
	}
}

// Queue returns the input queue the poll goroutine feeds
func (g *Game) Queue() *event.Queue {
	return g.queue
}

// Run polls input and renders frames until ctx is done or the user quits
// The poll goroutine exits when the screen is finalized
func (g *Game) Run(ctx context.Context) error {
	go g.poll()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !g.Frame() {
				return nil
			}
		}
	}
}

// poll forwards screen events to the queue
func (g *Game) poll() {
	defer func() {
		if r := recover(); r != nil {
			g.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\nevent poller crashed: %v\r\nStack Trace:\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	var t translator
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		if in, ok := t.translate(ev); ok {
			g.queue.Push(in)
		}
	}
}

// Frame drains pending input, advances one tick and draws; false means quit was requested
func (g *Game) Frame() bool {
	for _, ev := range g.queue.Consume() {
		if !g.apply(ev) {
			return false
		}
	}
	g.sim.Step()
	g.renderer.Draw(g.sim)
	return true
}

func (g *Game) apply(ev event.InputEvent) bool {
	switch ev.Type {
	case event.EventPointerDown:
		g.sim.PointerStart(cellToWorld(ev.X, ev.Y))
	case event.EventPointerMove:
		g.sim.PointerMove(cellToWorld(ev.X, ev.Y))
	case event.EventPointerUp:
		g.sim.PointerEnd()
	case event.EventResize:
		w, h := worldSize(ev.X, ev.Y)
		log.Printf("resize %dx%d cells", ev.X, ev.Y)
		g.sim.Resize(w, h)
		g.renderer.Resize(ev.X, ev.Y)
		g.screen.Sync()
	case event.EventQuit:
		return false
	}
	return true
}

// NewSurface returns the world dimensions matching the screen's current size
func NewSurface(screen tcell.Screen) (width, height float64) {
	return worldSize(screen.Size())
}
