// Command snowcat is a terminal particle story: snow falls, a held touch summons a cat
// of snowflakes, and patience turns it into a tree
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowcat/game"
	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/render"
	"github.com/lixenwraith/snowcat/silhouette"
	"github.com/lixenwraith/snowcat/sim"
	"github.com/lixenwraith/snowcat/vmath"
)

var (
	imageFlag = flag.String("image", "", "Silhouette image (PNG, JPEG, GIF, BMP, TIFF, WebP); built-in cat when empty")
	seedFlag  = flag.Int64("seed", 0, "Random seed, 0 for time based")
	fpsFlag   = flag.Int("fps", parameter.FrameRate, "Frames per second")
	logFlag   = flag.String("log", "", "Log file path; logs are discarded when empty")
)

func main() {
	flag.Parse()
	log.SetPrefix("snowcat: ")

	fps := *fpsFlag
	if fps <= 0 {
		fmt.Fprintf(os.Stderr, "invalid -fps %d\n", fps)
		os.Exit(2)
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	img := silhouette.Default()
	if *imageFlag != "" {
		var err error
		if img, err = silhouette.Load(*imageFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
			os.Exit(1)
		}
	}

	logFile, err := setupLogging(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nsnowcat crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	width, height := game.NewSurface(screen)
	rng := vmath.NewFastRand(uint64(seed))
	s := sim.New(sim.Config{
		Width:    width,
		Height:   height,
		Targets:  sampleTargets(img, width, height, rng),
		Random:   rng,
		Interval: time.Second / time.Duration(fps),
	})
	r := render.NewRenderer(screen, fps, seed)
	log.Printf("started %.0fx%.0f seed=%d fps=%d", width, height, seed, fps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.New(screen, s, r, fps).Run(ctx); err != nil {
		log.Printf("run: %v", err)
	}
	log.Printf("stopped at tick %d in %s", s.Tick(), s.Phase())
}

// setupLogging routes the standard logger to path, or discards it when path is empty
// The screen owns the terminal, so nothing may be logged to stderr while it runs
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	log.SetOutput(f)
	return f, nil
}

// sampleTargets samples the silhouette, falling back to the built-in cat when the image has no shape
func sampleTargets(img image.Image, width, height float64, rng vmath.Random) []vmath.Vec2 {
	targets, err := silhouette.Sample(img, width, height, rng)
	if errors.Is(err, silhouette.ErrNoShape) {
		log.Printf("silhouette image has no shape, using built-in cat")
		targets, err = silhouette.Sample(silhouette.Default(), width, height, rng)
	}
	if err != nil {
		log.Printf("sample silhouette: %v", err)
		return nil
	}
	log.Printf("sampled %d silhouette targets", len(targets))
	return targets
}
