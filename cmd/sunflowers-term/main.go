package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/sunflower-field/internal/config"
	"github.com/iburimskiy/sunflower-field/internal/game"
	"github.com/iburimskiy/sunflower-field/internal/scene"
	"github.com/iburimskiy/sunflower-field/internal/terminal"
)

var (
	seedFlag        = flag.Uint64("seed", 0, "scene seed (0 picks one at random)")
	fpsFlag         = flag.Int("fps", config.TerminalFPS, "frames per second")
	supersampleFlag = flag.Int("supersample", config.TerminalSupersample, "raster pixels per cell edge")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sunflowers-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	seed := *seedFlag
	if seed == 0 {
		seed = rand.Uint64()
	}
	st := scene.Generate(scene.DefaultOptions(), rand.New(rand.NewPCG(seed, seed)))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	term := terminal.New(screen, *supersampleFlag)
	anim := game.NewAnimator(term, st)
	// Deferred in reverse: the screen is restored before anything logs.
	defer anim.Stop()
	defer log.Printf("scene: %d sunflowers, %d particles (seed %d)", len(st.Ornaments), len(st.Particles), seed)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			crashed(os.Stderr, screen, anim, r)
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	if err := anim.Start(); err != nil {
		if errors.Is(err, game.ErrNoSurface) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return term.Run(ctx, *fpsFlag)
}

// crashed restores the terminal and releases the animation before the
// panic's trace is printed.
func crashed(w io.Writer, screen tcell.Screen, anim *game.Animator, r any) {
	screen.Fini()
	anim.Stop()
	fmt.Fprintf(w, "\nsunflowers-term crashed: %v\n%s\n", r, debug.Stack())
}
