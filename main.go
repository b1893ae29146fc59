package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/sunflower-field/internal/config"
	"github.com/iburimskiy/sunflower-field/internal/game"
	"github.com/iburimskiy/sunflower-field/internal/scene"
	"github.com/iburimskiy/sunflower-field/internal/window"
)

var (
	widthFlag      = flag.Int("width", config.WindowWidth, "initial window width")
	heightFlag     = flag.Int("height", config.WindowHeight, "initial window height")
	seedFlag       = flag.Uint64("seed", 0, "scene seed (0 picks one at random)")
	fullscreenFlag = flag.Bool("fullscreen", false, "start in fullscreen")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sunflowers: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	seed := *seedFlag
	if seed == 0 {
		seed = rand.Uint64()
	}
	st := scene.Generate(scene.DefaultOptions(), rand.New(rand.NewPCG(seed, seed)))
	log.Printf("scene: %d sunflowers, %d particles (seed %d)", len(st.Ornaments), len(st.Particles), seed)

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Sunflowers")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(*fullscreenFlag)

	win := window.New(*widthFlag, *heightFlag)
	anim := game.NewAnimator(win, st)
	if err := anim.Start(); err != nil {
		if errors.Is(err, game.ErrNoSurface) {
			log.Printf("nothing to draw on: %v", err)
			return nil
		}
		return err
	}
	defer anim.Stop()

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
