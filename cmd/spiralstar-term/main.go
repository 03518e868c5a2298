package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/spiralstar/config"
	"github.com/automoto/spiralstar/scenes"
	"github.com/automoto/spiralstar/store"
	"github.com/automoto/spiralstar/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	preset := flag.String("preset", "", "saved preset to run with")
	sound := flag.Bool("sound", false, "chime when a cluster is spawned by hand")
	flag.Parse()

	var o config.Overrides
	if *preset != "" {
		presets, err := store.Open()
		if err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		} else {
			o = presets.LoadOrEmpty(*preset)
		}
	}
	c, err := config.Resolve(o)
	if err != nil {
		log.Fatalf("Failed to resolve config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	scene := scenes.NewSpiralScene(config.MainContainer, c, 0, 0)
	defer scene.Dispose()

	loop := term.NewLoop(screen, scene)
	if *sound {
		chime, err := term.NewChime(880, 60*time.Millisecond)
		if err != nil {
			log.Printf("Warning: Could not initialize sound: %v", err)
		} else {
			loop.OnSpawn(chime.Play)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		screen.Fini()
		log.Fatalf("Terminal loop failed: %v", err)
	}
}
