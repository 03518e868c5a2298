package main

import (
	"errors"
	"flag"
	"log"

	"github.com/automoto/spiralstar/config"
	"github.com/automoto/spiralstar/scenes"
	"github.com/automoto/spiralstar/store"
	"github.com/automoto/spiralstar/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	registry *scenes.Registry
	pointer  systems.PointerTracker
	actions  systems.ActionState
	width    int
	height   int
}

func NewGame(layout config.File, base config.Overrides, width, height int) (*Game, error) {
	g := &Game{
		registry: scenes.NewRegistry(layout.Containers, width, height),
		width:    width,
		height:   height,
	}
	g.registry.SetBase(base)
	if err := g.registry.SetupFile(layout); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	g.actions.Poll()
	if g.actions.JustPressed(config.ActionQuit) || g.registry.Len() == 0 {
		return ebiten.Termination
	}
	if g.actions.JustPressed(config.ActionPause) {
		g.togglePause()
	}
	if g.actions.JustPressed(config.ActionSpawn) {
		g.registry.Each(func(s *scenes.SpiralScene) {
			w, h := s.Size()
			s.PointerDown(float64(w/2), float64(h/2))
		})
	}

	ev := g.pointer.Poll()
	if ev.Moved {
		g.registry.PointerMove(ev.Position)
	}
	if ev.Pressed {
		g.registry.PointerDown(ev.Position)
	}

	g.registry.Update()
	return nil
}

// togglePause stops every scene when any is running, otherwise restarts them all
func (g *Game) togglePause() {
	running := g.registry.Running()
	g.registry.Each(func(s *scenes.SpiralScene) {
		if running {
			s.Stop()
		} else {
			s.Start()
		}
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.registry.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.registry.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "YAML file with containers and scenes")
	width := flag.Int("width", config.Window.Width, "window width")
	height := flag.Int("height", config.Window.Height, "window height")
	preset := flag.String("preset", "", "saved preset applied beneath every scene")
	savePreset := flag.String("save-preset", "", "save the first scene's overrides under this name")
	sound := flag.Bool("sound", false, "chime when a cluster is spawned by hand")
	flag.Parse()

	layout := config.DefaultFile()
	if *configPath != "" {
		f, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		layout = f
	}

	var base config.Overrides
	if *preset != "" || *savePreset != "" {
		presets, err := store.Open()
		if err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		} else {
			if *savePreset != "" && len(layout.Scenes) > 0 {
				if err := presets.Save(*savePreset, layout.Scenes[0].Overrides); err != nil {
					log.Printf("Warning: Could not save preset: %v", err)
				}
			}
			if *preset != "" {
				base = presets.LoadOrEmpty(*preset)
			}
		}
	}

	game, err := NewGame(layout, base, *width, *height)
	if err != nil {
		log.Fatalf("Failed to set up scenes: %v", err)
	}
	defer game.registry.DisposeAll()

	if *sound {
		systems.EnableAudio()
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
