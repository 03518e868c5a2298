package scenes

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"slices"

	cfg "github.com/automoto/spiralstar/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownContainer is returned when a scene is set up in a container the layout
// does not declare
var ErrUnknownContainer = errors.New("unknown container")

// Registry tracks every scene of the process, one per container. Scenes are created by
// Setup and live until Dispose; setting up a container again replaces its scene.
type Registry struct {
	containers map[string]cfg.Container
	rects      map[string]image.Rectangle
	scenes     map[string]*SpiralScene
	order      []string // container ids in setup order, later ones draw on top
	width      int
	height     int
	base       cfg.Overrides
	newRand    func() *rand.Rand
}

// NewRegistry creates an empty registry for the given containers and window size
func NewRegistry(containers []cfg.Container, width, height int) *Registry {
	r := &Registry{
		containers: make(map[string]cfg.Container, len(containers)),
		rects:      make(map[string]image.Rectangle, len(containers)),
		scenes:     make(map[string]*SpiralScene),
	}
	for _, c := range containers {
		r.containers[c.ID] = c
	}
	r.layoutRects(width, height)
	return r
}

// SetBase sets overrides applied beneath every scene's own overrides, such as a preset.
// It only affects scenes set up afterwards.
func (r *Registry) SetBase(o cfg.Overrides) { r.base = o }

// SetRandSource makes every new scene draw from a source built by fn
func (r *Registry) SetRandSource(fn func() *rand.Rand) { r.newRand = fn }

// Setup creates and starts a scene in a container. The configuration is resolved afresh
// from the defaults for every call, so scenes never share settings.
func (r *Registry) Setup(containerID string, o cfg.Overrides) (*SpiralScene, error) {
	if _, ok := r.containers[containerID]; !ok {
		return nil, fmt.Errorf("setup %q: %w", containerID, ErrUnknownContainer)
	}
	config, err := cfg.Resolve(r.base.Merge(o))
	if err != nil {
		return nil, fmt.Errorf("setup %q: %w", containerID, err)
	}

	r.Dispose(containerID)

	var opts []SceneOption
	if r.newRand != nil {
		opts = append(opts, WithRand(r.newRand()))
	}
	rect := r.rects[containerID]
	scene := NewSpiralScene(containerID, config, rect.Dx(), rect.Dy(), opts...)
	r.scenes[containerID] = scene
	r.order = append(r.order, containerID)
	return scene, nil
}

// SetupFile sets up every scene a layout file declares, in order
func (r *Registry) SetupFile(f cfg.File) error {
	for _, spec := range f.Scenes {
		if _, err := r.Setup(spec.Container, spec.Overrides); err != nil {
			return err
		}
	}
	return nil
}

// Dispose stops and releases the scene in a container. It reports whether there was one.
func (r *Registry) Dispose(containerID string) bool {
	scene, ok := r.scenes[containerID]
	if !ok {
		return false
	}
	scene.Dispose()
	delete(r.scenes, containerID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == containerID })
	return true
}

// DisposeAll releases every scene
func (r *Registry) DisposeAll() {
	for _, id := range slices.Clone(r.order) {
		r.Dispose(id)
	}
}

func (r *Registry) Get(containerID string) (*SpiralScene, bool) {
	scene, ok := r.scenes[containerID]
	return scene, ok
}

// Each calls fn for every scene in setup order
func (r *Registry) Each(fn func(*SpiralScene)) {
	for _, id := range r.order {
		fn(r.scenes[id])
	}
}

func (r *Registry) Len() int { return len(r.order) }

// Running reports whether any scene is still ticking
func (r *Registry) Running() bool {
	for _, id := range r.order {
		if r.scenes[id].Running() {
			return true
		}
	}
	return false
}

// Rect returns the container's rectangle in window pixels
func (r *Registry) Rect(containerID string) image.Rectangle {
	return r.rects[containerID]
}

// Layout recomputes container rectangles for a new window size and resizes the scenes
// whose container changed size
func (r *Registry) Layout(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.layoutRects(width, height)
	for id, scene := range r.scenes {
		rect := r.rects[id]
		if w, h := scene.Size(); w != rect.Dx() || h != rect.Dy() {
			scene.Resize(rect.Dx(), rect.Dy())
		}
	}
}

func (r *Registry) layoutRects(width, height int) {
	r.width, r.height = width, height
	for id, c := range r.containers {
		r.rects[id] = c.Rect.Pixels(width, height)
	}
}

// sceneAt returns the topmost scene whose container holds p, and p in its coordinates
func (r *Registry) sceneAt(p image.Point) (*SpiralScene, image.Point, bool) {
	for i := len(r.order) - 1; i >= 0; i-- {
		id := r.order[i]
		rect := r.rects[id]
		if p.In(rect) {
			return r.scenes[id], p.Sub(rect.Min), true
		}
	}
	return nil, image.Point{}, false
}

// PointerDown routes a press in window coordinates to the scene under it
func (r *Registry) PointerDown(p image.Point) bool {
	scene, local, ok := r.sceneAt(p)
	if !ok {
		return false
	}
	scene.PointerDown(float64(local.X), float64(local.Y))
	return true
}

// PointerMove routes a move in window coordinates to the scene under it
func (r *Registry) PointerMove(p image.Point) bool {
	scene, local, ok := r.sceneAt(p)
	if !ok {
		return false
	}
	scene.PointerMove(float64(local.X), float64(local.Y))
	return true
}

// Update ticks every scene once
func (r *Registry) Update() {
	for _, id := range r.order {
		r.scenes[id].Update()
	}
}

// Draw renders each scene into its container of the window
func (r *Registry) Draw(screen *ebiten.Image) {
	origin := screen.Bounds().Min
	for _, id := range r.order {
		rect := r.rects[id].Add(origin).Intersect(screen.Bounds())
		if rect.Empty() {
			continue
		}
		r.scenes[id].Draw(screen.SubImage(rect).(*ebiten.Image))
	}
}
