package config

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Rect is a container rectangle in fractions of the window (0..1)
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Pixels converts the fractional rect to pixels for a window of the given size
func (r Rect) Pixels(width, height int) image.Rectangle {
	x0 := int(math.Round(r.X * float64(width)))
	y0 := int(math.Round(r.Y * float64(height)))
	x1 := int(math.Round((r.X + r.W) * float64(width)))
	y1 := int(math.Round((r.Y + r.H) * float64(height)))
	return image.Rect(x0, y0, x1, y1)
}

// Container is a named region of the window that can host one scene
type Container struct {
	ID   string `yaml:"id"`
	Rect Rect   `yaml:"rect"`
}

// SceneSpec binds a scene to a container
type SceneSpec struct {
	Container string    `yaml:"container"`
	Overrides Overrides `yaml:"overrides"`
}

// File is the on-disk layout: containers plus the scenes to set up in them
type File struct {
	Containers []Container `yaml:"containers"`
	Scenes     []SceneSpec `yaml:"scenes"`
}

var (
	ErrNoContainers       = errors.New("at least one container is required")
	ErrDuplicateContainer = errors.New("duplicate container id")
	ErrEmptyContainerID   = errors.New("container id must not be empty")
	ErrEmptyRect          = errors.New("container rect must have positive size")
)

// MainContainer is the id of the container created when no layout file is given
const MainContainer = "main"

// DefaultFile is a single full-window container running one default scene
func DefaultFile() File {
	return File{
		Containers: []Container{{ID: MainContainer, Rect: Rect{W: 1, H: 1}}},
		Scenes:     []SceneSpec{{Container: MainContainer}},
	}
}

// LoadFile reads and validates a YAML layout file
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read layout %s: %w", path, err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return File{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return f, nil
}

// ParseFile decodes and validates a YAML layout document
func ParseFile(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("decode layout: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks container ids and sizes. Scene container references are checked
// when the scene is set up.
func (f File) Validate() error {
	if len(f.Containers) == 0 {
		return ErrNoContainers
	}
	seen := make(map[string]bool, len(f.Containers))
	for _, c := range f.Containers {
		if c.ID == "" {
			return ErrEmptyContainerID
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateContainer, c.ID)
		}
		if c.Rect.W <= 0 || c.Rect.H <= 0 {
			return fmt.Errorf("container %s: %w", c.ID, ErrEmptyRect)
		}
		seen[c.ID] = true
	}
	return nil
}
