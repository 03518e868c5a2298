package store

import (
	"fmt"
	"log"

	cfg "github.com/automoto/spiralstar/config"
	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory presets are stored under
const AppName = "spiralstar"

// Backend is the item storage presets are kept in. *gdata.Manager satisfies it.
type Backend interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
	DeleteItem(itemKey string) error
}

// Presets saves and loads named configuration overrides
type Presets struct {
	backend Backend
}

// Open opens the gdata store for this application
func Open() (*Presets, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open preset store: %w", err)
	}
	return New(m), nil
}

// New wraps an existing backend
func New(b Backend) *Presets {
	return &Presets{backend: b}
}

func itemKey(name string) string {
	return "preset_" + name
}

// Load returns the named preset, or nil if it was never saved
func (p *Presets) Load(name string) (*cfg.Overrides, error) {
	data, err := p.backend.LoadItem(itemKey(name))
	if err != nil {
		return nil, fmt.Errorf("load preset %q: %w", name, err)
	}
	if data == nil {
		return nil, nil
	}

	var o cfg.Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse preset %q: %w", name, err)
	}
	return &o, nil
}

// Save stores o under name, replacing any previous preset
func (p *Presets) Save(name string, o cfg.Overrides) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode preset %q: %w", name, err)
	}
	if err := p.backend.SaveItem(itemKey(name), data); err != nil {
		return fmt.Errorf("save preset %q: %w", name, err)
	}
	return nil
}

func (p *Presets) Delete(name string) error {
	if err := p.backend.DeleteItem(itemKey(name)); err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	return nil
}

// LoadOrEmpty loads a preset for startup. Persistence problems are logged and never stop
// the animation; a missing or unreadable preset yields empty overrides.
func (p *Presets) LoadOrEmpty(name string) cfg.Overrides {
	o, err := p.Load(name)
	if err != nil {
		log.Printf("Warning: Could not load preset: %v", err)
		return cfg.Overrides{}
	}
	if o == nil {
		log.Printf("Warning: Preset %q not found, using defaults", name)
		return cfg.Overrides{}
	}
	return *o
}
