package systems

import (
	cfg "github.com/automoto/spiralstar/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ActionState tracks which host actions are held this tick and the tick before
type ActionState struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Poll reads the keyboard and gamepads for every bound action
func (a *ActionState) Poll() {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	a.Update(func(b cfg.InputBinding) bool {
		return bindingPressed(b, gamepadIDs)
	})
}

// Update swaps the buffers and records the actions whose binding pressed reports held
func (a *ActionState) Update(pressed func(cfg.InputBinding) bool) {
	a.Previous = a.Current
	a.Current = [cfg.ActionCount]bool{}
	for id, binding := range cfg.Input.Bindings {
		if pressed(binding) {
			a.Current[id] = true
		}
	}
}

// JustPressed reports whether the action went down this tick
func (a *ActionState) JustPressed(id cfg.ActionID) bool {
	return a.Current[id] && !a.Previous[id]
}

func bindingPressed(b cfg.InputBinding, gamepads []ebiten.GamepadID) bool {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
