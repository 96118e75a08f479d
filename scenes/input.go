package scenes

import (
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollInput reads every bound device into a raw frame of input. The mouse is
// converted to world units.
func pollInput() input.Raw {
	var raw input.Raw
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				raw.Held[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				raw.Held[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					raw.Held[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		raw.Held[cfg.ActionMoveLeft] = raw.Held[cfg.ActionMoveLeft] || horizontal < -AnalogDeadzone
		raw.Held[cfg.ActionMoveRight] = raw.Held[cfg.ActionMoveRight] || horizontal > AnalogDeadzone
		raw.Held[cfg.ActionMoveUp] = raw.Held[cfg.ActionMoveUp] || vertical < -AnalogDeadzone
		raw.Held[cfg.ActionMoveDown] = raw.Held[cfg.ActionMoveDown] || vertical > AnalogDeadzone
	}

	mx, my := ebiten.CursorPosition()
	raw.Mouse = gamemath.Vec{
		X: float64(mx) / cfg.C.PixelsPerUnit,
		Y: float64(my) / cfg.C.PixelsPerUnit,
	}
	return raw
}
