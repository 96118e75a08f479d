package scenes

import (
	cfg "github.com/automoto/dashjam/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys, mouse buttons and gamepad buttons bound
// to one action.
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its devices.
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionDash: {
		Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyK},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	cfg.ActionPrimary: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	},
	cfg.ActionSecondary: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
	},
	cfg.ActionPlayMode: {
		Keys: []ebiten.Key{ebiten.Key1},
	},
	cfg.ActionEditMode: {
		Keys: []ebiten.Key{ebiten.Key2},
	},
	cfg.ActionReset: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// AnalogDeadzone is the left stick threshold for directional actions.
const AnalogDeadzone = 0.25
