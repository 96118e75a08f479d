package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	ActionPrimary   // shoot in play mode, paint in the editor
	ActionSecondary // slowing shot in play mode, erase in the editor
	ActionPlayMode
	ActionEditMode
	ActionReset
	ActionCount // Must be last - used for array sizing
)
