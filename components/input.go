package components

import (
	"github.com/automoto/dashjam/input"
	"github.com/yohamta/donburi"
)

// Input is the singleton holding this frame's and last frame's actions.
var Input = donburi.NewComponentType[input.Snapshot]()
