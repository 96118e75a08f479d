package components

import (
	"github.com/automoto/dashjam/physics"
	"github.com/yohamta/donburi"
)

// DefeatData is added to a player that touched an enemy without stomping it.
type DefeatData struct {
	By physics.ID
}

var Defeat = donburi.NewComponentType[DefeatData]()
