package components

import (
	"github.com/automoto/dashjam/actors"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Actor *actors.Player
}

var Player = donburi.NewComponentType[PlayerData]()
