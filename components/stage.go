package components

import (
	"github.com/automoto/dashjam/actors"
	"github.com/yohamta/donburi"
)

type StageData struct {
	Stage *actors.Stage
}

var Stage = donburi.NewComponentType[StageData]()
