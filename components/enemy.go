package components

import (
	"github.com/automoto/dashjam/actors"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Actor *actors.BasicEnemy
}

var Enemy = donburi.NewComponentType[EnemyData]()
