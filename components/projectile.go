package components

import (
	"github.com/automoto/dashjam/actors"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Actor *actors.Projectile
}

var Projectile = donburi.NewComponentType[ProjectileData]()
