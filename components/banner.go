package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a short-lived centered message, such as the mode name after
// a switch. Fade drives Alpha from 1 to 0.
type BannerData struct {
	Text  string
	Fade  *gween.Tween
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()
