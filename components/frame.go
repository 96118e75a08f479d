package components

import (
	"github.com/automoto/dashjam/input"
	"github.com/yohamta/donburi"
)

// Mode selects between playing and editing the stage.
type Mode int

const (
	ModePlay Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "play"
}

// FrameData is the singleton carrying what the host supplied for this frame.
type FrameData struct {
	DeltaTime float64
	Raw       input.Raw
	Mode      Mode
}

var Frame = donburi.NewComponentType[FrameData]()
