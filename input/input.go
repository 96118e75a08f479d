// Package input holds the read-only per-frame input snapshot the actors
// consume. Polling devices is left to the host.
package input

import (
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
)

// Raw is what the host polled this frame.
type Raw struct {
	Held  [cfg.ActionCount]bool
	Mouse gamemath.Vec // world units
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Snapshot stores the current and previous frame's pressed state for all
// actions. Edges are computed on demand by comparing frames.
type Snapshot struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Mouse    gamemath.Vec
}

// Advance shifts the current frame into Previous and takes raw as Current.
func (s *Snapshot) Advance(raw Raw) {
	s.Previous = s.Current
	s.Current = raw.Held
	s.Mouse = raw.Mouse
}

func (s Snapshot) Action(id cfg.ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func (s Snapshot) Held(id cfg.ActionID) bool {
	return s.Action(id).Pressed
}

func (s Snapshot) JustPressed(id cfg.ActionID) bool {
	return s.Action(id).JustPressed
}

func (s Snapshot) JustReleased(id cfg.ActionID) bool {
	return s.Action(id).JustReleased
}

// Press returns a copy of s with the given actions held this frame and the
// rest released. Previous is carried from s.Current.
func (s Snapshot) Press(ids ...cfg.ActionID) Snapshot {
	var raw Raw
	for _, id := range ids {
		raw.Held[id] = true
	}
	raw.Mouse = s.Mouse
	s.Advance(raw)
	return s
}
