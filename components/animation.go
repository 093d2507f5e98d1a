// @focus: #vfx { animation } #lifecycle { timer }
package components

import "github.com/lixenwraith/vi-invaders/asset"

// Animation plays a sprite strip frame by frame on a tick countdown.
// Owned by value; swapping animations is plain assignment.
type Animation struct {
	Pos       Vec2
	Sheet     asset.ID
	Frame     int
	MaxFrames int
	Delay     int // Ticks per frame
	countdown int
	Loop      bool
	Active    bool
}

// NewAnimation starts a strip at frame 0
func NewAnimation(pos Vec2, sheet asset.ID, delay int, loop bool) Animation {
	return Animation{
		Pos:       pos,
		Sheet:     sheet,
		MaxFrames: asset.Frames(sheet),
		Delay:     delay,
		countdown: delay,
		Loop:      loop,
		Active:    true,
	}
}

// Update advances one tick. A non-looping strip deactivates when it reaches
// its last frame.
func (a *Animation) Update() {
	if !a.Active {
		return
	}
	if a.countdown > 0 {
		a.countdown--
		return
	}
	a.Frame = (a.Frame + 1) % a.MaxFrames
	if !a.Loop && a.Frame >= a.MaxFrames-1 {
		a.Active = false
	}
	a.countdown = a.Delay
}
