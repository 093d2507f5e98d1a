package engine

import (
	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/input"
)

// InputSource reports which game keys are currently held
type InputSource interface {
	Held(k input.Key) bool
}

// AudioPlayer plays cues. Implementations must tolerate calls when no device is present.
type AudioPlayer interface {
	Play(cue audio.Cue, loop bool)
	Active(cue audio.Cue) bool
	Stop(cue audio.Cue)
	Reap()
}

// System is one stage of a Playing tick
type System interface {
	Name() string
	Update(ctx *GameContext)
	Priority() int // Lower values run first
}

type silentAudio struct{}

func (silentAudio) Play(audio.Cue, bool)  {}
func (silentAudio) Active(audio.Cue) bool { return false }
func (silentAudio) Stop(audio.Cue)        {}
func (silentAudio) Reap()                 {}

type noInput struct{}

func (noInput) Held(input.Key) bool { return false }
