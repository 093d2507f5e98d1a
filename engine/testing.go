package engine

import (
	"math/rand"

	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/input"
)

// FakeInput is a scripted InputSource for tests
type FakeInput struct {
	keys [input.KeyCount]bool
}

// Held implements InputSource
func (f *FakeInput) Held(k input.Key) bool {
	return int(k) < input.KeyCount && f.keys[k]
}

// Press holds k until Release
func (f *FakeInput) Press(k input.Key) {
	f.keys[k] = true
}

// Release lets go of k
func (f *FakeInput) Release(k input.Key) {
	f.keys[k] = false
}

// ReleaseAll lets go of every key
func (f *FakeInput) ReleaseAll() {
	f.keys = [input.KeyCount]bool{}
}

// PlayCall records one Play request
type PlayCall struct {
	Cue  audio.Cue
	Loop bool
}

// FakeAudio records cue requests. Loops stay active until stopped, one-shots
// until the next Reap.
type FakeAudio struct {
	Calls  []PlayCall
	Stops  []audio.Cue
	Reaps  int
	active map[audio.Cue]bool
}

// NewFakeAudio creates an empty recorder
func NewFakeAudio() *FakeAudio {
	return &FakeAudio{active: make(map[audio.Cue]bool)}
}

// Play implements AudioPlayer
func (f *FakeAudio) Play(cue audio.Cue, loop bool) {
	f.Calls = append(f.Calls, PlayCall{Cue: cue, Loop: loop})
	f.active[cue] = true
}

// Active implements AudioPlayer
func (f *FakeAudio) Active(cue audio.Cue) bool {
	return f.active[cue]
}

// Stop implements AudioPlayer
func (f *FakeAudio) Stop(cue audio.Cue) {
	f.Stops = append(f.Stops, cue)
	delete(f.active, cue)
}

// Reap implements AudioPlayer
func (f *FakeAudio) Reap() {
	f.Reaps++
	for cue := range f.active {
		if !cue.IsMusic() {
			delete(f.active, cue)
		}
	}
}

// Count returns how many times cue was requested
func (f *FakeAudio) Count(cue audio.Cue) int {
	n := 0
	for _, c := range f.Calls {
		if c.Cue == cue {
			n++
		}
	}
	return n
}

// NewTestGameContext creates a context with scripted collaborators and a seeded source
func NewTestGameContext(seed int64) (*GameContext, *FakeInput, *FakeAudio) {
	in := &FakeInput{}
	au := NewFakeAudio()
	return NewGameContext(in, au, rand.New(rand.NewSource(seed))), in, au
}

// Tap presses k for one tick and releases it for the next
func Tap(g *GameContext, in *FakeInput, k input.Key) {
	in.Press(k)
	g.Update()
	in.Release(k)
	g.Update()
}
