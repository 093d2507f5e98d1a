package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-invaders/constants"
)

// handle tracks one playing cue until it finishes or is stopped
type handle struct {
	cue  Cue
	ctrl *beep.Ctrl
	done atomic.Bool
}

// SoundManager plays cues through a single beep mixer on the speaker.
// All operations are safe before Initialize and after Cleanup; they do nothing.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	handles     []*handle
	initialized bool
}

// NewSoundManager creates a sound manager, audio stays silent until Initialize
func NewSoundManager(cfg Config) *SoundManager {
	cfg = cfg.normalize()
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system; a disabled config leaves it silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for _, h := range sm.handles {
		h.ctrl.Streamer = nil
		h.done.Store(true)
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.handles = nil
	sm.initialized = false
}

// Play starts a cue; looping cues repeat until stopped
func (sm *SoundManager) Play(cue Cue, loop bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	source := func() beep.Streamer { return CueSound(cue, sm.rate) }
	if source() == nil {
		return
	}

	h := &handle{cue: cue}
	var body beep.Streamer
	if loop {
		body = newRepeat(source)
	} else {
		body = beep.Seq(source(), beep.Callback(func() { h.done.Store(true) }))
	}
	h.ctrl = &beep.Ctrl{Streamer: newVolume(body, sm.cfg.MasterVolume)}

	speaker.Lock()
	sm.mixer.Add(h.ctrl)
	speaker.Unlock()

	sm.handles = append(sm.handles, h)
}

// Active reports whether any instance of the cue is still sounding
func (sm *SoundManager) Active(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, h := range sm.handles {
		if h.cue == cue && !h.done.Load() {
			return true
		}
	}
	return false
}

// Stop silences every instance of the cue
func (sm *SoundManager) Stop(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for _, h := range sm.handles {
		if h.cue == cue && !h.done.Load() {
			// Nil streamer makes the mixer drop the ctrl on its next pass
			h.ctrl.Streamer = nil
			h.done.Store(true)
		}
	}
	speaker.Unlock()
}

// Reap releases handles of finished cues
func (sm *SoundManager) Reap() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	live := sm.handles[:0]
	for _, h := range sm.handles {
		if !h.done.Load() {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(sm.handles); i++ {
		sm.handles[i] = nil
	}
	sm.handles = live
}

// Len returns the number of tracked handles
func (sm *SoundManager) Len() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.handles)
}
