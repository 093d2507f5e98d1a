package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow bridges the gap between terminal auto-repeat events
const DefaultHoldWindow = 180 * time.Millisecond

// KeyState turns terminal key events into polled key state.
// Terminals report presses and auto-repeats but never releases, so a key
// stays held for the hold window after its last event.
// Written by the event goroutine, read by the game loop.
type KeyState struct {
	mu   sync.Mutex
	last [keyCount]time.Time
	hold time.Duration

	// Now is the clock used for hold expiry
	Now func() time.Time
}

// NewKeyState creates a tracker; a non-positive hold uses DefaultHoldWindow
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyState{hold: hold, Now: time.Now}
}

// HandleEvent records a key event and returns false if the game should exit
func (s *KeyState) HandleEvent(ev *tcell.EventKey) bool {
	if IsQuit(ev) {
		return false
	}
	if k, ok := MapKey(ev); ok {
		s.Press(k)
	}
	return true
}

// Press marks a key as pressed now
func (s *KeyState) Press(k Key) {
	if k >= keyCount {
		return
	}
	s.mu.Lock()
	s.last[k] = s.Now()
	s.mu.Unlock()
}

// Release drops a key immediately
func (s *KeyState) Release(k Key) {
	if k >= keyCount {
		return
	}
	s.mu.Lock()
	s.last[k] = time.Time{}
	s.mu.Unlock()
}

// Held reports whether the key had an event within the hold window
func (s *KeyState) Held(k Key) bool {
	if k >= keyCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.last[k]
	if at.IsZero() {
		return false
	}
	return s.Now().Sub(at) < s.hold
}

// Clear releases every key
func (s *KeyState) Clear() {
	s.mu.Lock()
	s.last = [keyCount]time.Time{}
	s.mu.Unlock()
}
