package asset

import (
	"errors"
	"fmt"
)

// ID names a sprite sheet
type ID int

const (
	PlayerIdle ID = iota
	PlayerLeft
	PlayerRight
	Enemy1
	Enemy1Alt
	Enemy2
	Enemy2Alt
	Enemy3
	Enemy3Alt
	PlayerBullet
	EnemyBullet
	Explosion
	ExplosionSmall
	Lives
	MenuCursor
	idCount
)

// ErrMissingSheet is returned by Validate for an unresolved sheet
var ErrMissingSheet = errors.New("missing sprite sheet")

// Sheet is a horizontal strip of equally sized frames
type Sheet struct {
	Name        string
	FrameWidth  float64 // World units
	FrameHeight float64
	Frames      [][]string
}

// FrameCount mirrors strip width divided by frame width
func (s Sheet) FrameCount() int {
	return len(s.Frames)
}

func (id ID) String() string {
	if s, ok := builtin[id]; ok {
		return s.Name
	}
	return fmt.Sprintf("sheet(%d)", int(id))
}

// Registry resolves sheet ids to loaded sheets
type Registry struct {
	sheets map[ID]Sheet
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{sheets: make(map[ID]Sheet)}
}

// Default returns a registry holding every built-in sheet
func Default() *Registry {
	r := NewRegistry()
	for id, s := range builtin {
		r.Register(id, s)
	}
	return r
}

// Register adds or replaces a sheet
func (r *Registry) Register(id ID, s Sheet) {
	r.sheets[id] = s
}

// Sheet resolves an id
func (r *Registry) Sheet(id ID) (Sheet, bool) {
	s, ok := r.sheets[id]
	return s, ok
}

// Validate checks every id resolves to a sheet with at least one frame
func (r *Registry) Validate(ids ...ID) error {
	for _, id := range ids {
		s, ok := r.sheets[id]
		if !ok || s.FrameCount() == 0 {
			return fmt.Errorf("%w: %s", ErrMissingSheet, id)
		}
	}
	return nil
}

// Required lists every sheet the game draws
func Required() []ID {
	ids := make([]ID, 0, idCount)
	for id := ID(0); id < idCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Frames returns the frame count of a built-in sheet, 1 if unknown
func Frames(id ID) int {
	if s, ok := builtin[id]; ok && s.FrameCount() > 0 {
		return s.FrameCount()
	}
	return 1
}

// Size returns the frame size of a built-in sheet in world units
func Size(id ID) (w, h float64) {
	s := builtin[id]
	return s.FrameWidth, s.FrameHeight
}
