package components

import (
	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/constants"
)

// Facing drives which ship animation is shown
type Facing int

const (
	FacingNeutral Facing = iota
	FacingLeft
	FacingRight
)

// Sheet returns the animation strip for the facing
func (f Facing) Sheet() asset.ID {
	switch f {
	case FacingLeft:
		return asset.PlayerLeft
	case FacingRight:
		return asset.PlayerRight
	default:
		return asset.PlayerIdle
	}
}

// Player is the ship. Its animation is held by value and also carries the position.
type Player struct {
	Anim   Animation
	Vel    Vec2
	Facing Facing
	Lives  int

	InvulnerabilityTimer int
	RespawnTimer         int
}

// SpawnPoint is the canonical player position
var SpawnPoint = Vec2{X: constants.PlayerSpawnX, Y: constants.PlayerSpawnY}

// NewPlayer creates a ship at the spawn point with full lives
func NewPlayer() Player {
	return Player{
		Anim:  NewAnimation(SpawnPoint, asset.PlayerIdle, constants.PlayerAnimationDelay, true),
		Lives: constants.PlayerStartLives,
	}
}

// Pos returns the ship position
func (p *Player) Pos() Vec2 {
	return p.Anim.Pos
}

// SetPos teleports the ship
func (p *Player) SetPos(pos Vec2) {
	p.Anim.Pos = pos
}

// Move applies velocity for one fixed step
func (p *Player) Move(dt float64) {
	p.Anim.Pos = p.Anim.Pos.Add(p.Vel.Scale(dt))
}

// Face switches facing. On change the animation is replaced by value at frame 0.
// Returns whether the facing changed.
func (p *Player) Face(f Facing) bool {
	if p.Facing == f {
		return false
	}
	p.Anim = NewAnimation(p.Anim.Pos, f.Sheet(), constants.PlayerAnimationDelay, true)
	p.Facing = f
	return true
}

// Bounds returns the full sprite box of the current facing
func (p *Player) Bounds() Rect {
	w, h := asset.Size(p.Facing.Sheet())
	return Rect{X: p.Anim.Pos.X, Y: p.Anim.Pos.Y, W: w, H: h}
}

// Invulnerable reports whether hits are currently ignored
func (p *Player) Invulnerable() bool {
	return p.InvulnerabilityTimer > 0
}

// Visible reports whether the sprite is drawn on a presented frame; it blinks
// while invulnerable. The phase follows the frame count, not the tick timer,
// so it holds for any number of ticks per frame.
func (p *Player) Visible(frame uint64) bool {
	return !p.Invulnerable() || (frame/constants.InvulnerabilityBlinkFrames)%2 == 0
}
