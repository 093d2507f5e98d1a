package components

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/constants"
)

// Enemy is one formation member
type Enemy struct {
	Pos    Vec2
	Vel    Vec2
	Kind   EnemyKind
	Health int
	Active bool

	// Descending is set for the duration of a boundary descent
	Descending bool

	// Flip selects the alternate animation frame
	Flip bool

	HitFlashTimer int
	BaseColor     tcell.Color
	Color         tcell.Color
}

// NewEnemy creates a member; health <= 0 takes the kind's base health and a
// default colour takes the kind's canonical colour
func NewEnemy(pos Vec2, kind EnemyKind, health int, color tcell.Color) Enemy {
	spec := kind.Spec()
	if health <= 0 {
		health = spec.BaseHealth
	}
	if color == tcell.ColorDefault {
		color = spec.Color
	}
	return Enemy{
		Pos:       pos,
		Kind:      kind,
		Health:    health,
		Active:    true,
		BaseColor: color,
		Color:     color,
	}
}

// Update applies the member's own velocity; formation moves are applied by the controller
func (e *Enemy) Update(dt float64) {
	if !e.Active {
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// Bounds returns the full sprite box
func (e *Enemy) Bounds() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, W: constants.EnemyWidth, H: constants.EnemyHeight}
}

// Hitbox returns the forgiving inset box used for player shots
func (e *Enemy) Hitbox() Rect {
	return e.Bounds().Inset(constants.EnemyHitboxInsetX, constants.EnemyHitboxInsetY)
}

// Damage removes one health point from an active member.
// Returns true only on the hit that deactivates it.
func (e *Enemy) Damage() bool {
	if !e.Active || e.Health <= 0 {
		return false
	}
	e.Health--
	if e.Health == 0 {
		e.Active = false
		return true
	}
	e.HitFlashTimer = constants.HitFlashTicks
	e.Color = FlashColor
	return false
}

// TickFlash counts down the hit flash and restores the base colour on expiry
func (e *Enemy) TickFlash() {
	if e.HitFlashTimer <= 0 {
		return
	}
	e.HitFlashTimer--
	if e.HitFlashTimer == 0 {
		e.Color = e.BaseColor
	}
}

// ToggleFlip swaps the animation frame
func (e *Enemy) ToggleFlip() {
	e.Flip = !e.Flip
}

// Sprite returns the frame selected by Flip
func (e *Enemy) Sprite() asset.ID {
	frames := e.Kind.Spec().Frames
	if e.Flip {
		return frames[1]
	}
	return frames[0]
}
