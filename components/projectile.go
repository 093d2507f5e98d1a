package components

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/constants"
)

// Projectile is a shot from the player or a formation member.
// Once inactive it is never moved or tested again and waits for the cull.
type Projectile struct {
	Pos        Vec2
	Vel        Vec2
	FromPlayer bool
	Active     bool
	Color      tcell.Color
	Sprite     asset.ID
}

// NewProjectile spawns a shot offset from the shooter origin
func NewProjectile(origin, vel Vec2, fromPlayer bool, sprite asset.ID, color tcell.Color) Projectile {
	return Projectile{
		Pos:        origin.Add(Vec2{X: constants.ProjectileSpawnOffsetX}),
		Vel:        vel,
		FromPlayer: fromPlayer,
		Active:     true,
		Color:      color,
		Sprite:     sprite,
	}
}

// Update moves an active projectile by one fixed step
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// Bounds returns the full sprite box
func (p *Projectile) Bounds() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: constants.ProjectileWidth, H: constants.ProjectileHeight}
}

// OutOfField reports whether the shot has left the playfield in its direction of travel
func (p *Projectile) OutOfField() bool {
	if p.Pos.X < -constants.ProjectileWidth || p.Pos.X > constants.FieldWidth {
		return true
	}
	if p.FromPlayer {
		return p.Pos.Y < 0
	}
	return p.Pos.Y > constants.FieldHeight
}
