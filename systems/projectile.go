package systems

import (
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// ProjectileSystem moves shots and retires those that left the field
type ProjectileSystem struct{}

func NewProjectileSystem() engine.System {
	return &ProjectileSystem{}
}

// Name returns system's name
func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

func (s *ProjectileSystem) Update(ctx *engine.GameContext) {
	projectiles := ctx.State.Projectiles
	for i := range projectiles {
		p := &projectiles[i]
		if !p.Active {
			continue
		}
		p.Update(constants.TickSeconds)
		if p.OutOfField() {
			p.Active = false
		}
	}
}
