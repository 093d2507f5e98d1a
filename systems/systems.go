package systems

import "github.com/lixenwraith/vi-invaders/engine"

// Install registers the full Playing pipeline on ctx
func Install(ctx *engine.GameContext) {
	ctx.AddSystem(NewPlayerSystem())
	ctx.AddSystem(NewProjectileSystem())
	ctx.AddSystem(NewFormationSystem())
	ctx.AddSystem(NewEffectSystem())
	ctx.AddSystem(NewCombatSystem())
	ctx.AddSystem(NewCullSystem())
}
