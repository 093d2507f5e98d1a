package systems

import (
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// EffectSystem advances transient animations such as explosions
type EffectSystem struct{}

func NewEffectSystem() engine.System {
	return &EffectSystem{}
}

// Name returns system's name
func (s *EffectSystem) Name() string {
	return "effect"
}

func (s *EffectSystem) Priority() int {
	return constants.PriorityEffect
}

func (s *EffectSystem) Update(ctx *engine.GameContext) {
	effects := ctx.State.Effects
	for i := range effects {
		effects[i].Update()
	}
}
