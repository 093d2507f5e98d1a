package systems

import (
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// CullSystem drops inactive entities and finished sound handles
// It runs last in the tick so every other system sees the flagged state
type CullSystem struct{}

func NewCullSystem() engine.System {
	return &CullSystem{}
}

// Name returns system's name
func (s *CullSystem) Name() string {
	return "cull"
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

func (s *CullSystem) Update(ctx *engine.GameContext) {
	ctx.State.Compact()
	ctx.Audio.Reap()
}
