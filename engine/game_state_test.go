package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
)

func TestCompactIsStable(t *testing.T) {
	s := NewRunState()
	for i := 0; i < 5; i++ {
		e := components.NewEnemy(components.Vec2{X: float64(i)}, components.KindSpread, 1, 0)
		e.Active = i%2 == 0
		s.Enemies = append(s.Enemies, e)

		p := components.NewProjectile(components.Vec2{X: float64(i)}, components.Vec2{}, true, 0, 0)
		p.Active = i != 0
		s.Projectiles = append(s.Projectiles, p)
	}

	s.Compact()

	var ex, px []float64
	for _, e := range s.Enemies {
		ex = append(ex, e.Pos.X)
	}
	for _, p := range s.Projectiles {
		px = append(px, p.Pos.X-constants.ProjectileSpawnOffsetX)
	}
	assert.Equal(t, []float64{0, 2, 4}, ex)
	assert.Equal(t, []float64{1, 2, 3, 4}, px)
}

func TestStartLevelKeepsRunProgress(t *testing.T) {
	s := NewRunState()
	s.GlobalScore = 60
	s.Player.Lives = 2
	s.Difficulty = 975
	s.Direction = -1

	s.StartLevel(2)

	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 60, s.GlobalScore)
	assert.Equal(t, 2, s.Player.Lives)
	assert.Zero(t, s.Difficulty)
	assert.Equal(t, 1, s.Direction)
	assert.Equal(t, constants.KillQuota, s.ActiveEnemies())
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, "level_transition", ModeLevelTransition.String())
	assert.Equal(t, "unknown", Mode(99).String())
	assert.True(t, ModeGameWin.Terminal())
	assert.False(t, ModePlaying.Terminal())
}
