package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/status"
)

// newPlaying starts a run at level with the full pipeline and no random fire or spawns
func newPlaying(t *testing.T, level int) (*engine.GameContext, *engine.FakeInput, *engine.FakeAudio) {
	t.Helper()
	g, in, au := engine.NewTestGameContext(7)
	g.Tuning = engine.Tuning{}
	reg, err := status.NewRegistry(nil)
	require.NoError(t, err)
	g.Metrics = reg
	Install(g)
	g.StartRun(level)
	require.Equal(t, engine.ModePlaying, g.State.Mode)
	return g, in, au
}

// playerShotAt places a motionless player shot inside the enemy's hitbox
func playerShotAt(e components.Enemy) components.Projectile {
	return components.Projectile{
		Pos:        e.Pos.Add(components.Vec2{X: 20, Y: 20}),
		FromPlayer: true,
		Active:     true,
	}
}

// enemyShotAt places a motionless enemy shot over the player sprite
func enemyShotAt(p components.Player) components.Projectile {
	return components.Projectile{
		Pos:    p.Pos().Add(components.Vec2{X: 10, Y: 10}),
		Active: true,
	}
}

func loneEnemy(kind components.EnemyKind, health int) components.Enemy {
	return components.NewEnemy(components.Vec2{X: 300, Y: 200}, kind, health, kind.Spec().Color)
}
