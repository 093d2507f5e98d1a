package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/levels"
)

func positions(enemies []components.Enemy) []components.Vec2 {
	out := make([]components.Vec2, len(enemies))
	for i, e := range enemies {
		out[i] = e.Pos
	}
	return out
}

func TestCadenceClamp(t *testing.T) {
	assert.Equal(t, constants.FormationBaseCadence, Cadence(0))
	assert.Equal(t, constants.FormationBaseCadence, Cadence(-5))
	assert.Equal(t, 25, Cadence(constants.MaxDifficulty))
	assert.Equal(t, 25, Cadence(5000))
	assert.Equal(t, 600, Cadence(400))
}

func TestFormationMovesInLockStep(t *testing.T) {
	g, _, _ := newPlaying(t, 1)
	f := NewFormationSystem()
	s := g.State
	s.Enemies[3].Active = false
	before := positions(s.Enemies)

	f.Update(g)

	for i, e := range s.Enemies {
		delta := e.Pos.Add(before[i].Scale(-1))
		if !e.Active {
			assert.Equal(t, components.Vec2{}, delta, "inactive member never moves")
			continue
		}
		assert.Equal(t, components.Vec2{X: constants.FormationStep}, delta)
		assert.True(t, e.Flip)
	}
	assert.Equal(t, constants.FormationBaseCadence, s.EnemyMoveTimer)
}

func TestFormationTimerCountsDown(t *testing.T) {
	g, _, _ := newPlaying(t, 1)
	f := NewFormationSystem()
	s := g.State
	s.EnemyMoveTimer = 3
	before := positions(s.Enemies)

	for i := 0; i < 3; i++ {
		f.Update(g)
	}
	assert.Equal(t, before, positions(s.Enemies))
	assert.Zero(t, s.EnemyMoveTimer)

	f.Update(g)
	assert.NotEqual(t, before, positions(s.Enemies))
}

func TestFormationReversesAndDescends(t *testing.T) {
	g, _, _ := newPlaying(t, 1)
	f := NewFormationSystem()
	s := g.State
	for i := range s.Enemies {
		s.Enemies[i].Pos.X += 40 // rightmost column at the right wall
	}
	before := positions(s.Enemies)

	s.EnemyMoveTimer = 0
	f.Update(g)

	assert.Equal(t, -1, s.Direction)
	assert.Equal(t, descentSteps-1, s.DescentLeft)
	for i, e := range s.Enemies {
		assert.True(t, e.Descending)
		assert.Equal(t, before[i].Add(components.Vec2{Y: constants.FormationStep}), e.Pos)
	}

	for i := 1; i < descentSteps; i++ {
		s.EnemyMoveTimer = 0
		f.Update(g)
	}
	for i, e := range s.Enemies {
		assert.False(t, e.Descending)
		assert.Equal(t, before[i].Add(components.Vec2{Y: constants.FormationRowHeight}), e.Pos)
	}

	s.EnemyMoveTimer = 0
	f.Update(g)
	assert.Equal(t, before[0].X-constants.FormationStep, s.Enemies[0].Pos.X)
}

func TestFormationFloorEndsGame(t *testing.T) {
	g, _, _ := newPlaying(t, 1)
	s := g.State
	s.Enemies[0].Pos.Y = constants.FormationFloorY

	g.Update()

	assert.True(t, s.GameOver)
	assert.Equal(t, engine.ModeGameOver, s.Mode)
}

func TestEnemyFirePatterns(t *testing.T) {
	cases := []struct {
		kind  components.EnemyKind
		cue   audio.Cue
		shots []components.Vec2 // offsets from the member, spawn offset included
	}{
		{components.KindSpread, audio.CueEnemyFire1, []components.Vec2{{X: 2, Y: 0}, {X: 17, Y: 20}, {X: 32, Y: 0}}},
		{components.KindSingle, audio.CueEnemyFire2, []components.Vec2{{X: 17, Y: 0}}},
		{components.KindFork, audio.CueEnemyFire3, []components.Vec2{{X: 17, Y: 0}, {X: 17, Y: 0}}},
	}

	for _, tc := range cases {
		g, _, au := newPlaying(t, 1)
		g.Tuning.EnemyFireChance = 1
		s := g.State
		e := loneEnemy(tc.kind, 1)
		s.Enemies = []components.Enemy{e}
		s.EnemyMoveTimer = 10

		NewFormationSystem().Update(g)

		require.Len(t, s.Projectiles, len(tc.shots), "kind %d", tc.kind)
		for i, p := range s.Projectiles {
			assert.False(t, p.FromPlayer)
			assert.Equal(t, e.Pos.Add(tc.shots[i]), p.Pos)
			assert.Equal(t, tc.kind.Spec().Pattern[i].Vel, p.Vel)
		}
		assert.Equal(t, 1, au.Count(tc.cue))
		assert.Equal(t, int64(len(tc.shots)), g.Metrics.EnemyShots.Load())
	}
}

func TestHitFlashReverts(t *testing.T) {
	g, _, _ := newPlaying(t, 1)
	s := g.State
	e := loneEnemy(components.KindSingle, 2)
	require.False(t, e.Damage())
	s.Enemies = []components.Enemy{e}
	s.Enemies[0].HitFlashTimer = 2

	f := NewFormationSystem()
	f.Update(g)
	assert.Equal(t, components.FlashColor, s.Enemies[0].Color)
	f.Update(g)
	assert.Equal(t, s.Enemies[0].BaseColor, s.Enemies[0].Color)
}

func TestInfiniteSpawnWhenEmpty(t *testing.T) {
	g, _, _ := newPlaying(t, constants.InfiniteLevel)
	s := g.State
	s.DescentLeft = 3
	s.EnemyMoveTimer = 10
	require.Empty(t, s.Enemies)

	NewFormationSystem().Update(g)

	require.Len(t, s.Enemies, 1)
	e := s.Enemies[0]
	assert.True(t, e.Active)
	assert.True(t, e.Kind.Valid())
	assert.GreaterOrEqual(t, e.Health, 1)
	assert.LessOrEqual(t, e.Health, constants.InfiniteMaxToughness)
	assert.Equal(t, e.Health, s.Difficulty)
	assert.Equal(t, levels.BandColor(s.Difficulty), e.Color)
	assert.True(t, e.Descending)
	assert.Equal(t, constants.FormationOriginY, e.Pos.Y)
}

func TestInfiniteDifficultyClamps(t *testing.T) {
	g, _, _ := newPlaying(t, constants.InfiniteLevel)
	g.Tuning.InfiniteSpawnChance = 1
	s := g.State
	f := NewFormationSystem()

	for i := 0; i < 500; i++ {
		f.Update(g)
		require.LessOrEqual(t, s.Difficulty, constants.MaxDifficulty)
	}
	assert.Equal(t, constants.MaxDifficulty, s.Difficulty)
	assert.Len(t, s.Enemies, 500)
}
