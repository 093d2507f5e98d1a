package levels

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
)

func TestSeedFillsQuota(t *testing.T) {
	for level := constants.FirstLevel; level <= constants.FinalLevel; level++ {
		enemies := Seed(level)
		require.Lenf(t, enemies, constants.KillQuota, "level %d", level)
		for _, e := range enemies {
			assert.True(t, e.Active)
			assert.True(t, e.Kind.Valid())
			assert.GreaterOrEqual(t, e.Health, 1)
		}
	}
}

func TestSeedLevelOneMatchesClassicGrid(t *testing.T) {
	enemies := Seed(1)
	first := enemies[0]
	assert.Equal(t, components.Vec2{X: 100, Y: 100}, first.Pos)
	assert.Equal(t, components.KindSpread, first.Kind)

	last := enemies[len(enemies)-1]
	assert.Equal(t, components.Vec2{X: 600, Y: 300}, last.Pos)
	assert.Equal(t, components.KindFork, last.Kind)

	for _, e := range enemies {
		assert.Equal(t, 1, e.Health)
		assert.Equal(t, e.Kind.Spec().Color, e.Color)
	}
}

func TestSeedLevelTwoArmoursTopRow(t *testing.T) {
	enemies := Seed(2)
	for i, e := range enemies {
		if i < constants.FormationColumns {
			assert.Equal(t, 2, e.Health)
			assert.Equal(t, colorArmored, e.BaseColor)
		} else {
			assert.Equal(t, 1, e.Health)
		}
	}
}

func TestSeedUnknownLevelIsEmpty(t *testing.T) {
	assert.Empty(t, Seed(constants.InfiniteLevel))
	assert.Empty(t, Seed(0))
}

func TestBandColorClamps(t *testing.T) {
	assert.Equal(t, toughnessRamp[0], BandColor(0))
	assert.Equal(t, toughnessRamp[0], BandColor(-50))
	assert.Equal(t, toughnessRamp[2], BandColor(250))
	assert.Equal(t, toughnessRamp[5], BandColor(constants.MaxDifficulty))
}

func TestSpawnRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seenKinds := map[components.EnemyKind]bool{}
	for i := 0; i < 500; i++ {
		e := Spawn(rng, 300)
		assert.True(t, e.Kind.Valid())
		assert.GreaterOrEqual(t, e.Health, 1)
		assert.LessOrEqual(t, e.Health, constants.InfiniteMaxToughness)
		assert.Equal(t, constants.FormationOriginY, e.Pos.Y)
		assert.GreaterOrEqual(t, e.Pos.X, constants.FormationOriginX)
		assert.Equal(t, BandColor(300), e.BaseColor)
		seenKinds[e.Kind] = true
	}
	assert.Len(t, seenKinds, len(components.Kinds))
}
