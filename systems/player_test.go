package systems

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/input"
)

func TestPlayerMovesAtFixedSpeed(t *testing.T) {
	g, in, _ := newPlaying(t, 1)
	start := g.State.Player.Pos()

	in.Press(input.KeyRight)
	for i := 0; i < 100; i++ {
		g.Update()
	}

	p := g.State.Player
	assert.InDelta(t, start.X+100*constants.PlayerSpeed*constants.TickSeconds, p.Pos().X, 1e-6)
	assert.Equal(t, start.Y, p.Pos().Y)
	assert.Equal(t, components.FacingRight, p.Facing)
}

func TestPlayerSoftBounds(t *testing.T) {
	g, in, _ := newPlaying(t, 1)
	p := &g.State.Player

	p.SetPos(components.Vec2{X: 641, Y: constants.PlayerSpawnY})
	in.Press(input.KeyRight)
	g.Update()
	assert.Equal(t, 641.0, p.Pos().X, "pushing into the right wall stops the ship")

	in.Release(input.KeyRight)
	in.Press(input.KeyLeft)
	g.Update()
	assert.Less(t, p.Pos().X, 641.0, "moving away from the wall still works")

	p.SetPos(components.Vec2{X: 39, Y: constants.PlayerSpawnY})
	g.Update()
	assert.Equal(t, 39.0, p.Pos().X)
}

func TestSteeringPriority(t *testing.T) {
	g, in, _ := newPlaying(t, 1)
	p := &g.State.Player
	start := p.Pos().X

	in.Press(input.KeyLeft)
	in.Press(input.KeyRight)
	g.Update()
	assert.Equal(t, components.FacingLeft, p.Facing, "left wins when both are held")
	assert.Less(t, p.Pos().X, start)

	p.SetPos(components.Vec2{X: 39, Y: constants.PlayerSpawnY})
	g.Update()
	assert.Equal(t, components.FacingRight, p.Facing, "at the left wall both keys steer right")
	assert.Greater(t, p.Pos().X, 39.0)

	in.Release(input.KeyRight)
	p.SetPos(components.Vec2{X: 39, Y: constants.PlayerSpawnY})
	g.Update()
	assert.Equal(t, components.FacingNeutral, p.Facing, "pushing into a wall faces forward")
	assert.Equal(t, 39.0, p.Pos().X)
}

func TestFacingChangeResetsAnimation(t *testing.T) {
	g, in, _ := newPlaying(t, 1)
	p := &g.State.Player

	for i := 0; i < 500; i++ {
		g.Update()
	}
	require.NotZero(t, p.Anim.Frame)

	in.Press(input.KeyLeft)
	g.Update()

	assert.Equal(t, components.FacingLeft, p.Facing)
	assert.Equal(t, asset.PlayerLeft, p.Anim.Sheet)
	assert.Zero(t, p.Anim.Frame)
	assert.True(t, p.Anim.Loop)

	in.Release(input.KeyLeft)
	g.Update()
	assert.Equal(t, asset.PlayerIdle, p.Anim.Sheet)
}

func TestReloadGatesFire(t *testing.T) {
	g, in, au := newPlaying(t, 1)
	g.State.Enemies = nil

	in.Press(input.KeyFire)
	g.Update()

	s := g.State
	require.Len(t, s.Projectiles, 1)
	shot := s.Projectiles[0]
	assert.True(t, shot.FromPlayer)
	assert.Equal(t, tcell.ColorGreen, shot.Color)
	assert.Equal(t, constants.PlayerSpawnX+constants.ProjectileSpawnOffsetX, shot.Pos.X)
	assert.InDelta(t, constants.PlayerSpawnY-constants.PlayerProjectileSpeed*constants.TickSeconds, shot.Pos.Y, 1e-9)
	assert.Equal(t, constants.PlayerReloadTicks, s.ReloadTimer)

	for i := 0; i < constants.PlayerReloadTicks; i++ {
		g.Update()
	}
	assert.Equal(t, 1, au.Count(audio.CuePlayerFire))
	assert.Zero(t, s.ReloadTimer)

	in.Release(input.KeyFire)
	in.Press(input.KeyUp)
	g.Update()
	assert.Equal(t, 2, au.Count(audio.CuePlayerFire), "Up fires too")
	assert.Equal(t, int64(2), g.Metrics.PlayerShots.Load())
}

func TestInvulnerabilityWindowAndRespawn(t *testing.T) {
	g, _, _ := newPlaying(t, 1)
	g.State.Enemies = nil
	p := &g.State.Player
	p.InvulnerabilityTimer = constants.InvulnerabilityTicks
	p.RespawnTimer = constants.RespawnTicks
	p.SetPos(components.Vec2{X: constants.PlayerSpawnX, Y: constants.PlayerParkY})

	for i := 0; i < constants.InvulnerabilityTicks; i++ {
		g.Update()
		if i == constants.RespawnTicks-1 {
			assert.Equal(t, components.SpawnPoint, p.Pos(), "ship returns when the respawn timer expires")
		}
		if i < constants.InvulnerabilityTicks-1 {
			assert.True(t, p.Invulnerable())
		}
	}

	assert.False(t, p.Invulnerable())
	assert.True(t, p.Visible(0))
}

func TestBlinkVisibleAtFrameRate(t *testing.T) {
	g, _, _ := newPlaying(t, 1)
	g.State.Enemies = nil
	st := g.State

	// Hit lands mid-frame
	for range 17 {
		g.Update()
	}
	st.Projectiles = append(st.Projectiles, enemyShotAt(st.Player))
	g.Update()
	require.Equal(t, constants.PlayerStartLives-1, st.Player.Lives)
	for range constants.DefaultTicksPerFrame - 18 {
		g.Update()
	}

	var frame uint64
	visible, hidden := 0, 0
	for st.Player.Invulnerable() {
		for range constants.DefaultTicksPerFrame {
			g.Update()
		}
		frame++
		if st.Player.RespawnTimer > 0 {
			continue
		}
		if st.Player.Visible(frame) {
			visible++
		} else {
			hidden++
		}
	}

	assert.Greater(t, visible, 10)
	assert.Greater(t, hidden, 10)
	assert.InDelta(t, visible, hidden, float64(2*constants.InvulnerabilityBlinkFrames))
}

func TestParkedShipDoesNotFire(t *testing.T) {
	g, in, au := newPlaying(t, 1)
	p := &g.State.Player
	p.RespawnTimer = 10
	p.SetPos(components.Vec2{X: constants.PlayerSpawnX, Y: constants.PlayerParkY})

	in.Press(input.KeyFire)
	in.Press(input.KeyLeft)
	g.Update()

	assert.Zero(t, au.Count(audio.CuePlayerFire))
	assert.Equal(t, constants.PlayerSpawnX, p.Pos().X)
}
