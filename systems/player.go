package systems

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/input"
)

// PlayerSystem steers the ship, fires on reload and runs its timers
type PlayerSystem struct{}

func NewPlayerSystem() engine.System {
	return &PlayerSystem{}
}

// Name returns system's name
func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

func (s *PlayerSystem) Update(ctx *engine.GameContext) {
	st := ctx.State
	p := &st.Player

	if p.InvulnerabilityTimer > 0 {
		p.InvulnerabilityTimer--
	}
	if p.RespawnTimer > 0 {
		p.RespawnTimer--
		if p.RespawnTimer == 0 {
			p.SetPos(components.SpawnPoint)
		}
	}

	if p.RespawnTimer == 0 {
		s.steer(ctx, p)
		s.fire(ctx, p)
	} else {
		// Parked off-field while waiting to respawn
		p.Vel = components.Vec2{}
		if st.ReloadTimer > 0 {
			st.ReloadTimer--
		}
	}

	p.Anim.Update()
}

func (s *PlayerSystem) steer(ctx *engine.GameContext, p *components.Player) {
	x := p.Pos().X

	// Soft walls: pushing into a wall stops the ship, the other way still works.
	// Left wins when both are held, unless the ship already sits at the left wall.
	p.Vel = components.Vec2{}
	facing := components.FacingNeutral
	switch {
	case ctx.Held(input.KeyLeft) && x > constants.PlayerBoundLeft:
		facing = components.FacingLeft
		p.Vel.X = -constants.PlayerSpeed
	case ctx.Held(input.KeyRight) && x < constants.PlayerBoundRight:
		facing = components.FacingRight
		p.Vel.X = constants.PlayerSpeed
	}
	p.Face(facing)
	p.Move(constants.TickSeconds)
}

func (s *PlayerSystem) fire(ctx *engine.GameContext, p *components.Player) {
	st := ctx.State
	if st.ReloadTimer > 0 {
		st.ReloadTimer--
		return
	}
	if !ctx.Held(input.KeyUp) && !ctx.Held(input.KeyFire) {
		return
	}

	st.Projectiles = append(st.Projectiles, components.NewProjectile(
		p.Pos(),
		components.Vec2{Y: -constants.PlayerProjectileSpeed},
		true,
		asset.PlayerBullet,
		tcell.ColorGreen,
	))
	st.ReloadTimer = constants.PlayerReloadTicks
	ctx.Audio.Play(audio.CuePlayerFire, false)
	ctx.Metrics.AddPlayerShot()
}
