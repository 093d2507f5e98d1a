package systems

import (
	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// CombatSystem resolves projectile hits after all motion of the tick.
// Enemy shots resolve before player shots so a loss in the tick blocks a win.
type CombatSystem struct{}

func NewCombatSystem() engine.System {
	return &CombatSystem{}
}

// Name returns system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return constants.PriorityCombat
}

func (s *CombatSystem) Update(ctx *engine.GameContext) {
	s.resolveEnemyShots(ctx)
	s.resolvePlayerShots(ctx)
}

func (s *CombatSystem) resolveEnemyShots(ctx *engine.GameContext) {
	st := ctx.State
	p := &st.Player

	for i := range st.Projectiles {
		pr := &st.Projectiles[i]
		if !pr.Active || pr.FromPlayer {
			continue
		}
		// Invulnerable ship lets shots pass through untouched
		if p.Invulnerable() {
			return
		}
		if !pr.Bounds().Intersects(p.Bounds()) {
			continue
		}
		pr.Active = false
		s.hitPlayer(ctx)
	}
}

func (s *CombatSystem) hitPlayer(ctx *engine.GameContext) {
	st := ctx.State
	p := &st.Player

	offset := components.Vec2{Y: constants.PlayerExplosionOffsetY}
	if p.Facing != components.FacingNeutral {
		offset.X = constants.PlayerExplosionTurnOffsetX
	}
	st.Effects = append(st.Effects, components.NewAnimation(
		p.Pos().Add(offset), asset.Explosion, constants.EffectFrameDelay, false,
	))
	ctx.Audio.Play(audio.CuePlayerDeath, false)

	p.Lives--
	p.InvulnerabilityTimer = constants.InvulnerabilityTicks
	p.RespawnTimer = constants.RespawnTicks
	p.Vel = components.Vec2{}
	p.SetPos(components.Vec2{X: constants.PlayerSpawnX, Y: constants.PlayerParkY})
	ctx.Metrics.AddPlayerHit()

	ctx.Log.Info().Int("lives", p.Lives).Int("level", st.Level).Msg("Player hit")
	if p.Lives <= 0 {
		st.GameOver = true
	}
}

func (s *CombatSystem) resolvePlayerShots(ctx *engine.GameContext) {
	st := ctx.State

	for i := range st.Projectiles {
		pr := &st.Projectiles[i]
		if !pr.Active || !pr.FromPlayer {
			continue
		}
		box := pr.Bounds()
		// Members killed earlier this tick stay in the slice until Cull compacts
		// it, and their wrecks still absorb shots without scoring again
		for j := range st.Enemies {
			e := &st.Enemies[j]
			if !box.Intersects(e.Hitbox()) {
				continue
			}
			pr.Active = false
			if e.Damage() {
				s.kill(ctx, e)
			}
			break
		}
	}
}

func (s *CombatSystem) kill(ctx *engine.GameContext, e *components.Enemy) {
	st := ctx.State

	st.Effects = append(st.Effects, components.NewAnimation(
		e.Pos.Add(components.Vec2{X: constants.SmallExplosionOffset, Y: constants.SmallExplosionOffset}),
		asset.ExplosionSmall, constants.EffectFrameDelay, false,
	))
	ctx.Audio.Play(audio.CueEnemyDeath, false)

	st.Score++
	st.GlobalScore++
	ctx.Metrics.AddKill(int(e.Kind))

	if st.Infinite() {
		return
	}
	st.Difficulty = min(constants.DifficultyPerKill*st.Score, constants.MaxDifficulty)

	if st.Score != constants.KillQuota || st.GameOver || st.GameWin {
		return
	}
	ctx.Metrics.AddLevelCleared(st.Level)
	if st.Level < constants.FinalLevel {
		st.Level++
		st.Score = 0
		st.LevelAdvanced = true
		return
	}
	st.GameWin = true
}
