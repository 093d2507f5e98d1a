package systems

import (
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/levels"
)

// descentSteps is the number of vertical steps that drop the formation one row
const descentSteps = int(constants.FormationRowHeight / constants.FormationStep)

// FormationSystem marches the enemy formation in lock-step, rolls enemy fire
// and feeds infinite mode with new members
type FormationSystem struct{}

func NewFormationSystem() engine.System {
	return &FormationSystem{}
}

// Name returns system's name
func (s *FormationSystem) Name() string {
	return "formation"
}

func (s *FormationSystem) Priority() int {
	return constants.PriorityFormation
}

func (s *FormationSystem) Update(ctx *engine.GameContext) {
	st := ctx.State

	if st.Infinite() {
		s.spawn(ctx)
	}

	for i := range st.Enemies {
		e := &st.Enemies[i]
		if !e.Active {
			continue
		}
		e.Update(constants.TickSeconds)
		e.TickFlash()
		if ctx.Rand.Float64() < ctx.Tuning.EnemyFireChance {
			s.fire(ctx, e)
		}
	}

	if st.EnemyMoveTimer > 0 {
		st.EnemyMoveTimer--
		return
	}
	st.EnemyMoveTimer = Cadence(st.Difficulty)
	s.march(ctx)
}

// Cadence returns the ticks between movement cycles at a difficulty
func Cadence(difficulty int) int {
	return constants.FormationBaseCadence - min(max(difficulty, 0), constants.MaxDifficulty)
}

// march runs one movement cycle; every active member gets the same step
func (s *FormationSystem) march(ctx *engine.GameContext) {
	st := ctx.State

	if st.DescentLeft == 0 && s.atEdge(st) {
		st.Direction = -st.Direction
		st.DescentLeft = descentSteps
		for i := range st.Enemies {
			if st.Enemies[i].Active {
				st.Enemies[i].Descending = true
			}
		}
	}

	step := components.Vec2{X: constants.FormationStep * float64(st.Direction)}
	descending := st.DescentLeft > 0
	if descending {
		step = components.Vec2{Y: constants.FormationStep}
		st.DescentLeft--
	}

	for i := range st.Enemies {
		e := &st.Enemies[i]
		if !e.Active {
			continue
		}
		e.Pos = e.Pos.Add(step)
		e.ToggleFlip()
		if descending && st.DescentLeft == 0 {
			e.Descending = false
		}
		if e.Pos.Y >= constants.FormationFloorY && !st.GameOver {
			st.GameOver = true
			ctx.Log.Info().Float64("y", e.Pos.Y).Msg("Formation reached the floor")
		}
	}
}

// atEdge reports whether any member touches the wall the formation is heading into
func (s *FormationSystem) atEdge(st *engine.RunState) bool {
	for i := range st.Enemies {
		e := &st.Enemies[i]
		if !e.Active {
			continue
		}
		if st.Direction < 0 && e.Pos.X <= constants.FormationBoundLeft {
			return true
		}
		if st.Direction > 0 && e.Pos.X >= constants.FormationBoundRight {
			return true
		}
	}
	return false
}

// fire launches the member's kind pattern
func (s *FormationSystem) fire(ctx *engine.GameContext, e *components.Enemy) {
	st := ctx.State
	spec := e.Kind.Spec()
	for _, shot := range spec.Pattern {
		st.Projectiles = append(st.Projectiles, components.NewProjectile(
			e.Pos.Add(shot.Offset), shot.Vel, false, shot.Sprite, shot.Color,
		))
	}
	ctx.Audio.Play(spec.FireCue, false)
	ctx.Metrics.AddEnemyShots(len(spec.Pattern))
}

// spawn adds an infinite-mode member on chance, or at once when none is left
func (s *FormationSystem) spawn(ctx *engine.GameContext) {
	st := ctx.State
	if st.ActiveEnemies() > 0 && ctx.Rand.Float64() >= ctx.Tuning.InfiniteSpawnChance {
		return
	}

	e := levels.Spawn(ctx.Rand, st.Difficulty)
	st.Difficulty = min(st.Difficulty+e.Health, constants.MaxDifficulty)
	e.BaseColor = levels.BandColor(st.Difficulty)
	e.Color = e.BaseColor
	e.Descending = st.DescentLeft > 0
	st.Enemies = append(st.Enemies, e)

	ctx.Log.Debug().
		Int("kind", int(e.Kind)).
		Int("toughness", e.Health).
		Int("difficulty", st.Difficulty).
		Msg("Infinite spawn")
}
