package engine

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/input"
	"github.com/lixenwraith/vi-invaders/status"
)

// Tuning holds the per-tick probabilities that config may override
type Tuning struct {
	EnemyFireChance     float64
	InfiniteSpawnChance float64
}

// DefaultTuning returns the arcade probabilities
func DefaultTuning() Tuning {
	return Tuning{
		EnemyFireChance:     constants.DefaultEnemyFireChance,
		InfiniteSpawnChance: constants.DefaultInfiniteSpawnChance,
	}
}

// GameContext drives the simulation one fixed step at a time
type GameContext struct {
	// ===== Immutable After Init =====

	State  *RunState
	Input  InputSource
	Audio  AudioPlayer
	Rand   *rand.Rand
	Tuning Tuning

	Metrics *status.Registry // May be nil
	Log     zerolog.Logger

	// ===== Simulation-Loop Exclusive =====

	systems  []System
	prevHeld [input.KeyCount]bool // Key state at the end of the previous tick
	runBase  status.Snapshot      // Metric counts when the current run started
}

// NewGameContext wires collaborators; nil input or audio become inert stand-ins
func NewGameContext(in InputSource, au AudioPlayer, rng *rand.Rand) *GameContext {
	if in == nil {
		in = noInput{}
	}
	if au == nil {
		au = silentAudio{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &GameContext{
		State:  NewRunState(),
		Input:  in,
		Audio:  au,
		Rand:   rng,
		Tuning: DefaultTuning(),
		Log:    zerolog.Nop(),
	}
}

// AddSystem registers a system, keeping them ordered by priority
func (g *GameContext) AddSystem(system System) {
	g.systems = append(g.systems, system)

	// Insertion keeps equal priorities in registration order
	for i := len(g.systems) - 1; i > 0 && g.systems[i-1].Priority() > g.systems[i].Priority(); i-- {
		g.systems[i-1], g.systems[i] = g.systems[i], g.systems[i-1]
	}
	g.Log.Debug().Str("system", system.Name()).Int("priority", system.Priority()).Msg("System registered")
}

// Systems returns the registered systems in run order
func (g *GameContext) Systems() []System {
	return g.systems
}

// Pressed reports a rising edge of k in this tick
func (g *GameContext) Pressed(k input.Key) bool {
	return g.Input.Held(k) && !g.prevHeld[k]
}

// Held reports whether k is down in this tick
func (g *GameContext) Held(k input.Key) bool {
	return g.Input.Held(k)
}

// Update advances the game by one fixed step
func (g *GameContext) Update() {
	s := g.State
	s.Tick++

	switch s.Mode {
	case ModeMenu:
		g.updateMenu()
	case ModeLevelSelect:
		g.updateLevelSelect()
	case ModeCredits:
		g.updateCredits()
	case ModePlaying:
		g.updatePlaying()
	case ModeLevelTransition:
		g.updateTransition()
	case ModeGameOver, ModeGameWin:
		g.updateTerminal()
	case ModeQuit:
	}

	g.latchKeys()
}

// Quit ends the game from any mode
func (g *GameContext) Quit() {
	g.setMode(ModeQuit)
}

// Done reports whether the loop should exit
func (g *GameContext) Done() bool {
	return g.State.Mode == ModeQuit
}

func (g *GameContext) latchKeys() {
	for k := 0; k < input.KeyCount; k++ {
		g.prevHeld[k] = g.Input.Held(input.Key(k))
	}
}

func (g *GameContext) setMode(m Mode) {
	s := g.State
	if s.Mode == m {
		return
	}
	g.Log.Info().
		Stringer("from", s.Mode).
		Stringer("to", m).
		Int("level", s.Level).
		Int("global_score", s.GlobalScore).
		Msg("Mode change")
	s.Mode = m
}
