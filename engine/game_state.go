package engine

import (
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/levels"
	"github.com/lixenwraith/vi-invaders/status"
)

// RunState is the whole mutable state of a run. It exclusively owns the entity
// collections; entities never point at each other.
// Only the simulation goroutine touches it.
type RunState struct {
	// ===== Progress =====

	Score       int // Kills toward the current level quota
	GlobalScore int // Kills across the run
	Level       int // 1..FinalLevel, InfiniteLevel for endless mode
	Difficulty  int // Subtracted from the formation cadence, clamped to MaxDifficulty

	// Stats are the metric counts of this run, refreshed after every Playing tick
	Stats status.Snapshot

	// ===== Timers (ticks) =====

	ReloadTimer    int
	EnemyMoveTimer int

	// ===== Formation =====

	Direction   int // +1 right, -1 left
	DescentLeft int // Remaining vertical steps of the current descent

	// ===== Flags raised during a tick, consumed by the state machine =====

	GameOver      bool
	GameWin       bool
	LevelAdvanced bool

	// ===== Flow =====

	Mode          Mode
	MenuChoice    int
	LevelChoice   int
	BannerTimer   int
	CreditsOffset int
	Tick          uint64

	// ===== Entities =====

	Player      components.Player
	Projectiles []components.Projectile
	Enemies     []components.Enemy
	Effects     []components.Animation
}

// NewRunState returns a state at the main menu
func NewRunState() *RunState {
	s := &RunState{}
	s.Reset()
	return s
}

// Reset discards the run and returns to the menu
func (s *RunState) Reset() {
	*s = RunState{
		Level:     constants.FirstLevel,
		Direction: 1,
		Player:    components.NewPlayer(),
		Mode:      ModeMenu,
		Tick:      s.Tick,
	}
}

// Infinite reports whether the endless mode is running
func (s *RunState) Infinite() bool {
	return s.Level == constants.InfiniteLevel
}

// StartLevel seeds the formation for level and resets per-level timers.
// Score, lives and the global score carry over.
func (s *RunState) StartLevel(level int) {
	s.Level = level
	s.Difficulty = 0
	s.ReloadTimer = 0
	s.EnemyMoveTimer = 0
	s.Direction = 1
	s.DescentLeft = 0
	s.GameOver = false
	s.GameWin = false
	s.LevelAdvanced = false
	s.Projectiles = s.Projectiles[:0]
	s.Effects = s.Effects[:0]
	s.Enemies = levels.Seed(level)
}

// ActiveEnemies counts live formation members
func (s *RunState) ActiveEnemies() int {
	n := 0
	for i := range s.Enemies {
		if s.Enemies[i].Active {
			n++
		}
	}
	return n
}

// Compact drops inactive entities, preserving order
func (s *RunState) Compact() {
	s.Projectiles = compact(s.Projectiles, func(p *components.Projectile) bool { return p.Active })
	s.Enemies = compact(s.Enemies, func(e *components.Enemy) bool { return e.Active })
	s.Effects = compact(s.Effects, func(a *components.Animation) bool { return a.Active })
}

// compact is a stable in-place filter
func compact[T any](items []T, keep func(*T) bool) []T {
	out := items[:0]
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}
