package engine

import (
	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/input"
)

// navigate moves a cyclic cursor on Up/Down rising edges
func (g *GameContext) navigate(choice, count int) int {
	if g.Pressed(input.KeyUp) {
		choice = (choice - 1 + count) % count
	}
	if g.Pressed(input.KeyDown) {
		choice = (choice + 1) % count
	}
	return choice
}

// ensureMusic keeps the main loop playing outside the end screens
func (g *GameContext) ensureMusic() {
	if !g.Audio.Active(audio.CueMusicMain) {
		g.Audio.Play(audio.CueMusicMain, true)
	}
}

func (g *GameContext) updateMenu() {
	s := g.State
	g.ensureMusic()
	s.MenuChoice = g.navigate(s.MenuChoice, constants.MenuEntryCount)

	if !g.Pressed(input.KeyEnter) {
		return
	}
	switch s.MenuChoice {
	case constants.MenuStart:
		g.StartRun(constants.FirstLevel)
	case constants.MenuExit:
		g.Quit()
	case constants.MenuLevelSelect:
		s.LevelChoice = 0
		g.setMode(ModeLevelSelect)
	case constants.MenuCredits:
		s.CreditsOffset = 0
		g.setMode(ModeCredits)
	}
}

func (g *GameContext) updateLevelSelect() {
	s := g.State
	g.ensureMusic()

	if g.Pressed(input.KeyEscape) {
		g.setMode(ModeMenu)
		return
	}
	s.LevelChoice = g.navigate(s.LevelChoice, constants.LevelSelectEntryCount)

	if g.Pressed(input.KeyEnter) && s.LevelChoice >= 0 && s.LevelChoice < constants.LevelSelectEntryCount {
		// Entries are levels 1..4 followed by infinite mode
		g.StartRun(constants.FirstLevel + s.LevelChoice)
	}
}

func (g *GameContext) updateCredits() {
	s := g.State
	g.ensureMusic()

	if g.Pressed(input.KeyEscape) || g.Pressed(input.KeyEnter) {
		g.setMode(ModeMenu)
		return
	}
	if s.Tick%constants.CreditsScrollTicks == 0 {
		s.CreditsOffset++
	}
}

// StartRun discards any previous run and starts playing at level
func (g *GameContext) StartRun(level int) {
	s := g.State
	if level < constants.FirstLevel || level > constants.InfiniteLevel {
		return
	}

	mode := s.Mode
	s.Reset()
	s.Mode = mode
	s.StartLevel(level)

	g.Metrics.AddRun(level)
	g.runBase = g.Metrics.Snapshot()
	g.Log.Info().Int("level", level).Bool("infinite", s.Infinite()).Msg("Run started")
	g.setMode(ModePlaying)
}

func (g *GameContext) updatePlaying() {
	s := g.State
	g.ensureMusic()

	if g.Pressed(input.KeyEscape) {
		g.Log.Info().Int("global_score", s.GlobalScore).Msg("Run abandoned")
		g.setMode(ModeMenu)
		s.Reset()
		return
	}

	for _, sys := range g.systems {
		sys.Update(g)
	}
	s.Stats = g.Metrics.Snapshot().Sub(g.runBase)

	// Loss wins over a same-tick win; both win over advancing
	switch {
	case s.GameOver:
		g.Log.Info().
			Int("level", s.Level).
			Int("global_score", s.GlobalScore).
			Int("lives", s.Player.Lives).
			Int64("shots", s.Stats.PlayerShots).
			Int64("hits_taken", s.Stats.PlayerHits).
			Msg("Game over")
		g.setMode(ModeGameOver)
	case s.GameWin:
		g.Log.Info().
			Int("global_score", s.GlobalScore).
			Int64("shots", s.Stats.PlayerShots).
			Int64("hits_taken", s.Stats.PlayerHits).
			Msg("Game won")
		g.setMode(ModeGameWin)
	case s.LevelAdvanced:
		s.LevelAdvanced = false
		s.Projectiles = s.Projectiles[:0]
		s.BannerTimer = constants.LevelBannerTicks
		g.Log.Info().Int("level", s.Level).Msg("Level advanced")
		g.setMode(ModeLevelTransition)
	}
}

func (g *GameContext) updateTransition() {
	s := g.State
	g.ensureMusic()

	if g.Pressed(input.KeyEscape) {
		g.setMode(ModeMenu)
		s.Reset()
		return
	}

	if s.BannerTimer > 0 {
		s.BannerTimer--
	}
	if s.BannerTimer == 0 {
		s.StartLevel(s.Level)
		g.setMode(ModePlaying)
	}
}

// updateTerminal swaps the main loop for the end track once, then waits for Enter
func (g *GameContext) updateTerminal() {
	s := g.State
	track := audio.CueMusicGameOver
	if s.Mode == ModeGameWin {
		track = audio.CueMusicWin
	}
	if g.Audio.Active(audio.CueMusicMain) {
		g.Audio.Stop(audio.CueMusicMain)
		g.Audio.Play(track, true)
	}

	if g.Pressed(input.KeyEnter) {
		g.Quit()
	}
}
