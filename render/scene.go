package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// RenderFrame composes the whole screen for the current mode
func (r *TerminalRenderer) RenderFrame(s *engine.RunState) {
	r.frame++
	r.Clear()
	r.Border()

	switch s.Mode {
	case engine.ModeMenu:
		r.drawMenu(s)
	case engine.ModeLevelSelect:
		r.drawLevelSelect(s)
	case engine.ModeCredits:
		r.drawCredits(s)
	case engine.ModePlaying:
		r.drawWorld(s)
	case engine.ModeLevelTransition:
		r.drawWorld(s)
		r.TextCentered(FieldRows/2, LevelName(s.Level), r.Style(RgbTitle))
	case engine.ModeGameOver:
		r.drawWorld(s)
		r.drawEnd(s, constants.GameOverText, r.Style(RgbGameOver))
	case engine.ModeGameWin:
		r.drawWorld(s)
		r.drawEnd(s, constants.GameWinText, r.Style(RgbGameWin))
	}

	r.Present()
}

// LevelName is the banner and HUD label of a level
func LevelName(level int) string {
	if level == constants.InfiniteLevel {
		return "INFINITE"
	}
	return fmt.Sprintf("LEVEL %d", level)
}

func (r *TerminalRenderer) drawEntries(labels []string, choice int) {
	top := FieldRows/2 - len(labels)
	for i, label := range labels {
		style := r.Style(RgbMenuText)
		if i == choice {
			style = r.Style(RgbMenuSelected)
			x := r.fieldX + (FieldColumns-len([]rune(label)))/2 - 3
			r.Text(x, r.fieldY+top+2*i, "▶", style)
		}
		r.TextCentered(top+2*i, label, style)
	}
}

func (r *TerminalRenderer) drawMenu(s *engine.RunState) {
	r.TextCentered(FieldRows/4, constants.TitleText, r.Style(RgbTitle))
	if r.board != nil {
		r.TextCentered(FieldRows/4+2, fmt.Sprintf("HI-SCORE %05d", r.board.Best), r.Style(RgbHud))
	}
	r.drawEntries(constants.MenuLabels[:], s.MenuChoice)
}

func (r *TerminalRenderer) drawLevelSelect(s *engine.RunState) {
	r.TextCentered(FieldRows/4, strings.ToUpper(constants.MenuLabels[constants.MenuLevelSelect]), r.Style(RgbTitle))
	r.drawEntries(constants.LevelLabels[:], s.LevelChoice)
	r.TextCentered(FieldRows-2, constants.EscHintText, r.Style(RgbHint))
}

// drawCredits scrolls the roll upward and wraps around
func (r *TerminalRenderer) drawCredits(s *engine.RunState) {
	lines := constants.CreditsLines
	span := FieldRows + len(lines)
	start := FieldRows - s.CreditsOffset%span
	for i, line := range lines {
		y := start + i
		if y < 0 || y >= FieldRows-2 {
			continue
		}
		r.TextCentered(y, line, r.Style(RgbMenuText))
	}
	r.TextCentered(FieldRows-1, constants.EscHintText, r.Style(RgbHint))
}

func (r *TerminalRenderer) drawWorld(s *engine.RunState) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Active {
			continue
		}
		r.Draw(Drawable{Pos: e.Pos, Sprite: e.Sprite(), Tint: e.Color})
	}

	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if !p.Active {
			continue
		}
		r.Draw(Drawable{Pos: p.Pos, Sprite: p.Sprite, Tint: p.Color})
	}

	for i := range s.Effects {
		fx := &s.Effects[i]
		if !fx.Active {
			continue
		}
		r.Draw(Drawable{Pos: fx.Pos, Sprite: fx.Sheet, Frame: fx.Frame, Tint: RgbExplosion})
	}

	p := &s.Player
	if p.RespawnTimer == 0 && p.Visible(r.frame) {
		r.Draw(Drawable{Pos: p.Pos(), Sprite: p.Anim.Sheet, Frame: p.Anim.Frame, Tint: RgbPlayer})
	}

	r.drawHud(s)
}

// drawHud writes score, level and lives on the row above the field
func (r *TerminalRenderer) drawHud(s *engine.RunState) {
	y := r.fieldY - 1 - hudRows
	hud := fmt.Sprintf("SCORE %05d  %s", s.GlobalScore, LevelName(s.Level))
	if !s.Infinite() {
		hud += fmt.Sprintf("  %d/%d", s.Score, constants.KillQuota)
	}
	if r.board != nil {
		hud += fmt.Sprintf("  HI %05d", max(r.board.Best, s.GlobalScore))
	}
	r.Text(r.fieldX, y, hud, r.Style(RgbHud))

	heart := "♥"
	if sheet, ok := r.assets.Sheet(asset.Lives); ok && len(sheet.Frames) > 0 && len(sheet.Frames[0]) > 0 {
		heart = sheet.Frames[0][0]
	}
	lives := strings.Repeat(heart, max(s.Player.Lives, 0))
	r.Text(r.fieldX+FieldColumns-len([]rune(lives)), y, lives, r.Style(RgbLives))
}

// drawEnd shows the outcome, the run counters and the stored top scores
func (r *TerminalRenderer) drawEnd(s *engine.RunState, text string, style tcell.Style) {
	r.TextCentered(FieldRows/2-1, text, style)
	r.TextCentered(FieldRows/2+1, constants.PressExitText, r.Style(RgbHint))

	stats := fmt.Sprintf("SHOTS %d  KILLS %d  HITS TAKEN %d", s.Stats.PlayerShots, s.Stats.Kills, s.Stats.PlayerHits)
	r.TextCentered(FieldRows/2+3, stats, r.Style(RgbMenuText))

	if r.board == nil || len(r.board.Top) == 0 {
		return
	}
	r.TextCentered(FieldRows/2+5, constants.TopScoresText, r.Style(RgbTitle))
	for i, score := range r.board.Top {
		r.TextCentered(FieldRows/2+6+i, fmt.Sprintf("%d. %05d", i+1, score), r.Style(RgbMenuText))
	}
}
