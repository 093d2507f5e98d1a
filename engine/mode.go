package engine

// Mode is the top-level game flow state
type Mode int

const (
	ModeMenu Mode = iota
	ModeLevelSelect
	ModeCredits
	ModePlaying
	ModeLevelTransition
	ModeGameOver
	ModeGameWin
	ModeQuit
)

var modeNames = [...]string{
	"menu",
	"level_select",
	"credits",
	"playing",
	"level_transition",
	"game_over",
	"game_win",
	"quit",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Terminal reports whether the run has ended
func (m Mode) Terminal() bool {
	return m == ModeGameOver || m == ModeGameWin || m == ModeQuit
}
