package constants

// Menu entries, in display order
const (
	MenuStart = iota
	MenuExit
	MenuLevelSelect
	MenuCredits
	MenuEntryCount
)

// LevelSelectEntryCount is Levels 1-4 plus Infinite
const LevelSelectEntryCount = 5

// CreditsScrollTicks is ticks per one-line scroll of the credits roll
const CreditsScrollTicks = 400

// Display text
const (
	TitleText     = "SPACE INVADERS"
	GameOverText  = "GAME OVER!"
	GameWinText   = "YOU WIN!"
	PressExitText = "Press Enter To Exit!"
	EscHintText   = "Esc: back"
	TopScoresText = "TOP SCORES"
)

// ScoreboardSize is how many stored runs the end screens list
const ScoreboardSize = 5

// MenuLabels are the main menu entries
var MenuLabels = [MenuEntryCount]string{"Start Game", "Exit Game", "Level Select", "Credits"}

// LevelLabels are the level select entries
var LevelLabels = [LevelSelectEntryCount]string{"Level 1", "Level 2", "Level 3", "Level 4", "Infinite"}

// CreditsLines is the scrolling credits roll
var CreditsLines = []string{
	"VI-INVADERS",
	"",
	"Design & Code",
	"lixenwraith",
	"",
	"Terminal rendering",
	"tcell",
	"",
	"Sound",
	"beep",
	"",
	"Thanks for playing!",
}
