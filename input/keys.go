package input

import "github.com/gdamore/tcell/v2"

// Key is a logical game key
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyFire
	keyCount
)

var keyNames = [keyCount]string{"left", "right", "up", "down", "enter", "escape", "fire"}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// MapKey translates a terminal key event into a game key
func MapKey(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z', ' ':
			return KeyFire, true
		case 'h':
			return KeyLeft, true
		case 'l':
			return KeyRight, true
		case 'k':
			return KeyUp, true
		case 'j':
			return KeyDown, true
		}
	}
	return 0, false
}

// IsQuit reports the window-close chords
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ
}

// KeyCount is the number of game keys
const KeyCount = int(keyCount)
