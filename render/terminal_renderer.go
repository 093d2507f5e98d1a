package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/constants"
)

// World units covered by one terminal cell; cells are about twice as tall as wide
const (
	UnitsPerColumn = 10.0
	UnitsPerRow    = 20.0
)

// Field size in cells
const (
	FieldColumns = int(constants.FieldWidth / UnitsPerColumn)
	FieldRows    = int(constants.FieldHeight / UnitsPerRow)
)

// hudRows are reserved above the field
const hudRows = 1

// Drawable is one sprite frame placed in the world
type Drawable struct {
	Pos    components.Vec2
	Sprite asset.ID
	Frame  int
	Tint   tcell.Color
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen    tcell.Screen
	assets    *asset.Registry
	colorMode string

	width  int
	height int
	fieldX int // Top-left cell of the playfield
	fieldY int

	frame uint64      // Presented frames, drives the invulnerability blink
	board *Scoreboard // Nil when scores are not kept
}

// Scoreboard is the stored high-score table shown on screen
type Scoreboard struct {
	Best int
	Top  []int // Best first
}

// NewTerminalRenderer creates a renderer and sizes the field to the screen
func NewTerminalRenderer(screen tcell.Screen, assets *asset.Registry, colorMode string) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:    screen,
		assets:    assets,
		colorMode: colorMode,
	}
	r.Resize()
	return r
}

// Resize recentres the field after a terminal size change
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.fieldX = max((r.width-FieldColumns)/2, 1)
	r.fieldY = hudRows + 1
}

// SetScoreboard replaces the high-score table shown on the menu, HUD and end screens
func (r *TerminalRenderer) SetScoreboard(b Scoreboard) {
	r.board = &b
}

// Origin returns the top-left cell of the playfield
func (r *TerminalRenderer) Origin() (x, y int) {
	return r.fieldX, r.fieldY
}

// ToCell maps a world position onto a screen cell
func (r *TerminalRenderer) ToCell(p components.Vec2) (x, y int) {
	return r.fieldX + int(p.X/UnitsPerColumn), r.fieldY + int(p.Y/UnitsPerRow)
}

// Style returns a foreground style adjusted to the colour mode
func (r *TerminalRenderer) Style(fg tcell.Color) tcell.Style {
	base := tcell.StyleDefault
	switch r.colorMode {
	case config.ColorMono:
		return base
	case config.Color256:
		return base.Background(tcell.FindColor(RgbBackground, palette256)).Foreground(tcell.FindColor(fg, palette256))
	default:
		return base.Background(RgbBackground).Foreground(fg)
	}
}

// Clear blanks the screen with the background style
func (r *TerminalRenderer) Clear() {
	r.screen.Fill(' ', r.Style(RgbHud))
}

// Draw paints a sprite frame; spaces are transparent and cells outside the field are clipped
func (r *TerminalRenderer) Draw(d Drawable) {
	sheet, ok := r.assets.Sheet(d.Sprite)
	if !ok || sheet.FrameCount() == 0 {
		return
	}
	frame := sheet.Frames[d.Frame%sheet.FrameCount()]
	x0, y0 := r.ToCell(d.Pos)
	style := r.Style(d.Tint)

	for dy, line := range frame {
		y := y0 + dy
		dx := 0
		for _, ch := range line {
			x := x0 + dx
			dx++
			if ch == ' ' || !r.inField(x, y) {
				continue
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) inField(x, y int) bool {
	return x >= r.fieldX && x < r.fieldX+FieldColumns && y >= r.fieldY && y < r.fieldY+FieldRows
}

// Text writes a string starting at a screen cell
func (r *TerminalRenderer) Text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// TextCentered writes a string centred on the field at field row y
func (r *TerminalRenderer) TextCentered(y int, s string, style tcell.Style) {
	x := r.fieldX + (FieldColumns-len([]rune(s)))/2
	r.Text(x, r.fieldY+y, s, style)
}

// Border frames the playfield
func (r *TerminalRenderer) Border() {
	style := r.Style(RgbBorder)
	left, right := r.fieldX-1, r.fieldX+FieldColumns
	top, bottom := r.fieldY-1, r.fieldY+FieldRows
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

// Present flushes the frame to the terminal
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}
