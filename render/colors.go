package render

import "github.com/gdamore/tcell/v2"

// RGB colour definitions for the interface
var (
	RgbBackground   = tcell.NewRGBColor(10, 10, 24)    // Night sky
	RgbBorder       = tcell.NewRGBColor(70, 70, 110)   // Field frame
	RgbHud          = tcell.NewRGBColor(220, 220, 220) // Score line
	RgbLives        = tcell.NewRGBColor(255, 70, 90)   // Hearts
	RgbTitle        = tcell.NewRGBColor(120, 255, 120) // Title and banners
	RgbMenuText     = tcell.NewRGBColor(200, 200, 200) // Idle entries
	RgbMenuSelected = tcell.NewRGBColor(255, 230, 80)  // Entry under the cursor
	RgbHint         = tcell.NewRGBColor(120, 120, 140) // Key hints
	RgbGameOver     = tcell.NewRGBColor(255, 60, 60)   // Loss banner
	RgbGameWin      = tcell.NewRGBColor(255, 215, 0)   // Win banner
	RgbExplosion    = tcell.NewRGBColor(255, 160, 40)  // Effects
	RgbPlayer       = tcell.NewRGBColor(80, 255, 120)  // Ship
)

// palette256 is the xterm palette used to quantise colours in 256-colour mode
var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 256)
	for i := range p {
		p[i] = tcell.PaletteColor(i)
	}
	return p
}()
