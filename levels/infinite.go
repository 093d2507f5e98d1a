package levels

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
)

// toughnessRamp colours infinite-mode members by difficulty band
var toughnessRamp = [6]tcell.Color{
	tcell.NewRGBColor(255, 255, 255),
	tcell.NewRGBColor(140, 220, 255),
	tcell.NewRGBColor(120, 255, 120),
	tcell.NewRGBColor(255, 230, 80),
	tcell.NewRGBColor(255, 150, 40),
	tcell.NewRGBColor(255, 50, 50),
}

// BandColor maps difficulty onto one of six colour bands
func BandColor(difficulty int) tcell.Color {
	band := difficulty / constants.DifficultyBandSize
	if band < 0 {
		band = 0
	}
	if band >= len(toughnessRamp) {
		band = len(toughnessRamp) - 1
	}
	return toughnessRamp[band]
}

// Spawn creates one infinite-mode member: uniform kind, toughness in
// 1..InfiniteMaxToughness as starting health, random column on the top row
func Spawn(rng *rand.Rand, difficulty int) components.Enemy {
	kind := components.Kinds[rng.Intn(len(components.Kinds))]
	toughness := 1 + rng.Intn(constants.InfiniteMaxToughness)
	col := rng.Intn(constants.FormationColumns)
	return components.NewEnemy(SlotPosition(0, col), kind, toughness, BandColor(difficulty))
}
