// @focus: #content { levels }
package levels

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
)

// Cell is one grid slot of a layout table
type Cell struct {
	Kind   components.EnemyKind
	Health int         // 0 takes the kind's base health
	Color  tcell.Color // ColorDefault takes the kind's canonical colour
}

// Layout is a fixed formation grid
type Layout [constants.FormationRows][constants.FormationColumns]Cell

// Armoured members carry a tint so toughness reads at a glance
var (
	colorArmored = tcell.NewRGBColor(255, 165, 0)
	colorElite   = tcell.NewRGBColor(255, 80, 200)
)

func row(kind components.EnemyKind, health int, color tcell.Color) [constants.FormationColumns]Cell {
	var r [constants.FormationColumns]Cell
	for i := range r {
		r[i] = Cell{Kind: kind, Health: health, Color: color}
	}
	return r
}

// alternating fills a row with two kinds in turn
func alternating(a, b components.EnemyKind, health int, color tcell.Color) [constants.FormationColumns]Cell {
	var r [constants.FormationColumns]Cell
	for i := range r {
		k := a
		if i%2 == 1 {
			k = b
		}
		r[i] = Cell{Kind: k, Health: health, Color: color}
	}
	return r
}

var tables = map[int]Layout{
	1: {
		row(components.KindSpread, 1, tcell.ColorDefault),
		row(components.KindSingle, 1, tcell.ColorDefault),
		row(components.KindSingle, 1, tcell.ColorDefault),
		row(components.KindFork, 1, tcell.ColorDefault),
		row(components.KindFork, 1, tcell.ColorDefault),
	},
	2: {
		row(components.KindSpread, 2, colorArmored),
		row(components.KindSingle, 1, tcell.ColorDefault),
		row(components.KindSingle, 1, tcell.ColorDefault),
		row(components.KindFork, 1, tcell.ColorDefault),
		row(components.KindFork, 1, tcell.ColorDefault),
	},
	3: {
		row(components.KindFork, 2, colorArmored),
		row(components.KindFork, 2, colorArmored),
		row(components.KindSpread, 1, tcell.ColorDefault),
		row(components.KindSingle, 1, tcell.ColorDefault),
		row(components.KindSingle, 1, tcell.ColorDefault),
	},
	4: {
		alternating(components.KindSpread, components.KindSingle, 2, colorElite),
		alternating(components.KindFork, components.KindSpread, 2, colorArmored),
		alternating(components.KindSingle, components.KindFork, 2, colorArmored),
		alternating(components.KindSpread, components.KindFork, 1, tcell.ColorDefault),
		alternating(components.KindFork, components.KindSingle, 1, tcell.ColorDefault),
	},
}

// Table returns the layout of a finite level
func Table(level int) (Layout, bool) {
	l, ok := tables[level]
	return l, ok
}

// SlotPosition returns the world position of a grid slot
func SlotPosition(r, c int) components.Vec2 {
	return components.Vec2{
		X: constants.FormationOriginX + float64(c)*constants.FormationSpacing,
		Y: constants.FormationOriginY + float64(r)*constants.FormationSpacing,
	}
}

// Seed builds the formation of a finite level. Infinite and unknown levels
// start empty; infinite members arrive through Spawn.
func Seed(level int) []components.Enemy {
	layout, ok := Table(level)
	if !ok {
		return nil
	}
	enemies := make([]components.Enemy, 0, constants.KillQuota)
	for r := range layout {
		for c, cell := range layout[r] {
			enemies = append(enemies, components.NewEnemy(SlotPosition(r, c), cell.Kind, cell.Health, cell.Color))
		}
	}
	return enemies
}
