package components

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/asset"
	"github.com/lixenwraith/vi-invaders/audio"
)

// EnemyKind selects a row in the kind table
type EnemyKind int

const (
	KindSpread EnemyKind = iota + 1 // Three-wide volley
	KindSingle                      // Single fast shot
	KindFork                        // Diverging pair
)

// Shot is one projectile of a fire pattern, relative to the member origin
type Shot struct {
	Offset Vec2
	Vel    Vec2
	Sprite asset.ID
	Color  tcell.Color
}

// KindSpec is the per-kind behaviour looked up once instead of branching on the tag
type KindSpec struct {
	BaseHealth int
	Color      tcell.Color
	Frames     [2]asset.ID // Alternated by the formation flip
	Pattern    []Shot
	FireCue    audio.Cue
}

// Flash colour of a damaged member that survived the hit
var FlashColor = tcell.NewRGBColor(255, 60, 60)

var kindTable = map[EnemyKind]*KindSpec{
	KindSpread: {
		BaseHealth: 1,
		Color:      tcell.ColorWhite,
		Frames:     [2]asset.ID{asset.Enemy1, asset.Enemy1Alt},
		Pattern: []Shot{
			{Offset: Vec2{-15, 0}, Vel: Vec2{0, 20}, Sprite: asset.EnemyBullet, Color: tcell.ColorWhite},
			{Offset: Vec2{0, 20}, Vel: Vec2{0, 20}, Sprite: asset.EnemyBullet, Color: tcell.ColorWhite},
			{Offset: Vec2{15, 0}, Vel: Vec2{0, 20}, Sprite: asset.EnemyBullet, Color: tcell.ColorWhite},
		},
		FireCue: audio.CueEnemyFire1,
	},
	KindSingle: {
		BaseHealth: 1,
		Color:      tcell.NewRGBColor(120, 220, 255),
		Frames:     [2]asset.ID{asset.Enemy2, asset.Enemy2Alt},
		Pattern: []Shot{
			{Vel: Vec2{0, 30}, Sprite: asset.EnemyBullet, Color: tcell.ColorYellow},
		},
		FireCue: audio.CueEnemyFire2,
	},
	KindFork: {
		BaseHealth: 1,
		Color:      tcell.NewRGBColor(180, 255, 120),
		Frames:     [2]asset.ID{asset.Enemy3, asset.Enemy3Alt},
		Pattern: []Shot{
			{Vel: Vec2{2, 20}, Sprite: asset.PlayerBullet, Color: tcell.ColorRed},
			{Vel: Vec2{-2, 20}, Sprite: asset.PlayerBullet, Color: tcell.ColorRed},
		},
		FireCue: audio.CueEnemyFire3,
	},
}

// Kinds lists valid kinds in table order
var Kinds = []EnemyKind{KindSpread, KindSingle, KindFork}

// Spec returns the kind's table row; unknown kinds fall back to KindSpread
func (k EnemyKind) Spec() *KindSpec {
	if s, ok := kindTable[k]; ok {
		return s
	}
	return kindTable[KindSpread]
}

// Valid reports whether k has a table row
func (k EnemyKind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}
