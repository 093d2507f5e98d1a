package audio

// Cue names a sound the game can request
type Cue int

const (
	CuePlayerFire    Cue = iota // Player shot
	CueEnemyFire1               // Spread volley
	CueEnemyFire2               // Single aimed shot
	CueEnemyFire3               // Diverging pair
	CueEnemyDeath               // Formation member destroyed
	CuePlayerDeath              // Player ship destroyed
	CueMusicMain                // Menu and gameplay loop
	CueMusicGameOver            // Loss loop
	CueMusicWin                 // Win loop
	cueCount
)

var cueNames = [cueCount]string{
	"player_fire",
	"enemy_fire_1",
	"enemy_fire_2",
	"enemy_fire_3",
	"enemy_death",
	"player_death",
	"music_main",
	"music_game_over",
	"music_win",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// IsMusic reports whether the cue is a looping track
func (c Cue) IsMusic() bool {
	return c >= CueMusicMain && c < cueCount
}
