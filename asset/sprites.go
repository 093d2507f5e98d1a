package asset

// Built-in sprite sheets. Each frame is a block of glyph rows drawn from the
// sprite's top-left cell; spaces are transparent.
var builtin = map[ID]Sheet{
	PlayerIdle: {
		Name: "player", FrameWidth: 50, FrameHeight: 34,
		Frames: [][]string{
			{" ▄█▄ ", "█████"},
			{" ▄█▄ ", "██▀██"},
			{" ▄█▄ ", "█████"},
			{" ▄█▄ ", "██▄██"},
		},
	},
	PlayerLeft: {
		Name: "player_left", FrameWidth: 42, FrameHeight: 34,
		Frames: [][]string{
			{"▄█▄ ", "████"},
			{"▄█▄ ", "█▀██"},
			{"▄█▄ ", "████"},
			{"▄█▄ ", "█▄██"},
		},
	},
	PlayerRight: {
		Name: "player_right", FrameWidth: 42, FrameHeight: 34,
		Frames: [][]string{
			{" ▄█▄", "████"},
			{" ▄█▄", "██▀█"},
			{" ▄█▄", "████"},
			{" ▄█▄", "██▄█"},
		},
	},
	Enemy1: {
		Name: "enemy1", FrameWidth: 50, FrameHeight: 50,
		Frames: [][]string{{" ▄█▄ ", "▀▄▀▄▀"}},
	},
	Enemy1Alt: {
		Name: "enemy1_1", FrameWidth: 50, FrameHeight: 50,
		Frames: [][]string{{" ▄█▄ ", "▄▀ ▀▄"}},
	},
	Enemy2: {
		Name: "enemy2", FrameWidth: 50, FrameHeight: 50,
		Frames: [][]string{{"▄▀█▀▄", "▀   ▀"}},
	},
	Enemy2Alt: {
		Name: "enemy2_1", FrameWidth: 50, FrameHeight: 50,
		Frames: [][]string{{"▄▀█▀▄", " ▀ ▀ "}},
	},
	Enemy3: {
		Name: "enemy3", FrameWidth: 50, FrameHeight: 50,
		Frames: [][]string{{"▄███▄", "▀▄ ▄▀"}},
	},
	Enemy3Alt: {
		Name: "enemy3_1", FrameWidth: 50, FrameHeight: 50,
		Frames: [][]string{{"▄███▄", "▄▀ ▀▄"}},
	},
	PlayerBullet: {
		Name: "player_bullet", FrameWidth: 4, FrameHeight: 12,
		Frames: [][]string{{"│"}},
	},
	EnemyBullet: {
		Name: "enemy_bullet", FrameWidth: 4, FrameHeight: 12,
		Frames: [][]string{{"¦"}},
	},
	Explosion: {
		Name: "explosion", FrameWidth: 50, FrameHeight: 50,
		Frames: [][]string{
			{"  .  ", "     "},
			{" .*. ", "  '  "},
			{"\\ * /", " '*' "},
			{"-*#*-", "/ * \\"},
			{" *#* ", "' . '"},
			{" . . ", "  .  "},
		},
	},
	ExplosionSmall: {
		Name: "explosion_small", FrameWidth: 25, FrameHeight: 25,
		Frames: [][]string{
			{" . "},
			{".*."},
			{"*#*"},
			{".*."},
			{" . "},
		},
	},
	Lives: {
		Name: "lives", FrameWidth: 50, FrameHeight: 50,
		Frames: [][]string{{"♥"}},
	},
	MenuCursor: {
		Name: "menu_choice", FrameWidth: 40, FrameHeight: 30,
		Frames: [][]string{{"▶"}},
	},
}
