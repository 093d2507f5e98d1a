package constants

import "time"

// Audio defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Player fire
const (
	FireSoundDuration = 90 * time.Millisecond
	FireSoundAttack   = 2 * time.Millisecond
	FireSoundRelease  = 60 * time.Millisecond
)

// Enemy fire
const (
	EnemyFireSoundDuration = 120 * time.Millisecond
	EnemyFireSoundAttack   = 5 * time.Millisecond
	EnemyFireSoundRelease  = 80 * time.Millisecond
)

// Explosions
const (
	EnemyDeathSoundDuration  = 250 * time.Millisecond
	EnemyDeathSoundAttack    = 2 * time.Millisecond
	EnemyDeathSoundRelease   = 200 * time.Millisecond
	PlayerDeathSoundDuration = 700 * time.Millisecond
	PlayerDeathSoundAttack   = 5 * time.Millisecond
	PlayerDeathSoundRelease  = 600 * time.Millisecond
)

// Music
const (
	// MusicBeatDuration is one beat of the looping tracks
	MusicBeatDuration = 400 * time.Millisecond
)
