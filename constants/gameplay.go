// @focus: #constants { gameplay }
package constants

// Player
const (
	// PlayerSpawnX, PlayerSpawnY is the canonical spawn point
	PlayerSpawnX = 375.0
	PlayerSpawnY = 550.0

	// PlayerParkY is where a just-hit player waits out the respawn timer
	PlayerParkY = -100.0

	// PlayerSpeed is the horizontal speed in units per second
	PlayerSpeed = 20.0

	// PlayerBoundLeft, PlayerBoundRight are soft boundaries: velocity is
	// refused past them, position is never clamped
	PlayerBoundLeft  = 40.0
	PlayerBoundRight = 640.0

	PlayerStartLives = 3

	// PlayerReloadTicks gates player fire to one shot per window
	PlayerReloadTicks = 1000

	// InvulnerabilityTicks is the post-hit window where hits are ignored
	InvulnerabilityTicks = 3000

	// InvulnerabilityBlinkFrames is how many presented frames the flickering
	// sprite stays shown, then hidden
	InvulnerabilityBlinkFrames = 4

	// RespawnTicks is how long the player stays parked after a hit
	RespawnTicks = 1000

	// PlayerAnimationDelay is ticks per frame of the looping ship animation
	PlayerAnimationDelay = 90
)

// Projectiles
const (
	// ProjectileSpawnOffsetX shifts every projectile from the shooter origin
	ProjectileSpawnOffsetX = 17.0

	PlayerProjectileSpeed = 30.0

	ProjectileWidth  = 4.0
	ProjectileHeight = 12.0
)

// Formation
const (
	FormationRows    = 5
	FormationColumns = 11

	// FormationOriginX, FormationOriginY is the top-left member position
	FormationOriginX = 100.0
	FormationOriginY = 100.0

	// FormationSpacing is the distance between grid slots
	FormationSpacing = 50.0

	// FormationStep is the magnitude of one lock-step move
	FormationStep = 5.0

	// FormationRowHeight is the total descent of one boundary event
	FormationRowHeight = 50.0

	// FormationBoundLeft, FormationBoundRight trigger a descent and reversal
	FormationBoundLeft  = 40.0
	FormationBoundRight = 640.0

	// FormationFloorY is the terminal loss row
	FormationFloorY = 550.0

	// FormationBaseCadence is the move timer reset before difficulty
	FormationBaseCadence = 1000

	EnemyWidth  = 50.0
	EnemyHeight = 50.0

	// EnemyHitboxInsetX, EnemyHitboxInsetY shrink the hit region on each side
	EnemyHitboxInsetX = 13.0
	EnemyHitboxInsetY = 19.0

	// HitFlashTicks is how long a damaged member stays flash-coloured
	HitFlashTicks = 120

	// DefaultEnemyFireChance is the per-member per-tick Bernoulli fire chance
	DefaultEnemyFireChance = 0.00001
)

// Scoring and difficulty
const (
	// KillQuota advances the level or wins the run at level 4
	KillQuota = 55

	// DifficultyPerKill scales difficulty with per-level score
	DifficultyPerKill = 20

	// MaxDifficulty keeps the move cadence strictly positive
	MaxDifficulty = 975

	// DifficultyBandSize groups difficulty into colour bands
	DifficultyBandSize = 100
)

// Levels
const (
	FirstLevel    = 1
	FinalLevel    = 4
	InfiniteLevel = 5

	// LevelBannerTicks is how long the level banner holds the simulation
	LevelBannerTicks = 2000

	// DefaultInfiniteSpawnChance is the per-tick spawn chance in infinite mode
	DefaultInfiniteSpawnChance = 0.0002

	// InfiniteMaxToughness bounds the random starting health
	InfiniteMaxToughness = 7
)

// Effects
const (
	// EffectFrameDelay is ticks per frame of explosion strips
	EffectFrameDelay = 30

	// SmallExplosionOffset centres the small explosion on a dead member
	SmallExplosionOffset = 13.0

	// PlayerExplosionOffsetY lifts the death explosion over the ship
	PlayerExplosionOffsetY = -12.0

	// PlayerExplosionTurnOffsetX recentres the explosion on a turning ship
	PlayerExplosionTurnOffsetX = 8.0
)
