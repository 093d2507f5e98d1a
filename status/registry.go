package status

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MeterName is the instrumentation scope of game metrics
const MeterName = "github.com/lixenwraith/vi-invaders"

// Registry is the central metrics facade.
// Each counter is exported through OpenTelemetry and mirrored in an atomic for
// in-process reads (HUD, logs, tests).
type Registry struct {
	Kills         atomic.Int64
	PlayerShots   atomic.Int64
	EnemyShots    atomic.Int64
	PlayerHits    atomic.Int64
	LevelsCleared atomic.Int64
	Runs          atomic.Int64

	kills         metric.Int64Counter
	playerShots   metric.Int64Counter
	enemyShots    metric.Int64Counter
	playerHits    metric.Int64Counter
	levelsCleared metric.Int64Counter
	runs          metric.Int64Counter
}

// NewRegistry creates counters on the meter; a nil meter records nowhere
func NewRegistry(meter metric.Meter) (*Registry, error) {
	if meter == nil {
		meter = noop.Meter{}
	}
	r := &Registry{}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&r.kills, "invaders.kills", "Formation members destroyed"},
		{&r.playerShots, "invaders.player_shots", "Projectiles fired by the player"},
		{&r.enemyShots, "invaders.enemy_shots", "Projectiles fired by the formation"},
		{&r.playerHits, "invaders.player_hits", "Lives lost"},
		{&r.levelsCleared, "invaders.levels_cleared", "Kill quotas reached"},
		{&r.runs, "invaders.runs", "Runs started"},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("create counter %s: %w", c.name, err)
		}
		*c.dst = counter
	}
	return r, nil
}

// AddKill records one destroyed member of the given kind
func (r *Registry) AddKill(kind int) {
	if r == nil {
		return
	}
	r.Kills.Add(1)
	r.kills.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("kind", kind)))
}

// AddPlayerShot records one player projectile
func (r *Registry) AddPlayerShot() {
	if r == nil {
		return
	}
	r.PlayerShots.Add(1)
	r.playerShots.Add(context.Background(), 1)
}

// AddEnemyShots records the projectiles of one enemy volley
func (r *Registry) AddEnemyShots(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.EnemyShots.Add(int64(n))
	r.enemyShots.Add(context.Background(), int64(n))
}

// AddPlayerHit records one lost life
func (r *Registry) AddPlayerHit() {
	if r == nil {
		return
	}
	r.PlayerHits.Add(1)
	r.playerHits.Add(context.Background(), 1)
}

// AddLevelCleared records a reached quota
func (r *Registry) AddLevelCleared(level int) {
	if r == nil {
		return
	}
	r.LevelsCleared.Add(1)
	r.levelsCleared.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("level", level)))
}

// AddRun records a started run
func (r *Registry) AddRun(level int) {
	if r == nil {
		return
	}
	r.Runs.Add(1)
	r.runs.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("level", level)))
}

// Snapshot is a point-in-time copy of the counter mirrors
type Snapshot struct {
	Kills         int64
	PlayerShots   int64
	EnemyShots    int64
	PlayerHits    int64
	LevelsCleared int64
	Runs          int64
}

// Snapshot reads every mirror; a nil registry reads as zero
func (r *Registry) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return Snapshot{
		Kills:         r.Kills.Load(),
		PlayerShots:   r.PlayerShots.Load(),
		EnemyShots:    r.EnemyShots.Load(),
		PlayerHits:    r.PlayerHits.Load(),
		LevelsCleared: r.LevelsCleared.Load(),
		Runs:          r.Runs.Load(),
	}
}

// Sub returns the counts accumulated since base
func (s Snapshot) Sub(base Snapshot) Snapshot {
	return Snapshot{
		Kills:         s.Kills - base.Kills,
		PlayerShots:   s.PlayerShots - base.PlayerShots,
		EnemyShots:    s.EnemyShots - base.EnemyShots,
		PlayerHits:    s.PlayerHits - base.PlayerHits,
		LevelsCleared: s.LevelsCleared - base.LevelsCleared,
		Runs:          s.Runs - base.Runs,
	}
}
