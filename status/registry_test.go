package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestRegistryMirrorsCounters(t *testing.T) {
	r, err := NewRegistry(noop.Meter{})
	require.NoError(t, err)

	r.AddKill(1)
	r.AddKill(3)
	r.AddPlayerShot()
	r.AddEnemyShots(3)
	r.AddEnemyShots(0)
	r.AddPlayerHit()
	r.AddLevelCleared(2)
	r.AddRun(1)

	assert.Equal(t, int64(2), r.Kills.Load())
	assert.Equal(t, int64(1), r.PlayerShots.Load())
	assert.Equal(t, int64(3), r.EnemyShots.Load())
	assert.Equal(t, int64(1), r.PlayerHits.Load())
	assert.Equal(t, int64(1), r.LevelsCleared.Load())
	assert.Equal(t, int64(1), r.Runs.Load())
}

func TestRegistryNilMeter(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)
	r.AddKill(2)
	assert.Equal(t, int64(1), r.Kills.Load())
}

func TestNilRegistryIsSafe(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.AddKill(1)
		r.AddPlayerShot()
		r.AddEnemyShots(2)
		r.AddPlayerHit()
		r.AddLevelCleared(1)
		r.AddRun(1)
	})
}

func TestSnapshotSub(t *testing.T) {
	r, err := NewRegistry(nil)
	require.NoError(t, err)
	r.AddPlayerShot()
	r.AddKill(1)
	base := r.Snapshot()

	r.AddPlayerShot()
	r.AddPlayerShot()
	r.AddPlayerHit()

	d := r.Snapshot().Sub(base)
	assert.Equal(t, Snapshot{PlayerShots: 2, PlayerHits: 1}, d)

	var none *Registry
	assert.Equal(t, Snapshot{}, none.Snapshot())
}
