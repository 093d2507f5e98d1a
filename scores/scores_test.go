package scores

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/status"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndTop(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	for _, r := range []Run{
		{Score: 30, Level: 1, Outcome: OutcomeLoss},
		{Score: 220, Level: 4, Outcome: OutcomeWin},
		{Score: 30, Level: 2, Outcome: OutcomeQuit},
		{Score: 90, Level: 5, Infinite: true, Outcome: OutcomeLoss},
	} {
		require.NoError(t, s.Record(ctx, r))
	}

	top, err := s.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 220, top[0].Score)
	assert.Equal(t, 90, top[1].Score)
	assert.True(t, top[1].Infinite)
	assert.Equal(t, 30, top[2].Score)
	assert.Equal(t, 1, top[2].Level, "older run wins a tie")
	assert.False(t, top[0].CreatedAt.IsZero())

	best, err := s.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 220, best)
}

func TestBestOnEmptyTable(t *testing.T) {
	s := openMemory(t)

	best, err := s.Best(context.Background())
	require.NoError(t, err)
	assert.Zero(t, best)
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, Run{Score: 12, Level: 1, Outcome: OutcomeLoss}))
	require.NoError(t, s.Close())

	s, err = Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 12, top[0].Score)
}

func TestRunFromState(t *testing.T) {
	st := engine.NewRunState()
	st.GlobalScore = 77
	st.Level = constants.InfiniteLevel
	st.Mode = engine.ModeGameOver
	st.Stats = status.Snapshot{Kills: 77, PlayerShots: 90, PlayerHits: 3}

	r, ok := RunFromState(st, true)
	require.True(t, ok)
	assert.Equal(t, 77, r.Score)
	assert.Equal(t, int64(90), r.Shots)
	assert.Equal(t, int64(77), r.Kills)
	assert.Equal(t, int64(3), r.HitsTaken)
	assert.True(t, r.Infinite)
	assert.Equal(t, OutcomeLoss, r.Outcome)

	st.Mode = engine.ModeGameWin
	r, _ = RunFromState(st, true)
	assert.Equal(t, OutcomeWin, r.Outcome)

	st.Mode = engine.ModeQuit
	r, _ = RunFromState(st, true)
	assert.Equal(t, OutcomeQuit, r.Outcome)

	_, ok = RunFromState(st, false)
	assert.False(t, ok)
}
