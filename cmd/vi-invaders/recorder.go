package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/scores"
)

const recordTimeout = 2 * time.Second

// runStore is the part of the score table the loop needs
type runStore interface {
	Record(ctx context.Context, r scores.Run) error
	Best(ctx context.Context) (int, error)
	Top(ctx context.Context, n int) ([]scores.Run, error)
}

// runRecorder writes each run to the score table once, when it ends, and
// publishes the refreshed table
type runRecorder struct {
	store   runStore // Nil when scores are disabled
	log     zerolog.Logger
	prev    engine.Mode
	onBoard func(render.Scoreboard)
}

func newRecorder(store runStore, log zerolog.Logger) *runRecorder {
	return &runRecorder{store: store, log: log, prev: engine.ModeMenu}
}

func inRun(m engine.Mode) bool {
	return m == engine.ModePlaying || m == engine.ModeLevelTransition
}

// observe is called after every tick and records a run that just ended
func (r *runRecorder) observe(s *engine.RunState) {
	if inRun(r.prev) && (s.Mode == engine.ModeGameOver || s.Mode == engine.ModeGameWin) {
		r.record(s)
	}
	r.prev = s.Mode
}

// finish records a run abandoned by closing the game
func (r *runRecorder) finish(s *engine.RunState) {
	if inRun(s.Mode) || (inRun(r.prev) && s.Mode == engine.ModeQuit) {
		r.record(s)
	}
	r.prev = s.Mode
}

func (r *runRecorder) record(s *engine.RunState) {
	if r.store == nil {
		return
	}
	run, ok := scores.RunFromState(s, true)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := r.store.Record(ctx, run); err != nil {
		r.log.Error().Err(err).Msg("Failed to record run")
		return
	}
	r.loadBoard()
}

// loadBoard reads the best score and top runs and hands them to onBoard
func (r *runRecorder) loadBoard() {
	if r.store == nil || r.onBoard == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	best, err := r.store.Best(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to read best score")
		return
	}
	runs, err := r.store.Top(ctx, constants.ScoreboardSize)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to read top scores")
		return
	}
	board := render.Scoreboard{Best: best, Top: make([]int, 0, len(runs))}
	for _, run := range runs {
		board.Top = append(board.Top, run.Score)
	}
	r.onBoard(board)
}
