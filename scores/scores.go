package scores

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/vi-invaders/engine"
)

// Outcomes of a finished run
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeQuit = "quit"
)

// Run is one finished run. Only final results are stored, never progress.
type Run struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Score     int    `gorm:"index"` // Kills across the run
	Level     int    // Level reached
	Infinite  bool   // Endless mode
	Outcome   string `gorm:"size:8"`
	Ticks     uint64 // Simulation ticks since start
	Shots     int64  // Player projectiles fired
	Kills     int64  // Members destroyed, equal to Score
	HitsTaken int64  // Lives lost
}

// TableName pins the table name
func (Run) TableName() string {
	return "runs"
}

// RunFromState summarises a run state; ok is false when no run took place
func RunFromState(s *engine.RunState, played bool) (Run, bool) {
	if !played {
		return Run{}, false
	}
	r := Run{
		Score:     s.GlobalScore,
		Level:     s.Level,
		Infinite:  s.Infinite(),
		Ticks:     s.Tick,
		Shots:     s.Stats.PlayerShots,
		Kills:     s.Stats.Kills,
		HitsTaken: s.Stats.PlayerHits,
	}
	switch s.Mode {
	case engine.ModeGameWin:
		r.Outcome = OutcomeWin
	case engine.ModeGameOver:
		r.Outcome = OutcomeLoss
	default:
		r.Outcome = OutcomeQuit
	}
	return r, true
}

// Store keeps finished runs in sqlite
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the sqlite file at path and migrates the schema.
// An empty path uses a private in-memory database.
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql interface: %w", err)
	}
	// One connection keeps an in-memory database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Run{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate score db: %w", err)
	}

	if path == "" {
		log.Info().Msg("Using in-memory score table")
	} else {
		log.Info().Str("path", path).Msg("Using score table")
	}
	return &Store{db: db, log: log}, nil
}

// Record stores a finished run
func (s *Store) Record(ctx context.Context, r Run) error {
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	s.log.Info().
		Int("score", r.Score).
		Int("level", r.Level).
		Str("outcome", r.Outcome).
		Int64("shots", r.Shots).
		Int64("hits_taken", r.HitsTaken).
		Msg("Run recorded")
	return nil
}

// Top returns up to n runs by descending score, older first on ties
func (s *Store) Top(ctx context.Context, n int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("score desc").
		Order("id asc").
		Limit(n).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("query top runs: %w", err)
	}
	return runs, nil
}

// Best returns the highest recorded score, 0 when empty
func (s *Store) Best(ctx context.Context) (int, error) {
	var best int
	err := s.db.WithContext(ctx).
		Model(&Run{}).
		Select("COALESCE(MAX(score), 0)").
		Scan(&best).Error
	if err != nil {
		return 0, fmt.Errorf("query best score: %w", err)
	}
	return best, nil
}

// Close releases the database
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
