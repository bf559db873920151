// Package archive keeps one summary row per exported report in sqlite.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tw-event-radar/radar/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("summary not found")

const defaultListLimit = 30

type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the archive database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	if err := db.AutoMigrate(&models.DailySummary{}); err != nil {
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return &Store{db: db}, nil
}

// Save inserts the summary or replaces the counters of the same date.
func (s *Store) Save(ctx context.Context, summary *models.DailySummary) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_events", "new_events", "trending_events", "top_event", "output_path", "run_id", "updated_at",
		}),
	}).Create(summary).Error
	if err != nil {
		return fmt.Errorf("save summary %s: %w", summary.Date, err)
	}
	return nil
}

// Get returns the summary of one date.
func (s *Store) Get(ctx context.Context, date string) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := s.db.WithContext(ctx).Where("date = ?", date).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get summary %s: %w", date, err)
	}
	return &summary, nil
}

// List returns up to limit summaries, newest date first. limit <= 0 uses 30.
func (s *Store) List(ctx context.Context, limit int) ([]models.DailySummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	summaries := []models.DailySummary{}
	if err := s.db.WithContext(ctx).Order("date desc").Limit(limit).Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return summaries, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
