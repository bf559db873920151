package models

import "time"

// DailySummary is the archived record of one exported report.
type DailySummary struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Date           string    `json:"date" gorm:"uniqueIndex;size:10"`
	TotalEvents    int       `json:"total_events"`
	NewEvents      int       `json:"new_events"`
	TrendingEvents int       `json:"trending_events"`
	TopEvent       string    `json:"top_event"`
	OutputPath     string    `json:"output_path"`
	RunID          string    `json:"run_id" gorm:"size:36"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
