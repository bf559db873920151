// Package report composes the daily event radar document from the monitoring
// tables and renders it as Markdown.
package report

import "github.com/tw-event-radar/radar/internal/models"

// DateLayout formats report dates and destination names.
const DateLayout = "2006-01-02"

// Summary holds the counters computed over every ranked event.
type Summary struct {
	TotalEvents    int `json:"total_events"`
	NewEvents      int `json:"new_events"`
	TrendingEvents int `json:"trending_events"`
}

// EventBlock is one detailed event with its representative news.
// Rank is the position within the detailed section, starting at 1.
type EventBlock struct {
	Rank     int                 `json:"rank"`
	Event    models.RankedEvent  `json:"event"`
	Evidence []models.NewsRecord `json:"evidence"`
}

// Report is a composed daily document.
type Report struct {
	Date     string                  `json:"date"`
	Summary  Summary                 `json:"summary"`
	TopEvent *models.RankedEvent     `json:"top_event,omitempty"`
	Events   []EventBlock            `json:"events"`
	Heat     []models.CompanyHeatRow `json:"heat"`
	Run      *models.RunStatus       `json:"run,omitempty"`
}

// Column is a table column header.
type Column struct {
	Title string
	Right bool
}

// Table is a fixed-width Markdown table.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// Section is one block of the document. A section with a Placeholder renders
// only its heading and the placeholder.
type Section struct {
	Heading     string
	Placeholder string
	Lines       []string
	Table       *Table
}
