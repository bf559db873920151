package report

import (
	"time"

	"github.com/tw-event-radar/radar/internal/constants"
	"github.com/tw-event-radar/radar/internal/evidence"
	"github.com/tw-event-radar/radar/internal/models"
)

// Input carries the tables of one report run.
type Input struct {
	News         []models.NewsRecord
	RankedEvents []models.RankedEvent
	CompanyHeat  []models.CompanyHeatRow
	Run          *models.RunStatus
	// TopEvents caps the detailed section; <= 0 uses DefaultTopEvents.
	TopEvents int
	Today     time.Time
}

// InputFromBundle builds an Input from loaded tables, using the latest run.
func InputFromBundle(b *models.Bundle, topEvents int, today time.Time) Input {
	return Input{
		News:         b.News,
		RankedEvents: b.RankedEvents,
		CompanyHeat:  b.CompanyHeat,
		Run:          b.LatestRun(),
		TopEvents:    topEvents,
		Today:        today,
	}
}

// Composer turns the monitoring tables into a Report.
type Composer struct {
	selector *evidence.Selector
	location *time.Location
}

// NewComposer creates a composer. A nil selector uses the fixed report zone.
func NewComposer(selector *evidence.Selector) *Composer {
	loc := constants.Location()
	if selector == nil {
		selector = evidence.NewSelector(loc)
	}
	return &Composer{selector: selector, location: loc}
}

// Compose builds the report. It never fails: empty tables and events without
// evidence are kept in the report so they render as placeholders.
func (c *Composer) Compose(in Input) *Report {
	topEvents := in.TopEvents
	if topEvents <= 0 {
		topEvents = constants.DefaultTopEvents
	}

	r := &Report{
		Date:    in.Today.In(c.location).Format(DateLayout),
		Summary: Summarize(in.RankedEvents),
		Events:  []EventBlock{},
		Heat:    head(in.CompanyHeat, constants.DefaultHeatRows),
		Run:     in.Run,
	}
	if len(in.RankedEvents) > 0 {
		top := in.RankedEvents[0]
		r.TopEvent = &top
	}

	for i, evt := range head(in.RankedEvents, topEvents) {
		r.Events = append(r.Events, EventBlock{
			Rank:     i + 1,
			Event:    evt,
			Evidence: c.selector.Select(in.News, safe(evt.Event), safe(evt.Company), constants.DefaultEvidenceLimit),
		})
	}
	return r
}

// Summarize counts all ranked events, the new ones and those with a positive
// heat delta.
func Summarize(events []models.RankedEvent) Summary {
	s := Summary{TotalEvents: len(events)}
	for _, e := range events {
		if e.IsNew() {
			s.NewEvents++
		}
		if e.IsTrending() {
			s.TrendingEvents++
		}
	}
	return s
}

func head[T any](rows []T, n int) []T {
	if len(rows) > n {
		rows = rows[:n]
	}
	return append([]T{}, rows...)
}
