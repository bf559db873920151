package evidence

import (
	"sort"
	"time"

	"github.com/tw-event-radar/radar/internal/constants"
	"github.com/tw-event-radar/radar/internal/models"
)

// candidate holds the ranking keys of one matching record. Keys are computed
// per call and never written back to the pool.
type candidate struct {
	record     *models.NewsRecord
	confidence int
	monitor    float64
	topic      float64
	published  time.Time
	hasTime    bool
}

// Selector picks the representative news of a ranked event.
type Selector struct {
	location *time.Location
}

// NewSelector creates a selector that reads zone-less timestamps in loc.
func NewSelector(loc *time.Location) *Selector {
	if loc == nil {
		loc = constants.Location()
	}
	return &Selector{location: loc}
}

var defaultSelector = NewSelector(nil)

// Select is Selector.Select with the report's fixed zone.
func Select(pool []models.NewsRecord, event, company string, limit int) []models.NewsRecord {
	return defaultSelector.Select(pool, event, company, limit)
}

// Select returns at most limit records of pool that mention both company and
// event, best first, one per link. A limit <= 0 uses DefaultEvidenceLimit.
// The pool is only read.
func (s *Selector) Select(pool []models.NewsRecord, event, company string, limit int) []models.NewsRecord {
	if limit <= 0 {
		limit = constants.DefaultEvidenceLimit
	}
	if len(pool) == 0 {
		return []models.NewsRecord{}
	}

	candidates := s.match(pool, event, company)
	if len(candidates) == 0 {
		return []models.NewsRecord{}
	}

	rank(candidates)

	result := make([]models.NewsRecord, 0, min(limit, len(candidates)))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		// the raw link is the key; all link-less records share the empty key
		if _, dup := seen[c.record.Link]; dup {
			continue
		}
		seen[c.record.Link] = struct{}{}
		result = append(result, *c.record)
		if len(result) == limit {
			break
		}
	}
	return result
}

// match filters the pool and normalizes the ranking keys of each hit.
func (s *Selector) match(pool []models.NewsRecord, event, company string) []candidate {
	candidates := make([]candidate, 0)
	for i := range pool {
		rec := &pool[i]
		if !Matches(ParseTokens(rec.Companies), ParseTokens(rec.EventTypes), company, event) {
			continue
		}
		published, ok := ParseTimestamp(rec.PublishedAt, s.location)
		candidates = append(candidates, candidate{
			record:     rec,
			confidence: ConfidenceRank(rec.Confidence),
			monitor:    ParseScore(rec.MonitorScore),
			topic:      ParseScore(rec.TopicScore),
			published:  published,
			hasTime:    ok,
		})
	}
	return candidates
}

// rank orders candidates by confidence, monitor score, topic score and publish
// time, all descending. Records without a valid time sort after those with one.
// Full ties keep their pool order.
func rank(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return less(candidates[i], candidates[j])
	})
}

func less(a, b candidate) bool {
	if a.confidence != b.confidence {
		return a.confidence > b.confidence
	}
	if a.monitor != b.monitor {
		return a.monitor > b.monitor
	}
	if a.topic != b.topic {
		return a.topic > b.topic
	}
	if a.hasTime != b.hasTime {
		return a.hasTime
	}
	if a.hasTime {
		return a.published.After(b.published)
	}
	return false
}
