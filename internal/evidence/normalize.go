package evidence

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tw-event-radar/radar/internal/constants"
)

// timestampLayouts are tried in order; layouts without a zone are read in the
// caller's location.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05-07:00",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// ConfidenceRank returns the ordinal rank of a confidence tier, 0 when unknown.
func ConfidenceRank(tier string) int {
	return constants.ConfidenceRanks[tier]
}

// ParseScore converts a score cell to a number. Empty, unparseable and NaN
// values become 0.
func ParseScore(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0.0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return 0.0
	}
	return f
}

// ParseTimestamp converts a publish time cell to an instant. ok is false when no
// layout matches, in which case the zero time is returned.
func ParseTimestamp(value string, loc *time.Location) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
