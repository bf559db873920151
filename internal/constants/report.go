package constants

import "time"

// Sheet names of the monitoring workbook.
const (
	SheetNews        = "News"
	SheetRankedEvent = "EventRadarPlus"
	SheetCompanyHeat = "CompanyHeat"
	SheetRunLog      = "RunLog"
)

// RequiredSheets lists the tables an export cannot run without, in load order.
var RequiredSheets = []string{SheetNews, SheetRankedEvent, SheetCompanyHeat, SheetRunLog}

const (
	// DefaultEvidenceLimit is the number of representative news kept per event.
	DefaultEvidenceLimit = 6
	// DefaultTopEvents is the number of ranked events rendered in detail.
	DefaultTopEvents = 20
	// DefaultHeatRows is the number of company heat rows rendered.
	DefaultHeatRows = 20
	// RangeDays is the monitoring window written to the front matter.
	RangeDays = 3
	// ReportType tags daily documents in the front matter.
	ReportType = "daily-radar"
	// ReportTitlePrefix prefixes every report title, followed by the date.
	ReportTitlePrefix = "台股事件雷達｜"
	// DefaultContentDir is where daily documents are written and served from.
	DefaultContentDir = "content/daily"
	// ListDelimiter separates values in multi-value news fields.
	ListDelimiter = ","
	// NewFlag marks ranked events first seen in the current run.
	NewFlag = "NEW"
	// ZoneName is the local zone used for date stamping.
	ZoneName = "Asia/Taipei"
)

// ConfidenceRanks maps confidence tiers to their ordinal rank.
// Any other label ranks 0.
var ConfidenceRanks = map[string]int{
	"高":      3,
	"中":      2,
	"低":      1,
	"high":   3,
	"medium": 2,
	"low":    1,
}

// ExcludedCompanies are annotated in the front matter as excluded from ranking.
// The list is informational; nothing in the export filters on it.
var ExcludedCompanies = []string{"時報", "三星", "中華", "力士", "全國"}

// Location returns the fixed zone for date stamping, falling back to UTC+8
// when the zone database is unavailable.
func Location() *time.Location {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		return time.FixedZone(ZoneName, 8*60*60)
	}
	return loc
}
