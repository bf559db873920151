package models

// Bundle holds the four tables of one monitoring export.
type Bundle struct {
	News         []NewsRecord
	RankedEvents []RankedEvent
	CompanyHeat  []CompanyHeatRow
	RunLog       []RunStatus
}

// LatestRun returns the most recent run, which is the last RunLog row,
// or nil when the log is empty.
func (b *Bundle) LatestRun() *RunStatus {
	if b == nil || len(b.RunLog) == 0 {
		return nil
	}
	run := b.RunLog[len(b.RunLog)-1]
	return &run
}
