package models

// RunStatus is one row of the RunLog table describing an ingestion run.
type RunStatus struct {
	RunAt             string `json:"run_at"`
	CutoffAt          string `json:"cutoff_dt"`
	Keywords          string `json:"keywords"`
	Domains           string `json:"domains"`
	CandidatesGrouped string `json:"candidates_grouped"`
	RowsFetched       string `json:"rows_fetched"`
	FallbackRatePct   string `json:"fallback_rate_pct"`
	CachePath         string `json:"cache_path"`
}
