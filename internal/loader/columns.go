package loader

import "github.com/tw-event-radar/radar/internal/models"

// Column headers as written by the monitoring pipeline.

var newsColumns = map[string]func(*models.NewsRecord, string){
	"提及公司": func(r *models.NewsRecord, v string) { r.Companies = v },
	"事件類型": func(r *models.NewsRecord, v string) { r.EventTypes = v },
	"信心等級": func(r *models.NewsRecord, v string) { r.Confidence = v },
	"監控分數": func(r *models.NewsRecord, v string) { r.MonitorScore = v },
	"主題分數": func(r *models.NewsRecord, v string) { r.TopicScore = v },
	"發布時間": func(r *models.NewsRecord, v string) { r.PublishedAt = v },
	"標題":   func(r *models.NewsRecord, v string) { r.Title = v },
	"來源":   func(r *models.NewsRecord, v string) { r.Source = v },
	"連結":   func(r *models.NewsRecord, v string) { r.Link = v },
}

var eventColumns = map[string]func(*models.RankedEvent, string){
	"事件":    func(r *models.RankedEvent, v string) { r.Event = v },
	"極性":    func(r *models.RankedEvent, v string) { r.Polarity = v },
	"公司":    func(r *models.RankedEvent, v string) { r.Company = v },
	"主題":    func(r *models.RankedEvent, v string) { r.Topic = v },
	"NEW":   func(r *models.RankedEvent, v string) { r.New = v },
	"今日熱度":  func(r *models.RankedEvent, v string) { r.Heat = v },
	"熱度變化":  func(r *models.RankedEvent, v string) { r.Delta = v },
	"篇數":    func(r *models.RankedEvent, v string) { r.Articles = v },
	"高信心篇數": func(r *models.RankedEvent, v string) { r.HighConfidence = v },
	"命中詞":   func(r *models.RankedEvent, v string) { r.Keywords = v },
}

var heatColumns = map[string]func(*models.CompanyHeatRow, string){
	"公司":    func(r *models.CompanyHeatRow, v string) { r.Company = v },
	"熱度":    func(r *models.CompanyHeatRow, v string) { r.Heat = v },
	"出現篇數":  func(r *models.CompanyHeatRow, v string) { r.Articles = v },
	"高信心篇數": func(r *models.CompanyHeatRow, v string) { r.HighConfidence = v },
	"主要主題":  func(r *models.CompanyHeatRow, v string) { r.MainTopic = v },
	"主要子題":  func(r *models.CompanyHeatRow, v string) { r.MainSubTopic = v },
}

var runColumns = map[string]func(*models.RunStatus, string){
	"run_at":             func(r *models.RunStatus, v string) { r.RunAt = v },
	"cutoff_dt":          func(r *models.RunStatus, v string) { r.CutoffAt = v },
	"keywords":           func(r *models.RunStatus, v string) { r.Keywords = v },
	"domains":            func(r *models.RunStatus, v string) { r.Domains = v },
	"candidates_grouped": func(r *models.RunStatus, v string) { r.CandidatesGrouped = v },
	"rows_fetched":       func(r *models.RunStatus, v string) { r.RowsFetched = v },
	"fallback_rate_pct":  func(r *models.RunStatus, v string) { r.FallbackRatePct = v },
	"cache_path":         func(r *models.RunStatus, v string) { r.CachePath = v },
}
