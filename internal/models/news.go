package models

// NewsRecord is one article row of the News table. Values are kept as read from
// the source; scoring fields are coerced only when evidence is selected.
type NewsRecord struct {
	Companies    string `json:"companies"`     // 提及公司, comma separated
	EventTypes   string `json:"event_types"`   // 事件類型, comma separated
	Confidence   string `json:"confidence"`    // 信心等級
	MonitorScore string `json:"monitor_score"` // 監控分數
	TopicScore   string `json:"topic_score"`   // 主題分數
	PublishedAt  string `json:"published_at"`  // 發布時間
	Title        string `json:"title"`         // 標題
	Source       string `json:"source"`        // 來源
	Link         string `json:"link"`          // 連結, identity for dedup
}
