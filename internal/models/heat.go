package models

// CompanyHeatRow is one row of the CompanyHeat table.
type CompanyHeatRow struct {
	Company        string `json:"company"`         // 公司
	Heat           string `json:"heat"`            // 熱度
	Articles       string `json:"articles"`        // 出現篇數
	HighConfidence string `json:"high_confidence"` // 高信心篇數
	MainTopic      string `json:"main_topic"`      // 主要主題
	MainSubTopic   string `json:"main_sub_topic"`  // 主要子題
}
