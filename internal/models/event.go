package models

import (
	"strconv"
	"strings"

	"github.com/tw-event-radar/radar/internal/constants"
)

// RankedEvent is one row of the EventRadarPlus table, already ordered by heat.
type RankedEvent struct {
	Event          string `json:"event"`           // 事件
	Polarity       string `json:"polarity"`        // 極性
	Company        string `json:"company"`         // 公司
	Topic          string `json:"topic"`           // 主題
	New            string `json:"new"`             // NEW
	Heat           string `json:"heat"`            // 今日熱度
	Delta          string `json:"delta"`           // 熱度變化
	Articles       string `json:"articles"`        // 篇數
	HighConfidence string `json:"high_confidence"` // 高信心篇數
	Keywords       string `json:"keywords"`        // 命中詞
}

// IsNew reports whether the event is flagged as first seen in this run.
func (e RankedEvent) IsNew() bool {
	return strings.TrimSpace(e.New) == constants.NewFlag
}

// IsTrending reports whether the heat delta is strictly positive.
// A missing or unparseable delta is not trending.
func (e RankedEvent) IsTrending() bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Delta), 64)
	if err != nil {
		return false
	}
	return v > 0
}
