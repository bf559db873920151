package typesense

import (
	"strings"
	"time"

	"github.com/tw-event-radar/radar/internal/daily"
	"github.com/tw-event-radar/radar/internal/utils"
)

const topEventPrefix = "- 最高熱度事件："

// NewDocument builds the indexed form of a daily report: its body as plain
// text and the top event line of the summary, if any.
func NewDocument(doc *daily.Document) Document {
	d := Document{
		ID:       doc.Slug,
		Title:    doc.Title,
		Date:     doc.Date,
		TopEvent: topEvent(doc.Body),
		Content:  utils.StripMarkdown(doc.Body),
	}
	if t, err := time.Parse(dateUnixLayout, doc.Date); err == nil {
		d.DateUnix = t.Unix()
	}
	return d
}

func topEvent(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, topEventPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, topEventPrefix))
		}
	}
	return ""
}
